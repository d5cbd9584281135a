package models

import "time"

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FirstName  string `gorm:"size:100;not null" json:"firstName"`
	LastName   string `gorm:"size:100;not null" json:"lastName"`
	Address    string `gorm:"size:150" json:"address"`
	PostalCode string `gorm:"size:10" json:"postalCode"`
	City       string `gorm:"size:100" json:"city"`
	Department string `gorm:"size:100" json:"department"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
