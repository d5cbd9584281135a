package dto

import "github.com/rensdev/urenregistratie-api/internal/models"

type UserDTO struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

func FromUser(u models.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Address:    u.Address,
		PostalCode: u.PostalCode,
		City:       u.City,
		Department: u.Department,
		Email:      u.Email,
	}
}

func FromUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
