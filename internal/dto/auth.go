package dto

import "github.com/GlebRadaev/chitledger/internal/domain"

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Asha"`
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"secret123"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"secret123"`
}

type UserDTO struct {
	ID    string `json:"id" example:"7d0c2f7e-5d8a-4a59-9a43-2f0f3f0c1a11"`
	Name  string `json:"name" example:"Asha"`
	Email string `json:"email" example:"asha@example.com"`
	Role  string `json:"role" example:"member"`
}

type AuthResponseDTO struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

func FromUser(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
