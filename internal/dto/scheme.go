package dto

import (
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
)

type CreateSchemeRequestDTO struct {
	Name             string      `json:"name" example:"Gold 2025"`
	TotalAmount      chit.Amount `json:"totalAmount" swaggertype:"number" example:"100000"`
	Amount           chit.Amount `json:"amount" swaggertype:"number" example:"5000"`
	DurationInMonths *int        `json:"durationInMonths" example:"20"`
	TotalMembers     int         `json:"totalMembers" example:"20"`
	StartDate        *time.Time  `json:"startDate" example:"2025-01-01T00:00:00Z"`
}

type JoinedUserDTO struct {
	User       UserDTO   `json:"user"`
	IsApproved bool      `json:"isApproved"`
	JoinedAt   time.Time `json:"joinedAt"`
}

type SchemeDTO struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	TotalAmount      float64         `json:"totalAmount"`
	Amount           float64         `json:"amount"`
	DurationInMonths *int            `json:"durationInMonths"`
	TotalMembers     int             `json:"totalMembers"`
	StartDate        *time.Time      `json:"startDate"`
	CreatedAt        time.Time       `json:"createdAt"`
	JoinedUsers      []JoinedUserDTO `json:"joinedUsers"`
}

type MemberStatusDTO struct {
	User UserDTO `json:"user"`
	chit.MemberStatus
}

type SchemeDetailDTO struct {
	SchemeDTO
	Members []MemberStatusDTO `json:"members"`
}

type JoinRequestDTO struct {
	SchemeID   string    `json:"chitId"`
	SchemeName string    `json:"chitName"`
	User       UserDTO   `json:"user"`
	JoinedAt   time.Time `json:"joinedAt"`
}

func memberUser(m domain.SchemeMember) UserDTO {
	return UserDTO{ID: m.UserID, Name: m.Name, Email: m.Email, Role: domain.RoleMember}
}

func FromScheme(s *domain.Scheme) SchemeDTO {
	joined := make([]JoinedUserDTO, 0, len(s.Members))
	for _, m := range s.Members {
		joined = append(joined, JoinedUserDTO{
			User:       memberUser(m),
			IsApproved: m.Approved,
			JoinedAt:   m.JoinedAt,
		})
	}
	return SchemeDTO{
		ID:               s.ID,
		Name:             s.Name,
		TotalAmount:      s.TotalAmount,
		Amount:           s.MonthlyAmount,
		DurationInMonths: s.DurationMonths,
		TotalMembers:     s.TotalMembers,
		StartDate:        s.StartDate,
		CreatedAt:        s.CreatedAt,
		JoinedUsers:      joined,
	}
}

func FromMemberStatus(m domain.SchemeMember, status chit.MemberStatus) MemberStatusDTO {
	return MemberStatusDTO{User: memberUser(m), MemberStatus: status}
}

func FromJoinRequest(m domain.SchemeMember) JoinRequestDTO {
	return JoinRequestDTO{
		SchemeID:   m.SchemeID,
		SchemeName: m.SchemeName,
		User:       memberUser(m),
		JoinedAt:   m.JoinedAt,
	}
}
