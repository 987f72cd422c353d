package dto

import (
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
)

type CreateBidRequestDTO struct {
	BidAmount chit.RawAmount `json:"bidAmount" swaggertype:"string" example:"45000"`
}

type UpdateBidRequestDTO struct {
	Status string `json:"status" example:"approved"`
}

type BidRequestDTO struct {
	ID         string    `json:"id"`
	SchemeID   string    `json:"chitId"`
	SchemeName string    `json:"chitName"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail,omitempty"`
	BidAmount  *float64  `json:"bidAmount"`
	Status     string    `json:"status" example:"pending"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromBidRequest(b domain.BidRequest) BidRequestDTO {
	return BidRequestDTO{
		ID:         b.ID,
		SchemeID:   b.SchemeID,
		SchemeName: b.SchemeName,
		UserID:     b.UserID,
		UserName:   b.UserName,
		UserEmail:  b.UserEmail,
		BidAmount:  b.BidAmount,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromBidRequests(bs []domain.BidRequest) []BidRequestDTO {
	out := make([]BidRequestDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBidRequest(b))
	}
	return out
}
