package dto

import (
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
)

type PayRequestDTO struct {
	Amount chit.RawAmount `json:"amount" swaggertype:"string" example:"5000"`
}

type RejectPaymentRequestDTO struct {
	Reason string `json:"reason" example:"No matching bank transfer"`
}

type ContributionDTO struct {
	ID                      string     `json:"id"`
	SchemeID                string     `json:"chitId"`
	SchemeName              string     `json:"chitName,omitempty"`
	UserID                  string     `json:"userId"`
	UserName                string     `json:"userName,omitempty"`
	Amount                  float64    `json:"amount"`
	Status                  string     `json:"status" example:"pending"`
	PaymentRef              string     `json:"paymentRef"`
	PaidAt                  *time.Time `json:"paidAt"`
	Verification            string     `json:"verificationStatus,omitempty" example:"requested"`
	VerificationRequestedAt *time.Time `json:"verificationRequestedAt,omitempty"`
	RejectReason            string     `json:"rejectReason,omitempty"`
	CreatedAt               time.Time  `json:"createdAt"`
}

func FromContribution(c domain.Contribution) ContributionDTO {
	return ContributionDTO{
		ID:                      c.ID,
		SchemeID:                c.SchemeID,
		SchemeName:              c.SchemeName,
		UserID:                  c.UserID,
		UserName:                c.UserName,
		Amount:                  c.Amount,
		Status:                  c.Status,
		PaymentRef:              c.PaymentRef,
		PaidAt:                  c.PaidAt,
		Verification:            c.Verification,
		VerificationRequestedAt: c.VerificationRequestedAt,
		RejectReason:            c.RejectReason,
		CreatedAt:               c.CreatedAt,
	}
}

func FromContributions(cs []domain.Contribution) []ContributionDTO {
	out := make([]ContributionDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContribution(c))
	}
	return out
}
