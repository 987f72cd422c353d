package dto

import (
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
)

type GenerateRowRequestDTO struct {
	BidAmount    *chit.RawAmount `json:"bidAmount" swaggertype:"string" example:"15000"`
	WalletAmount *chit.RawAmount `json:"walletAmount" swaggertype:"string" example:""`
}

type UpdateRowRequestDTO struct {
	ChitName       *string    `json:"chitName"`
	Date           *time.Time `json:"date"`
	WalletAmount   *float64   `json:"walletAmount"`
	BidAmount      *float64   `json:"bidAmount"`
	Distributed    *float64   `json:"distributed"`
	ReleasedAmount *float64   `json:"releasedAmount"`
}

type GeneratedRowDTO struct {
	ID             string    `json:"id"`
	SchemeID       string    `json:"chitId"`
	ChitNo         int       `json:"chitNo"`
	ChitName       string    `json:"chitName"`
	Date           time.Time `json:"date"`
	WalletAmount   float64   `json:"walletAmount"`
	BidAmount      float64   `json:"bidAmount"`
	Distributed    float64   `json:"distributed"`
	ReleasedAmount *float64  `json:"releasedAmount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LedgerRowDTO is a stored row with its replayed running totals. The auto payout fields
// are computed on every read and never persisted.
type LedgerRowDTO struct {
	GeneratedRowDTO
	ChitNoSeq                       int     `json:"chitNoSeq"`
	CumWalletBeforeReleases         float64 `json:"cumWalletBeforeReleases"`
	CumWalletRemainingAfterReleases float64 `json:"cumWalletRemainingAfterReleases"`
	AutoPayoutsThisRow              int     `json:"autoPayoutsThisRow"`
	AutoPayoutTotalAmount           float64 `json:"autoPayoutTotalAmount"`
	TotalAutoPayoutsSoFar           int     `json:"totalAutoPayoutsSoFar"`
	TotalExplicitReleasedSoFar      float64 `json:"totalExplicitReleasedSoFar"`
}

type LedgerDTO struct {
	SchemeID string         `json:"chitId"`
	TCV      float64        `json:"tcv"`
	Rows     []LedgerRowDTO `json:"rows"`
}

type RowDetailDTO struct {
	Row           GeneratedRowDTO   `json:"row"`
	Contributions []ContributionDTO `json:"contributions"`
	Collected     float64           `json:"collected"`
	Pending       float64           `json:"pending"`
}

func FromGeneratedRow(g domain.GeneratedRow) GeneratedRowDTO {
	return GeneratedRowDTO{
		ID:             g.ID,
		SchemeID:       g.SchemeID,
		ChitNo:         g.ChitNo,
		ChitName:       g.ChitName,
		Date:           g.Date,
		WalletAmount:   g.WalletAmount,
		BidAmount:      g.BidAmount,
		Distributed:    g.Distributed,
		ReleasedAmount: g.ReleasedAmount,
		CreatedAt:      g.CreatedAt,
	}
}

func FromLedgerRows(rows []chit.LedgerRow) []LedgerRowDTO {
	out := make([]LedgerRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, LedgerRowDTO{
			GeneratedRowDTO:                 FromGeneratedRow(r.GeneratedRow),
			ChitNoSeq:                       r.ChitNoSeq,
			CumWalletBeforeReleases:         r.CumWalletBeforeReleases,
			CumWalletRemainingAfterReleases: r.CumWalletRemainingAfterReleases,
			AutoPayoutsThisRow:              r.AutoPayoutsThisRow,
			AutoPayoutTotalAmount:           r.AutoPayoutTotalAmount,
			TotalAutoPayoutsSoFar:           r.TotalAutoPayoutsSoFar,
			TotalExplicitReleasedSoFar:      r.TotalExplicitReleasedSoFar,
		})
	}
	return out
}
