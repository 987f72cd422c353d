package dto

import "github.com/GlebRadaev/chitledger/internal/chit"

type SchemeReportDTO struct {
	SchemeID  string         `json:"chitId"`
	Name      string         `json:"name"`
	TCV       float64        `json:"tcv"`
	LatestBid float64        `json:"latestBid"`
	Breakdown chit.Breakdown `json:"breakdown"`
	Collected float64        `json:"collected"`
	Pending   float64        `json:"pending"`
	Members   int            `json:"members"`
}

type ReportDTO struct {
	Schemes        []SchemeReportDTO `json:"chits"`
	TotalChits     int               `json:"totalChits"`
	TotalTCV       float64           `json:"totalTcv"`
	TotalCollected float64           `json:"totalCollected"`
	TotalPending   float64           `json:"totalPending"`
	TotalWallet    float64           `json:"totalWallet"`
	TotalMembers   int               `json:"totalMembers"`
}
