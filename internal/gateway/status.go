package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GlebRadaev/chitledger/internal/domain"
)

// PaymentResponse is the gateway payment document. Older gateway builds report the
// outcome through success or paid flags instead of a status string.
type PaymentResponse struct {
	Status  *string `json:"status"`
	Success *bool   `json:"success"`
	Paid    *bool   `json:"paid"`
}

var gatewayStatuses = map[string]string{
	"success":    domain.ContributionCompleted,
	"succeeded":  domain.ContributionCompleted,
	"completed":  domain.ContributionCompleted,
	"paid":       domain.ContributionCompleted,
	"captured":   domain.ContributionCompleted,
	"failed":     domain.ContributionFailed,
	"failure":    domain.ContributionFailed,
	"declined":   domain.ContributionFailed,
	"cancelled":  domain.ContributionFailed,
	"canceled":   domain.ContributionFailed,
	"expired":    domain.ContributionFailed,
	"pending":    domain.ContributionPending,
	"created":    domain.ContributionPending,
	"processing": domain.ContributionPending,
	"authorized": domain.ContributionPending,
}

func fromFlag(v bool) string {
	if v {
		return domain.ContributionCompleted
	}
	return domain.ContributionFailed
}

// DecodeStatus maps a gateway body to a contribution status. A status string wins over
// the flags; unknown strings are treated as still pending.
func DecodeStatus(body []byte) (string, error) {
	var resp PaymentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse gateway response: %w", err)
	}

	if resp.Status != nil {
		if s := strings.ToLower(strings.TrimSpace(*resp.Status)); s != "" {
			if status, ok := gatewayStatuses[s]; ok {
				return status, nil
			}
			return domain.ContributionPending, nil
		}
	}
	if resp.Success != nil {
		return fromFlag(*resp.Success), nil
	}
	if resp.Paid != nil {
		return fromFlag(*resp.Paid), nil
	}
	return domain.ContributionPending, nil
}
