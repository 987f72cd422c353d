package chit

import (
	"encoding/json"
	"strings"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/shopspring/decimal"
)

var paidStatuses = map[string]struct{}{
	"success":   {},
	"completed": {},
	"paid":      {},
}

// MemberKey identifies a contributor. Email is only consulted when ids do not match.
type MemberKey struct {
	ID    string
	Email string
}

// IsPaid decides whether a contribution counts as paid. An explicit status string wins, then
// the success flag, then the paid flag; records carrying none of them count when they have a
// positive amount and a date. Decoded legacy records never carry a blank status: a blank one
// is stored as ContributionUnknown, which is not paid.
func IsPaid(c domain.Contribution) bool {
	if s := strings.ToLower(strings.TrimSpace(c.Status)); s != "" {
		_, ok := paidStatuses[s]
		return ok
	}
	if c.Success != nil {
		return *c.Success
	}
	if c.Paid != nil {
		return *c.Paid
	}
	return Finite(c.Amount) > 0 && (c.PaidAt != nil || !c.CreatedAt.IsZero())
}

func (k MemberKey) matches(c domain.Contribution) bool {
	if k.ID != "" && c.UserID == k.ID {
		return true
	}
	return k.Email != "" && c.UserEmail != "" && strings.EqualFold(strings.TrimSpace(c.UserEmail), strings.TrimSpace(k.Email))
}

func paidFor(contributions []domain.Contribution, schemeID string, member MemberKey, fn func(domain.Contribution)) {
	for _, c := range contributions {
		if c.SchemeID != schemeID || !member.matches(c) || !IsPaid(c) {
			continue
		}
		fn(c)
	}
}

// CountPaid returns how many installments member has paid into scheme.
func CountPaid(contributions []domain.Contribution, schemeID string, member MemberKey) int {
	n := 0
	paidFor(contributions, schemeID, member, func(domain.Contribution) { n++ })
	return n
}

// SumPaid returns the total amount member has paid into scheme.
func SumPaid(contributions []domain.Contribution, schemeID string, member MemberKey) float64 {
	sum := decimal.Zero
	paidFor(contributions, schemeID, member, func(c domain.Contribution) {
		sum = sum.Add(decimal.NewFromFloat(Finite(c.Amount)))
	})
	return sum.InexactFloat64()
}

// SumCollected returns the total of all paid contributions into scheme.
func SumCollected(contributions []domain.Contribution, schemeID string) float64 {
	sum := decimal.Zero
	for _, c := range contributions {
		if c.SchemeID == schemeID && IsPaid(c) {
			sum = sum.Add(decimal.NewFromFloat(Finite(c.Amount)))
		}
	}
	return sum.InexactFloat64()
}

// Pending is a months-pending count that may be unknown. Unknown encodes as JSON null.
type Pending struct {
	Months int
	Known  bool
}

// Unknown is returned when the scheme duration is not known.
var Unknown = Pending{}

func (p Pending) MarshalJSON() ([]byte, error) {
	if !p.Known {
		return []byte("null"), nil
	}
	return json.Marshal(p.Months)
}

// MonthsPending never goes negative: overpaid or duplicated installments give zero.
func MonthsPending(totalMonths *int, monthsPaid int) Pending {
	if totalMonths == nil || *totalMonths < 0 {
		return Unknown
	}
	pending := *totalMonths - monthsPaid
	if pending < 0 {
		pending = 0
	}
	return Pending{Months: pending, Known: true}
}

// MemberStatus is the payment standing of one member in one scheme.
type MemberStatus struct {
	MonthsPaid    int     `json:"monthsPaid"`
	MonthsPending Pending `json:"monthsPending"`
	AmountPaid    float64 `json:"amountPaid"`
}

func StatusOf(contributions []domain.Contribution, scheme domain.Scheme, member MemberKey) MemberStatus {
	paid := CountPaid(contributions, scheme.ID, member)
	return MemberStatus{
		MonthsPaid:    paid,
		MonthsPending: MonthsPending(scheme.DurationMonths, paid),
		AmountPaid:    SumPaid(contributions, scheme.ID, member),
	}
}
