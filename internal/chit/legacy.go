package chit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/chitledger/internal/domain"
)

var ErrMissingID = errors.New("record has no id")

// refID extracts an id from a value that is either a string or a document with _id / id.
func refID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	var doc userDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return doc.toEmbedded().ID
}

func firstRef(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		v = bytes.TrimSpace(v)
		if len(v) > 0 && string(v) != "null" {
			return v
		}
	}
	return nil
}

func firstAmount(values ...*Amount) (float64, bool) {
	for _, v := range values {
		if v != nil {
			return v.Float64(), true
		}
	}
	return 0, false
}

// LegacyScheme is the chit document of the legacy backend.
type LegacyScheme struct {
	MongoID          string            `json:"_id"`
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ChitName         string            `json:"chitName"`
	Amount           *Amount           `json:"amount"`
	TotalAmount      *Amount           `json:"totalAmount"`
	MonthlyAmount    *Amount           `json:"monthlyAmount"`
	InstallmentAmt   *Amount           `json:"installmentAmount"`
	DurationInMonths *Amount           `json:"durationInMonths"`
	Duration         *Amount           `json:"duration"`
	TotalMonths      *Amount           `json:"totalMonths"`
	Months           *Amount           `json:"months"`
	TotalMembers     *Amount           `json:"totalMembers"`
	StartDate        Date              `json:"startDate"`
	CreatedAt        Date              `json:"createdAt"`
	JoinedUsers      []json.RawMessage `json:"joinedUsers"`
}

// DecodedScheme is a legacy scheme with its member references resolved.
type DecodedScheme struct {
	Scheme   domain.Scheme
	Members  []MemberRef
	Rejected []int
}

// DecodeScheme maps a legacy chit document. TCV is totalAmount, falling back to amount; the
// monthly installment is monthlyAmount or installmentAmount, falling back to amount when a
// separate totalAmount exists.
func DecodeScheme(raw json.RawMessage) (DecodedScheme, error) {
	var l LegacyScheme
	if err := json.Unmarshal(raw, &l); err != nil {
		return DecodedScheme{}, fmt.Errorf("decode legacy scheme: %w", err)
	}

	s := domain.Scheme{
		ID:   firstNonEmpty(l.MongoID, l.ID),
		Name: firstNonEmpty(l.Name, l.ChitName),
	}
	if s.ID == "" {
		return DecodedScheme{}, ErrMissingID
	}

	s.TotalAmount, _ = firstAmount(l.TotalAmount, l.Amount)
	if monthly, ok := firstAmount(l.MonthlyAmount, l.InstallmentAmt); ok {
		s.MonthlyAmount = monthly
	} else if l.TotalAmount != nil && l.Amount != nil {
		s.MonthlyAmount = l.Amount.Float64()
	}
	if months, ok := firstAmount(l.DurationInMonths, l.Duration, l.TotalMonths, l.Months); ok {
		d := int(math.Max(0, months))
		s.DurationMonths = &d
	}
	if n, ok := firstAmount(l.TotalMembers); ok {
		s.TotalMembers = int(math.Max(0, n))
	} else {
		s.TotalMembers = len(l.JoinedUsers)
	}
	s.StartDate = l.StartDate.Ptr()
	s.CreatedAt = l.CreatedAt.Time

	refs, rejected := ResolveMembers(l.JoinedUsers)
	return DecodedScheme{Scheme: s, Members: refs, Rejected: rejected}, nil
}

// LegacyGeneratedRow is the generateChit document of the legacy backend.
type LegacyGeneratedRow struct {
	MongoID        string          `json:"_id"`
	ID             string          `json:"id"`
	ChitID         json.RawMessage `json:"chitId"`
	Chit           json.RawMessage `json:"chit"`
	ChitNo         Amount          `json:"chitNo"`
	ChitName       string          `json:"chitName"`
	Date           Date            `json:"date"`
	WalletAmount   Amount          `json:"walletAmount"`
	BidAmount      Amount          `json:"bidAmount"`
	Distributed    Amount          `json:"distributed"`
	ReleasedAmount *Amount         `json:"releasedAmount"`
	Released       json.RawMessage `json:"released"`
	IsRelease      json.RawMessage `json:"isRelease"`
	IsReleased     json.RawMessage `json:"isReleased"`
	CreatedAt      Date            `json:"createdAt"`
}

// releasedAmount is the explicit release a legacy row records: releasedAmount when present,
// then a numeric released, then the distributed amount of a row flagged as a release.
func (l LegacyGeneratedRow) releasedAmount() (float64, bool) {
	if l.ReleasedAmount != nil {
		return l.ReleasedAmount.Float64(), true
	}
	if v, ok := numeric(l.Released); ok {
		return v, true
	}
	if truthy(l.IsRelease) || truthy(l.IsReleased) {
		return l.Distributed.Float64(), true
	}
	return 0, false
}

// numeric reports the value of a JSON number, numeric string or boolean. Null, objects,
// arrays and other strings are not numeric.
func numeric(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null":
		return 0, false
	case "true":
		return 1, true
	case "false":
		return 0, true
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, true
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// truthy follows the loose flag encoding of legacy exports: true, a non-zero number or a
// non-empty string.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return false
	case raw[0] == '"':
		var s string
		return json.Unmarshal(raw, &s) == nil && s != ""
	case string(raw) == "true":
		return true
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && v != 0
}

// DecodeGeneratedRow maps a legacy generated row. A row without a date takes its creation time;
// one with neither keeps a zero date for the importer to stamp.
func DecodeGeneratedRow(raw json.RawMessage) (domain.GeneratedRow, error) {
	var l LegacyGeneratedRow
	if err := json.Unmarshal(raw, &l); err != nil {
		return domain.GeneratedRow{}, fmt.Errorf("decode legacy generated row: %w", err)
	}

	r := domain.GeneratedRow{
		ID:           firstNonEmpty(l.MongoID, l.ID),
		SchemeID:     refID(firstRef(l.ChitID, l.Chit)),
		ChitNo:       int(l.ChitNo),
		ChitName:     l.ChitName,
		WalletAmount: l.WalletAmount.Float64(),
		BidAmount:    l.BidAmount.Float64(),
		Distributed:  l.Distributed.Float64(),
	}
	if r.ID == "" || r.SchemeID == "" {
		return domain.GeneratedRow{}, ErrMissingID
	}
	if released, ok := l.releasedAmount(); ok {
		r.ReleasedAmount = &released
	}
	r.CreatedAt = l.CreatedAt.Time
	r.Date = l.Date.Time
	if r.Date.IsZero() {
		r.Date = r.CreatedAt
	}
	return r, nil
}

// LegacyContribution is the contribution document of the legacy backend.
type LegacyContribution struct {
	MongoID   string          `json:"_id"`
	ID        string          `json:"id"`
	ChitID    json.RawMessage `json:"chitId"`
	Chit      json.RawMessage `json:"chit"`
	User      json.RawMessage `json:"user"`
	UserID    json.RawMessage `json:"userId"`
	Payer     json.RawMessage `json:"payer"`
	Member    json.RawMessage `json:"member"`
	Amount    *Amount         `json:"amount"`
	PaidAmt   *Amount         `json:"paidAmount"`
	Status    *string         `json:"status"`
	Success   *bool           `json:"success"`
	Paid      *bool           `json:"paid"`
	CreatedAt Date            `json:"createdAt"`
	PaidDate  Date            `json:"paidDate"`
	UpdatedAt Date            `json:"updatedAt"`
}

// DecodeContribution maps a legacy contribution. The contributor is tried as user, userId,
// payer and member, each of which may be an id or a user document.
func DecodeContribution(raw json.RawMessage) (domain.Contribution, error) {
	var l LegacyContribution
	if err := json.Unmarshal(raw, &l); err != nil {
		return domain.Contribution{}, fmt.Errorf("decode legacy contribution: %w", err)
	}

	c := domain.Contribution{
		ID:       firstNonEmpty(l.MongoID, l.ID),
		SchemeID: refID(firstRef(l.ChitID, l.Chit)),
		Success:  l.Success,
		Paid:     l.Paid,
		PaidAt:   l.PaidDate.Ptr(),
	}
	if c.ID == "" || c.SchemeID == "" {
		return domain.Contribution{}, ErrMissingID
	}
	if l.Status != nil {
		c.Status = strings.TrimSpace(*l.Status)
		if c.Status == "" {
			c.Status = domain.ContributionUnknown
		}
	}
	c.Amount, _ = firstAmount(l.Amount, l.PaidAmt)

	if ref := firstRef(l.User, l.UserID, l.Payer, l.Member); ref != nil {
		member, err := DecodeMemberRef(ref)
		if err != nil {
			return domain.Contribution{}, fmt.Errorf("decode contributor of %s: %w", c.ID, err)
		}
		resolved := member.Resolve()
		c.UserID, c.UserEmail = resolved.ID, resolved.Email
	}

	c.CreatedAt = l.CreatedAt.Time
	if c.CreatedAt.IsZero() {
		c.CreatedAt = l.UpdatedAt.Time
	}
	return c, nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Date is a timestamp that decodes leniently: unparseable or missing values are the zero time.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		d.Time = time.Time{}
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	d.Time = time.Time{}
	return nil
}

// Ptr returns nil for the zero time.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
