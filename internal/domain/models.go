package domain

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

const (
	ContributionPending   = "pending"
	ContributionCompleted = "completed"
	ContributionFailed    = "failed"

	// ContributionUnknown marks a legacy record whose status was present but blank.
	ContributionUnknown = "unknown"
)

// Manual payment verification states of a contribution. The zero value means no
// verification was ever requested.
const (
	VerificationRequested = "requested"
	VerificationApproved  = "approved"
	VerificationRejected  = "rejected"
)

const (
	BidRequestPending  = "pending"
	BidRequestApproved = "approved"
	BidRequestRejected = "rejected"
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Scheme is a chit scheme. TotalAmount is the total contracted value (TCV) of one cycle,
// MonthlyAmount the installment a member pays per month.
type Scheme struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	TotalAmount    float64        `db:"total_amount"`
	MonthlyAmount  float64        `db:"monthly_amount"`
	DurationMonths *int           `db:"duration_months"`
	TotalMembers   int            `db:"total_members"`
	StartDate      *time.Time     `db:"start_date"`
	CreatedAt      time.Time      `db:"created_at"`
	Members        []SchemeMember `db:"-"`
}

// SchemeMember is a join record. SchemeName is only filled when listing join requests.
type SchemeMember struct {
	SchemeID   string    `db:"scheme_id"`
	SchemeName string    `db:"scheme_name"`
	UserID     string    `db:"user_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Approved   bool      `db:"approved"`
	JoinedAt   time.Time `db:"joined_at"`
}

// ApprovedMembers returns members in join order, skipping pending join requests.
func (s *Scheme) ApprovedMembers() []SchemeMember {
	members := make([]SchemeMember, 0, len(s.Members))
	for _, m := range s.Members {
		if m.Approved {
			members = append(members, m)
		}
	}
	return members
}

type GeneratedRow struct {
	ID             string    `db:"id"`
	SchemeID       string    `db:"scheme_id"`
	ChitNo         int       `db:"chit_no"`
	ChitName       string    `db:"chit_name"`
	Date           time.Time `db:"date"`
	WalletAmount   float64   `db:"wallet_amount"`
	BidAmount      float64   `db:"bid_amount"`
	Distributed    float64   `db:"distributed"`
	ReleasedAmount *float64  `db:"released_amount"`
	CreatedAt      time.Time `db:"created_at"`
}

// Contribution is one member payment. Success and Paid are only set for records imported
// from the legacy backend, which reported payment state through boolean flags. UserName and
// SchemeName are only filled when listing verification requests.
type Contribution struct {
	ID                      string     `db:"id"`
	SchemeID                string     `db:"scheme_id"`
	SchemeName              string     `db:"scheme_name"`
	UserID                  string     `db:"user_id"`
	UserName                string     `db:"user_name"`
	UserEmail               string     `db:"email"`
	Amount                  float64    `db:"amount"`
	Status                  string     `db:"status"`
	Success                 *bool      `db:"success"`
	Paid                    *bool      `db:"paid"`
	PaymentRef              string     `db:"payment_ref"`
	PaidAt                  *time.Time `db:"paid_at"`
	Verification            string     `db:"verification"`
	VerificationRequestedAt *time.Time `db:"verification_requested_at"`
	RejectReason            string     `db:"reject_reason"`
	CreatedAt               time.Time  `db:"created_at"`
}

// BidRequest is a member asking to take the next auction of a scheme. BidAmount is the
// member's offer when one was given.
type BidRequest struct {
	ID         string    `db:"id"`
	SchemeID   string    `db:"scheme_id"`
	SchemeName string    `db:"scheme_name"`
	UserID     string    `db:"user_id"`
	UserName   string    `db:"user_name"`
	UserEmail  string    `db:"email"`
	BidAmount  *float64  `db:"bid_amount"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
