package contributionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const contributionColumns = `c.id, c.scheme_id, c.user_id, COALESCE(u.email, ''), c.amount, c.status, c.success, c.paid, c.payment_ref, c.paid_at,
	c.verification, c.verification_requested_at, c.reject_reason, c.created_at`

const selectContributions = `
	SELECT ` + contributionColumns + `
	FROM contributions c
	LEFT JOIN users u ON u.id = c.user_id
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func contributionFields(c *domain.Contribution) []any {
	return []any{&c.ID, &c.SchemeID, &c.UserID, &c.UserEmail, &c.Amount, &c.Status, &c.Success, &c.Paid, &c.PaymentRef, &c.PaidAt,
		&c.Verification, &c.VerificationRequestedAt, &c.RejectReason, &c.CreatedAt}
}

func scanContributions(rows pgx.Rows) ([]domain.Contribution, error) {
	defer rows.Close()

	result := []domain.Contribution{}
	for rows.Next() {
		var c domain.Contribution
		err := rows.Scan(contributionFields(&c)...)
		if err != nil {
			zap.L().Error("can't scan contribution row", zap.Error(err))
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate contribution rows", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Contribution) error {
	query := `
		INSERT INTO contributions (id, scheme_id, user_id, amount, status, payment_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, c.ID, c.SchemeID, c.UserID, c.Amount, c.Status, c.PaymentRef).Scan(&c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save contribution", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error) {
	rows, err := r.db.Query(ctx, selectContributions+`
		WHERE c.scheme_id = $1
		ORDER BY c.created_at DESC
	`, schemeID)
	if err != nil {
		zap.L().Error("can't get scheme contributions", zap.String("schemeID", schemeID), zap.Error(err))
		return nil, err
	}
	return scanContributions(rows)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Contribution, error) {
	rows, err := r.db.Query(ctx, selectContributions+`
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC
	`, userID)
	if err != nil {
		zap.L().Error("can't get user contributions", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return scanContributions(rows)
}

// FindByID returns the contribution, or nil when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Contribution, error) {
	var c domain.Contribution
	err := r.db.QueryRow(ctx, selectContributions+`
		WHERE c.id = $1
	`, id).Scan(contributionFields(&c)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find contribution", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// FindPending returns the oldest pending contributions that carry a payment reference.
func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Contribution, error) {
	rows, err := r.db.Query(ctx, selectContributions+`
		WHERE c.status = 'pending' AND c.payment_ref <> ''
		ORDER BY c.created_at ASC
		LIMIT $1
	`, int(limit))
	if err != nil {
		zap.L().Error("can't get pending contributions", zap.Error(err))
		return nil, err
	}
	return scanContributions(rows)
}

// UpdateStatus settles a pending contribution. A contribution that is no longer pending is
// left as is and false is returned.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string, paidAt *time.Time) (bool, error) {
	query := `
		UPDATE contributions
		SET status = $1, paid_at = $2
		WHERE id = $3 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, paidAt, id)
	if err != nil {
		zap.L().Error("failed to update contribution status", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RequestVerification flags a pending contribution of userID for manual verification. It
// reports false when the contribution is settled, belongs to someone else or is already
// awaiting verification.
func (r *Repository) RequestVerification(ctx context.Context, id, userID string, at time.Time) (bool, error) {
	query := `
		UPDATE contributions
		SET verification = 'requested', verification_requested_at = $1, reject_reason = ''
		WHERE id = $2 AND user_id = $3 AND status = 'pending' AND verification <> 'requested'
	`
	tag, err := r.db.Exec(ctx, query, at, id, userID)
	if err != nil {
		zap.L().Error("failed to request verification", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListVerificationRequests returns contributions awaiting manual verification, oldest request
// first, with the member and scheme names filled in.
func (r *Repository) ListVerificationRequests(ctx context.Context) ([]domain.Contribution, error) {
	query := `
		SELECT ` + contributionColumns + `, COALESCE(u.name, ''), COALESCE(s.name, '')
		FROM contributions c
		LEFT JOIN users u ON u.id = c.user_id
		LEFT JOIN schemes s ON s.id = c.scheme_id
		WHERE c.verification = 'requested' AND c.status = 'pending'
		ORDER BY c.verification_requested_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list verification requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []domain.Contribution{}
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(append(contributionFields(&c), &c.UserName, &c.SchemeName)...); err != nil {
			zap.L().Error("can't scan verification request row", zap.Error(err))
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate verification request rows", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// ApproveVerification settles a contribution awaiting verification as completed. It reports
// false when there is no open request.
func (r *Repository) ApproveVerification(ctx context.Context, id string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE contributions
		SET status = 'completed', paid_at = $1, verification = 'approved'
		WHERE id = $2 AND status = 'pending' AND verification = 'requested'
	`
	tag, err := r.db.Exec(ctx, query, paidAt, id)
	if err != nil {
		zap.L().Error("failed to approve payment", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RejectVerification settles a contribution awaiting verification as failed and keeps the
// reason. It reports false when there is no open request.
func (r *Repository) RejectVerification(ctx context.Context, id, reason string) (bool, error) {
	query := `
		UPDATE contributions
		SET status = 'failed', verification = 'rejected', reject_reason = $1
		WHERE id = $2 AND status = 'pending' AND verification = 'requested'
	`
	tag, err := r.db.Exec(ctx, query, reason, id)
	if err != nil {
		zap.L().Error("failed to reject payment", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Upsert writes an imported contribution keeping its legacy id and payment flags.
func (r *Repository) Upsert(ctx context.Context, c domain.Contribution) error {
	query := `
		INSERT INTO contributions (id, scheme_id, user_id, amount, status, success, paid, payment_ref, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
		ON CONFLICT (id) DO UPDATE SET
			amount = EXCLUDED.amount,
			status = EXCLUDED.status,
			success = EXCLUDED.success,
			paid = EXCLUDED.paid,
			paid_at = EXCLUDED.paid_at
	`
	var createdAt any
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt
	}
	_, err := r.db.Exec(ctx, query, c.ID, c.SchemeID, c.UserID, c.Amount, c.Status, c.Success, c.Paid, c.PaymentRef, c.PaidAt, createdAt)
	if err != nil {
		zap.L().Error("can't upsert contribution", zap.String("id", c.ID), zap.Error(err))
		return err
	}
	return nil
}
