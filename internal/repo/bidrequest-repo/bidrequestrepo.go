package bidrequestrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const selectBidRequests = `
	SELECT b.id, b.scheme_id, s.name, b.user_id, u.name, COALESCE(u.email, ''), b.bid_amount, b.status, b.created_at, b.updated_at
	FROM bid_requests b
	JOIN schemes s ON s.id = b.scheme_id
	JOIN users u ON u.id = b.user_id
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBidRequest(row pgx.Row) (domain.BidRequest, error) {
	var b domain.BidRequest
	err := row.Scan(&b.ID, &b.SchemeID, &b.SchemeName, &b.UserID, &b.UserName, &b.UserEmail, &b.BidAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create stores a pending request and reports false when the member already has a pending
// one for the scheme.
func (r *Repository) Create(ctx context.Context, b *domain.BidRequest) (bool, error) {
	query := `
		INSERT INTO bid_requests (id, scheme_id, user_id, bid_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (scheme_id, user_id) WHERE status = 'pending' DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, b.ID, b.SchemeID, b.UserID, b.BidAmount, b.Status).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't save bid request", zap.String("scheme_id", b.SchemeID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.BidRequest, error) {
	b, err := scanBidRequest(r.db.QueryRow(ctx, selectBidRequests+" WHERE b.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find bid request", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &b, nil
}

// List returns every request, newest first.
func (r *Repository) List(ctx context.Context) ([]domain.BidRequest, error) {
	return r.list(ctx, selectBidRequests+" ORDER BY b.created_at DESC")
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.BidRequest, error) {
	return r.list(ctx, selectBidRequests+" WHERE b.user_id = $1 ORDER BY b.created_at DESC", userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.BidRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bid requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	requests := []domain.BidRequest{}
	for rows.Next() {
		b, err := scanBidRequest(rows)
		if err != nil {
			zap.L().Error("can't scan bid request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, b)
	}
	return requests, rows.Err()
}

// Decide moves a pending request to status. It reports false when the request is missing
// or already decided.
func (r *Repository) Decide(ctx context.Context, id, status string) (bool, error) {
	query := `
		UPDATE bid_requests SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("can't decide bid request", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetStatus overwrites the status whatever it was. Reopening a request while the member has
// another pending one fails with domain.ErrBidRequestPending.
func (r *Repository) SetStatus(ctx context.Context, id, status string) (bool, error) {
	query := `
		UPDATE bid_requests SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrBidRequestPending
		}
		zap.L().Error("can't update bid request", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM bid_requests WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete bid request", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
