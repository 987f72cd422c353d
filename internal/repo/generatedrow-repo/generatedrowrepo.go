package generatedrowrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const rowColumns = "id, scheme_id, chit_no, chit_name, date, wallet_amount, bid_amount, distributed, released_amount, created_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanRow(row pgx.Row) (domain.GeneratedRow, error) {
	var g domain.GeneratedRow
	err := row.Scan(&g.ID, &g.SchemeID, &g.ChitNo, &g.ChitName, &g.Date, &g.WalletAmount, &g.BidAmount, &g.Distributed, &g.ReleasedAmount, &g.CreatedAt)
	return g, err
}

func (r *Repository) ListByScheme(ctx context.Context, schemeID string) ([]domain.GeneratedRow, error) {
	query := `
		SELECT ` + rowColumns + `
		FROM generated_rows
		WHERE scheme_id = $1
		ORDER BY date DESC, chit_no DESC
	`
	rows, err := r.db.Query(ctx, query, schemeID)
	if err != nil {
		zap.L().Error("can't list generated rows", zap.String("schemeID", schemeID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []domain.GeneratedRow{}
	for rows.Next() {
		g, err := scanRow(rows)
		if err != nil {
			zap.L().Error("can't scan generated row", zap.Error(err))
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate generated rows", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.GeneratedRow, error) {
	query := `
		SELECT ` + rowColumns + `
		FROM generated_rows
		WHERE id = $1
	`
	g, err := scanRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find generated row", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &g, nil
}

// Latest returns the newest row of a scheme in ledger order, or nil when there is none.
func (r *Repository) Latest(ctx context.Context, schemeID string) (*domain.GeneratedRow, error) {
	query := `
		SELECT ` + rowColumns + `
		FROM generated_rows
		WHERE scheme_id = $1
		ORDER BY date DESC, chit_no DESC
		LIMIT 1
	`
	g, err := scanRow(r.db.QueryRow(ctx, query, schemeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find latest generated row", zap.String("schemeID", schemeID), zap.Error(err))
		return nil, err
	}
	return &g, nil
}

// Create stores a row under the next chit number of its scheme. Concurrent creates for
// one scheme are serialized by a transaction-scoped advisory lock.
func (r *Repository) Create(ctx context.Context, g *domain.GeneratedRow) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", g.SchemeID); err != nil {
			zap.L().Error("can't lock scheme rows", zap.Error(err))
			return err
		}

		query := `
			SELECT COALESCE(MAX(chit_no), 0) + 1
			FROM generated_rows
			WHERE scheme_id = $1
		`
		if err := r.db.QueryRow(ctx, query, g.SchemeID).Scan(&g.ChitNo); err != nil {
			zap.L().Error("can't assign chit number", zap.Error(err))
			return err
		}

		query = `
			INSERT INTO generated_rows (id, scheme_id, chit_no, chit_name, date, wallet_amount, bid_amount, distributed, released_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at
		`
		err := r.db.QueryRow(ctx, query, g.ID, g.SchemeID, g.ChitNo, g.ChitName, g.Date, g.WalletAmount, g.BidAmount, g.Distributed, g.ReleasedAmount).Scan(&g.CreatedAt)
		if err != nil {
			zap.L().Error("can't save generated row", zap.Error(err))
			return err
		}
		return nil
	})
}

// Update overwrites the editable columns of a row. It reports false when the row does not exist.
func (r *Repository) Update(ctx context.Context, g *domain.GeneratedRow) (bool, error) {
	query := `
		UPDATE generated_rows
		SET chit_name = $1, date = $2, wallet_amount = $3, bid_amount = $4, distributed = $5, released_amount = $6
		WHERE id = $7 AND scheme_id = $8
	`
	tag, err := r.db.Exec(ctx, query, g.ChitName, g.Date, g.WalletAmount, g.BidAmount, g.Distributed, g.ReleasedAmount, g.ID, g.SchemeID)
	if err != nil {
		zap.L().Error("failed to update generated row", zap.String("id", g.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, schemeID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM generated_rows WHERE id = $1 AND scheme_id = $2", id, schemeID)
	if err != nil {
		zap.L().Error("failed to delete generated row", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Upsert writes an imported row keeping its legacy id and chit number.
func (r *Repository) Upsert(ctx context.Context, g domain.GeneratedRow) error {
	query := `
		INSERT INTO generated_rows (id, scheme_id, chit_no, chit_name, date, wallet_amount, bid_amount, distributed, released_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
		ON CONFLICT (id) DO UPDATE SET
			chit_no = EXCLUDED.chit_no,
			chit_name = EXCLUDED.chit_name,
			date = EXCLUDED.date,
			wallet_amount = EXCLUDED.wallet_amount,
			bid_amount = EXCLUDED.bid_amount,
			distributed = EXCLUDED.distributed,
			released_amount = EXCLUDED.released_amount
	`
	var createdAt any
	if !g.CreatedAt.IsZero() {
		createdAt = g.CreatedAt
	}
	_, err := r.db.Exec(ctx, query, g.ID, g.SchemeID, g.ChitNo, g.ChitName, g.Date, g.WalletAmount, g.BidAmount, g.Distributed, g.ReleasedAmount, createdAt)
	if err != nil {
		zap.L().Error("can't upsert generated row", zap.String("id", g.ID), zap.Error(err))
		return err
	}
	return nil
}
