package schemerepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanScheme(row pgx.Row) (domain.Scheme, error) {
	var s domain.Scheme
	err := row.Scan(&s.ID, &s.Name, &s.TotalAmount, &s.MonthlyAmount, &s.DurationMonths, &s.TotalMembers, &s.StartDate, &s.CreatedAt)
	return s, err
}

func scanMember(row pgx.Row) (domain.SchemeMember, error) {
	var m domain.SchemeMember
	err := row.Scan(&m.SchemeID, &m.UserID, &m.Name, &m.Email, &m.Approved, &m.JoinedAt)
	return m, err
}

func (r *Repository) List(ctx context.Context) ([]domain.Scheme, error) {
	query := `
		SELECT id, name, total_amount, monthly_amount, duration_months, total_members, start_date, created_at
		FROM schemes
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list schemes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	schemes := []domain.Scheme{}
	index := map[string]int{}
	for rows.Next() {
		s, err := scanScheme(rows)
		if err != nil {
			zap.L().Error("can't scan scheme row", zap.Error(err))
			return nil, err
		}
		index[s.ID] = len(schemes)
		schemes = append(schemes, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate scheme rows", zap.Error(err))
		return nil, err
	}

	members, err := r.listMembers(ctx, `
		SELECT m.scheme_id, m.user_id, u.name, COALESCE(u.email, ''), m.approved, m.joined_at
		FROM scheme_members m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.joined_at ASC
	`)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if i, ok := index[m.SchemeID]; ok {
			schemes[i].Members = append(schemes[i].Members, m)
		}
	}
	return schemes, nil
}

// FindByID returns the scheme with its members in join order, or nil when it does not exist.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Scheme, error) {
	query := `
		SELECT id, name, total_amount, monthly_amount, duration_months, total_members, start_date, created_at
		FROM schemes
		WHERE id = $1
	`
	s, err := scanScheme(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find scheme", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	members, err := r.listMembers(ctx, `
		SELECT m.scheme_id, m.user_id, u.name, COALESCE(u.email, ''), m.approved, m.joined_at
		FROM scheme_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.scheme_id = $1
		ORDER BY m.joined_at ASC
	`, id)
	if err != nil {
		return nil, err
	}
	s.Members = members
	return &s, nil
}

// LockByID row-locks the scheme until the surrounding transaction ends and reports whether
// it exists. Membership changes that check capacity take it first.
func (r *Repository) LockByID(ctx context.Context, id string) (bool, error) {
	var locked string
	err := r.db.QueryRow(ctx, "SELECT id FROM schemes WHERE id = $1 FOR UPDATE", id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't lock scheme", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) listMembers(ctx context.Context, query string, args ...any) ([]domain.SchemeMember, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list scheme members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	members := []domain.SchemeMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan scheme member row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *Repository) Create(ctx context.Context, s *domain.Scheme) error {
	query := `
		INSERT INTO schemes (id, name, total_amount, monthly_amount, duration_months, total_members, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, s.ID, s.Name, s.TotalAmount, s.MonthlyAmount, s.DurationMonths, s.TotalMembers, s.StartDate).Scan(&s.CreatedAt)
	if err != nil {
		zap.L().Error("can't save scheme", zap.Error(err))
		return err
	}
	return nil
}

// Upsert writes an imported scheme, replacing every column of an existing one.
func (r *Repository) Upsert(ctx context.Context, s domain.Scheme) error {
	query := `
		INSERT INTO schemes (id, name, total_amount, monthly_amount, duration_months, total_members, start_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, now()))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			total_amount = EXCLUDED.total_amount,
			monthly_amount = EXCLUDED.monthly_amount,
			duration_months = EXCLUDED.duration_months,
			total_members = EXCLUDED.total_members,
			start_date = EXCLUDED.start_date
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.Name, s.TotalAmount, s.MonthlyAmount, s.DurationMonths, s.TotalMembers, s.StartDate, nullTime(s.CreatedAt))
	if err != nil {
		zap.L().Error("can't upsert scheme", zap.String("id", s.ID), zap.Error(err))
		return err
	}
	return nil
}

// AddMember inserts a join record and reports false when the user already has one.
func (r *Repository) AddMember(ctx context.Context, m domain.SchemeMember) (bool, error) {
	query := `
		INSERT INTO scheme_members (scheme_id, user_id, approved)
		VALUES ($1, $2, $3)
		ON CONFLICT (scheme_id, user_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, m.SchemeID, m.UserID, m.Approved)
	if err != nil {
		zap.L().Error("can't add scheme member", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) UpsertMember(ctx context.Context, m domain.SchemeMember) error {
	query := `
		INSERT INTO scheme_members (scheme_id, user_id, approved)
		VALUES ($1, $2, $3)
		ON CONFLICT (scheme_id, user_id) DO UPDATE SET approved = EXCLUDED.approved
	`
	_, err := r.db.Exec(ctx, query, m.SchemeID, m.UserID, m.Approved)
	if err != nil {
		zap.L().Error("can't upsert scheme member", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindMember(ctx context.Context, schemeID, userID string) (*domain.SchemeMember, error) {
	query := `
		SELECT m.scheme_id, m.user_id, u.name, COALESCE(u.email, ''), m.approved, m.joined_at
		FROM scheme_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.scheme_id = $1 AND m.user_id = $2
	`
	m, err := scanMember(r.db.QueryRow(ctx, query, schemeID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find scheme member", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) SetMemberApproved(ctx context.Context, schemeID, userID string) (bool, error) {
	query := `
		UPDATE scheme_members
		SET approved = TRUE
		WHERE scheme_id = $1 AND user_id = $2
	`
	tag, err := r.db.Exec(ctx, query, schemeID, userID)
	if err != nil {
		zap.L().Error("can't approve scheme member", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveMember deletes a pending join request. Approved members are never removed.
func (r *Repository) RemoveMember(ctx context.Context, schemeID, userID string) (bool, error) {
	query := `
		DELETE FROM scheme_members
		WHERE scheme_id = $1 AND user_id = $2 AND NOT approved
	`
	tag, err := r.db.Exec(ctx, query, schemeID, userID)
	if err != nil {
		zap.L().Error("can't remove scheme member", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListPendingMembers(ctx context.Context) ([]domain.SchemeMember, error) {
	query := `
		SELECT m.scheme_id, s.name, m.user_id, u.name, COALESCE(u.email, ''), m.approved, m.joined_at
		FROM scheme_members m
		JOIN users u ON u.id = m.user_id
		JOIN schemes s ON s.id = m.scheme_id
		WHERE NOT m.approved
		ORDER BY m.joined_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list join requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	members := []domain.SchemeMember{}
	for rows.Next() {
		var m domain.SchemeMember
		if err := rows.Scan(&m.SchemeID, &m.SchemeName, &m.UserID, &m.Name, &m.Email, &m.Approved, &m.JoinedAt); err != nil {
			zap.L().Error("can't scan join request row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
