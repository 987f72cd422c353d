package userrepo

import (
	"context"
	"errors"

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

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), password_hash, role, created_at
		FROM users
		WHERE lower(email) = lower($1)
	`
	user, err := scanUser(repo.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	user, err := scanUser(repo.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Role).Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpsertPlaceholder stores a member known only from imported data. An existing account,
// or one already holding the same email, is left untouched.
func (repo *Repository) UpsertPlaceholder(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (id, name, email, role)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		ON CONFLICT DO NOTHING
	`
	_, err := repo.db.Exec(ctx, query, user.ID, user.Name, user.Email, domain.RoleMember)
	if err != nil {
		zap.L().Error("can't upsert placeholder user", zap.String("id", user.ID), zap.Error(err))
		return err
	}
	return nil
}
