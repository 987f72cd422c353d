package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var userColumns = []string{"id", "name", "email", "password_hash", "role", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := "SELECT id, name, COALESCE(email, ''), password_hash, role, created_at FROM users WHERE lower(email) = lower($1)"

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "Asha@Example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow("u-1", "Asha", "asha@example.com", "hashed_password", domain.RoleMember, now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("Asha@Example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           "u-1",
				Name:         "Asha",
				Email:        "asha@example.com",
				PasswordHash: "hashed_password",
				Role:         domain.RoleMember,
				CreatedAt:    now,
			},
		},
		{
			name:  "User not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "asha@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("asha@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := "SELECT id, name, COALESCE(email, ''), password_hash, role, created_at FROM users WHERE id = $1"

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("u-9").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow("u-9", "Admin", "", "hash", domain.RoleAdmin, now))
	user, err := repo.FindByID(context.Background(), "u-9")
	assert.NoError(t, err)
	assert.Equal(t, &domain.User{ID: "u-9", Name: "Admin", PasswordHash: "hash", Role: domain.RoleAdmin, CreatedAt: now}, user)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING created_at
	`

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{ID: "u-1", Name: "Asha", Email: "asha@example.com", PasswordHash: "hashed_password", Role: domain.RoleMember},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("u-1", "Asha", "asha@example.com", "hashed_password", domain.RoleMember).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
			result: &domain.User{ID: "u-1", Name: "Asha", Email: "asha@example.com", PasswordHash: "hashed_password", Role: domain.RoleMember, CreatedAt: now},
		},
		{
			name: "Database error",
			user: &domain.User{ID: "u-2", Name: "Ravi", Email: "ravi@example.com", PasswordHash: "hashed_password", Role: domain.RoleMember},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("u-2", "Ravi", "ravi@example.com", "hashed_password", domain.RoleMember).
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpsertPlaceholder(t *testing.T) {
	repo, mock := NewMock(t)
	query := "INSERT INTO users (id, name, email, role) VALUES ($1, $2, NULLIF($3, ''), $4) ON CONFLICT DO NOTHING"

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("650a", "Member", "", domain.RoleMember).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.UpsertPlaceholder(context.Background(), domain.User{ID: "650a", Name: "Member"}))

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("650b", "Ravi", "ravi@example.com", domain.RoleMember).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.UpsertPlaceholder(context.Background(), domain.User{ID: "650b", Name: "Ravi", Email: "ravi@example.com"}))

	assert.NoError(t, mock.ExpectationsWereMet())
}
