package schemerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	schemeColumns = []string{"id", "name", "total_amount", "monthly_amount", "duration_months", "total_members", "start_date", "created_at"}
	memberColumns = []string{"scheme_id", "user_id", "name", "email", "approved", "joined_at"}
)

const (
	selectScheme  = "SELECT id, name, total_amount, monthly_amount, duration_months, total_members, start_date, created_at FROM schemes"
	selectMembers = "SELECT m.scheme_id, m.user_id, u.name, COALESCE(u.email, ''), m.approved, m.joined_at FROM scheme_members m JOIN users u ON u.id = m.user_id"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	duration := 20

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Scheme
	}{
		{
			name: "Scheme with members",
			id:   "s1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectScheme + " WHERE id = $1")).
					WithArgs("s1").
					WillReturnRows(pgxmock.NewRows(schemeColumns).
						AddRow("s1", "Gold", 100000.0, 5000.0, &duration, 20, &now, now))
				mock.ExpectQuery(regexp.QuoteMeta(selectMembers + " WHERE m.scheme_id = $1 ORDER BY m.joined_at ASC")).
					WithArgs("s1").
					WillReturnRows(pgxmock.NewRows(memberColumns).
						AddRow("s1", "u1", "Asha", "asha@example.com", true, now).
						AddRow("s1", "u2", "Ravi", "", false, now))
			},
			result: &domain.Scheme{
				ID: "s1", Name: "Gold", TotalAmount: 100000, MonthlyAmount: 5000, DurationMonths: &duration,
				TotalMembers: 20, StartDate: &now, CreatedAt: now,
				Members: []domain.SchemeMember{
					{SchemeID: "s1", UserID: "u1", Name: "Asha", Email: "asha@example.com", Approved: true, JoinedAt: now},
					{SchemeID: "s1", UserID: "u2", Name: "Ravi", Approved: false, JoinedAt: now},
				},
			},
		},
		{
			name: "Scheme not found",
			id:   "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectScheme + " WHERE id = $1")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Members query fails",
			id:   "s1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectScheme + " WHERE id = $1")).
					WithArgs("s1").
					WillReturnRows(pgxmock.NewRows(schemeColumns).
						AddRow("s1", "Gold", 100000.0, 5000.0, nil, 20, nil, now))
				mock.ExpectQuery(regexp.QuoteMeta(selectMembers)).
					WithArgs("s1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	lock := regexp.QuoteMeta("SELECT id FROM schemes WHERE id = $1 FOR UPDATE")

	mock.ExpectQuery(lock).WithArgs("s1").WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("s1"))
	found, err := repo.LockByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, found)

	mock.ExpectQuery(lock).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	found, err = repo.LockByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectQuery(lock).WithArgs("s2").WillReturnError(errors.New("database error"))
	_, err = repo.LockByID(context.Background(), "s2")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByID_HoldsForTransaction(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	repo := New(pg.New(mockDB))
	txManager := pg.NewTXManager(mockDB)

	mockDB.ExpectBegin()
	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id FROM schemes WHERE id = $1 FOR UPDATE")).
		WithArgs("s1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("s1"))
	mockDB.ExpectExec(regexp.QuoteMeta("UPDATE scheme_members SET approved = TRUE WHERE scheme_id = $1 AND user_id = $2")).
		WithArgs("s1", "u2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockDB.ExpectCommit()

	err = txManager.Begin(context.Background(), func(ctx context.Context) error {
		found, err := repo.LockByID(ctx, "s1")
		if err != nil || !found {
			return errors.New("scheme not locked")
		}
		_, err = repo.SetMemberApproved(ctx, "s1", "u2")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(selectScheme + " ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows(schemeColumns).
			AddRow("s2", "Silver", 50000.0, 2500.0, nil, 20, nil, now).
			AddRow("s1", "Gold", 100000.0, 5000.0, nil, 20, nil, now))
	mock.ExpectQuery(regexp.QuoteMeta(selectMembers + " ORDER BY m.joined_at ASC")).
		WillReturnRows(pgxmock.NewRows(memberColumns).
			AddRow("s1", "u1", "Asha", "", true, now).
			AddRow("s9", "u3", "Orphan", "", true, now))

	schemes, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	assert.Equal(t, "s2", schemes[0].ID)
	assert.Empty(t, schemes[0].Members)
	require.Len(t, schemes[1].Members, 1)
	assert.Equal(t, "u1", schemes[1].Members[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	duration := 12
	s := &domain.Scheme{ID: "s1", Name: "Gold", TotalAmount: 60000, MonthlyAmount: 5000, DurationMonths: &duration, TotalMembers: 12}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schemes (id, name, total_amount, monthly_amount, duration_months, total_members, start_date) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at")).
		WithArgs("s1", "Gold", 60000.0, 5000.0, s.DurationMonths, 12, s.StartDate).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	err := repo.Create(context.Background(), s)
	assert.NoError(t, err)
	assert.Equal(t, now, s.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schemes (id, name, total_amount, monthly_amount, duration_months, total_members, start_date, created_at)")).
		WithArgs("650a", "Gold", 100000.0, 5000.0, pgxmock.AnyArg(), 20, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Upsert(context.Background(), domain.Scheme{ID: "650a", Name: "Gold", TotalAmount: 100000, MonthlyAmount: 5000, TotalMembers: 20})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddMember(t *testing.T) {
	repo, mock := NewMock(t)
	query := "INSERT INTO scheme_members (scheme_id, user_id, approved) VALUES ($1, $2, $3) ON CONFLICT (scheme_id, user_id) DO NOTHING"

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "New join request",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("s1", "u1", false).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expected: true,
		},
		{
			name: "Already joined",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("s1", "u1", false).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expected: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("s1", "u1", false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			added, err := repo.AddMember(context.Background(), domain.SchemeMember{SchemeID: "s1", UserID: "u1"})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, added)
		})
	}
}

func TestRepository_UpsertMember(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (scheme_id, user_id) DO UPDATE SET approved = EXCLUDED.approved")).
		WithArgs("s1", "u1", true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.UpsertMember(context.Background(), domain.SchemeMember{SchemeID: "s1", UserID: "u1", Approved: true}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindMember(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := selectMembers + " WHERE m.scheme_id = $1 AND m.user_id = $2"

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("s1", "u1").
		WillReturnRows(pgxmock.NewRows(memberColumns).AddRow("s1", "u1", "Asha", "", true, now))
	member, err := repo.FindMember(context.Background(), "s1", "u1")
	assert.NoError(t, err)
	assert.Equal(t, &domain.SchemeMember{SchemeID: "s1", UserID: "u1", Name: "Asha", Approved: true, JoinedAt: now}, member)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("s1", "u2").
		WillReturnError(pgx.ErrNoRows)
	member, err = repo.FindMember(context.Background(), "s1", "u2")
	assert.NoError(t, err)
	assert.Nil(t, member)
}

func TestRepository_SetMemberApprovedAndRemove(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE scheme_members SET approved = TRUE WHERE scheme_id = $1 AND user_id = $2")).
		WithArgs("s1", "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.SetMemberApproved(context.Background(), "s1", "u1")
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scheme_members WHERE scheme_id = $1 AND user_id = $2 AND NOT approved")).
		WithArgs("s1", "u2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	ok, err = repo.RemoveMember(context.Background(), "s1", "u2")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPendingMembers(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT m.approved ORDER BY m.joined_at ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"scheme_id", "scheme_name", "user_id", "name", "email", "approved", "joined_at"}).
			AddRow("s1", "Gold", "u2", "Ravi", "ravi@example.com", false, now))

	members, err := repo.ListPendingMembers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.SchemeMember{
		{SchemeID: "s1", SchemeName: "Gold", UserID: "u2", Name: "Ravi", Email: "ravi@example.com", JoinedAt: now},
	}, members)
	assert.NoError(t, mock.ExpectationsWereMet())
}
