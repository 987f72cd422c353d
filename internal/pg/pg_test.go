package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const insertQuery = "INSERT INTO schemes (id) VALUES ($1)"

func NewMock(t *testing.T) (*DB, *TxManager, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), NewTXManager(mock), mock
}

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(db *DB) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("s1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, insertQuery, "s1")
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("s1").
					WillReturnError(errors.New("duplicate key"))
				mock.ExpectRollback()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, insertQuery, "s1")
					return err
				}
			},
			expectErr: true,
		},
		{
			name: "Nested call joins the open transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("s1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
					WithArgs("s2").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					if _, err := db.Exec(ctx, insertQuery, "s1"); err != nil {
						return err
					}
					inner := NewTXManager(nil)
					return inner.Begin(ctx, func(ctx context.Context) error {
						_, err := db.Exec(ctx, insertQuery, "s2")
						return err
					})
				}
			},
		},
		{
			name: "Begin fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run")
					return nil
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, txManager, mock := NewMock(t)
			tt.mockSetup(mock)

			err := txManager.Begin(context.Background(), tt.fn(db))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_OutsideTransactionUsesPool(t *testing.T) {
	db, _, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM schemes")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM schemes").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMockTXManager_RunsCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	txManager := NewMockTXManager(ctrl)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn TransactionalFn) error {
		return fn(ctx)
	})

	called := false
	err := txManager.Begin(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
