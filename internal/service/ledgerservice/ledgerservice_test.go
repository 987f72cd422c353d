package ledgerservice

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	rows          *MockRepo
	schemes       *MockSchemeRepo
	contributions *MockContributionRepo
}

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		rows:          NewMockRepo(ctrl),
		schemes:       NewMockSchemeRepo(ctrl),
		contributions: NewMockContributionRepo(ctrl),
	}
	service := New(m.rows, m.schemes, m.contributions)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func gold() *domain.Scheme {
	return &domain.Scheme{ID: "s1", Name: "Gold", TotalAmount: 1000, MonthlyAmount: 500}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestLedger(t *testing.T) {
	service, m := NewMock(t)

	m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)
	m.rows.EXPECT().ListByScheme(gomock.Any(), "s1").Return([]domain.GeneratedRow{
		{ID: "r3", SchemeID: "s1", Date: day(3), WalletAmount: 400},
		{ID: "r1", SchemeID: "s1", Date: day(1), WalletAmount: 400},
		{ID: "r2", SchemeID: "s1", Date: day(2), WalletAmount: 400},
	}, nil)

	ledger, err := service.Ledger(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, ledger.Rows, 3)

	newest := ledger.Rows[0]
	assert.Equal(t, "r3", newest.ID)
	assert.Equal(t, 3, newest.ChitNoSeq)
	assert.Equal(t, 1200.0, newest.CumWalletBeforeReleases)
	assert.Equal(t, 1, newest.AutoPayoutsThisRow)
	assert.Equal(t, 1000.0, newest.AutoPayoutTotalAmount)
	assert.Equal(t, 200.0, newest.CumWalletRemainingAfterReleases)
}

func TestLedger_Errors(t *testing.T) {
	t.Run("Row store failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)
		m.rows.EXPECT().ListByScheme(gomock.Any(), "s1").Return(nil, errors.New("db error"))

		ledger, err := service.Ledger(context.Background(), "s1")
		assert.EqualError(t, err, "db error")
		assert.Nil(t, ledger)
	})

	t.Run("Unknown scheme", func(t *testing.T) {
		service, m := NewMock(t)
		m.schemes.EXPECT().FindByID(gomock.Any(), "s9").Return(nil, nil)
		m.rows.EXPECT().ListByScheme(gomock.Any(), "s9").Return(nil, nil)

		_, err := service.Ledger(context.Background(), "s9")
		assert.ErrorIs(t, err, ErrSchemeNotFound)
	})
}

func TestBreakdown(t *testing.T) {
	tests := []struct {
		name        string
		bid         string
		wallet      string
		expectedBid float64
		expectedErr error
	}{
		{name: "Bid", bid: "300", expectedBid: 300},
		{name: "Garbage bid is zero", bid: "abc", expectedBid: 0},
		{name: "Wallet only", wallet: "250", expectedBid: 300},
		{name: "Negative bid", bid: "-5", expectedErr: chit.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)

			b, err := service.Breakdown(context.Background(), "s1", tt.bid, tt.wallet)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBid, b.BidAmount)
			assert.Equal(t, 50.0, b.Commission)
		})
	}
}

func TestRow(t *testing.T) {
	service, m := NewMock(t)
	paidAt := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)
	m.rows.EXPECT().FindByID(gomock.Any(), "r1").Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s1", Date: day(5)}, nil)
	m.contributions.EXPECT().ListByScheme(gomock.Any(), "s1").Return([]domain.Contribution{
		{ID: "c1", SchemeID: "s1", Amount: 200, Status: domain.ContributionCompleted, CreatedAt: day(2)},
		{ID: "c2", SchemeID: "s1", Amount: 100, Status: domain.ContributionPending, CreatedAt: day(8)},
		{ID: "c3", SchemeID: "s1", Amount: 150, Status: domain.ContributionCompleted, CreatedAt: day(1).AddDate(0, -1, 0), PaidAt: &paidAt},
		{ID: "c4", SchemeID: "s1", Amount: 900, Status: domain.ContributionCompleted, CreatedAt: day(1).AddDate(0, 1, 0)},
	}, nil)

	detail, err := service.Row(context.Background(), "s1", "r1")
	require.NoError(t, err)
	assert.Len(t, detail.Contributions, 3)
	assert.Equal(t, 350.0, detail.Collected)
	assert.Equal(t, 150.0, detail.Pending)
}

func TestRow_OtherScheme(t *testing.T) {
	service, m := NewMock(t)

	m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)
	m.rows.EXPECT().FindByID(gomock.Any(), "r1").Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s2"}, nil)
	m.contributions.EXPECT().ListByScheme(gomock.Any(), "s1").Return(nil, nil)

	_, err := service.Row(context.Background(), "s1", "r1")
	assert.ErrorIs(t, err, ErrRowNotFound)

	_, err = service.Row(context.Background(), "", "r1")
	assert.ErrorIs(t, err, ErrMissingRef)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name           string
		input          GenerateInput
		expectedBid    float64
		expectedWallet float64
		expectedErr    error
	}{
		{name: "From bid", input: GenerateInput{Bid: "300"}, expectedBid: 300, expectedWallet: 250},
		{name: "From wallet", input: GenerateInput{Wallet: "250"}, expectedBid: 300, expectedWallet: 250},
		{name: "Bid wins", input: GenerateInput{Bid: "400", Wallet: "1"}, expectedBid: 400, expectedWallet: 350},
		{name: "Empty input is zero", input: GenerateInput{}, expectedBid: 0, expectedWallet: 0},
		{name: "Not a number", input: GenerateInput{Bid: "12a"}, expectedErr: chit.ErrInvalidAmount},
		{name: "Negative wallet", input: GenerateInput{Wallet: "-1"}, expectedErr: chit.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)
			if tt.expectedErr == nil {
				m.rows.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, g *domain.GeneratedRow) error {
					g.ChitNo = 4
					return nil
				})
			}

			row, err := service.Generate(context.Background(), "s1", tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, row.ID)
			assert.Equal(t, "Gold", row.ChitName)
			assert.Equal(t, fixedNow, row.Date)
			assert.Equal(t, 4, row.ChitNo)
			assert.Equal(t, tt.expectedBid, row.BidAmount)
			assert.Equal(t, tt.expectedWallet, row.WalletAmount)
			assert.Equal(t, 1000-tt.expectedBid, row.Distributed)
		})
	}
}

func TestUpdate(t *testing.T) {
	name := "Gold Jan"
	released := 1000.0
	negative := -1.0

	t.Run("Patch applied", func(t *testing.T) {
		service, m := NewMock(t)
		m.rows.EXPECT().FindByID(gomock.Any(), "r1").Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s1", ChitName: "Gold", WalletAmount: 400}, nil)
		m.rows.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)

		row, err := service.Update(context.Background(), "s1", "r1", RowPatch{ChitName: &name, ReleasedAmount: &released})
		require.NoError(t, err)
		assert.Equal(t, "Gold Jan", row.ChitName)
		assert.Equal(t, 400.0, row.WalletAmount)
		assert.Equal(t, &released, row.ReleasedAmount)
	})

	t.Run("Row of another scheme", func(t *testing.T) {
		service, m := NewMock(t)
		m.rows.EXPECT().FindByID(gomock.Any(), "r1").Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s2"}, nil)

		_, err := service.Update(context.Background(), "s1", "r1", RowPatch{})
		assert.ErrorIs(t, err, ErrRowNotFound)
	})

	t.Run("Negative amount", func(t *testing.T) {
		service, m := NewMock(t)
		m.rows.EXPECT().FindByID(gomock.Any(), "r1").Return(&domain.GeneratedRow{ID: "r1", SchemeID: "s1"}, nil)

		_, err := service.Update(context.Background(), "s1", "r1", RowPatch{BidAmount: &negative})
		assert.ErrorIs(t, err, chit.ErrNegativeAmount)
	})

	t.Run("Missing ids", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Update(context.Background(), "s1", "", RowPatch{})
		assert.ErrorIs(t, err, ErrMissingRef)
	})
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)

	m.rows.EXPECT().Delete(gomock.Any(), "s1", "r1").Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), "s1", "r1"))

	m.rows.EXPECT().Delete(gomock.Any(), "s1", "r2").Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), "s1", "r2"), ErrRowNotFound)

	assert.ErrorIs(t, service.Delete(context.Background(), "", "r1"), ErrMissingRef)
}

func TestExport(t *testing.T) {
	service, m := NewMock(t)
	released := 100.0

	m.schemes.EXPECT().FindByID(gomock.Any(), "s1").Return(gold(), nil)
	m.rows.EXPECT().ListByScheme(gomock.Any(), "s1").Return([]domain.GeneratedRow{
		{ID: "r1", SchemeID: "s1", ChitNo: 1, ChitName: "Gold", Date: day(1), WalletAmount: 400},
		{ID: "r2", SchemeID: "s1", ChitNo: 2, ChitName: "Gold", Date: day(2), WalletAmount: 400, ReleasedAmount: &released},
	}, nil)

	data, err := service.Export(context.Background(), "s1")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ledgerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Seq", rows[0][0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "2024-01-02", rows[1][3])
	assert.Equal(t, "100", rows[1][7])
	assert.Equal(t, "1", rows[2][0])
}
