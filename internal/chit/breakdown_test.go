package chit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		tcv           float64
		bid           float64
		expected      Breakdown
		expectedError error
	}{
		{
			name: "Bid below TCV",
			tcv:  100000,
			bid:  20000,
			expected: Breakdown{
				TCV:                100000,
				BidAmount:          20000,
				Commission:         5000,
				GrossWalletBalance: 80000,
				WalletFromBid:      15000,
				Distributed:        80000,
			},
		},
		{
			name: "Bid smaller than commission",
			tcv:  100000,
			bid:  3000,
			expected: Breakdown{
				TCV:                100000,
				BidAmount:          3000,
				Commission:         5000,
				GrossWalletBalance: 97000,
				WalletFromBid:      0,
				Distributed:        97000,
			},
		},
		{
			name: "Bid above TCV",
			tcv:  1000,
			bid:  1500,
			expected: Breakdown{
				TCV:                1000,
				BidAmount:          1500,
				Commission:         50,
				GrossWalletBalance: 0,
				WalletFromBid:      1450,
				Distributed:        0,
			},
		},
		{
			name: "Commission rounded to two places",
			tcv:  1234.57,
			bid:  100,
			expected: Breakdown{
				TCV:                1234.57,
				BidAmount:          100,
				Commission:         61.73,
				GrossWalletBalance: 1134.57,
				WalletFromBid:      38.27,
				Distributed:        1134.57,
			},
		},
		{
			name:     "Zero TCV",
			tcv:      0,
			bid:      0,
			expected: Breakdown{},
		},
		{
			name:          "Negative bid",
			tcv:           1000,
			bid:           -1,
			expectedError: ErrNegativeAmount,
		},
		{
			name:          "Negative TCV",
			tcv:           -1000,
			bid:           10,
			expectedError: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(tt.tcv, tt.bid)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestCompute_GrossPlusBidIsTCV(t *testing.T) {
	tcvs := []float64{0, 1, 999.99, 1000, 25000, 100000.5}
	bids := []float64{0, 0.5, 1, 250.25, 999.99, 1000, 30000, 200000}

	for _, tcv := range tcvs {
		for _, bid := range bids {
			b, err := Compute(tcv, bid)
			require.NoError(t, err)
			if bid <= tcv {
				assert.InDelta(t, tcv, b.GrossWalletBalance+bid, 1e-9, "tcv=%v bid=%v", tcv, bid)
			} else {
				assert.Zero(t, b.GrossWalletBalance, "tcv=%v bid=%v", tcv, bid)
			}
		}
	}
}

func TestBidFromWallet_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tcv  float64
		bid  float64
	}{
		{name: "Whole amounts", tcv: 100000, bid: 20000},
		{name: "Bid equals commission", tcv: 100000, bid: 5000},
		{name: "Fractional commission", tcv: 1234.57, bid: 800.1},
		{name: "Bid above TCV", tcv: 1000, bid: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(tt.tcv, tt.bid)
			require.NoError(t, err)

			bid, err := BidFromWallet(tt.tcv, b.WalletFromBid)
			require.NoError(t, err)
			assert.InDelta(t, tt.bid, bid, 0.005)
		})
	}
}

func TestBidFromWallet(t *testing.T) {
	bid, err := BidFromWallet(100000, 15000)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, bid)

	bid, err = BidFromWallet(100000, 0)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, bid)

	_, err = BidFromWallet(100000, -1)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestCommission(t *testing.T) {
	assert.Equal(t, 5000.0, Commission(100000))
	assert.Equal(t, 0.0, Commission(0))
	assert.Equal(t, 0.06, Commission(1.1))
}
