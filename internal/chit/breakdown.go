// Package chit holds the chit fund arithmetic: the bid breakdown, the generated-row ledger
// replay, the contribution matcher and decoding of the legacy JSON shapes.
package chit

import (
	"github.com/shopspring/decimal"
)

// CommissionRate is the operator's share of the total contracted value.
var CommissionRate = decimal.RequireFromString("0.05")

type Breakdown struct {
	TCV                float64 `json:"tcv"`
	BidAmount          float64 `json:"bidAmount"`
	Commission         float64 `json:"commission"`
	GrossWalletBalance float64 `json:"grossWalletBalance"`
	WalletFromBid      float64 `json:"walletFromBid"`
	Distributed        float64 `json:"distributed"`
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func commission(tcv decimal.Decimal) decimal.Decimal {
	return round2(CommissionRate.Mul(tcv))
}

// Commission returns 5% of tcv rounded to two places.
func Commission(tcv float64) float64 {
	return commission(decimal.NewFromFloat(Finite(tcv))).InexactFloat64()
}

// Compute derives the breakdown for a cycle from its TCV and the accepted bid.
func Compute(tcv, bid float64) (Breakdown, error) {
	tcv, bid = Finite(tcv), Finite(bid)
	if tcv < 0 || bid < 0 {
		return Breakdown{}, ErrNegativeAmount
	}

	t := decimal.NewFromFloat(tcv)
	b := decimal.NewFromFloat(bid)
	c := commission(t)
	gross := maxZero(t.Sub(b))

	return Breakdown{
		TCV:                tcv,
		BidAmount:          bid,
		Commission:         c.InexactFloat64(),
		GrossWalletBalance: gross.InexactFloat64(),
		WalletFromBid:      maxZero(round2(b.Sub(c))).InexactFloat64(),
		Distributed:        round2(gross).InexactFloat64(),
	}, nil
}

// BidFromWallet inverts the wallet edit: bid = wallet + commission, where commission always
// comes from tcv and never from the edited wallet value.
func BidFromWallet(tcv, wallet float64) (float64, error) {
	tcv, wallet = Finite(tcv), Finite(wallet)
	if tcv < 0 || wallet < 0 {
		return 0, ErrNegativeAmount
	}
	bid := decimal.NewFromFloat(wallet).Add(commission(decimal.NewFromFloat(tcv)))
	return maxZero(bid).InexactFloat64(), nil
}
