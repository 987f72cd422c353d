package chit

import (
	"sort"

	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerRow is a generated row annotated with the running wallet figures of the replay.
// Auto payouts are inferred for display only; nothing here is a confirmed disbursement.
type LedgerRow struct {
	domain.GeneratedRow

	ChitNoSeq                       int     `json:"chitNoSeq"`
	CumWalletBeforeReleases         float64 `json:"cumWalletBeforeReleases"`
	CumWalletRemainingAfterReleases float64 `json:"cumWalletRemainingAfterReleases"`
	AutoPayoutsThisRow              int     `json:"autoPayoutsThisRow"`
	AutoPayoutTotalAmount           float64 `json:"autoPayoutTotalAmount"`
	TotalAutoPayoutsSoFar           int     `json:"totalAutoPayoutsSoFar"`
	TotalExplicitReleasedSoFar      float64 `json:"totalExplicitReleasedSoFar"`
}

// ReleasedAmount is the amount explicitly released by a row, zero when unset.
func ReleasedAmount(r domain.GeneratedRow) float64 {
	if r.ReleasedAmount == nil {
		return 0
	}
	return Finite(*r.ReleasedAmount)
}

// replayBefore orders rows oldest-first: by date, then chit number, then id.
func replayBefore(a, b domain.GeneratedRow) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if a.ChitNo != b.ChitNo {
		return a.ChitNo < b.ChitNo
	}
	return a.ID < b.ID
}

// Reconstruct replays rows oldest-first against tcv and returns them newest-first with the
// cumulative fields filled in. The input slice is not modified.
func Reconstruct(rows []domain.GeneratedRow, tcv float64) []LedgerRow {
	if len(rows) == 0 {
		return []LedgerRow{}
	}

	ordered := make([]domain.GeneratedRow, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return replayBefore(ordered[i], ordered[j])
	})

	t := decimal.NewFromFloat(Finite(tcv))
	var (
		runningWallet   = decimal.Zero
		runningReleased = decimal.Zero
		autoReleased    = decimal.Zero
		totalAuto       = 0
	)

	out := make([]LedgerRow, len(ordered))
	for i, r := range ordered {
		runningWallet = runningWallet.Add(decimal.NewFromFloat(Finite(r.WalletAmount)))
		runningReleased = runningReleased.Add(decimal.NewFromFloat(ReleasedAmount(r)))

		lr := LedgerRow{GeneratedRow: r, ChitNoSeq: i + 1}

		if t.IsPositive() {
			available := maxZero(runningWallet.Sub(runningReleased))
			payouts := available.Div(t).Floor()
			if payouts.IsPositive() {
				amount := payouts.Mul(t)
				runningReleased = runningReleased.Add(amount)
				autoReleased = autoReleased.Add(amount)
				lr.AutoPayoutsThisRow = int(payouts.IntPart())
				lr.AutoPayoutTotalAmount = amount.InexactFloat64()
				totalAuto += lr.AutoPayoutsThisRow
			}
		}

		lr.CumWalletBeforeReleases = runningWallet.InexactFloat64()
		lr.CumWalletRemainingAfterReleases = maxZero(runningWallet.Sub(runningReleased)).InexactFloat64()
		lr.TotalAutoPayoutsSoFar = totalAuto
		lr.TotalExplicitReleasedSoFar = maxZero(runningReleased.Sub(autoReleased)).InexactFloat64()
		out[i] = lr
	}

	// newest first for presentation
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
