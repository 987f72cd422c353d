package ledgerservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const ledgerSheet = "Ledger"

var ledgerHeader = []any{
	"Seq", "Chit No", "Chit Name", "Date", "Wallet Amount", "Bid Amount", "Distributed",
	"Released Amount", "Cum Wallet", "Auto Payouts", "Auto Payout Amount", "Remaining Wallet",
}

// Export renders the reconstructed ledger as an XLSX workbook, newest row first.
// Auto payout columns are a projection and are not stored.
func (s *Service) Export(ctx context.Context, schemeID string) ([]byte, error) {
	ledger, err := s.Ledger(ctx, schemeID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Error("can't close workbook", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ledgerSheet, "A1", &ledgerHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range ledger.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		var released any
		if r.ReleasedAmount != nil {
			released = *r.ReleasedAmount
		}
		values := []any{
			r.ChitNoSeq, r.ChitNo, r.ChitName, r.Date.Format("2006-01-02"), r.WalletAmount, r.BidAmount,
			r.Distributed, released, r.CumWalletBeforeReleases, r.AutoPayoutsThisRow,
			r.AutoPayoutTotalAmount, r.CumWalletRemainingAfterReleases,
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		zap.L().Error("can't write workbook", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}
