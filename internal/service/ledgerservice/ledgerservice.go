package ledgerservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	ListByScheme(ctx context.Context, schemeID string) ([]domain.GeneratedRow, error)
	FindByID(ctx context.Context, id string) (*domain.GeneratedRow, error)
	Create(ctx context.Context, g *domain.GeneratedRow) error
	Update(ctx context.Context, g *domain.GeneratedRow) (bool, error)
	Delete(ctx context.Context, schemeID, id string) (bool, error)
}

type SchemeRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Scheme, error)
}

type ContributionRepo interface {
	ListByScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error)
}

var (
	ErrSchemeNotFound = domain.ErrSchemeNotFound
	ErrRowNotFound    = domain.ErrRowNotFound
	ErrMissingRef     = errors.New("scheme id and row id are required")
)

// Ledger is the replayed projection of a scheme's generated rows, newest first.
type Ledger struct {
	Scheme *domain.Scheme
	Rows   []chit.LedgerRow
}

// RowDetail is one generated row with the contributions made in its calendar month.
type RowDetail struct {
	Row           domain.GeneratedRow
	Contributions []domain.Contribution
	Collected     float64
	Pending       float64
}

// GenerateInput carries the raw admin input. Bid wins when both are set; a wallet-only
// input is inverted to a bid.
type GenerateInput struct {
	Bid    string
	Wallet string
}

// RowPatch holds the fields an admin may edit. Nil fields are left unchanged.
type RowPatch struct {
	ChitName       *string
	Date           *time.Time
	WalletAmount   *float64
	BidAmount      *float64
	Distributed    *float64
	ReleasedAmount *float64
}

type Service struct {
	repo             Repo
	schemeRepo       SchemeRepo
	contributionRepo ContributionRepo
	now              func() time.Time
}

func New(repo Repo, schemeRepo SchemeRepo, contributionRepo ContributionRepo) *Service {
	return &Service{
		repo:             repo,
		schemeRepo:       schemeRepo,
		contributionRepo: contributionRepo,
		now:              time.Now,
	}
}

func (s *Service) scheme(ctx context.Context, schemeID string) (*domain.Scheme, error) {
	scheme, err := s.schemeRepo.FindByID(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't find scheme", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}
	return scheme, nil
}

// Ledger loads the scheme and its rows concurrently and replays them against the scheme TCV.
func (s *Service) Ledger(ctx context.Context, schemeID string) (*Ledger, error) {
	var (
		scheme *domain.Scheme
		rows   []domain.GeneratedRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scheme, err = s.scheme(gctx, schemeID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.repo.ListByScheme(gctx, schemeID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load ledger", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}

	metrics.LedgerReconstructions.Inc()
	return &Ledger{Scheme: scheme, Rows: chit.Reconstruct(rows, scheme.TotalAmount)}, nil
}

// Breakdown previews the bid breakdown for display. Unparseable input counts as zero;
// a wallet-only input is inverted to a bid.
func (s *Service) Breakdown(ctx context.Context, schemeID, bid, wallet string) (chit.Breakdown, error) {
	scheme, err := s.scheme(ctx, schemeID)
	if err != nil {
		return chit.Breakdown{}, err
	}

	bidAmount := chit.ParseDisplayAmount(bid)
	if strings.TrimSpace(bid) == "" && strings.TrimSpace(wallet) != "" {
		bidAmount, err = chit.BidFromWallet(scheme.TotalAmount, chit.ParseDisplayAmount(wallet))
		if err != nil {
			return chit.Breakdown{}, err
		}
	}
	return chit.Compute(scheme.TotalAmount, bidAmount)
}

func sameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func contributionDate(c domain.Contribution) time.Time {
	if c.PaidAt != nil {
		return *c.PaidAt
	}
	return c.CreatedAt
}

func (s *Service) Row(ctx context.Context, schemeID, rowID string) (*RowDetail, error) {
	if schemeID == "" || rowID == "" {
		return nil, ErrMissingRef
	}

	var (
		scheme        *domain.Scheme
		row           *domain.GeneratedRow
		contributions []domain.Contribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scheme, err = s.scheme(gctx, schemeID)
		return err
	})
	g.Go(func() error {
		var err error
		row, err = s.repo.FindByID(gctx, rowID)
		return err
	})
	g.Go(func() error {
		var err error
		contributions, err = s.contributionRepo.ListByScheme(gctx, schemeID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load generated row", zap.String("id", rowID), zap.Error(err))
		return nil, err
	}
	if row == nil || row.SchemeID != schemeID {
		return nil, ErrRowNotFound
	}

	month := make([]domain.Contribution, 0)
	for _, c := range contributions {
		if c.SchemeID == schemeID && sameMonth(contributionDate(c), row.Date) {
			month = append(month, c)
		}
	}
	collected := chit.SumCollected(month, schemeID)
	pending := decimal.NewFromFloat(scheme.MonthlyAmount).Sub(decimal.NewFromFloat(collected))
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	return &RowDetail{
		Row:           *row,
		Contributions: month,
		Collected:     collected,
		Pending:       pending.Round(2).InexactFloat64(),
	}, nil
}

func parseGenerateInput(tcv float64, in GenerateInput) (float64, error) {
	if strings.TrimSpace(in.Bid) == "" && strings.TrimSpace(in.Wallet) != "" {
		wallet, err := chit.ParseSubmitAmount(in.Wallet)
		if err != nil {
			return 0, err
		}
		return chit.BidFromWallet(tcv, wallet)
	}
	return chit.ParseSubmitAmount(in.Bid)
}

// Generate records a new auction cycle for the scheme dated now.
func (s *Service) Generate(ctx context.Context, schemeID string, in GenerateInput) (*domain.GeneratedRow, error) {
	scheme, err := s.scheme(ctx, schemeID)
	if err != nil {
		return nil, err
	}

	bid, err := parseGenerateInput(scheme.TotalAmount, in)
	if err != nil {
		return nil, err
	}
	breakdown, err := chit.Compute(scheme.TotalAmount, bid)
	if err != nil {
		return nil, err
	}

	row := &domain.GeneratedRow{
		ID:           uuid.NewString(),
		SchemeID:     scheme.ID,
		ChitName:     scheme.Name,
		Date:         s.now().UTC(),
		WalletAmount: breakdown.WalletFromBid,
		BidAmount:    breakdown.BidAmount,
		Distributed:  breakdown.Distributed,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		zap.L().Error("can't create generated row", zap.Error(err))
		return nil, err
	}
	zap.L().Info("generated row created", zap.String("scheme_id", schemeID), zap.Int("chit_no", row.ChitNo))
	return row, nil
}

func (p RowPatch) apply(row *domain.GeneratedRow) error {
	for _, v := range []*float64{p.WalletAmount, p.BidAmount, p.Distributed, p.ReleasedAmount} {
		if v != nil && *v < 0 {
			return chit.ErrNegativeAmount
		}
	}
	if p.ChitName != nil {
		row.ChitName = strings.TrimSpace(*p.ChitName)
	}
	if p.Date != nil {
		row.Date = *p.Date
	}
	if p.WalletAmount != nil {
		row.WalletAmount = *p.WalletAmount
	}
	if p.BidAmount != nil {
		row.BidAmount = *p.BidAmount
	}
	if p.Distributed != nil {
		row.Distributed = *p.Distributed
	}
	if p.ReleasedAmount != nil {
		row.ReleasedAmount = p.ReleasedAmount
	}
	return nil
}

func (s *Service) Update(ctx context.Context, schemeID, rowID string, patch RowPatch) (*domain.GeneratedRow, error) {
	if schemeID == "" || rowID == "" {
		return nil, ErrMissingRef
	}

	row, err := s.repo.FindByID(ctx, rowID)
	if err != nil {
		zap.L().Error("can't find generated row", zap.String("id", rowID), zap.Error(err))
		return nil, err
	}
	if row == nil || row.SchemeID != schemeID {
		return nil, ErrRowNotFound
	}
	if err := patch.apply(row); err != nil {
		return nil, err
	}

	ok, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRowNotFound
	}
	zap.L().Info("generated row updated", zap.String("id", rowID))
	return row, nil
}

func (s *Service) Delete(ctx context.Context, schemeID, rowID string) error {
	if schemeID == "" || rowID == "" {
		return ErrMissingRef
	}

	ok, err := s.repo.Delete(ctx, schemeID, rowID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRowNotFound
	}
	zap.L().Info("generated row deleted", zap.String("id", rowID))
	return nil
}
