package reportservice

import (
	"context"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type SchemeRepo interface {
	List(ctx context.Context) ([]domain.Scheme, error)
}

type RowRepo interface {
	Latest(ctx context.Context, schemeID string) (*domain.GeneratedRow, error)
}

type ContributionRepo interface {
	ListByScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error)
}

const maxConcurrentSchemes = 8

type SchemeReport struct {
	SchemeID  string
	Name      string
	TCV       float64
	LatestBid float64
	Breakdown chit.Breakdown
	Collected float64
	Pending   float64
	Members   int
}

// Report totals every scheme. TotalWallet sums the wallet after commission of each scheme's
// latest bid.
type Report struct {
	Schemes        []SchemeReport
	TotalSchemes   int
	TotalTCV       float64
	TotalCollected float64
	TotalPending   float64
	TotalWallet    float64
	TotalMembers   int
}

type Service struct {
	schemeRepo       SchemeRepo
	rowRepo          RowRepo
	contributionRepo ContributionRepo
}

func New(schemeRepo SchemeRepo, rowRepo RowRepo, contributionRepo ContributionRepo) *Service {
	return &Service{
		schemeRepo:       schemeRepo,
		rowRepo:          rowRepo,
		contributionRepo: contributionRepo,
	}
}

func (s *Service) schemeReport(ctx context.Context, scheme domain.Scheme) (SchemeReport, error) {
	latest, err := s.rowRepo.Latest(ctx, scheme.ID)
	if err != nil {
		return SchemeReport{}, err
	}
	contributions, err := s.contributionRepo.ListByScheme(ctx, scheme.ID)
	if err != nil {
		return SchemeReport{}, err
	}

	var bid float64
	if latest != nil {
		bid = chit.Finite(latest.BidAmount)
	}
	breakdown, err := chit.Compute(scheme.TotalAmount, bid)
	if err != nil {
		return SchemeReport{}, err
	}

	collected := chit.SumCollected(contributions, scheme.ID)
	pending := decimal.NewFromFloat(scheme.TotalAmount).Sub(decimal.NewFromFloat(collected))
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	return SchemeReport{
		SchemeID:  scheme.ID,
		Name:      scheme.Name,
		TCV:       scheme.TotalAmount,
		LatestBid: bid,
		Breakdown: breakdown,
		Collected: collected,
		Pending:   pending.Round(2).InexactFloat64(),
		Members:   len(scheme.ApprovedMembers()),
	}, nil
}

// Summary reports every scheme. Per-scheme loads run concurrently, bounded to a few at a time.
func (s *Service) Summary(ctx context.Context) (*Report, error) {
	schemes, err := s.schemeRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list schemes", zap.Error(err))
		return nil, err
	}

	reports := make([]SchemeReport, len(schemes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSchemes)
	for i, scheme := range schemes {
		i, scheme := i, scheme
		g.Go(func() error {
			r, err := s.schemeReport(gctx, scheme)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build report", zap.Error(err))
		return nil, err
	}

	var (
		tcv       = decimal.Zero
		collected = decimal.Zero
		pending   = decimal.Zero
		wallet    = decimal.Zero
		members   int
	)
	for _, r := range reports {
		tcv = tcv.Add(decimal.NewFromFloat(r.TCV))
		collected = collected.Add(decimal.NewFromFloat(r.Collected))
		pending = pending.Add(decimal.NewFromFloat(r.Pending))
		wallet = wallet.Add(decimal.NewFromFloat(r.Breakdown.WalletFromBid))
		members += r.Members
	}

	return &Report{
		Schemes:        reports,
		TotalSchemes:   len(reports),
		TotalTCV:       tcv.InexactFloat64(),
		TotalCollected: collected.InexactFloat64(),
		TotalPending:   pending.InexactFloat64(),
		TotalWallet:    wallet.InexactFloat64(),
		TotalMembers:   members,
	}, nil
}
