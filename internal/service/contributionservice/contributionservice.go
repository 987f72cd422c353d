package contributionservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	Create(ctx context.Context, c *domain.Contribution) error
	FindByID(ctx context.Context, id string) (*domain.Contribution, error)
	ListByScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Contribution, error)
	RequestVerification(ctx context.Context, id, userID string, at time.Time) (bool, error)
	ListVerificationRequests(ctx context.Context) ([]domain.Contribution, error)
	ApproveVerification(ctx context.Context, id string, paidAt time.Time) (bool, error)
	RejectVerification(ctx context.Context, id, reason string) (bool, error)
}

type SchemeRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Scheme, error)
	FindMember(ctx context.Context, schemeID, userID string) (*domain.SchemeMember, error)
}

var (
	ErrSchemeNotFound = domain.ErrSchemeNotFound
	ErrNotMember      = errors.New("not an approved member of this scheme")
	ErrAmountRequired = errors.New("amount must be greater than zero")

	ErrContributionNotFound  = errors.New("contribution not found")
	ErrAlreadySettled        = errors.New("contribution is already settled")
	ErrVerificationRequested = errors.New("verification already requested")
	ErrNoVerificationRequest = errors.New("no verification request for this contribution")
	ErrReasonTooLong         = errors.New("rejection reason is too long")
)

const maxRejectReason = 500

// MemberStatus is the standing of one member in one scheme.
type MemberStatus struct {
	Member domain.SchemeMember
	chit.MemberStatus
}

type Service struct {
	repo       Repo
	schemeRepo SchemeRepo
	now        func() time.Time
}

func New(repo Repo, schemeRepo SchemeRepo) *Service {
	return &Service{
		repo:       repo,
		schemeRepo: schemeRepo,
		now:        time.Now,
	}
}

func (s *Service) approvedMember(ctx context.Context, schemeID, userID string) (*domain.Scheme, *domain.SchemeMember, error) {
	scheme, err := s.schemeRepo.FindByID(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't find scheme", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, nil, err
	}
	if scheme == nil {
		return nil, nil, ErrSchemeNotFound
	}
	member, err := s.schemeRepo.FindMember(ctx, schemeID, userID)
	if err != nil {
		zap.L().Error("can't find member", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, nil, err
	}
	if member == nil || !member.Approved {
		return nil, nil, ErrNotMember
	}
	return scheme, member, nil
}

// Pay opens a pending contribution. Its payment reference is what the gateway poller
// later resolves to completed or failed.
func (s *Service) Pay(ctx context.Context, schemeID, userID, amount string) (*domain.Contribution, error) {
	value, err := chit.ParseSubmitAmount(amount)
	if err != nil {
		return nil, err
	}
	if value <= 0 {
		return nil, ErrAmountRequired
	}
	if _, _, err := s.approvedMember(ctx, schemeID, userID); err != nil {
		return nil, err
	}

	c := &domain.Contribution{
		ID:         uuid.NewString(),
		SchemeID:   schemeID,
		UserID:     userID,
		Amount:     value,
		Status:     domain.ContributionPending,
		PaymentRef: uuid.NewString(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		zap.L().Error("can't create contribution", zap.Error(err))
		return nil, err
	}
	zap.L().Info("contribution opened", zap.String("id", c.ID), zap.String("payment_ref", c.PaymentRef))
	return c, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]domain.Contribution, error) {
	contributions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't list contributions", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

func (s *Service) ListScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error) {
	scheme, err := s.schemeRepo.FindByID(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't find scheme", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}
	contributions, err := s.repo.ListByScheme(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't list contributions", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

// MemberStatus counts the paid months of userID in the scheme.
func (s *Service) MemberStatus(ctx context.Context, schemeID, userID string) (*MemberStatus, error) {
	var (
		scheme        *domain.Scheme
		member        *domain.SchemeMember
		contributions []domain.Contribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scheme, member, err = s.approvedMember(gctx, schemeID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		contributions, err = s.repo.ListByScheme(gctx, schemeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MemberStatus{
		Member:       *member,
		MemberStatus: chit.StatusOf(contributions, *scheme, chit.MemberKey{ID: member.UserID, Email: member.Email}),
	}, nil
}

// RequestVerification asks an admin to confirm a pending payment of userID by hand, for
// payments the gateway never reports back. Contributions of other members look missing.
func (s *Service) RequestVerification(ctx context.Context, contributionID, userID string) (*domain.Contribution, error) {
	c, err := s.repo.FindByID(ctx, contributionID)
	if err != nil {
		zap.L().Error("can't find contribution", zap.String("id", contributionID), zap.Error(err))
		return nil, err
	}
	if c == nil || c.UserID != userID {
		return nil, ErrContributionNotFound
	}
	if c.Status != domain.ContributionPending {
		return nil, ErrAlreadySettled
	}
	if c.Verification == domain.VerificationRequested {
		return nil, ErrVerificationRequested
	}

	at := s.now()
	ok, err := s.repo.RequestVerification(ctx, contributionID, userID, at)
	if err != nil {
		zap.L().Error("can't request verification", zap.String("id", contributionID), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadySettled
	}
	c.Verification = domain.VerificationRequested
	c.VerificationRequestedAt = &at
	c.RejectReason = ""
	zap.L().Info("payment verification requested", zap.String("id", c.ID), zap.String("user_id", userID))
	return c, nil
}

func (s *Service) ListVerificationRequests(ctx context.Context) ([]domain.Contribution, error) {
	requests, err := s.repo.ListVerificationRequests(ctx)
	if err != nil {
		zap.L().Error("can't list verification requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// missingRequest explains why a verification decision matched nothing.
func (s *Service) missingRequest(ctx context.Context, contributionID string) error {
	c, err := s.repo.FindByID(ctx, contributionID)
	if err != nil {
		zap.L().Error("can't find contribution", zap.String("id", contributionID), zap.Error(err))
		return err
	}
	if c == nil {
		return ErrContributionNotFound
	}
	return ErrNoVerificationRequest
}

// ApproveVerification settles a contribution awaiting verification as completed.
func (s *Service) ApproveVerification(ctx context.Context, contributionID string) error {
	ok, err := s.repo.ApproveVerification(ctx, contributionID, s.now())
	if err != nil {
		zap.L().Error("can't approve payment", zap.String("id", contributionID), zap.Error(err))
		return err
	}
	if !ok {
		return s.missingRequest(ctx, contributionID)
	}
	zap.L().Info("payment approved", zap.String("id", contributionID))
	return nil
}

// RejectVerification settles a contribution awaiting verification as failed. The reason is
// optional.
func (s *Service) RejectVerification(ctx context.Context, contributionID, reason string) error {
	reason = strings.TrimSpace(reason)
	if len(reason) > maxRejectReason {
		return ErrReasonTooLong
	}
	ok, err := s.repo.RejectVerification(ctx, contributionID, reason)
	if err != nil {
		zap.L().Error("can't reject payment", zap.String("id", contributionID), zap.Error(err))
		return err
	}
	if !ok {
		return s.missingRequest(ctx, contributionID)
	}
	zap.L().Info("payment rejected", zap.String("id", contributionID), zap.String("reason", reason))
	return nil
}
