package schemeservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	List(ctx context.Context) ([]domain.Scheme, error)
	FindByID(ctx context.Context, id string) (*domain.Scheme, error)
	LockByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, s *domain.Scheme) error
	AddMember(ctx context.Context, member domain.SchemeMember) (bool, error)
	FindMember(ctx context.Context, schemeID, userID string) (*domain.SchemeMember, error)
	SetMemberApproved(ctx context.Context, schemeID, userID string) (bool, error)
	RemoveMember(ctx context.Context, schemeID, userID string) (bool, error)
	ListPendingMembers(ctx context.Context) ([]domain.SchemeMember, error)
}

type ContributionRepo interface {
	ListByScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error)
}

var (
	ErrSchemeNotFound      = domain.ErrSchemeNotFound
	ErrInvalidScheme       = errors.New("invalid scheme")
	ErrAlreadyJoined       = errors.New("already joined this scheme")
	ErrSchemeFull          = errors.New("scheme is full")
	ErrJoinRequestNotFound = errors.New("join request not found")
)

type CreateInput struct {
	Name           string
	TotalAmount    float64
	MonthlyAmount  float64
	DurationMonths *int
	TotalMembers   int
	StartDate      *time.Time
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScheme)
	}
	if in.TotalAmount < 0 || in.MonthlyAmount < 0 {
		return chit.ErrNegativeAmount
	}
	if in.DurationMonths != nil && *in.DurationMonths < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidScheme)
	}
	if in.TotalMembers < 1 {
		return fmt.Errorf("%w: at least one member slot is required", ErrInvalidScheme)
	}
	return nil
}

// MemberDetail is an approved member with its payment standing.
type MemberDetail struct {
	domain.SchemeMember
	chit.MemberStatus
}

type Detail struct {
	Scheme  *domain.Scheme
	Members []MemberDetail
}

type Service struct {
	repo             Repo
	contributionRepo ContributionRepo
	txManager        pg.TXManager
}

func New(repo Repo, contributionRepo ContributionRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:             repo,
		contributionRepo: contributionRepo,
		txManager:        txManager,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Scheme, error) {
	schemes, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("can't list schemes", zap.Error(err))
		return nil, err
	}
	return schemes, nil
}

// Get loads the scheme and its contributions concurrently and attaches the standing of
// every approved member.
func (s *Service) Get(ctx context.Context, schemeID string) (*Detail, error) {
	var (
		scheme        *domain.Scheme
		contributions []domain.Contribution
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scheme, err = s.repo.FindByID(gctx, schemeID)
		return err
	})
	g.Go(func() error {
		var err error
		contributions, err = s.contributionRepo.ListByScheme(gctx, schemeID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load scheme", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}

	approved := scheme.ApprovedMembers()
	members := make([]MemberDetail, 0, len(approved))
	for _, m := range approved {
		members = append(members, MemberDetail{
			SchemeMember: m,
			MemberStatus: chit.StatusOf(contributions, *scheme, chit.MemberKey{ID: m.UserID, Email: m.Email}),
		})
	}
	return &Detail{Scheme: scheme, Members: members}, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Scheme, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	scheme := &domain.Scheme{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		TotalAmount:    in.TotalAmount,
		MonthlyAmount:  in.MonthlyAmount,
		DurationMonths: in.DurationMonths,
		TotalMembers:   in.TotalMembers,
		StartDate:      in.StartDate,
		Members:        []domain.SchemeMember{},
	}
	if err := s.repo.Create(ctx, scheme); err != nil {
		zap.L().Error("can't create scheme", zap.Error(err))
		return nil, err
	}
	zap.L().Info("scheme created", zap.String("scheme_id", scheme.ID))
	return scheme, nil
}

func full(scheme *domain.Scheme) bool {
	return len(scheme.ApprovedMembers()) >= scheme.TotalMembers
}

// lockedScheme locks the scheme row and loads it. Capacity checks made after it hold
// until the transaction commits.
func (s *Service) lockedScheme(ctx context.Context, schemeID string) (*domain.Scheme, error) {
	found, err := s.repo.LockByID(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't lock scheme", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, ErrSchemeNotFound
	}
	scheme, err := s.repo.FindByID(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't find scheme", zap.Error(err))
		return nil, err
	}
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}
	return scheme, nil
}

// Join files a pending join request for userID.
func (s *Service) Join(ctx context.Context, schemeID, userID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		scheme, err := s.lockedScheme(ctx, schemeID)
		if err != nil {
			return err
		}
		for _, m := range scheme.Members {
			if m.UserID == userID {
				return ErrAlreadyJoined
			}
		}
		if full(scheme) {
			return ErrSchemeFull
		}

		added, err := s.repo.AddMember(ctx, domain.SchemeMember{SchemeID: schemeID, UserID: userID})
		if err != nil {
			zap.L().Error("can't add join request", zap.Error(err))
			return err
		}
		if !added {
			return ErrAlreadyJoined
		}
		zap.L().Info("join requested", zap.String("scheme_id", schemeID), zap.String("user_id", userID))
		return nil
	})
}

func (s *Service) ListPending(ctx context.Context) ([]domain.SchemeMember, error) {
	members, err := s.repo.ListPendingMembers(ctx)
	if err != nil {
		zap.L().Error("can't list join requests", zap.Error(err))
		return nil, err
	}
	return members, nil
}

// Approve accepts a pending join request. Approving an approved member is a no-op.
func (s *Service) Approve(ctx context.Context, schemeID, userID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		scheme, err := s.lockedScheme(ctx, schemeID)
		if err != nil {
			return err
		}
		member, err := s.repo.FindMember(ctx, schemeID, userID)
		if err != nil {
			zap.L().Error("can't find join request", zap.Error(err))
			return err
		}
		if member == nil {
			return ErrJoinRequestNotFound
		}
		if member.Approved {
			return nil
		}
		if full(scheme) {
			return ErrSchemeFull
		}

		ok, err := s.repo.SetMemberApproved(ctx, schemeID, userID)
		if err != nil {
			zap.L().Error("can't approve join request", zap.Error(err))
			return err
		}
		if !ok {
			return ErrJoinRequestNotFound
		}
		zap.L().Info("join approved", zap.String("scheme_id", schemeID), zap.String("user_id", userID))
		return nil
	})
}

// Reject deletes a pending join request.
func (s *Service) Reject(ctx context.Context, schemeID, userID string) error {
	ok, err := s.repo.RemoveMember(ctx, schemeID, userID)
	if err != nil {
		zap.L().Error("can't reject join request", zap.Error(err))
		return err
	}
	if !ok {
		return ErrJoinRequestNotFound
	}
	zap.L().Info("join rejected", zap.String("scheme_id", schemeID), zap.String("user_id", userID))
	return nil
}
