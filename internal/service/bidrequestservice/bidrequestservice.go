package bidrequestservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, b *domain.BidRequest) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.BidRequest, error)
	List(ctx context.Context) ([]domain.BidRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.BidRequest, error)
	Decide(ctx context.Context, id, status string) (bool, error)
	SetStatus(ctx context.Context, id, status string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type SchemeRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Scheme, error)
	FindMember(ctx context.Context, schemeID, userID string) (*domain.SchemeMember, error)
}

var (
	ErrSchemeNotFound     = domain.ErrSchemeNotFound
	ErrPendingExists      = domain.ErrBidRequestPending
	ErrNotMember          = errors.New("not an approved member of this scheme")
	ErrBidRequestNotFound = errors.New("bid request not found")
	ErrNotPending         = errors.New("bid request is already decided")
	ErrInvalidStatus      = errors.New("status must be pending, approved or rejected")
)

type Service struct {
	repo       Repo
	schemeRepo SchemeRepo
}

func New(repo Repo, schemeRepo SchemeRepo) *Service {
	return &Service{
		repo:       repo,
		schemeRepo: schemeRepo,
	}
}

// Create files a pending request by an approved member. An empty amount leaves the offer
// open.
func (s *Service) Create(ctx context.Context, schemeID, userID, bidAmount string) (*domain.BidRequest, error) {
	var amount *float64
	if strings.TrimSpace(bidAmount) != "" {
		v, err := chit.ParseSubmitAmount(bidAmount)
		if err != nil {
			return nil, err
		}
		amount = &v
	}

	scheme, err := s.schemeRepo.FindByID(ctx, schemeID)
	if err != nil {
		zap.L().Error("can't find scheme", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}
	member, err := s.schemeRepo.FindMember(ctx, schemeID, userID)
	if err != nil {
		zap.L().Error("can't find member", zap.String("scheme_id", schemeID), zap.Error(err))
		return nil, err
	}
	if member == nil || !member.Approved {
		return nil, ErrNotMember
	}

	b := &domain.BidRequest{
		ID:         uuid.NewString(),
		SchemeID:   schemeID,
		SchemeName: scheme.Name,
		UserID:     userID,
		UserName:   member.Name,
		UserEmail:  member.Email,
		BidAmount:  amount,
		Status:     domain.BidRequestPending,
	}
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrPendingExists
	}
	zap.L().Info("bid request filed", zap.String("id", b.ID), zap.String("scheme_id", schemeID), zap.String("user_id", userID))
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]domain.BidRequest, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]domain.BidRequest, error) {
	return s.repo.List(ctx)
}

func (s *Service) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, domain.BidRequestApproved)
}

func (s *Service) Reject(ctx context.Context, id string) error {
	return s.decide(ctx, id, domain.BidRequestRejected)
}

func (s *Service) decide(ctx context.Context, id, status string) error {
	ok, err := s.repo.Decide(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		b, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBidRequestNotFound
		}
		return ErrNotPending
	}
	zap.L().Info("bid request decided", zap.String("id", id), zap.String("status", status))
	return nil
}

// SetStatus is the admin override. Any of the three statuses may be set from any other.
func (s *Service) SetStatus(ctx context.Context, id, status string) (*domain.BidRequest, error) {
	switch status {
	case domain.BidRequestPending, domain.BidRequestApproved, domain.BidRequestRejected:
	default:
		return nil, ErrInvalidStatus
	}
	ok, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBidRequestNotFound
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBidRequestNotFound
	}
	zap.L().Info("bid request updated", zap.String("id", id), zap.String("status", status))
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBidRequestNotFound
	}
	zap.L().Info("bid request deleted", zap.String("id", id))
	return nil
}
