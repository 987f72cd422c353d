package importservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	UpsertPlaceholder(ctx context.Context, user domain.User) error
}

type SchemeRepo interface {
	Upsert(ctx context.Context, s domain.Scheme) error
	UpsertMember(ctx context.Context, member domain.SchemeMember) error
}

type RowRepo interface {
	Upsert(ctx context.Context, g domain.GeneratedRow) error
}

type ContributionRepo interface {
	Upsert(ctx context.Context, c domain.Contribution) error
}

// Input is a legacy backend export. Every record stays raw until decoded so one bad
// record is skipped instead of failing the whole document.
type Input struct {
	Chits         []json.RawMessage
	GeneratedRows []json.RawMessage
	Contributions []json.RawMessage
}

type Result struct {
	Schemes              int
	Members              int
	Rows                 int
	Contributions        int
	SkippedSchemes       int
	SkippedMembers       int
	SkippedRows          int
	SkippedContributions int
}

type Service struct {
	userRepo         UserRepo
	schemeRepo       SchemeRepo
	rowRepo          RowRepo
	contributionRepo ContributionRepo
	txManager        pg.TXManager
	now              func() time.Time
}

func New(userRepo UserRepo, schemeRepo SchemeRepo, rowRepo RowRepo, contributionRepo ContributionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:         userRepo,
		schemeRepo:       schemeRepo,
		rowRepo:          rowRepo,
		contributionRepo: contributionRepo,
		txManager:        txManager,
		now:              time.Now,
	}
}

// Import upserts the export by id in one transaction. Undecodable records are logged and
// counted as skipped; a store failure rolls everything back.
func (s *Service) Import(ctx context.Context, in Input) (*Result, error) {
	var result Result
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		result = Result{}
		if err := s.importSchemes(ctx, in.Chits, &result); err != nil {
			return err
		}
		if err := s.importRows(ctx, in.GeneratedRows, s.now(), &result); err != nil {
			return err
		}
		return s.importContributions(ctx, in.Contributions, &result)
	})
	if err != nil {
		zap.L().Error("legacy import failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("legacy import finished",
		zap.Int("schemes", result.Schemes),
		zap.Int("rows", result.Rows),
		zap.Int("contributions", result.Contributions),
		zap.Int("skipped_members", result.SkippedMembers),
	)
	return &result, nil
}

func (s *Service) importSchemes(ctx context.Context, chits []json.RawMessage, result *Result) error {
	for i, raw := range chits {
		decoded, err := chit.DecodeScheme(raw)
		if err != nil {
			zap.L().Warn("skipping legacy scheme", zap.Int("index", i), zap.Error(err))
			result.SkippedSchemes++
			continue
		}
		if err := s.schemeRepo.Upsert(ctx, decoded.Scheme); err != nil {
			return err
		}
		result.Schemes++

		for _, idx := range decoded.Rejected {
			zap.L().Warn("skipping unrecognized member reference",
				zap.String("scheme_id", decoded.Scheme.ID), zap.Int("index", idx))
		}
		result.SkippedMembers += len(decoded.Rejected)

		for _, ref := range decoded.Members {
			m := ref.Resolve()
			if err := s.userRepo.UpsertPlaceholder(ctx, domain.User{ID: m.ID, Name: m.Name, Email: m.Email}); err != nil {
				return err
			}
			member := domain.SchemeMember{SchemeID: decoded.Scheme.ID, UserID: m.ID, Approved: ref.Approved()}
			if err := s.schemeRepo.UpsertMember(ctx, member); err != nil {
				return err
			}
			result.Members++
		}
	}
	return nil
}

// importRows stores generated rows. A row carrying neither a date nor a creation time is
// dated importedAt so it replays after every dated row.
func (s *Service) importRows(ctx context.Context, rows []json.RawMessage, importedAt time.Time, result *Result) error {
	for i, raw := range rows {
		row, err := chit.DecodeGeneratedRow(raw)
		if err != nil {
			zap.L().Warn("skipping legacy generated row", zap.Int("index", i), zap.Error(err))
			result.SkippedRows++
			continue
		}
		if row.Date.IsZero() {
			row.Date = importedAt
		}
		if err := s.rowRepo.Upsert(ctx, row); err != nil {
			return err
		}
		result.Rows++
	}
	return nil
}

func (s *Service) importContributions(ctx context.Context, contributions []json.RawMessage, result *Result) error {
	for i, raw := range contributions {
		c, err := chit.DecodeContribution(raw)
		if err == nil && c.UserID == "" {
			err = chit.ErrMissingID
		}
		if err != nil {
			zap.L().Warn("skipping legacy contribution", zap.Int("index", i), zap.Error(err))
			result.SkippedContributions++
			continue
		}
		placeholder := domain.User{ID: c.UserID, Name: "Member", Email: c.UserEmail}
		if err := s.userRepo.UpsertPlaceholder(ctx, placeholder); err != nil {
			return err
		}
		if err := s.contributionRepo.Upsert(ctx, c); err != nil {
			return err
		}
		result.Contributions++
	}
	return nil
}
