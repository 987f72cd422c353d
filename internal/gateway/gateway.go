package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/chitledger/internal/config"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/metrics"
	"github.com/GlebRadaev/chitledger/pkg/clients"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Repo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Contribution, error)
	UpdateStatus(ctx context.Context, id, status string, paidAt *time.Time) (bool, error)
}

// Service polls the payment gateway for the outcome of pending contributions.
type Service struct {
	url           string
	repo          Repo
	client        clients.HTTPClientI
	limit         uint32
	schedule      string
	workerPool    WorkerPoolI
	guard         *SeqGuard
	inFlight      sync.Map
	retryInterval time.Duration
	now           func() time.Time
}

func New(cfg *config.Config, repo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:           cfg.GatewayAddress,
		repo:          repo,
		client:        client,
		limit:         uint32(cfg.SyncLimit),
		schedule:      cfg.SyncSchedule,
		workerPool:    NewWorkerPool(cfg.SyncWorkers),
		guard:         NewSeqGuard(),
		retryInterval: retryInterval,
		now:           time.Now,
	}
}

// Start schedules the poll and returns. The schedule stops when ctx is canceled; a poll
// still running when the next tick fires is not overlapped.
func (s *Service) Start(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(s.schedule, func() { s.Poll(ctx) }); err != nil {
		return fmt.Errorf("unable to schedule payment sync %q: %w", s.schedule, err)
	}
	c.Start()
	zap.L().Info("payment sync started", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		s.workerPool.Close()
		zap.L().Info("payment sync stopped")
	}()
	return nil
}

// Poll dispatches every pending contribution that is not already being looked up.
func (s *Service) Poll(ctx context.Context) {
	contributions, err := s.repo.FindPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending contributions", zap.Error(err))
		return
	}

	pending := make(map[string]struct{}, len(contributions))
	for _, c := range contributions {
		pending[c.ID] = struct{}{}
	}
	s.guard.Retain(func(id string) bool {
		_, stillPending := pending[id]
		_, busy := s.inFlight.Load(id)
		return stillPending || busy
	})

	var g errgroup.Group
	for _, c := range contributions {
		c := c
		if _, loaded := s.inFlight.LoadOrStore(c.ID, struct{}{}); loaded {
			continue
		}
		seq := s.guard.Issue(c.ID)

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(c.ID)
				return s.Sync(ctx, c, seq)
			})
			if err != nil {
				s.inFlight.Delete(c.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching payment lookups", zap.Error(err))
	}
}

func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) retryAfter(headers http.Header, attempt int) time.Duration {
	wait := s.retryInterval * time.Duration(attempt)
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
			wait = time.Duration(seconds) * time.Second
		}
	}
	return wait
}

// fetch returns the gateway status of the payment, or pending when the gateway does not
// know it yet.
func (s *Service) fetch(ctx context.Context, c domain.Contribution) (string, error) {
	target := s.url + "/api/payments/" + url.PathEscape(c.PaymentRef)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Get(ctx, target, nil)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if attempt < maxRetries {
				zap.L().Warn("gateway request failed, retrying", zap.String("payment_ref", c.PaymentRef), zap.Int("attempt", attempt), zap.Error(err))
				if err := s.sleep(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return "", err
				}
				continue
			}
			return "", fmt.Errorf("failed to look up payment %s after %d retries: %w", c.PaymentRef, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return DecodeStatus(respBody)
		case http.StatusNoContent:
			return domain.ContributionPending, nil
		case http.StatusTooManyRequests:
			wait := s.retryAfter(respHeaders, attempt)
			zap.L().Warn("rate limit detected, retrying", zap.String("payment_ref", c.PaymentRef), zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
			if attempt == maxRetries {
				return "", fmt.Errorf("payment %s still rate limited after %d attempts", c.PaymentRef, maxRetries)
			}
			if err := s.sleep(ctx, wait); err != nil {
				return "", err
			}
		default:
			return "", fmt.Errorf("unexpected gateway status code %d for payment %s", statusCode, c.PaymentRef)
		}
	}
	return "", fmt.Errorf("failed to look up payment %s", c.PaymentRef)
}

// Sync looks up one contribution and records a final outcome, provided the lookup seq
// is still the newest one to report.
func (s *Service) Sync(ctx context.Context, c domain.Contribution, seq uint64) error {
	status, err := s.fetch(ctx, c)
	if err != nil {
		metrics.GatewayPolls.WithLabelValues(metrics.PollFailed).Inc()
		return err
	}
	if status == domain.ContributionPending {
		metrics.GatewayPolls.WithLabelValues(metrics.PollPending).Inc()
		return nil
	}

	var paidAt *time.Time
	if status == domain.ContributionCompleted {
		now := s.now().UTC()
		paidAt = &now
	}

	committed, err := s.guard.Commit(c.ID, seq, func() error {
		_, err := s.repo.UpdateStatus(ctx, c.ID, status, paidAt)
		return err
	})
	if err != nil {
		metrics.GatewayPolls.WithLabelValues(metrics.PollFailed).Inc()
		return fmt.Errorf("failed to update contribution %s: %w", c.ID, err)
	}
	if !committed {
		metrics.GatewayPolls.WithLabelValues(metrics.PollStale).Inc()
		zap.L().Info("discarding stale payment status", zap.String("id", c.ID), zap.Uint64("seq", seq))
		return nil
	}

	metrics.GatewayPolls.WithLabelValues(metrics.PollCommitted).Inc()
	zap.L().Info("contribution settled", zap.String("id", c.ID), zap.String("status", status))
	return nil
}
