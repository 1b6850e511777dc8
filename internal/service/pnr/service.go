package pnr

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	"github.com/m04kA/SMC-BookingWindow/internal/infra/cache/pnrcache"
	"github.com/m04kA/SMC-BookingWindow/internal/integrations/railwayservice"
	"github.com/m04kA/SMC-BookingWindow/internal/service/pnr/models"
)

var pnrPattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, domain.PNRLength))

// Service сервис статусов PNR и истории просмотров
type Service struct {
	client       RailwayClient
	cache        Cache
	recentRepo   RecentRepository
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса PNR
// cache может быть nil, тогда каждый запрос идет к провайдеру
func NewService(
	client RailwayClient,
	cache Cache,
	recentRepo RecentRepository,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		cache:        cache,
		recentRepo:   recentRepo,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetStatus возвращает статус PNR и добавляет его в историю пользователя
func (s *Service) GetStatus(ctx context.Context, userID int64, pnr string) (*models.PNRStatusResponse, error) {
	if !pnrPattern.MatchString(pnr) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPNR, pnr)
	}

	s.logger.Info("GetStatus: fetching pnr=%s for user=%d", pnr, userID)

	status, cached := s.lookupCache(ctx, pnr)
	if status == nil {
		fetched, err := s.client.GetPNRStatus(ctx, pnr)
		if err != nil {
			switch {
			case errors.Is(err, railwayservice.ErrNotFound):
				s.logger.Warn("GetStatus: pnr=%s not found", pnr)
				return nil, ErrPNRNotFound
			case errors.Is(err, railwayservice.ErrInternal), errors.Is(err, railwayservice.ErrInvalidResponse):
				s.logger.Error("GetStatus: provider error for pnr=%s: %v", pnr, err)
				return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
			default:
				s.logger.Error("GetStatus: unexpected error for pnr=%s: %v", pnr, err)
				return nil, fmt.Errorf("%w: GetStatus - client error: %v", ErrInternal, err)
			}
		}
		status = fetched

		if s.cache != nil {
			if err := s.cache.Set(ctx, status); err != nil {
				s.logger.Warn("GetStatus: failed to cache pnr=%s: %v", pnr, err)
			}
		}
	}

	// История не должна ломать основной ответ
	if err := s.recentRepo.Add(ctx, userID, pnr, s.timeProvider.Now()); err != nil {
		s.logger.Warn("GetStatus: failed to record recent pnr=%s for user=%d: %v", pnr, userID, err)
	}

	return models.FromDomainStatus(status, cached), nil
}

// ListRecent возвращает недавние PNR пользователя
func (s *Service) ListRecent(ctx context.Context, userID int64) (*models.RecentPNRListResponse, error) {
	recent, err := s.recentRepo.List(ctx, userID)
	if err != nil {
		s.logger.Error("ListRecent: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListRecent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRecent: user=%d has %d recent pnrs", userID, len(recent))
	return models.FromDomainRecent(recent), nil
}

// ClearRecent очищает историю пользователя
func (s *Service) ClearRecent(ctx context.Context, userID int64) error {
	if err := s.recentRepo.Clear(ctx, userID); err != nil {
		s.logger.Error("ClearRecent: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ClearRecent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearRecent: history cleared for user=%d", userID)
	return nil
}

func (s *Service) lookupCache(ctx context.Context, pnr string) (*domain.PNRStatus, bool) {
	if s.cache == nil {
		return nil, false
	}

	status, err := s.cache.Get(ctx, pnr)
	switch {
	case err == nil:
		s.observeCache("hit")
		return status, true
	case errors.Is(err, pnrcache.ErrCacheMiss):
		s.observeCache("miss")
	default:
		s.observeCache("error")
		s.logger.Warn("GetStatus: cache lookup failed for pnr=%s: %v", pnr, err)
	}
	return nil, false
}

func (s *Service) observeCache(result string) {
	if s.metrics != nil {
		s.metrics.ObserveCacheLookup(result)
	}
}
