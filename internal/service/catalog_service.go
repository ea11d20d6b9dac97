package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/repository"
)

// CatalogService handles class offering operations. The full listing is
// cached in Redis with a short TTL and dropped on every catalog write.
type CatalogService struct {
	classRepo *repository.ClassRepository
	rdb       *redis.Client
	cfg       *config.Config
	log       zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(classRepo *repository.ClassRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		classRepo: classRepo,
		rdb:       rdb,
		cfg:       cfg,
		log:       log.With().Str("component", "catalog_service").Logger(),
	}
}

// Create lists a new offering. It starts in pending status.
func (s *CatalogService) Create(ctx context.Context, o *model.ClassOffering) error {
	if err := s.classRepo.Create(ctx, o); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// List returns all offerings, served from cache when fresh.
func (s *CatalogService) List(ctx context.Context) ([]model.ClassOffering, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, config.CacheKey.CatalogKey()).Bytes()
		if err == nil {
			var offerings []model.ClassOffering
			if jsonErr := json.Unmarshal(cached, &offerings); jsonErr == nil {
				return offerings, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("catalog cache read failed")
		}
	}

	offerings, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if b, err := json.Marshal(offerings); err == nil {
			if err := s.rdb.Set(ctx, config.CacheKey.CatalogKey(), b, s.cfg.CatalogCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("catalog cache write failed")
			}
		}
	}
	return offerings, nil
}

// GetByID returns one offering, or nil when it does not exist.
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassOffering, error) {
	return s.classRepo.GetByID(ctx, id)
}

// SetStatus approves or denies an offering.
func (s *CatalogService) SetStatus(ctx context.Context, id uuid.UUID, status model.OfferingStatus) (int64, error) {
	updated, err := s.classRepo.SetStatus(ctx, id, status)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// SetFeedback attaches admin feedback to an offering.
func (s *CatalogService) SetFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error) {
	updated, err := s.classRepo.SetFeedback(ctx, id, feedback)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Upsert replaces an offering's mutable fields, creating it if absent.
func (s *CatalogService) Upsert(ctx context.Context, o *model.ClassOffering) error {
	if err := s.classRepo.Upsert(ctx, o); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.CatalogKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
