package service

import (
	"context"
	"time"

	"posterdeck-backend/internal/domains/poster"
	"posterdeck-backend/pkg/cache"
	"posterdeck-backend/pkg/logger"
)

const (
	listCacheKey = "posters:list"
	listCacheTTL = 30 * time.Second
)

type PosterService struct {
	repo  poster.Repository
	cache cache.Cache
}

// NewPosterService wires the repository and an optional cache.
// cache may be nil; the store stays the single source of truth either
// way, the cache only absorbs repeated list reads and is dropped on
// every write.
func NewPosterService(repo poster.Repository, c cache.Cache) *PosterService {
	return &PosterService{repo: repo, cache: c}
}

func (s *PosterService) List(ctx context.Context) ([]poster.Poster, error) {
	if s.cache != nil {
		var cached []poster.Poster
		if found, err := s.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	posters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listCacheKey, posters, listCacheTTL); err != nil {
			logger.Error("cache poster list", err)
		}
	}

	return posters, nil
}

func (s *PosterService) Create(ctx context.Context, req *poster.CreatePosterReq) (*poster.Poster, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := poster.NewPoster(req.Title, req.Author, req.FileURL, req.PageCount)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return p, nil
}

func (s *PosterService) GetByID(ctx context.Context, id string) (*poster.Poster, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PosterService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *PosterService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Error("invalidate poster list cache", err)
	}
}
