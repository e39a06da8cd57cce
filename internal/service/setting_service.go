package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"villasol/internal/cache"
	apperrors "villasol/internal/errors"
	"villasol/internal/media"
	"villasol/internal/model"
	"villasol/internal/repository"
)

const (
	settingCacheKeyPrefix = "setting:"
	settingCacheTTL       = 5 * time.Minute
)

// SettingService handles site setting operations. Settings are addressed by
// key and upserted rather than created/updated separately.
type SettingService interface {
	List(ctx context.Context) ([]model.SiteSetting, error)
	Get(ctx context.Context, key string) (*model.SiteSetting, error)
	Set(ctx context.Context, key, value string, image io.Reader) (*model.SiteSetting, error)
	Delete(ctx context.Context, key string) error
}

type settingService struct {
	repo        repository.SiteSettingRepository
	cache       *cache.Client
	mediaStore  media.Store
	mediaFolder string
	log         *slog.Logger
}

// NewSettingService creates a new setting service.
func NewSettingService(repo repository.SiteSettingRepository, cache *cache.Client, mediaStore media.Store, mediaFolder string, log *slog.Logger) SettingService {
	return &settingService{
		repo:        repo,
		cache:       cache,
		mediaStore:  mediaStore,
		mediaFolder: mediaFolder,
		log:         log,
	}
}

func (s *settingService) List(ctx context.Context) ([]model.SiteSetting, error) {
	return s.repo.List(ctx)
}

// Get returns a setting by key, served from cache when possible.
func (s *settingService) Get(ctx context.Context, key string) (*model.SiteSetting, error) {
	var cached model.SiteSetting
	if s.cache.GetJSON(ctx, settingCacheKeyPrefix+key, &cached) {
		return &cached, nil
	}

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	s.cache.SetJSON(ctx, settingCacheKeyPrefix+key, setting, settingCacheTTL)
	return setting, nil
}

// Set upserts a setting. A new image replaces and best-effort deletes the
// previously referenced asset.
func (s *settingService) Set(ctx context.Context, key, value string, image io.Reader) (*model.SiteSetting, error) {
	existing, err := s.repo.FindByKey(ctx, key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find setting: %w", err)
	}

	setting := &model.SiteSetting{Key: key, Value: value}
	oldURL := ""
	if existing != nil {
		setting.ImageURL = existing.ImageURL
	}
	if image != nil {
		url, err := s.mediaStore.Upload(ctx, image, s.mediaFolder+"/settings")
		if err != nil {
			return nil, fmt.Errorf("upload setting image: %w", err)
		}
		if existing != nil {
			oldURL = existing.ImageURL
		}
		setting.ImageURL = url
	}

	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}

	_ = s.cache.Delete(ctx, settingCacheKeyPrefix+key)
	media.DeleteByURL(ctx, s.mediaStore, oldURL, s.log)
	return setting, nil
}

// Delete removes a setting and its remote asset, best effort.
func (s *settingService) Delete(ctx context.Context, key string) error {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	_ = s.cache.Delete(ctx, settingCacheKeyPrefix+key)
	media.DeleteByURL(ctx, s.mediaStore, setting.ImageURL, s.log)
	return nil
}
