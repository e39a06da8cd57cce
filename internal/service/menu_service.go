package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"villasol/internal/cache"
	apperrors "villasol/internal/errors"
	"villasol/internal/media"
	"villasol/internal/model"
	"villasol/internal/repository"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

// MenuItemInput carries the writable fields of a menu item.
type MenuItemInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
}

// MenuService handles restaurant menu operations.
type MenuService interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Get(ctx context.Context, id uint) (*model.MenuItem, error)
	Create(ctx context.Context, input MenuItemInput, image io.Reader) (*model.MenuItem, error)
	Update(ctx context.Context, id uint, input MenuItemInput, image io.Reader) (*model.MenuItem, error)
	Delete(ctx context.Context, id uint) error
}

type menuService struct {
	repo        repository.MenuItemRepository
	cache       *cache.Client
	mediaStore  media.Store
	mediaFolder string
	log         *slog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuItemRepository, cache *cache.Client, mediaStore media.Store, mediaFolder string, log *slog.Logger) MenuService {
	return &menuService{
		repo:        repo,
		cache:       cache,
		mediaStore:  mediaStore,
		mediaFolder: mediaFolder,
		log:         log,
	}
}

// List returns the full menu, served from cache when possible.
func (s *menuService) List(ctx context.Context) ([]model.MenuItem, error) {
	var cached []model.MenuItem
	if s.cache.GetJSON(ctx, menuCacheKey, &cached) {
		return cached, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, menuCacheKey, items, menuCacheTTL)
	return items, nil
}

func (s *menuService) Get(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create stores a menu item, uploading its image first when one is given.
func (s *menuService) Create(ctx context.Context, input MenuItemInput, image io.Reader) (*model.MenuItem, error) {
	item := &model.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
	}
	if image != nil {
		url, err := s.mediaStore.Upload(ctx, image, s.mediaFolder+"/menu")
		if err != nil {
			return nil, fmt.Errorf("upload menu image: %w", err)
		}
		item.ImageURL = url
	}

	if err := s.repo.Create(ctx, item); err != nil {
		media.DeleteByURL(ctx, s.mediaStore, item.ImageURL, s.log)
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

// Update rewrites the item; a replaced image triggers a best-effort delete of
// the previous asset once the row is saved.
func (s *menuService) Update(ctx context.Context, id uint, input MenuItemInput, image io.Reader) (*model.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldURL := ""
	if image != nil {
		url, err := s.mediaStore.Upload(ctx, image, s.mediaFolder+"/menu")
		if err != nil {
			return nil, fmt.Errorf("upload menu image: %w", err)
		}
		oldURL = item.ImageURL
		item.ImageURL = url
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Category = input.Category
	item.Price = input.Price
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	s.invalidate(ctx)
	media.DeleteByURL(ctx, s.mediaStore, oldURL, s.log)
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	s.invalidate(ctx)
	media.DeleteByURL(ctx, s.mediaStore, item.ImageURL, s.log)
	return nil
}

func (s *menuService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, menuCacheKey)
}
