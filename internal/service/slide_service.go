package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	apperrors "villasol/internal/errors"
	"villasol/internal/media"
	"villasol/internal/model"
	"villasol/internal/repository"
)

// SlideInput carries the writable fields of a slide.
type SlideInput struct {
	Title    string
	Caption  string
	Position int
}

// SlideService handles carousel slide operations.
type SlideService interface {
	List(ctx context.Context) ([]model.Slide, error)
	Get(ctx context.Context, id uint) (*model.Slide, error)
	Create(ctx context.Context, input SlideInput, image io.Reader) (*model.Slide, error)
	Update(ctx context.Context, id uint, input SlideInput, image io.Reader) (*model.Slide, error)
	Delete(ctx context.Context, id uint) error
}

type slideService struct {
	repo        repository.SlideRepository
	mediaStore  media.Store
	mediaFolder string
	log         *slog.Logger
}

// NewSlideService creates a new slide service.
func NewSlideService(repo repository.SlideRepository, mediaStore media.Store, mediaFolder string, log *slog.Logger) SlideService {
	return &slideService{
		repo:        repo,
		mediaStore:  mediaStore,
		mediaFolder: mediaFolder,
		log:         log,
	}
}

func (s *slideService) List(ctx context.Context) ([]model.Slide, error) {
	return s.repo.List(ctx)
}

func (s *slideService) Get(ctx context.Context, id uint) (*model.Slide, error) {
	slide, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return slide, nil
}

// Create uploads the image and stores the slide. Slides always carry an image.
func (s *slideService) Create(ctx context.Context, input SlideInput, image io.Reader) (*model.Slide, error) {
	url, err := s.mediaStore.Upload(ctx, image, s.mediaFolder+"/slides")
	if err != nil {
		return nil, fmt.Errorf("upload slide image: %w", err)
	}

	slide := &model.Slide{
		Title:    input.Title,
		Caption:  input.Caption,
		Position: input.Position,
		ImageURL: url,
	}
	if err := s.repo.Create(ctx, slide); err != nil {
		// The row never existed, so reclaim the fresh upload.
		media.DeleteByURL(ctx, s.mediaStore, url, s.log)
		return nil, fmt.Errorf("create slide: %w", err)
	}
	return slide, nil
}

// Update rewrites the slide; when a new image accompanies the update the old
// remote asset is deleted best effort after the row is saved.
func (s *slideService) Update(ctx context.Context, id uint, input SlideInput, image io.Reader) (*model.Slide, error) {
	slide, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldURL := ""
	if image != nil {
		url, err := s.mediaStore.Upload(ctx, image, s.mediaFolder+"/slides")
		if err != nil {
			return nil, fmt.Errorf("upload slide image: %w", err)
		}
		oldURL = slide.ImageURL
		slide.ImageURL = url
	}

	slide.Title = input.Title
	slide.Caption = input.Caption
	slide.Position = input.Position
	if err := s.repo.Update(ctx, slide); err != nil {
		return nil, fmt.Errorf("update slide: %w", err)
	}

	media.DeleteByURL(ctx, s.mediaStore, oldURL, s.log)
	return slide, nil
}

// Delete removes the slide row, then drops the remote asset best effort.
func (s *slideService) Delete(ctx context.Context, id uint) error {
	slide, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}
	media.DeleteByURL(ctx, s.mediaStore, slide.ImageURL, s.log)
	return nil
}
