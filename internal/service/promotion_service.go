package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "villasol/internal/errors"
	"villasol/internal/model"
	"villasol/internal/repository"
)

// PromotionInput carries the writable fields of a promotion. Active is not
// among them: the flag is derived from the window by the scheduler.
type PromotionInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// PromotionService handles promotion operations.
type PromotionService interface {
	List(ctx context.Context) ([]model.Promotion, error)
	ListActive(ctx context.Context) ([]model.Promotion, error)
	Get(ctx context.Context, id uint) (*model.Promotion, error)
	Create(ctx context.Context, input PromotionInput) (*model.Promotion, error)
	Update(ctx context.Context, id uint, input PromotionInput) (*model.Promotion, error)
	Delete(ctx context.Context, id uint) error
	AttachPackage(ctx context.Context, promotionID, packageID uint) error
	DetachPackage(ctx context.Context, promotionID, packageID uint) error
}

type promotionService struct {
	repo        repository.PromotionRepository
	packageRepo repository.PackageRepository
}

// NewPromotionService creates a new promotion service.
func NewPromotionService(repo repository.PromotionRepository, packageRepo repository.PackageRepository) PromotionService {
	return &promotionService{repo: repo, packageRepo: packageRepo}
}

func (s *promotionService) List(ctx context.Context) ([]model.Promotion, error) {
	return s.repo.List(ctx)
}

func (s *promotionService) ListActive(ctx context.Context) ([]model.Promotion, error) {
	return s.repo.ListActive(ctx)
}

func (s *promotionService) Get(ctx context.Context, id uint) (*model.Promotion, error) {
	promotion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return promotion, nil
}

// Create stores a promotion. The flag starts false; the scheduler picks the
// promotion up on its next pass if the window already contains now.
func (s *promotionService) Create(ctx context.Context, input PromotionInput) (*model.Promotion, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.ErrInvalidWindow
	}
	promotion := &model.Promotion{
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}
	return promotion, nil
}

func (s *promotionService) Update(ctx context.Context, id uint, input PromotionInput) (*model.Promotion, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.ErrInvalidWindow
	}
	promotion, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	promotion.Name = input.Name
	promotion.StartDate = input.StartDate
	promotion.EndDate = input.EndDate
	if err := s.repo.Update(ctx, promotion); err != nil {
		return nil, fmt.Errorf("update promotion: %w", err)
	}
	return promotion, nil
}

func (s *promotionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}

// AttachPackage links a package to a promotion, rejecting duplicates.
func (s *promotionService) AttachPackage(ctx context.Context, promotionID, packageID uint) error {
	if _, err := s.Get(ctx, promotionID); err != nil {
		return err
	}
	if _, err := s.packageRepo.FindByID(ctx, packageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	exists, err := s.repo.HasPackage(ctx, promotionID, packageID)
	if err != nil {
		return fmt.Errorf("check promotion package: %w", err)
	}
	if exists {
		return apperrors.ErrAlreadyOnPromotion
	}
	if err := s.repo.AttachPackage(ctx, promotionID, packageID); err != nil {
		return fmt.Errorf("attach package: %w", err)
	}
	return nil
}

func (s *promotionService) DetachPackage(ctx context.Context, promotionID, packageID uint) error {
	if _, err := s.Get(ctx, promotionID); err != nil {
		return err
	}
	if err := s.repo.DetachPackage(ctx, promotionID, packageID); err != nil {
		return fmt.Errorf("detach package: %w", err)
	}
	return nil
}
