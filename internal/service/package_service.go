package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "villasol/internal/errors"
	"villasol/internal/model"
	"villasol/internal/repository"
)

// PackageInput carries the writable fields of a stay package.
type PackageInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Nights      int
	People      int
}

// PackageService handles stay package operations.
type PackageService interface {
	List(ctx context.Context) ([]model.Package, error)
	Get(ctx context.Context, id uint) (*model.Package, error)
	Create(ctx context.Context, input PackageInput) (*model.Package, error)
	Update(ctx context.Context, id uint, input PackageInput) (*model.Package, error)
	Delete(ctx context.Context, id uint) error
}

type packageService struct {
	repo repository.PackageRepository
}

// NewPackageService creates a new package service.
func NewPackageService(repo repository.PackageRepository) PackageService {
	return &packageService{repo: repo}
}

func (s *packageService) List(ctx context.Context) ([]model.Package, error) {
	return s.repo.List(ctx)
}

func (s *packageService) Get(ctx context.Context, id uint) (*model.Package, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) Create(ctx context.Context, input PackageInput) (*model.Package, error) {
	pkg := &model.Package{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Nights:      input.Nights,
		People:      input.People,
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

func (s *packageService) Update(ctx context.Context, id uint, input PackageInput) (*model.Package, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg.Name = input.Name
	pkg.Description = input.Description
	pkg.Price = input.Price
	pkg.Nights = input.Nights
	pkg.People = input.People
	if err := s.repo.Update(ctx, pkg); err != nil {
		return nil, fmt.Errorf("update package: %w", err)
	}
	return pkg, nil
}

func (s *packageService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}
