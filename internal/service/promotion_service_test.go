package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "villasol/internal/errors"
	"villasol/internal/model"
)

// MockPromotionRepository is a mock implementation of PromotionRepository.
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

func (m *MockPromotionRepository) Update(ctx context.Context, promotion *model.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, id uint) (*model.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) List(ctx context.Context) ([]model.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) ListActive(ctx context.Context) ([]model.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) AttachPackage(ctx context.Context, promotionID, packageID uint) error {
	args := m.Called(ctx, promotionID, packageID)
	return args.Error(0)
}

func (m *MockPromotionRepository) DetachPackage(ctx context.Context, promotionID, packageID uint) error {
	args := m.Called(ctx, promotionID, packageID)
	return args.Error(0)
}

func (m *MockPromotionRepository) HasPackage(ctx context.Context, promotionID, packageID uint) (bool, error) {
	args := m.Called(ctx, promotionID, packageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPromotionRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromotionRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockPackageRepository is a mock implementation of PackageRepository.
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Package), args.Error(1)
}

func (m *MockPackageRepository) List(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Package), args.Error(1)
}

func TestPromotionService_Create(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("stores the promotion inactive", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Promotion")).Return(nil)
		svc := NewPromotionService(repo, new(MockPackageRepository))

		promotion, err := svc.Create(context.Background(), PromotionInput{
			Name:      "Summer",
			StartDate: now,
			EndDate:   now.AddDate(0, 1, 0),
		})

		require.NoError(t, err)
		assert.False(t, promotion.Active, "activation is the scheduler's job")
	})

	t.Run("rejects a window that ends before it starts", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		svc := NewPromotionService(repo, new(MockPackageRepository))

		_, err := svc.Create(context.Background(), PromotionInput{
			Name:      "Backwards",
			StartDate: now,
			EndDate:   now.AddDate(0, 0, -1),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidWindow)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPromotionService_AttachPackage(t *testing.T) {
	promotion := &model.Promotion{ID: 1, Name: "Summer"}
	pkg := &model.Package{ID: 2, Name: "Escapada"}

	t.Run("links promotion and package", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		pkgRepo := new(MockPackageRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(promotion, nil)
		pkgRepo.On("FindByID", mock.Anything, uint(2)).Return(pkg, nil)
		repo.On("HasPackage", mock.Anything, uint(1), uint(2)).Return(false, nil)
		repo.On("AttachPackage", mock.Anything, uint(1), uint(2)).Return(nil)
		svc := NewPromotionService(repo, pkgRepo)

		require.NoError(t, svc.AttachPackage(context.Background(), 1, 2))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate attach is rejected", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		pkgRepo := new(MockPackageRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(promotion, nil)
		pkgRepo.On("FindByID", mock.Anything, uint(2)).Return(pkg, nil)
		repo.On("HasPackage", mock.Anything, uint(1), uint(2)).Return(true, nil)
		svc := NewPromotionService(repo, pkgRepo)

		assert.ErrorIs(t, svc.AttachPackage(context.Background(), 1, 2), apperrors.ErrAlreadyOnPromotion)
		repo.AssertNotCalled(t, "AttachPackage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown package is not found", func(t *testing.T) {
		repo := new(MockPromotionRepository)
		pkgRepo := new(MockPackageRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(promotion, nil)
		pkgRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewPromotionService(repo, pkgRepo)

		assert.ErrorIs(t, svc.AttachPackage(context.Background(), 1, 99), apperrors.ErrNotFound)
	})
}
