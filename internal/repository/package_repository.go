package repository

import (
	"context"

	"gorm.io/gorm"

	"villasol/internal/model"
)

// PackageRepository defines package persistence operations.
type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Package, error)
	List(ctx context.Context) ([]model.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository.
func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) Update(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

// Delete removes a package and any promotion links pointing at it.
func (r *packageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&model.PromotionPackage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Package{}, id).Error
	})
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*model.Package, error) {
	var pkg model.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context) ([]model.Package, error) {
	var pkgs []model.Package
	if err := r.db.WithContext(ctx).Order("price").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}
