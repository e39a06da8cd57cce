package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"villasol/internal/model"
)

// PromotionRepository defines promotion persistence operations, including the
// two bulk updates the scheduler runs every tick.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *model.Promotion) error
	Update(ctx context.Context, promotion *model.Promotion) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Promotion, error)
	List(ctx context.Context) ([]model.Promotion, error)
	ListActive(ctx context.Context) ([]model.Promotion, error)
	AttachPackage(ctx context.Context, promotionID, packageID uint) error
	DetachPackage(ctx context.Context, promotionID, packageID uint) error
	HasPackage(ctx context.Context, promotionID, packageID uint) (bool, error)
	ActivateDue(ctx context.Context, now time.Time) (int64, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository.
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

// Create creates a new promotion.
func (r *promotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

// Update updates an existing promotion.
func (r *promotionRepository) Update(ctx context.Context, promotion *model.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

// Delete removes a promotion together with its package links.
func (r *promotionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", id).Delete(&model.PromotionPackage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Promotion{}, id).Error
	})
}

// FindByID finds a promotion by ID with its packages preloaded.
func (r *promotionRepository) FindByID(ctx context.Context, id uint) (*model.Promotion, error) {
	var promotion model.Promotion
	if err := r.db.WithContext(ctx).Preload("Packages").First(&promotion, id).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

// List lists all promotions.
func (r *promotionRepository) List(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.WithContext(ctx).Order("start_date").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// ListActive lists promotions currently flagged active, packages included.
func (r *promotionRepository) ListActive(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := r.db.WithContext(ctx).Preload("Packages").
		Where("active = ?", true).
		Order("end_date").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// AttachPackage links a package to a promotion.
func (r *promotionRepository) AttachPackage(ctx context.Context, promotionID, packageID uint) error {
	link := model.PromotionPackage{PromotionID: promotionID, PackageID: packageID}
	return r.db.WithContext(ctx).Create(&link).Error
}

// DetachPackage removes the link between a package and a promotion.
func (r *promotionRepository) DetachPackage(ctx context.Context, promotionID, packageID uint) error {
	return r.db.WithContext(ctx).
		Where("promotion_id = ? AND package_id = ?", promotionID, packageID).
		Delete(&model.PromotionPackage{}).Error
}

// HasPackage reports whether the package is already linked to the promotion.
func (r *promotionRepository) HasPackage(ctx context.Context, promotionID, packageID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PromotionPackage{}).
		Where("promotion_id = ? AND package_id = ?", promotionID, packageID).
		Count(&count).Error
	return count > 0, err
}

// ActivateDue flags promotions whose window contains now. Rows already active
// are untouched, which keeps repeated ticks write-free.
func (r *promotionRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Promotion{}).
		Where("start_date <= ? AND end_date >= ? AND active = ?", now, now, false).
		Update("active", true)
	return res.RowsAffected, res.Error
}

// DeactivateExpired clears the flag on promotions whose window has elapsed.
func (r *promotionRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Promotion{}).
		Where("end_date < ? AND active = ?", now, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}
