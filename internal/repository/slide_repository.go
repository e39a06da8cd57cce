package repository

import (
	"context"

	"gorm.io/gorm"

	"villasol/internal/model"
)

// SlideRepository defines slide persistence operations.
type SlideRepository interface {
	Create(ctx context.Context, slide *model.Slide) error
	Update(ctx context.Context, slide *model.Slide) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Slide, error)
	List(ctx context.Context) ([]model.Slide, error)
}

type slideRepository struct {
	db *gorm.DB
}

// NewSlideRepository creates a new slide repository.
func NewSlideRepository(db *gorm.DB) SlideRepository {
	return &slideRepository{db: db}
}

func (r *slideRepository) Create(ctx context.Context, slide *model.Slide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

func (r *slideRepository) Update(ctx context.Context, slide *model.Slide) error {
	return r.db.WithContext(ctx).Save(slide).Error
}

func (r *slideRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Slide{}, id).Error
}

func (r *slideRepository) FindByID(ctx context.Context, id uint) (*model.Slide, error) {
	var slide model.Slide
	if err := r.db.WithContext(ctx).First(&slide, id).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

// List returns slides in carousel order.
func (r *slideRepository) List(ctx context.Context) ([]model.Slide, error) {
	var slides []model.Slide
	if err := r.db.WithContext(ctx).Order("position, id").Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}
