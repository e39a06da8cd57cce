package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"villasol/internal/model"
)

// SiteSettingRepository defines site setting persistence operations.
type SiteSettingRepository interface {
	Upsert(ctx context.Context, setting *model.SiteSetting) error
	FindByKey(ctx context.Context, key string) (*model.SiteSetting, error)
	List(ctx context.Context) ([]model.SiteSetting, error)
	Delete(ctx context.Context, key string) error
}

type siteSettingRepository struct {
	db *gorm.DB
}

// NewSiteSettingRepository creates a new site setting repository.
func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepository {
	return &siteSettingRepository{db: db}
}

// Upsert inserts the setting or updates value and image for an existing key.
func (r *siteSettingRepository) Upsert(ctx context.Context, setting *model.SiteSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "image_url", "updated_at"}),
	}).Create(setting).Error
}

func (r *siteSettingRepository) FindByKey(ctx context.Context, key string) (*model.SiteSetting, error) {
	var setting model.SiteSetting
	if err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *siteSettingRepository) List(ctx context.Context) ([]model.SiteSetting, error) {
	var settings []model.SiteSetting
	if err := r.db.WithContext(ctx).Order("`key`").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *siteSettingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("`key` = ?", key).Delete(&model.SiteSetting{}).Error
}
