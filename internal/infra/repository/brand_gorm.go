package repository

import (
	"context"
	"time"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	db *gorm.DB
}

func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context) ([]model.Brand, error) {
	brands := []model.Brand{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandGormRepository) FindByID(ctx context.Context, id string) (model.Brand, error) {
	var b model.Brand
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return model.Brand{}, translateError(err)
	}
	return b, nil
}

func (r *BrandGormRepository) FindByName(ctx context.Context, name string) (model.Brand, error) {
	var b model.Brand
	if err := r.db.WithContext(ctx).First(&b, "name = ?", name).Error; err != nil {
		return model.Brand{}, translateError(err)
	}
	return b, nil
}

func (r *BrandGormRepository) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return model.Brand{}, translateError(err)
	}
	return b, nil
}

func (r *BrandGormRepository) Update(ctx context.Context, b model.Brand) (model.Brand, error) {
	res := r.db.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":       b.Name,
		"logo_url":   b.LogoURL,
		"logo_hint":  b.LogoHint,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return model.Brand{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Brand{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, b.ID)
}

func (r *BrandGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Brand{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
