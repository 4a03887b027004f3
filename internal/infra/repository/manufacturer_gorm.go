package repository

import (
	"context"
	"time"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ManufacturerGormRepository struct {
	db *gorm.DB
}

func NewManufacturerGormRepository(db *gorm.DB) *ManufacturerGormRepository {
	return &ManufacturerGormRepository{db: db}
}

func (r *ManufacturerGormRepository) List(ctx context.Context) ([]model.Manufacturer, error) {
	mans := []model.Manufacturer{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&mans).Error; err != nil {
		return nil, err
	}
	return mans, nil
}

func (r *ManufacturerGormRepository) FindByID(ctx context.Context, id string) (model.Manufacturer, error) {
	var m model.Manufacturer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return model.Manufacturer{}, translateError(err)
	}
	return m, nil
}

func (r *ManufacturerGormRepository) FindByName(ctx context.Context, name string) (model.Manufacturer, error) {
	var m model.Manufacturer
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		return model.Manufacturer{}, translateError(err)
	}
	return m, nil
}

func (r *ManufacturerGormRepository) Create(ctx context.Context, m model.Manufacturer) (model.Manufacturer, error) {
	if m.Models == nil {
		m.Models = pq.StringArray{}
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Manufacturer{}, translateError(err)
	}
	return m, nil
}

func (r *ManufacturerGormRepository) Update(ctx context.Context, m model.Manufacturer) (model.Manufacturer, error) {
	models := m.Models
	if models == nil {
		models = pq.StringArray{}
	}
	res := r.db.WithContext(ctx).Model(&model.Manufacturer{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"name":         m.Name,
		"image_base64": m.ImageBase64,
		"models":       models,
		"updated_at":   time.Now(),
	})
	if res.Error != nil {
		return model.Manufacturer{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Manufacturer{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, m.ID)
}

func (r *ManufacturerGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Manufacturer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
