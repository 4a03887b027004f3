package repository

import (
	"context"

	"partscatalog/internal/domain/model"
)

type ManufacturerRepository interface {
	List(ctx context.Context) ([]model.Manufacturer, error)
	FindByID(ctx context.Context, id string) (model.Manufacturer, error)
	FindByName(ctx context.Context, name string) (model.Manufacturer, error)

	Create(ctx context.Context, m model.Manufacturer) (model.Manufacturer, error)
	Update(ctx context.Context, m model.Manufacturer) (model.Manufacturer, error)
	Delete(ctx context.Context, id string) error
}
