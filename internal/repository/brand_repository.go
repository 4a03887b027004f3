package repository

import (
	"context"

	"partscatalog/internal/domain/model"
)

type BrandRepository interface {
	List(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id string) (model.Brand, error)
	FindByName(ctx context.Context, name string) (model.Brand, error)

	Create(ctx context.Context, b model.Brand) (model.Brand, error)
	Update(ctx context.Context, b model.Brand) (model.Brand, error)
	Delete(ctx context.Context, id string) error
}
