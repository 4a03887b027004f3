package admin

import (
	"context"

	"partscatalog/internal/apiclient"
	"partscatalog/internal/domain/model"
)

// Gateway は1種類のエンティティに対する API 呼び出し。
type Gateway[E, P any] interface {
	Mutator[E, P]
	List(ctx context.Context) ([]E, error)
	Delete(ctx context.Context, id string) error
}

// API は管理画面が使う ApiClient の範囲。*apiclient.Client が満たす。
type API interface {
	ListProducts(ctx context.Context, f apiclient.ProductFilter) (model.ProductList, error)
	CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, in model.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListBrands(ctx context.Context) ([]model.Brand, error)
	CreateBrand(ctx context.Context, in model.BrandInput) (model.Brand, error)
	UpdateBrand(ctx context.Context, id string, in model.BrandInput) (model.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	CreateManufacturer(ctx context.Context, in model.ManufacturerInput) (model.Manufacturer, error)
	UpdateManufacturer(ctx context.Context, id string, in model.ManufacturerInput) (model.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id string) error
}

var _ API = (*apiclient.Client)(nil)

type productGateway struct{ api API }

func (g productGateway) List(ctx context.Context) ([]model.Product, error) {
	list, err := g.api.ListProducts(ctx, apiclient.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (g productGateway) Create(ctx context.Context, in model.ProductInput) (model.Product, error) {
	return g.api.CreateProduct(ctx, in)
}

func (g productGateway) Update(ctx context.Context, id string, in model.ProductInput) (model.Product, error) {
	return g.api.UpdateProduct(ctx, id, in)
}

func (g productGateway) Delete(ctx context.Context, id string) error {
	return g.api.DeleteProduct(ctx, id)
}

type brandGateway struct{ api API }

func (g brandGateway) List(ctx context.Context) ([]model.Brand, error) {
	return g.api.ListBrands(ctx)
}

func (g brandGateway) Create(ctx context.Context, in model.BrandInput) (model.Brand, error) {
	return g.api.CreateBrand(ctx, in)
}

func (g brandGateway) Update(ctx context.Context, id string, in model.BrandInput) (model.Brand, error) {
	return g.api.UpdateBrand(ctx, id, in)
}

func (g brandGateway) Delete(ctx context.Context, id string) error {
	return g.api.DeleteBrand(ctx, id)
}

type manufacturerGateway struct{ api API }

func (g manufacturerGateway) List(ctx context.Context) ([]model.Manufacturer, error) {
	return g.api.ListManufacturers(ctx)
}

func (g manufacturerGateway) Create(ctx context.Context, in model.ManufacturerInput) (model.Manufacturer, error) {
	return g.api.CreateManufacturer(ctx, in)
}

func (g manufacturerGateway) Update(ctx context.Context, id string, in model.ManufacturerInput) (model.Manufacturer, error) {
	return g.api.UpdateManufacturer(ctx, id, in)
}

func (g manufacturerGateway) Delete(ctx context.Context, id string) error {
	return g.api.DeleteManufacturer(ctx, id)
}
