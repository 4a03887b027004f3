package admin_test

import (
	"context"

	"partscatalog/internal/admin"
	"partscatalog/internal/apiclient"
	"partscatalog/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

// =====================
// API モック
// =====================

type APIMock struct{ mock.Mock }

var _ admin.API = (*APIMock)(nil)

func (m *APIMock) ListProducts(ctx context.Context, f apiclient.ProductFilter) (model.ProductList, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).(model.ProductList)
	return list, args.Error(1)
}

func (m *APIMock) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *APIMock) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (model.Product, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *APIMock) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) ListBrands(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]model.Brand)
	return bs, args.Error(1)
}

func (m *APIMock) CreateBrand(ctx context.Context, in model.BrandInput) (model.Brand, error) {
	args := m.Called(ctx, in)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *APIMock) UpdateBrand(ctx context.Context, id string, in model.BrandInput) (model.Brand, error) {
	args := m.Called(ctx, id, in)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *APIMock) DeleteBrand(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *APIMock) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	args := m.Called(ctx)
	ms, _ := args.Get(0).([]model.Manufacturer)
	return ms, args.Error(1)
}

func (m *APIMock) CreateManufacturer(ctx context.Context, in model.ManufacturerInput) (model.Manufacturer, error) {
	args := m.Called(ctx, in)
	mf, _ := args.Get(0).(model.Manufacturer)
	return mf, args.Error(1)
}

func (m *APIMock) UpdateManufacturer(ctx context.Context, id string, in model.ManufacturerInput) (model.Manufacturer, error) {
	args := m.Called(ctx, id, in)
	mf, _ := args.Get(0).(model.Manufacturer)
	return mf, args.Error(1)
}

func (m *APIMock) DeleteManufacturer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// =====================
// helper
// =====================

func confirmAlways(answer bool) admin.ConfirmFunc {
	return func(ctx context.Context, prompt string) (bool, error) {
		return answer, nil
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
