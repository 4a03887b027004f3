package catalog_test

import (
	"context"
	"errors"
	"testing"

	"partscatalog/internal/apiclient"
	"partscatalog/internal/catalog"
	"partscatalog/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SourceMock struct{ mock.Mock }

func (m *SourceMock) ListProducts(ctx context.Context, f apiclient.ProductFilter) (model.ProductList, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).(model.ProductList)
	return list, args.Error(1)
}

func (m *SourceMock) GetProduct(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *SourceMock) ListBrands(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]model.Brand)
	return bs, args.Error(1)
}

func (m *SourceMock) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	args := m.Called(ctx)
	ms, _ := args.Get(0).([]model.Manufacturer)
	return ms, args.Error(1)
}

func (m *SourceMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]string)
	return cs, args.Error(1)
}

var _ catalog.Source = (*SourceMock)(nil)

func intPtr(i int) *int { return &i }

func TestStorefront_Load(t *testing.T) {
	src := new(SourceMock)
	products := sampleProducts()
	src.On("ListProducts", mock.Anything, apiclient.ProductFilter{}).Return(model.ProductList{Items: products, Total: 5}, nil)
	src.On("ListBrands", mock.Anything).Return([]model.Brand{{ID: "b2", Name: "Mann"}, {ID: "b1", Name: "Bosch"}}, nil)
	src.On("ListManufacturers", mock.Anything).Return([]model.Manufacturer{{ID: "m1", Name: "Toyota"}}, nil)
	src.On("ListCategories", mock.Anything).Return([]string{"Brakes", "Engine"}, nil)

	snap, err := catalog.NewStorefront(src).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Products, 5)
	opts := snap.Options()
	assert.Equal(t, []string{"Bosch", "Mann"}, opts.Brands)
	assert.Equal(t, []string{"Brakes", "Engine"}, opts.Categories)
	assert.Equal(t, []string{"Toyota"}, opts.Manufacturers)

	visible := snap.Visible(catalog.Facets{Category: catalog.Only("Engine")})
	assert.Equal(t, []string{"2", "4"}, ids(visible))
}

// どれか1つ失敗したら全体が失敗
func TestStorefront_Load_FailsOnAnyError(t *testing.T) {
	src := new(SourceMock)
	boom := errors.New("boom")
	src.On("ListProducts", mock.Anything, apiclient.ProductFilter{}).Return(model.ProductList{}, nil)
	src.On("ListBrands", mock.Anything).Return(nil, boom)
	src.On("ListManufacturers", mock.Anything).Return([]model.Manufacturer{}, nil)
	src.On("ListCategories", mock.Anything).Return([]string{}, nil)

	_, err := catalog.NewStorefront(src).Load(context.Background())
	assert.ErrorIs(t, err, boom)
}

// カテゴリが空なら既定のカテゴリを出す
func TestSnapshot_Options_DefaultCategories(t *testing.T) {
	opts := catalog.Snapshot{}.Options()
	assert.Equal(t, model.Categories, opts.Categories)
	assert.Empty(t, opts.Brands)
}

func TestStorefront_Detail(t *testing.T) {
	src := new(SourceMock)
	p := model.Product{ID: "p1", Name: "Brake Pad", Category: "Brakes", Price: decimal.RequireFromString("100"), Discount: intPtr(15)}
	src.On("GetProduct", mock.Anything, "p1").Return(p, nil)
	src.On("ListProducts", mock.Anything, apiclient.ProductFilter{Category: "Brakes"}).Return(model.ProductList{Items: []model.Product{
		{ID: "p1", Category: "Brakes"},
		{ID: "p2", Category: "Brakes"},
		{ID: "p3", Category: "Brake Lines"},
		{ID: "p4", Category: "Brakes"},
		{ID: "p5", Category: "Brakes"},
		{ID: "p6", Category: "Brakes"},
		{ID: "p7", Category: "Brakes"},
	}}, nil)

	d, err := catalog.NewStorefront(src).Detail(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", d.Product.ID)
	assert.True(t, decimal.RequireFromString("85").Equal(d.DiscountedPrice))
	assert.Equal(t, []string{"p2", "p4", "p5", "p6"}, ids(d.Related))
}

func TestStorefront_Detail_NotFound(t *testing.T) {
	src := new(SourceMock)
	notFound := &apiclient.Error{Kind: apiclient.NotFound, Status: 404, Message: "Product not found"}
	src.On("GetProduct", mock.Anything, "nope").Return(model.Product{}, notFound)

	_, err := catalog.NewStorefront(src).Detail(context.Background(), "nope")
	assert.Equal(t, apiclient.NotFound, apiclient.KindOf(err))
	src.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
}
