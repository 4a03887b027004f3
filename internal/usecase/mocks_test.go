package usecase_test

import (
	"context"
	"testing"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"
	"partscatalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]string)
	return cs, args.Error(1)
}

func (m *ProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	updated, _ := args.Get(0).(model.Product)
	return updated, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepoMock) RenameBrand(ctx context.Context, oldName, newName string) (int64, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) RenameManufacturer(ctx context.Context, oldName, newName string) (int64, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) ExistsByBrand(ctx context.Context, brand string) (bool, error) {
	args := m.Called(ctx, brand)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) ExistsByManufacturer(ctx context.Context, manufacturer string) (bool, error) {
	args := m.Called(ctx, manufacturer)
	return args.Bool(0), args.Error(1)
}

type BrandRepoMock struct{ mock.Mock }

var _ repo.BrandRepository = (*BrandRepoMock)(nil)

func (m *BrandRepoMock) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]model.Brand)
	return bs, args.Error(1)
}

func (m *BrandRepoMock) FindByID(ctx context.Context, id string) (model.Brand, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) FindByName(ctx context.Context, name string) (model.Brand, error) {
	args := m.Called(ctx, name)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(model.Brand)
	return created, args.Error(1)
}

func (m *BrandRepoMock) Update(ctx context.Context, b model.Brand) (model.Brand, error) {
	args := m.Called(ctx, b)
	updated, _ := args.Get(0).(model.Brand)
	return updated, args.Error(1)
}

func (m *BrandRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ManufacturerRepoMock struct{ mock.Mock }

var _ repo.ManufacturerRepository = (*ManufacturerRepoMock)(nil)

func (m *ManufacturerRepoMock) List(ctx context.Context) ([]model.Manufacturer, error) {
	args := m.Called(ctx)
	ms, _ := args.Get(0).([]model.Manufacturer)
	return ms, args.Error(1)
}

func (m *ManufacturerRepoMock) FindByID(ctx context.Context, id string) (model.Manufacturer, error) {
	args := m.Called(ctx, id)
	mf, _ := args.Get(0).(model.Manufacturer)
	return mf, args.Error(1)
}

func (m *ManufacturerRepoMock) FindByName(ctx context.Context, name string) (model.Manufacturer, error) {
	args := m.Called(ctx, name)
	mf, _ := args.Get(0).(model.Manufacturer)
	return mf, args.Error(1)
}

func (m *ManufacturerRepoMock) Create(ctx context.Context, mf model.Manufacturer) (model.Manufacturer, error) {
	args := m.Called(ctx, mf)
	created, _ := args.Get(0).(model.Manufacturer)
	return created, args.Error(1)
}

func (m *ManufacturerRepoMock) Update(ctx context.Context, mf model.Manufacturer) (model.Manufacturer, error) {
	args := m.Called(ctx, mf)
	updated, _ := args.Get(0).(model.Manufacturer)
	return updated, args.Error(1)
}

func (m *ManufacturerRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type OrderRepoMock struct{ mock.Mock }

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) AttachGatewayOrder(ctx context.Context, id string, gatewayOrderID string) error {
	return m.Called(ctx, id, gatewayOrderID).Error(0)
}

func (m *OrderRepoMock) MarkPaid(ctx context.Context, id string, v model.PaymentVerification) (model.Order, error) {
	args := m.Called(ctx, id, v)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

type PaymentGatewayMock struct{ mock.Mock }

var _ usecase.PaymentGateway = (*PaymentGatewayMock)(nil)

func (m *PaymentGatewayMock) KeyID() string { return "rzp_test_key" }

func (m *PaymentGatewayMock) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (model.GatewayOrder, error) {
	args := m.Called(ctx, amount, currency, receipt)
	o, _ := args.Get(0).(model.GatewayOrder)
	return o, args.Error(1)
}

func (m *PaymentGatewayMock) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	return m.Called(gatewayOrderID, paymentID, signature).Bool(0)
}

// Tx はそのまま同じモックで fn を呼ぶ
type fakeTx struct {
	products      *ProductRepoMock
	brands        *BrandRepoMock
	manufacturers *ManufacturerRepoMock
	orders        *OrderRepoMock
}

func (t *fakeTx) Products() repo.ProductRepository           { return t.products }
func (t *fakeTx) Brands() repo.BrandRepository               { return t.brands }
func (t *fakeTx) Manufacturers() repo.ManufacturerRepository { return t.manufacturers }
func (t *fakeTx) Orders() repo.OrderRepository               { return t.orders }

func (t *fakeTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t)
}

type fixedID string

func (f fixedID) NewID() string { return string(f) }

// =====================
// helper
// =====================

func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
		assert.Equal(t, msg, he.Message)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
