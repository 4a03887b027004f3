package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"
	"partscatalog/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderUC() (*usecase.OrderUsecase, *OrderRepoMock, *ProductRepoMock) {
	o := new(OrderRepoMock)
	p := new(ProductRepoMock)
	tx := &fakeTx{products: p, brands: new(BrandRepoMock), manufacturers: new(ManufacturerRepoMock), orders: o}
	return usecase.NewOrderUsecase(o, p, tx, fixedClock{testNow}), o, p
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var testOrderID = fmt.Sprintf("ORD-%d", testNow.UnixMilli())

// 同じ商品は1行にまとめ、合計は小数2桁に丸める
func TestOrderUsecase_PlaceOrder_MergesAndTotals(t *testing.T) {
	uc, oRepo, pRepo := newOrderUC()
	p1 := model.Product{ID: "p1", Name: "Brake Pad", Price: dec("49.90")}
	p2 := model.Product{ID: "p2", Name: "Oil Filter", Price: dec("12.345")}
	pRepo.On("FindByID", mock.Anything, "p1").Return(p1, nil).Once()
	pRepo.On("FindByID", mock.Anything, "p2").Return(p2, nil).Once()

	email := "buyer@example.com"
	saved := model.Order{
		ID:            testOrderID,
		Date:          "2026-01-02",
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		Total:         dec("112.15"),
		CustomerEmail: &email,
		Items: []model.OrderItem{
			{OrderID: testOrderID, ProductID: "p1", Name: "Brake Pad", UnitPrice: p1.Price, Quantity: 2},
			{OrderID: testOrderID, ProductID: "p2", Name: "Oil Filter", UnitPrice: p2.Price, Quantity: 1},
		},
	}
	oRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ID == testOrderID &&
			o.Date == "2026-01-02" &&
			o.Total.Equal(dec("112.15")) &&
			o.CustomerEmail != nil && *o.CustomerEmail == email &&
			len(o.Items) == 2 &&
			o.Items[0].ProductID == "p1" && o.Items[0].Quantity == 2 && o.Items[0].Name == "Brake Pad" &&
			o.Items[1].ProductID == "p2" && o.Items[1].Quantity == 1
	})).Return(saved, nil)

	padded := " buyer@example.com "
	out, err := uc.PlaceOrder(context.Background(), model.OrderInput{
		Items: []model.OrderItemInput{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 1},
			{ProductID: " p1 ", Quantity: 1},
		},
		CustomerEmail: &padded,
	})
	require.NoError(t, err)

	assert.Equal(t, testOrderID, out.ID)
	assert.Equal(t, "2026-01-02", out.Date)
	assert.Equal(t, model.OrderStatusPending, out.Status)
	assert.Equal(t, model.PaymentStatusPending, out.PaymentStatus)
	assert.True(t, dec("112.15").Equal(out.Total), "total %s", out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, p1, out.Items[0].Product)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.Equal(t, p2, out.Items[1].Product)
	assert.Equal(t, 1, out.Items[1].Quantity)
	pRepo.AssertExpectations(t)
	oRepo.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_UnknownProduct(t *testing.T) {
	uc, oRepo, pRepo := newOrderUC()
	pRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", Price: dec("1")}, nil)
	pRepo.On("FindByID", mock.Anything, "ghost").Return(nil, repo.ErrNotFound)

	_, err := uc.PlaceOrder(context.Background(), model.OrderInput{
		Items: []model.OrderItemInput{{ProductID: "p1", Quantity: 1}, {ProductID: "ghost", Quantity: 2}},
	})
	assertHTTPError(t, err, http.StatusBadRequest, "Unknown product: ghost")
	oRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_InvalidItems(t *testing.T) {
	cases := map[string]struct {
		items []model.OrderItemInput
		msg   string
	}{
		"empty":         {nil, "Order must contain at least one item"},
		"blank id":      {[]model.OrderItemInput{{ProductID: " ", Quantity: 1}}, "productId required"},
		"zero quantity": {[]model.OrderItemInput{{ProductID: "p1", Quantity: 0}}, "quantity must be > 0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc, _, pRepo := newOrderUC()
			_, err := uc.PlaceOrder(context.Background(), model.OrderInput{Items: tc.items})
			assertHTTPError(t, err, http.StatusBadRequest, tc.msg)
			pRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

// 同じミリ秒で ID がぶつかったら 409
func TestOrderUsecase_PlaceOrder_IDCollision(t *testing.T) {
	uc, oRepo, pRepo := newOrderUC()
	pRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", Price: dec("5")}, nil)
	oRepo.On("Create", mock.Anything, mock.Anything).Return(nil, repo.ErrConflict)

	_, err := uc.PlaceOrder(context.Background(), model.OrderInput{
		Items: []model.OrderItemInput{{ProductID: "p1", Quantity: 1}},
	})
	assertHTTPError(t, err, http.StatusConflict, "Order id collision, please retry")
}

// 消えた商品は注文時のスナップショットで返す。商品の取得は id ごとに1回
func TestOrderUsecase_ListOrders(t *testing.T) {
	uc, oRepo, pRepo := newOrderUC()
	orders := []model.Order{
		{
			ID: "ORD-2", Date: "2026-01-03", Status: model.OrderStatusConfirmed, PaymentStatus: model.PaymentStatusPaid,
			Total: dec("30"),
			Items: []model.OrderItem{
				{OrderID: "ORD-2", ProductID: "p1", Name: "Old Name", UnitPrice: dec("10"), Quantity: 3},
			},
		},
		{
			ID: "ORD-1", Date: "2026-01-02", Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending,
			Total: dec("25"),
			Items: []model.OrderItem{
				{OrderID: "ORD-1", ProductID: "p1", Name: "Old Name", UnitPrice: dec("10"), Quantity: 1},
				{OrderID: "ORD-1", ProductID: "gone", Name: "Retired Part", UnitPrice: dec("15"), Quantity: 1},
			},
		},
	}
	current := model.Product{ID: "p1", Name: "New Name", Price: dec("12")}
	oRepo.On("List", mock.Anything).Return(orders, nil)
	pRepo.On("FindByID", mock.Anything, "p1").Return(current, nil).Once()
	pRepo.On("FindByID", mock.Anything, "gone").Return(nil, repo.ErrNotFound).Once()

	out, err := uc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "ORD-2", out[0].ID)
	assert.Equal(t, model.PaymentStatusPaid, out[0].PaymentStatus)
	assert.Equal(t, current, out[0].Items[0].Product)
	assert.Equal(t, 3, out[0].Items[0].Quantity)

	require.Len(t, out[1].Items, 2)
	gone := out[1].Items[1].Product
	assert.Equal(t, "gone", gone.ID)
	assert.Equal(t, "Retired Part", gone.Name)
	assert.True(t, dec("15").Equal(gone.Price))
	pRepo.AssertExpectations(t)
}

func TestOrderUsecase_ListOrders_DBError(t *testing.T) {
	uc, oRepo, _ := newOrderUC()
	oRepo.On("List", mock.Anything).Return(nil, errors.New("boom"))

	_, err := uc.ListOrders(context.Background())
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")
}
