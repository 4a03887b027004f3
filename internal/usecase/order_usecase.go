package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
	tx       repo.TransactionManager
	clock    Clock
}

func NewOrderUsecase(orders repo.OrderRepository, products repo.ProductRepository, tx repo.TransactionManager, clock Clock) *OrderUsecase {
	return &OrderUsecase{orders: orders, products: products, tx: tx, clock: clock}
}

// PlaceOrder は注文を確定する。
// 合計は 単価 × 数量 の和（小数2桁）。知らない商品が1つでもあれば 400。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in model.OrderInput) (model.OrderView, error) {
	lines, err := mergeOrderItems(in.Items)
	if err != nil {
		return model.OrderView{}, err
	}

	now := u.clock.Now().UTC()
	order := model.Order{
		ID:            fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Date:          now.Format("2006-01-02"),
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		CustomerEmail: trimmedOrNil(in.CustomerEmail),
	}
	if a := in.ShippingAddress; a != nil {
		order.ShippingLine1 = &a.Line1
		order.ShippingCity = &a.City
		order.ShippingCountry = &a.Country
		order.ShippingZip = &a.PostalCode
	}

	var out model.OrderView
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		current := make(map[string]model.Product, len(lines))
		total := decimal.Zero

		for _, it := range lines {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return badRequest("Unknown product: " + it.ProductID)
			}
			if err != nil {
				return dbError()
			}
			current[p.ID] = p

			//スナップショット
			order.Items = append(order.Items, model.OrderItem{
				OrderID:   order.ID,
				ProductID: p.ID,
				Name:      p.Name,
				UnitPrice: p.Price,
				Quantity:  it.Quantity,
			})
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		order.Total = total.Round(2)

		created, err := r.Orders().Create(ctx, order)
		if errors.Is(err, repo.ErrConflict) {
			// 同じミリ秒の注文
			return NewHTTPError(http.StatusConflict, "Order id collision, please retry")
		}
		if err != nil {
			return dbError()
		}
		out = toOrderView(created, func(id string) (model.Product, bool) {
			p, ok := current[id]
			return p, ok
		})
		return nil
	})
	if err != nil {
		return model.OrderView{}, err
	}
	return out, nil
}

// ListOrders は新しい順に全注文を返す。明細の商品は今の商品情報（消えていればスナップショット）。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.OrderView, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, dbError()
	}

	cache := map[string]*model.Product{}
	var lookupErr error
	lookup := func(id string) (model.Product, bool) {
		if p, ok := cache[id]; ok {
			if p == nil {
				return model.Product{}, false
			}
			return *p, true
		}
		p, err := u.products.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			cache[id] = nil
			return model.Product{}, false
		}
		if err != nil {
			lookupErr = err
			return model.Product{}, false
		}
		cache[id] = &p
		return p, true
	}

	out := make([]model.OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o, lookup))
		if lookupErr != nil {
			return nil, dbError()
		}
	}
	return out, nil
}

// 同じ商品は数量をまとめる（最初に出てきた順）
func mergeOrderItems(items []model.OrderItemInput) ([]model.OrderItemInput, error) {
	if len(items) == 0 {
		return nil, badRequest("Order must contain at least one item")
	}
	out := make([]model.OrderItemInput, 0, len(items))
	index := map[string]int{}
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" {
			return nil, badRequest("productId required")
		}
		if it.Quantity <= 0 {
			return nil, badRequest("quantity must be > 0")
		}
		if i, ok := index[id]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[id] = len(out)
		out = append(out, model.OrderItemInput{ProductID: id, Quantity: it.Quantity})
	}
	return out, nil
}

func toOrderView(o model.Order, lookup func(id string) (model.Product, bool)) model.OrderView {
	lines := make([]model.OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		p, ok := lookup(it.ProductID)
		if !ok {
			p = model.Product{ID: it.ProductID, Name: it.Name, Price: it.UnitPrice}
		}
		lines = append(lines, model.OrderLine{Product: p, Quantity: it.Quantity})
	}
	return model.OrderView{
		ID:              o.ID,
		Date:            o.Date,
		Status:          o.Status,
		Total:           o.Total,
		Items:           lines,
		PaymentStatus:   o.PaymentStatus,
		RazorpayOrderID: o.RazorpayOrderID,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
