package server_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"
)

// =====================
// メモリ上のリポジトリ（ルーティング確認用）
// =====================

type memStore struct {
	mu            sync.Mutex
	products      []model.Product
	brands        []model.Brand
	manufacturers []model.Manufacturer
	orders        []model.Order
}

type memProducts struct{ s *memStore }
type memBrands struct{ s *memStore }
type memManufacturers struct{ s *memStore }

func (r memProducts) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []model.Product{}
	for _, p := range r.s.products {
		if q.Q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Q)) {
			continue
		}
		if q.Brand != "" && !strings.EqualFold(p.Brand, q.Brand) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r memProducts) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r memProducts) Categories(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, p := range r.s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r memProducts) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

func (r memProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, p)
	return p, nil
}

func (r memProducts) Update(ctx context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == p.ID {
			r.s.products[i] = p
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r memProducts) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r memProducts) RenameBrand(ctx context.Context, oldName, newName string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i := range r.s.products {
		if r.s.products[i].Brand == oldName {
			r.s.products[i].Brand = newName
			n++
		}
	}
	return n, nil
}

func (r memProducts) RenameManufacturer(ctx context.Context, oldName, newName string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i := range r.s.products {
		if r.s.products[i].ManufacturerName() == oldName {
			name := newName
			r.s.products[i].Manufacturer = &name
			n++
		}
	}
	return n, nil
}

func (r memProducts) ExistsByBrand(ctx context.Context, brand string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Brand == brand {
			return true, nil
		}
	}
	return false, nil
}

func (r memProducts) ExistsByManufacturer(ctx context.Context, manufacturer string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ManufacturerName() == manufacturer {
			return true, nil
		}
	}
	return false, nil
}

func (r memBrands) List(ctx context.Context) ([]model.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]model.Brand{}, r.s.brands...), nil
}

func (r memBrands) find(match func(model.Brand) bool) (model.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.brands {
		if match(b) {
			return b, nil
		}
	}
	return model.Brand{}, repo.ErrNotFound
}

func (r memBrands) FindByID(ctx context.Context, id string) (model.Brand, error) {
	return r.find(func(b model.Brand) bool { return b.ID == id })
}

func (r memBrands) FindByName(ctx context.Context, name string) (model.Brand, error) {
	return r.find(func(b model.Brand) bool { return b.Name == name })
}

func (r memBrands) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.brands = append(r.s.brands, b)
	return b, nil
}

func (r memBrands) Update(ctx context.Context, b model.Brand) (model.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.brands {
		if r.s.brands[i].ID == b.ID {
			r.s.brands[i] = b
			return b, nil
		}
	}
	return model.Brand{}, repo.ErrNotFound
}

func (r memBrands) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.brands {
		if r.s.brands[i].ID == id {
			r.s.brands = append(r.s.brands[:i], r.s.brands[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r memManufacturers) List(ctx context.Context) ([]model.Manufacturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]model.Manufacturer{}, r.s.manufacturers...), nil
}

func (r memManufacturers) find(match func(model.Manufacturer) bool) (model.Manufacturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.manufacturers {
		if match(m) {
			return m, nil
		}
	}
	return model.Manufacturer{}, repo.ErrNotFound
}

func (r memManufacturers) FindByID(ctx context.Context, id string) (model.Manufacturer, error) {
	return r.find(func(m model.Manufacturer) bool { return m.ID == id })
}

func (r memManufacturers) FindByName(ctx context.Context, name string) (model.Manufacturer, error) {
	return r.find(func(m model.Manufacturer) bool { return m.Name == name })
}

func (r memManufacturers) Create(ctx context.Context, m model.Manufacturer) (model.Manufacturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.manufacturers = append(r.s.manufacturers, m)
	return m, nil
}

func (r memManufacturers) Update(ctx context.Context, m model.Manufacturer) (model.Manufacturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.manufacturers {
		if r.s.manufacturers[i].ID == m.ID {
			r.s.manufacturers[i] = m
			return m, nil
		}
	}
	return model.Manufacturer{}, repo.ErrNotFound
}

func (r memManufacturers) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.manufacturers {
		if r.s.manufacturers[i].ID == id {
			r.s.manufacturers = append(r.s.manufacturers[:i], r.s.manufacturers[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type memOrders struct{ s *memStore }

// 新しい順
func (r memOrders) List(ctx context.Context) ([]model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Order, 0, len(r.s.orders))
	for i := len(r.s.orders) - 1; i >= 0; i-- {
		out = append(out, r.s.orders[i])
	}
	return out, nil
}

func (r memOrders) FindByID(ctx context.Context, id string) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r memOrders) Create(ctx context.Context, o model.Order) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.orders {
		if cur.ID == o.ID {
			return model.Order{}, repo.ErrConflict
		}
	}
	r.s.orders = append(r.s.orders, o)
	return o, nil
}

func (r memOrders) AttachGatewayOrder(ctx context.Context, id string, gatewayOrderID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			r.s.orders[i].RazorpayOrderID = &gatewayOrderID
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r memOrders) MarkPaid(ctx context.Context, id string, v model.PaymentVerification) (model.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.orders {
		if r.s.orders[i].ID == id {
			o := &r.s.orders[i]
			o.PaymentStatus = model.PaymentStatusPaid
			o.Status = model.OrderStatusConfirmed
			o.RazorpayOrderID = &v.RazorpayOrderID
			o.RazorpayPaymentID = &v.RazorpayPaymentID
			o.RazorpaySignature = &v.RazorpaySignature
			return *o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

// Tx は同じストアをそのまま使う
type memTx struct{ s *memStore }

func (t memTx) Products() repo.ProductRepository           { return memProducts{t.s} }
func (t memTx) Brands() repo.BrandRepository               { return memBrands{t.s} }
func (t memTx) Manufacturers() repo.ManufacturerRepository { return memManufacturers{t.s} }
func (t memTx) Orders() repo.OrderRepository               { return memOrders{t.s} }

func (t memTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t)
}

type seqID struct {
	mu sync.Mutex
	n  int
}

func (g *seqID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "id-" + string(rune('0'+g.n))
}

// 呼ぶたびに 1ms 進む時計（注文IDが重ならない）
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

// 署名は "ok:<order>|<payment>" だけを正とする
type fakeGateway struct{}

func (fakeGateway) KeyID() string { return "rzp_test_key" }

func (fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (model.GatewayOrder, error) {
	return model.GatewayOrder{ID: "order_" + receipt, Amount: amount, Currency: currency}, nil
}

func (fakeGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	return signature == "ok:"+gatewayOrderID+"|"+paymentID
}
