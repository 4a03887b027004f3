package catalog

import (
	"context"
	"sort"

	"partscatalog/internal/apiclient"
	"partscatalog/internal/domain/model"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const maxRelated = 4

// Source はストアフロントが使う API。*apiclient.Client が満たす。
type Source interface {
	ListProducts(ctx context.Context, f apiclient.ProductFilter) (model.ProductList, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// Snapshot は一覧画面の元データ。
type Snapshot struct {
	Products      []model.Product
	Brands        []model.Brand
	Manufacturers []model.Manufacturer
	Categories    []string
}

// Options はセレクタに並べる候補。
type Options struct {
	Brands        []string
	Categories    []string
	Manufacturers []string
}

// Visible は facets を当てた商品。
func (s Snapshot) Visible(f Facets) []model.Product {
	return Filter(s.Products, f)
}

// Options は名前の候補（ブランド・メーカーは名前順、カテゴリはAPIの順）。
func (s Snapshot) Options() Options {
	brands := make([]string, 0, len(s.Brands))
	for _, b := range s.Brands {
		brands = append(brands, b.Name)
	}
	sort.Strings(brands)

	manufacturers := make([]string, 0, len(s.Manufacturers))
	for _, m := range s.Manufacturers {
		manufacturers = append(manufacturers, m.Name)
	}
	sort.Strings(manufacturers)

	categories := append([]string(nil), s.Categories...)
	if len(categories) == 0 {
		categories = append(categories, model.Categories...)
	}
	return Options{Brands: brands, Categories: categories, Manufacturers: manufacturers}
}

// ProductDetail は詳細画面の内容。
type ProductDetail struct {
	Product         model.Product
	DiscountedPrice decimal.Decimal
	Related         []model.Product // 同じカテゴリ、自分以外、最大4件
}

type Storefront struct {
	src Source
}

// DI
func NewStorefront(src Source) *Storefront {
	return &Storefront{src: src}
}

// Load は4つの一覧を並行に取る。どれか失敗したら最初のエラーを返す。
func (s *Storefront) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.src.ListProducts(ctx, apiclient.ProductFilter{})
		snap.Products = list.Items
		return err
	})
	g.Go(func() error {
		brands, err := s.src.ListBrands(ctx)
		snap.Brands = brands
		return err
	})
	g.Go(func() error {
		ms, err := s.src.ListManufacturers(ctx)
		snap.Manufacturers = ms
		return err
	})
	g.Go(func() error {
		cs, err := s.src.ListCategories(ctx)
		snap.Categories = cs
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Detail は商品と関連商品を取る。
func (s *Storefront) Detail(ctx context.Context, id string) (ProductDetail, error) {
	p, err := s.src.GetProduct(ctx, id)
	if err != nil {
		return ProductDetail{}, err
	}

	list, err := s.src.ListProducts(ctx, apiclient.ProductFilter{Category: p.Category})
	if err != nil {
		return ProductDetail{}, err
	}

	return ProductDetail{
		Product:         p,
		DiscountedPrice: p.DiscountedPrice(),
		Related:         related(p, list.Items),
	}, nil
}

// サーバーの category は部分一致なので、ここで完全一致に絞る。
func related(p model.Product, candidates []model.Product) []model.Product {
	out := []model.Product{}
	for _, c := range candidates {
		if c.ID == p.ID || c.Category != p.Category {
			continue
		}
		out = append(out, c)
		if len(out) == maxRelated {
			break
		}
	}
	return out
}
