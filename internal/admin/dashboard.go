package admin

import (
	"context"
	"fmt"

	"partscatalog/internal/domain/model"
)

// View は管理画面で表示中のビュー。
type View int

const (
	ViewDashboard View = iota
	ViewProducts
	ViewBrands
	ViewManufacturers
)

func (v View) String() string {
	switch v {
	case ViewProducts:
		return "manage-products"
	case ViewBrands:
		return "manage-brands"
	case ViewManufacturers:
		return "manage-manufacturers"
	default:
		return "dashboard"
	}
}

// ParseView は "products" / "manage-products" などを View にする。
func ParseView(s string) (View, error) {
	switch s {
	case "dashboard", "":
		return ViewDashboard, nil
	case "products", "manage-products":
		return ViewProducts, nil
	case "brands", "manage-brands":
		return ViewBrands, nil
	case "manufacturers", "manage-manufacturers":
		return ViewManufacturers, nil
	}
	return ViewDashboard, fmt.Errorf("unknown view %q", s)
}

type (
	ProductPanel      = Panel[model.Product, ProductDraft, model.ProductInput]
	BrandPanel        = Panel[model.Brand, BrandDraft, model.BrandInput]
	ManufacturerPanel = Panel[model.Manufacturer, ManufacturerDraft, model.ManufacturerInput]
)

// Dashboard はエンティティごとのパネルと表示中のビューを持つ。
type Dashboard struct {
	Products      *ProductPanel
	Brands        *BrandPanel
	Manufacturers *ManufacturerPanel

	view View
}

// DI
func NewDashboard(api API, confirm Confirmer, cfg PanelConfig) *Dashboard {
	return &Dashboard{
		Products: NewPanel[model.Product, ProductDraft, model.ProductInput](
			"product", ProductForm{}, productGateway{api: api},
			func(p model.Product) string { return p.ID }, confirm, cfg),
		Brands: NewPanel[model.Brand, BrandDraft, model.BrandInput](
			"brand", BrandForm{}, brandGateway{api: api},
			func(b model.Brand) string { return b.ID }, confirm, cfg),
		Manufacturers: NewPanel[model.Manufacturer, ManufacturerDraft, model.ManufacturerInput](
			"manufacturer", ManufacturerForm{}, manufacturerGateway{api: api},
			func(m model.Manufacturer) string { return m.ID }, confirm, cfg),
		view: ViewDashboard,
	}
}

func (d *Dashboard) View() View { return d.view }

// Activate はビューを切り替え、管理ビューならその一覧を1回だけ取り直す。
// 前のビューの取り直しは止めない。
func (d *Dashboard) Activate(ctx context.Context, v View) error {
	d.view = v
	switch v {
	case ViewProducts:
		return d.Products.Reload(ctx)
	case ViewBrands:
		return d.Brands.Reload(ctx)
	case ViewManufacturers:
		return d.Manufacturers.Reload(ctx)
	}
	return nil
}
