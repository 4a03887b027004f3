package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// APIはpriceを数値で送受信する（"1999.99"ではなく1999.99）
	decimal.MarshalJSONWithoutQuotes = true
}

// 既定のカテゴリ。任意の文字列も許容する。
const (
	CategoryEngine     = "Engine"
	CategoryBrakes     = "Brakes"
	CategorySuspension = "Suspension"
	CategoryExhaust    = "Exhaust"
	CategoryInterior   = "Interior"
	CategoryExterior   = "Exterior"
)

// Categoriesは管理フォームで選べるカテゴリ（表示順）。
var Categories = []string{
	CategoryEngine,
	CategoryBrakes,
	CategorySuspension,
	CategoryExhaust,
	CategoryInterior,
	CategoryExterior,
}

// Product はカタログの部品。
// Brand / Manufacturer は名前で参照する（IDではない）。参照整合性は保証しない。
type Product struct {
	ID           string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Brand        string          `gorm:"type:varchar(255);not null;index" json:"brand"`
	Manufacturer *string         `gorm:"type:varchar(255);index" json:"manufacturer,omitempty"`
	Category     string          `gorm:"type:varchar(100);not null;index" json:"category"`
	ImageURL     string          `gorm:"column:image_url;not null" json:"imageUrl"`
	ImageHint    *string         `gorm:"column:image_hint" json:"imageHint,omitempty"`
	Rating       float64         `gorm:"not null;default:0" json:"rating"`
	ReviewCount  int             `gorm:"column:review_count;not null;default:0" json:"reviewCount"`
	Discount     *int            `json:"discount,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"-"`
}

// ManufacturerName は未設定なら空文字を返す。
func (p Product) ManufacturerName() string {
	if p.Manufacturer == nil {
		return ""
	}
	return *p.Manufacturer
}

// DiscountedPrice は割引後の価格（小数2桁）。
func (p Product) DiscountedPrice() decimal.Decimal {
	if p.Discount == nil || *p.Discount <= 0 {
		return p.Price
	}
	rate := decimal.NewFromInt(int64(100 - *p.Discount)).Div(decimal.NewFromInt(100))
	return p.Price.Mul(rate).Round(2)
}

// ProductInput は作成・更新のペイロード（id以外）。
// Discount が nil のときはキーごと送らない。0 は「0%割引」。
type ProductInput struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Brand        string          `json:"brand" validate:"required"`
	Manufacturer *string         `json:"manufacturer,omitempty"`
	Category     string          `json:"category" validate:"required"`
	ImageURL     string          `json:"imageUrl" validate:"required"`
	ImageHint    string          `json:"imageHint" validate:"required"`
	Rating       float64         `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount  int             `json:"reviewCount" validate:"gte=0"`
	Discount     *int            `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ProductList は GET /products のレスポンス。
type ProductList struct {
	Items []Product `json:"items"`
	Total int64     `json:"total"`
}
