package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Order は店頭からの注文。ID は "ORD-<unix millis>"。
type Order struct {
	ID            string          `gorm:"primaryKey;type:varchar(64)"`
	Date          string          `gorm:"type:varchar(10);not null"` // YYYY-MM-DD (UTC)
	Status        OrderStatus     `gorm:"type:varchar(20);not null;index"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:pending"`

	RazorpayOrderID   *string `gorm:"column:razorpay_order_id"`
	RazorpayPaymentID *string `gorm:"column:razorpay_payment_id"`
	RazorpaySignature *string `gorm:"column:razorpay_signature"`

	CustomerEmail   *string
	CustomerName    *string
	CustomerPhone   *string
	ShippingLine1   *string
	ShippingCity    *string
	ShippingState   *string
	ShippingZip     *string
	ShippingCountry *string

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime"`
}

// OrderItem は注文明細。商品名と単価は注文時点のスナップショット。
type OrderItem struct {
	OrderID   string          `gorm:"primaryKey;type:varchar(64)"`
	ProductID string          `gorm:"primaryKey;type:varchar(64)"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

// OrderItemInput は POST /orders の1行。
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type ShippingAddress struct {
	Line1      string `json:"line1" validate:"required"`
	City       string `json:"city" validate:"required"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

// OrderInput は POST /orders のペイロード。
type OrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	CustomerEmail   *string          `json:"customerEmail,omitempty" validate:"omitempty,email"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty" validate:"omitempty"`
}

// OrderLine はレスポンスの明細。商品が消えていたらスナップショットで埋める。
type OrderLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderView は注文のレスポンス。
type OrderView struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Status          OrderStatus     `json:"status"`
	Total           decimal.Decimal `json:"total"`
	Items           []OrderLine     `json:"items"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	RazorpayOrderID *string         `json:"razorpay_order_id,omitempty"`
}

// OrderCreated は POST /orders のレスポンス。
type OrderCreated struct {
	Order OrderView `json:"order"`
}
