package model

import "github.com/shopspring/decimal"

// GatewayOrder は決済代行側で作った注文（金額は最小通貨単位）。
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// PaymentOrderInput は POST /payments/create-order のペイロード。
// OrderID があれば金額はその注文の合計を使う。
type PaymentOrderInput struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
	OrderID  string          `json:"orderId"`
}

type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type ShippingDetails struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

// PaymentVerification は POST /payments/verify のペイロード。
type PaymentVerification struct {
	RazorpayOrderID   string           `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string           `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string           `json:"razorpay_signature" validate:"required"`
	OrderID           string           `json:"order_id" validate:"required"`
	ShippingDetails   *ShippingDetails `json:"shipping_details,omitempty" validate:"omitempty"`
}

type PaymentVerified struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	OrderID       string        `json:"order_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
