package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"
)

// PaymentGateway は決済代行（Razorpay）の窓口。
type PaymentGateway interface {
	KeyID() string
	// amount は最小通貨単位（INR なら paise）
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (model.GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

const defaultCurrency = "INR"

type PaymentUsecase struct {
	orders  repo.OrderRepository
	gateway PaymentGateway
	clock   Clock
}

func NewPaymentUsecase(orders repo.OrderRepository, gateway PaymentGateway, clock Clock) *PaymentUsecase {
	return &PaymentUsecase{orders: orders, gateway: gateway, clock: clock}
}

// CreatePaymentOrder は決済代行側に注文を作る。
// orderId があればその注文の合計で作り、決済代行の注文IDを注文にひも付ける。
func (u *PaymentUsecase) CreatePaymentOrder(ctx context.Context, in model.PaymentOrderInput) (model.PaymentOrder, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	receipt := strings.TrimSpace(in.Receipt)
	amount := in.Amount

	var order *model.Order
	if id := strings.TrimSpace(in.OrderID); id != "" {
		o, err := u.orders.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return model.PaymentOrder{}, notFound("Order not found")
		}
		if err != nil {
			return model.PaymentOrder{}, dbError()
		}
		if o.PaymentStatus == model.PaymentStatusPaid {
			return model.PaymentOrder{}, badRequest("Order is already paid")
		}
		amount = o.Total
		if receipt == "" {
			receipt = o.ID
		}
		order = &o
	}

	if !amount.IsPositive() {
		return model.PaymentOrder{}, badRequest("amount must be > 0")
	}
	if receipt == "" {
		receipt = fmt.Sprintf("order_%d", u.clock.Now().UnixMilli())
	}

	// 小数2桁より下は切り捨て
	minor := amount.Shift(2).IntPart()
	g, err := u.gateway.CreateOrder(ctx, minor, currency, receipt)
	if err != nil {
		return model.PaymentOrder{}, NewHTTPError(http.StatusInternalServerError, "Failed to create Razorpay order: "+err.Error())
	}

	if order != nil {
		if err := u.orders.AttachGatewayOrder(ctx, order.ID, g.ID); err != nil {
			return model.PaymentOrder{}, dbError()
		}
	}

	return model.PaymentOrder{
		ID:       g.ID,
		Amount:   g.Amount,
		Currency: g.Currency,
		KeyID:    u.gateway.KeyID(),
	}, nil
}

// VerifyPayment は署名を確認して注文を paid / confirmed にする。
func (u *PaymentUsecase) VerifyPayment(ctx context.Context, in model.PaymentVerification) (model.PaymentVerified, error) {
	if !u.gateway.VerifySignature(in.RazorpayOrderID, in.RazorpayPaymentID, in.RazorpaySignature) {
		return model.PaymentVerified{}, badRequest("Invalid payment signature")
	}

	o, err := u.orders.FindByID(ctx, in.OrderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.PaymentVerified{}, notFound("Order not found")
	}
	if err != nil {
		return model.PaymentVerified{}, dbError()
	}
	//別の決済代行注文の支払いは受け付けない
	if o.RazorpayOrderID != nil && *o.RazorpayOrderID != in.RazorpayOrderID {
		return model.PaymentVerified{}, badRequest("Payment does not belong to this order")
	}

	paid, err := u.orders.MarkPaid(ctx, o.ID, in)
	if errors.Is(err, repo.ErrNotFound) {
		return model.PaymentVerified{}, notFound("Order not found")
	}
	if err != nil {
		return model.PaymentVerified{}, dbError()
	}

	return model.PaymentVerified{
		Success:       true,
		Message:       "Payment verified successfully",
		OrderID:       paid.ID,
		PaymentStatus: paid.PaymentStatus,
	}, nil
}
