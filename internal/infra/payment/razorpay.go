package payment

import (
	"context"
	"fmt"

	"partscatalog/internal/domain/model"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// RazorpayGateway は usecase.PaymentGateway の Razorpay 実装。
type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
	secret string
}

func NewRazorpayGateway(keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, secret),
		keyID:  keyID,
		secret: secret,
	}
}

func (g *RazorpayGateway) KeyID() string { return g.keyID }

// SDK は context を受け取らないので、呼ぶ前にだけ確認する
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (model.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return model.GatewayOrder{}, err
	}
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	res, err := g.client.Order.Create(data, nil)
	if err != nil {
		return model.GatewayOrder{}, err
	}
	return gatewayOrderFromResponse(res)
}

func (g *RazorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.secret)
}

// JSON の数値は float64 で返ってくる
func gatewayOrderFromResponse(res map[string]interface{}) (model.GatewayOrder, error) {
	id, ok := res["id"].(string)
	if !ok || id == "" {
		return model.GatewayOrder{}, fmt.Errorf("razorpay: order id missing in response")
	}
	out := model.GatewayOrder{ID: id}
	switch v := res["amount"].(type) {
	case float64:
		out.Amount = int64(v)
	case int64:
		out.Amount = v
	case int:
		out.Amount = int64(v)
	}
	out.Currency, _ = res["currency"].(string)
	return out, nil
}
