package repository

import (
	"context"

	"partscatalog/internal/domain/model"
)

type OrderRepository interface {
	// 新しい順（明細つき）
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (model.Order, error)
	// 明細も一緒に作る。ID重複は ErrConflict
	Create(ctx context.Context, o model.Order) (model.Order, error)

	//決済代行の注文IDをひも付ける
	AttachGatewayOrder(ctx context.Context, id string, gatewayOrderID string) error
	//署名確認済みの決済を記録して confirmed にする
	MarkPaid(ctx context.Context, id string, v model.PaymentVerification) (model.Order, error)
}
