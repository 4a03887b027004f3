package repository

import (
	"context"
	"time"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

// 注文と明細を作成（gorm が Items も INSERT する）
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

func (r *OrderGormRepository) AttachGatewayOrder(ctx context.Context, id string, gatewayOrderID string) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"razorpay_order_id": gatewayOrderID,
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) MarkPaid(ctx context.Context, id string, v model.PaymentVerification) (model.Order, error) {
	fields := map[string]interface{}{
		"payment_status":      model.PaymentStatusPaid,
		"status":              model.OrderStatusConfirmed,
		"razorpay_order_id":   v.RazorpayOrderID,
		"razorpay_payment_id": v.RazorpayPaymentID,
		"razorpay_signature":  v.RazorpaySignature,
		"updated_at":          time.Now(),
	}
	//配送先は来たときだけ上書き
	if sd := v.ShippingDetails; sd != nil {
		fields["customer_name"] = sd.Name
		fields["customer_email"] = sd.Email
		fields["customer_phone"] = sd.Phone
		fields["shipping_line1"] = sd.Address
		fields["shipping_city"] = sd.City
		fields["shipping_state"] = sd.State
		fields["shipping_zip"] = sd.Zip
	}

	res := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return model.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Order{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}
