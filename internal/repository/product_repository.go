package repository

import (
	"context"
	"errors"

	"partscatalog/internal/domain/model"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("not found")
	// ユニーク制約違反（brand/manufacturer の name など）
	ErrConflict = errors.New("conflict")
)

// 商品一覧の検索条件
type ProductListQuery struct {
	Q            string
	Brand        string
	Manufacturer string
	Category     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string
}

// 商品の永続化だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id string) error

	// 名前参照の付け替え（rename cascade）
	RenameBrand(ctx context.Context, oldName, newName string) (int64, error)
	RenameManufacturer(ctx context.Context, oldName, newName string) (int64, error)
	ExistsByBrand(ctx context.Context, brand string) (bool, error)
	ExistsByManufacturer(ctx context.Context, manufacturer string) (bool, error)
}
