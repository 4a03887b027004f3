package repository

import (
	"context"

	repo "partscatalog/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products      repo.ProductRepository
	brands        repo.BrandRepository
	manufacturers repo.ManufacturerRepository
	orders        repo.OrderRepository
}

func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Brands() repo.BrandRepository               { return r.brands }
func (r *txReposGorm) Manufacturers() repo.ManufacturerRepository { return r.manufacturers }
func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:      NewProductGormRepository(tx),
			brands:        NewBrandGormRepository(tx),
			manufacturers: NewManufacturerGormRepository(tx),
			orders:        NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
