package usecase

import (
	"context"
	"errors"
	"strings"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"
)

type BrandUsecase struct {
	brandRepo   repo.BrandRepository
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
	ids         IDGenerator
}

func NewBrandUsecase(brandRepo repo.BrandRepository, productRepo repo.ProductRepository, tx repo.TransactionManager, ids IDGenerator) *BrandUsecase {
	return &BrandUsecase{
		brandRepo:   brandRepo,
		productRepo: productRepo,
		tx:          tx,
		ids:         ids,
	}
}

func (u *BrandUsecase) ListBrands(ctx context.Context) ([]model.Brand, error) {
	brands, err := u.brandRepo.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return brands, nil
}

func (u *BrandUsecase) GetBrand(ctx context.Context, id string) (model.Brand, error) {
	b, err := u.brandRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Brand{}, notFound("Brand not found")
	}
	if err != nil {
		return model.Brand{}, dbError()
	}
	return b, nil
}

func (u *BrandUsecase) CreateBrand(ctx context.Context, in model.BrandInput) (model.Brand, error) {
	in, err := normalizeBrand(in)
	if err != nil {
		return model.Brand{}, err
	}

	//同名ブランドは作らない
	if _, err := u.brandRepo.FindByName(ctx, in.Name); err == nil {
		return model.Brand{}, badRequest("Brand with this name already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.Brand{}, dbError()
	}

	created, err := u.brandRepo.Create(ctx, model.Brand{
		ID:       u.ids.NewID(),
		Name:     in.Name,
		LogoURL:  in.LogoURL,
		LogoHint: in.LogoHint,
	})
	if errors.Is(err, repo.ErrConflict) {
		return model.Brand{}, badRequest("Brand with this name already exists")
	}
	if err != nil {
		return model.Brand{}, dbError()
	}
	return created, nil
}

// UpdateBrand は名前が変わったら、その名前を参照している商品も同じTxで付け替える。
func (u *BrandUsecase) UpdateBrand(ctx context.Context, id string, in model.BrandInput) (model.Brand, error) {
	in, err := normalizeBrand(in)
	if err != nil {
		return model.Brand{}, err
	}

	var out model.Brand
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		current, err := r.Brands().FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("Brand not found")
		}
		if err != nil {
			return dbError()
		}

		other, err := r.Brands().FindByName(ctx, in.Name)
		if err == nil && other.ID != id {
			return badRequest("Another brand with this name already exists")
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return dbError()
		}

		updated, err := r.Brands().Update(ctx, model.Brand{
			ID:       id,
			Name:     in.Name,
			LogoURL:  in.LogoURL,
			LogoHint: in.LogoHint,
		})
		if errors.Is(err, repo.ErrConflict) {
			return badRequest("Another brand with this name already exists")
		}
		if err != nil {
			return dbError()
		}

		if current.Name != updated.Name {
			if _, err := r.Products().RenameBrand(ctx, current.Name, updated.Name); err != nil {
				return dbError()
			}
		}
		out = updated
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.Brand{}, err
		}
		return model.Brand{}, dbError()
	}
	return out, nil
}

// DeleteBrand は参照している商品があれば拒否する。
func (u *BrandUsecase) DeleteBrand(ctx context.Context, id string) error {
	b, err := u.brandRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("Brand not found")
	}
	if err != nil {
		return dbError()
	}

	linked, err := u.productRepo.ExistsByBrand(ctx, b.Name)
	if err != nil {
		return dbError()
	}
	if linked {
		return badRequest("Cannot delete brand with existing products")
	}

	err = u.brandRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("Brand not found")
	}
	if err != nil {
		return dbError()
	}
	return nil
}

func normalizeBrand(in model.BrandInput) (model.BrandInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.LogoURL = strings.TrimSpace(in.LogoURL)
	in.LogoHint = strings.TrimSpace(in.LogoHint)
	if in.Name == "" {
		return in, badRequest("name required")
	}
	if in.LogoURL == "" {
		return in, badRequest("logoUrl required")
	}
	if in.LogoHint == "" {
		return in, badRequest("logoHint required")
	}
	return in, nil
}
