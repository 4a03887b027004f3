package usecase

import (
	"context"
	"errors"
	"strings"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"github.com/lib/pq"
)

type ManufacturerUsecase struct {
	manufacturerRepo repo.ManufacturerRepository
	productRepo      repo.ProductRepository
	tx               repo.TransactionManager
	ids              IDGenerator
}

func NewManufacturerUsecase(manufacturerRepo repo.ManufacturerRepository, productRepo repo.ProductRepository, tx repo.TransactionManager, ids IDGenerator) *ManufacturerUsecase {
	return &ManufacturerUsecase{
		manufacturerRepo: manufacturerRepo,
		productRepo:      productRepo,
		tx:               tx,
		ids:              ids,
	}
}

func (u *ManufacturerUsecase) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	mans, err := u.manufacturerRepo.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	for i := range mans {
		if mans[i].Models == nil {
			mans[i].Models = pq.StringArray{}
		}
	}
	return mans, nil
}

func (u *ManufacturerUsecase) GetManufacturer(ctx context.Context, id string) (model.Manufacturer, error) {
	m, err := u.manufacturerRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Manufacturer{}, notFound("Manufacturer not found")
	}
	if err != nil {
		return model.Manufacturer{}, dbError()
	}
	if m.Models == nil {
		m.Models = pq.StringArray{}
	}
	return m, nil
}

func (u *ManufacturerUsecase) CreateManufacturer(ctx context.Context, in model.ManufacturerInput) (model.Manufacturer, error) {
	m, err := buildManufacturer(in)
	if err != nil {
		return model.Manufacturer{}, err
	}

	if _, err := u.manufacturerRepo.FindByName(ctx, m.Name); err == nil {
		return model.Manufacturer{}, badRequest("Manufacturer with this name already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.Manufacturer{}, dbError()
	}

	m.ID = u.ids.NewID()
	created, err := u.manufacturerRepo.Create(ctx, m)
	if errors.Is(err, repo.ErrConflict) {
		return model.Manufacturer{}, badRequest("Manufacturer with this name already exists")
	}
	if err != nil {
		return model.Manufacturer{}, dbError()
	}
	return created, nil
}

// UpdateManufacturer は改名時に商品の manufacturer も付け替える。
func (u *ManufacturerUsecase) UpdateManufacturer(ctx context.Context, id string, in model.ManufacturerInput) (model.Manufacturer, error) {
	m, err := buildManufacturer(in)
	if err != nil {
		return model.Manufacturer{}, err
	}
	m.ID = id

	var out model.Manufacturer
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		current, err := r.Manufacturers().FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("Manufacturer not found")
		}
		if err != nil {
			return dbError()
		}

		other, err := r.Manufacturers().FindByName(ctx, m.Name)
		if err == nil && other.ID != id {
			return badRequest("Another manufacturer with this name already exists")
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return dbError()
		}

		updated, err := r.Manufacturers().Update(ctx, m)
		if errors.Is(err, repo.ErrConflict) {
			return badRequest("Another manufacturer with this name already exists")
		}
		if err != nil {
			return dbError()
		}

		if current.Name != updated.Name {
			if _, err := r.Products().RenameManufacturer(ctx, current.Name, updated.Name); err != nil {
				return dbError()
			}
		}
		out = updated
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.Manufacturer{}, err
		}
		return model.Manufacturer{}, dbError()
	}
	return out, nil
}

func (u *ManufacturerUsecase) DeleteManufacturer(ctx context.Context, id string) error {
	m, err := u.manufacturerRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("Manufacturer not found")
	}
	if err != nil {
		return dbError()
	}

	linked, err := u.productRepo.ExistsByManufacturer(ctx, m.Name)
	if err != nil {
		return dbError()
	}
	if linked {
		return badRequest("Cannot delete manufacturer with existing products")
	}

	err = u.manufacturerRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("Manufacturer not found")
	}
	if err != nil {
		return dbError()
	}
	return nil
}

func buildManufacturer(in model.ManufacturerInput) (model.Manufacturer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Manufacturer{}, badRequest("name required")
	}

	var image *string
	if in.ImageBase64 != nil && strings.TrimSpace(*in.ImageBase64) != "" {
		img := strings.TrimSpace(*in.ImageBase64)
		if !strings.HasPrefix(img, "data:") {
			return model.Manufacturer{}, badRequest("imageBase64 must be a data URI")
		}
		image = &img
	}

	models := pq.StringArray{}
	for _, s := range in.Models {
		if s = strings.TrimSpace(s); s != "" {
			models = append(models, s)
		}
	}

	return model.Manufacturer{
		Name:        name,
		ImageBase64: image,
		Models:      models,
	}, nil
}
