package usecase

import (
	"context"
	"errors"
	"strings"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	brandRepo   repo.BrandRepository
	ids         IDGenerator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, brandRepo repo.BrandRepository, ids IDGenerator) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		ids:         ids,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Q            string
	Brand        string
	Manufacturer string
	Category     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (model.ProductList, error) {
	if len(in.Q) > 200 {
		return model.ProductList{}, badRequest("q too long")
	}
	if in.MinPrice != nil && in.MinPrice.IsNegative() {
		return model.ProductList{}, badRequest("minPrice must be >= 0")
	}
	if in.MaxPrice != nil && in.MaxPrice.IsNegative() {
		return model.ProductList{}, badRequest("maxPrice must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return model.ProductList{}, badRequest("minPrice must be <= maxPrice")
	}
	switch in.Sort {
	case "", "price-asc", "price-desc", "rating-desc":
	default:
		return model.ProductList{}, badRequest("invalid sort")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Q:            strings.TrimSpace(in.Q),
		Brand:        strings.TrimSpace(in.Brand),
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		Category:     strings.TrimSpace(in.Category),
		MinPrice:     in.MinPrice,
		MaxPrice:     in.MaxPrice,
		Sort:         in.Sort,
	})
	if err != nil {
		return model.ProductList{}, dbError()
	}

	return model.ProductList{Items: items, Total: int64(len(items))}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id string) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, badRequest("invalid product id")
	}
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, notFound("Product not found")
	}
	if err != nil {
		return model.Product{}, dbError()
	}
	return p, nil
}

func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	cats, err := u.productRepo.Categories(ctx)
	if err != nil {
		return nil, dbError()
	}
	return cats, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	p, err := u.buildProduct(ctx, in)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = u.ids.NewID()

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, dbError()
	}
	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (model.Product, error) {
	if strings.TrimSpace(id) == "" {
		return model.Product{}, badRequest("invalid product id")
	}
	if _, err := u.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, notFound("Product not found")
		}
		return model.Product{}, dbError()
	}

	p, err := u.buildProduct(ctx, in)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = id

	updated, err := u.productRepo.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, notFound("Product not found")
	}
	if err != nil {
		return model.Product{}, dbError()
	}
	return updated, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, id string) error {
	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound("Product not found")
	}
	if err != nil {
		return dbError()
	}
	return nil
}

// 入力チェックとブランド存在チェック
func (u *ProductUsecase) buildProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, badRequest("name required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return model.Product{}, badRequest("description required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, badRequest("price must be >= 0")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return model.Product{}, badRequest("rating must be between 0 and 5")
	}
	if in.ReviewCount < 0 {
		return model.Product{}, badRequest("reviewCount must be >= 0")
	}
	if in.Discount != nil && (*in.Discount < 0 || *in.Discount > 100) {
		return model.Product{}, badRequest("discount must be between 0 and 100")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Product{}, badRequest("category required")
	}

	//brandは名前で参照する
	if _, err := u.brandRepo.FindByName(ctx, in.Brand); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, badRequest("Brand not found")
		}
		return model.Product{}, dbError()
	}

	var manufacturer *string
	if in.Manufacturer != nil && strings.TrimSpace(*in.Manufacturer) != "" {
		m := strings.TrimSpace(*in.Manufacturer)
		manufacturer = &m
	}
	var hint *string
	if h := strings.TrimSpace(in.ImageHint); h != "" {
		hint = &h
	}

	return model.Product{
		Name:         name,
		Description:  in.Description,
		Price:        in.Price.Round(2),
		Brand:        in.Brand,
		Manufacturer: manufacturer,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		ImageHint:    hint,
		Rating:       in.Rating,
		ReviewCount:  in.ReviewCount,
		Discount:     in.Discount,
	}, nil
}
