package usecase

import (
	"context"
	"log/slog"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	"github.com/shopspring/decimal"
)

type Seeder struct {
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
}

func NewSeeder(productRepo repo.ProductRepository, tx repo.TransactionManager) *Seeder {
	return &Seeder{productRepo: productRepo, tx: tx}
}

// Seed は商品が1件もないときだけ初期データを入れる。
func (s *Seeder) Seed(ctx context.Context) error {
	n, err := s.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	brands, products := seedData()
	err = s.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, b := range brands {
			if _, err := r.Brands().Create(ctx, b); err != nil {
				return err
			}
		}
		for _, p := range products {
			if _, err := r.Products().Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "seeded catalog", slog.Int("brands", len(brands)), slog.Int("products", len(products)))
	return nil
}

func seedData() ([]model.Brand, []model.Product) {
	brand := func(id, name string) model.Brand {
		return model.Brand{
			ID:       id,
			Name:     name,
			LogoURL:  "https://via.placeholder.com/200x100?text=" + name,
			LogoHint: name + " Logo",
		}
	}
	brands := []model.Brand{
		brand("brand_1", "Apex Performance"),
		brand("brand_2", "StanceCo"),
		brand("brand_3", "FilterMax"),
		brand("brand_4", "ExhaustElite"),
		brand("brand_5", "BrakeMax"),
		brand("brand_6", "CarbonMax"),
	}

	product := func(id, name, desc, price, brand, category string, rating float64, reviews, discount int) model.Product {
		hint := name
		d := discount
		return model.Product{
			ID:          id,
			Name:        name,
			Description: desc,
			Price:       decimal.RequireFromString(price),
			Brand:       brand,
			Category:    category,
			ImageURL:    "https://images.unsplash.com/photo-1494976866556-6b0ee5d2cfae?w=400&h=300&fit=crop",
			ImageHint:   &hint,
			Rating:      rating,
			ReviewCount: reviews,
			Discount:    &d,
		}
	}
	products := []model.Product{
		product("prod_1", "V8 Turbocharger Kit", "High-performance turbocharger kit for enhanced engine power and acceleration", "1999.99", "Apex Performance", model.CategoryEngine, 4.8, 156, 10),
		product("prod_2", "Racing Suspension Kit", "Complete lowering suspension system for improved handling and appearance", "1299.99", "StanceCo", model.CategorySuspension, 4.6, 98, 15),
		product("prod_3", "Premium Air Filter Kit", "Reusable high-flow air filter for better engine breathing and performance", "299.99", "FilterMax", model.CategoryEngine, 4.5, 212, 5),
		product("prod_4", "Ceramic Brake Pads", "Low-dust ceramic brake pads with consistent stopping power", "149.99", "BrakeMax", model.CategoryBrakes, 4.7, 340, 8),
		product("prod_5", "Stainless Steel Exhaust System", "Cat-back stainless exhaust with a deeper tone and better flow", "799.99", "ExhaustElite", model.CategoryExhaust, 4.4, 87, 12),
		product("prod_6", "Carbon Fiber Body Kit", "Lightweight carbon fiber front lip, side skirts and rear diffuser", "2499.99", "CarbonMax", model.CategoryExterior, 4.9, 45, 20),
	}
	return brands, products
}
