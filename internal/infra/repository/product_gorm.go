package repository

import (
	"context"
	"strings"
	"time"

	"partscatalog/internal/domain/model"
	repo "partscatalog/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// buildProductQuery は検索条件から SELECT を組み立てる。
// プレースホルダは "?"（gorm が $n に変換する）。
func buildProductQuery(q repo.ProductListQuery) sq.SelectBuilder {
	sb := sq.Select("*").From("products")

	// q は name / description / brand を対象
	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + term + "%"
		sb = sb.Where(sq.Or{
			sq.ILike{"name": like},
			sq.ILike{"description": like},
			sq.ILike{"brand": like},
		})
	}
	if v := strings.TrimSpace(q.Brand); v != "" {
		sb = sb.Where(sq.ILike{"brand": "%" + v + "%"})
	}
	if v := strings.TrimSpace(q.Category); v != "" {
		sb = sb.Where(sq.ILike{"category": "%" + v + "%"})
	}
	if v := strings.TrimSpace(q.Manufacturer); v != "" {
		sb = sb.Where(sq.Eq{"manufacturer": v})
	}

	//価格帯
	if q.MinPrice != nil {
		sb = sb.Where(sq.GtOrEq{"price": *q.MinPrice})
	}
	if q.MaxPrice != nil {
		sb = sb.Where(sq.LtOrEq{"price": *q.MaxPrice})
	}

	//sort
	switch q.Sort {
	case "price-asc":
		sb = sb.OrderBy("price asc", "id asc")
	case "price-desc":
		sb = sb.OrderBy("price desc", "id asc")
	case "rating-desc":
		sb = sb.OrderBy("rating desc", "id asc")
	default:
		sb = sb.OrderBy("created_at asc", "id asc")
	}
	return sb
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	query, args, err := buildProductQuery(q).ToSql()
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// 重複なし・昇順のカテゴリ一覧
func (r *ProductGormRepository) Categories(ctx context.Context) ([]string, error) {
	cats := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("category <> ''").
		Distinct().
		Order("category asc").
		Pluck("category", &cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// 商品の更新（全項目を置き換える。discount/manufacturer の nil は NULL になる）
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":         p.Name,
		"description":  p.Description,
		"price":        p.Price,
		"brand":        p.Brand,
		"manufacturer": p.Manufacturer,
		"category":     p.Category,
		"image_url":    p.ImageURL,
		"image_hint":   p.ImageHint,
		"rating":       p.Rating,
		"review_count": p.ReviewCount,
		"discount":     p.Discount,
		"updated_at":   time.Now(),
	})
	if res.Error != nil {
		return model.Product{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) RenameBrand(ctx context.Context, oldName, newName string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("brand = ?", oldName).
		Update("brand", newName)
	return res.RowsAffected, res.Error
}

func (r *ProductGormRepository) RenameManufacturer(ctx context.Context, oldName, newName string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("manufacturer = ?", oldName).
		Update("manufacturer", newName)
	return res.RowsAffected, res.Error
}

func (r *ProductGormRepository) ExistsByBrand(ctx context.Context, brand string) (bool, error) {
	return r.exists(ctx, "brand = ?", brand)
}

func (r *ProductGormRepository) ExistsByManufacturer(ctx context.Context, manufacturer string) (bool, error) {
	return r.exists(ctx, "manufacturer = ?", manufacturer)
}

func (r *ProductGormRepository) exists(ctx context.Context, cond string, arg string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where(cond, arg).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
