package catalog

import (
	"strings"

	"partscatalog/internal/domain/model"
)

// Facets は商品一覧の絞り込み条件。すべて AND で効く。
type Facets struct {
	Search       string
	Brand        Selection
	Category     Selection
	Manufacturer Selection
}

// Match は p が全ファセットを満たすか。
func (f Facets) Match(p model.Product) bool {
	return matchSearch(p, f.Search) &&
		f.Brand.Matches(p.Brand) &&
		f.Category.Matches(p.Category) &&
		f.Manufacturer.Matches(p.ManufacturerName())
}

// Active は何か絞り込みが効いているか。
func (f Facets) Active() bool {
	return strings.TrimSpace(f.Search) != "" || f.Brand.IsSet() || f.Category.IsSet() || f.Manufacturer.IsSet()
}

// Clear は全解除した Facets を返す。
func (f Facets) Clear() Facets {
	return Facets{}
}

// 名前か説明に部分一致（大文字小文字無視）。空なら常に一致。
func matchSearch(p model.Product, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Filter は facets に合う商品を元の順序のまま返す。入力は変更しない。
func Filter(products []model.Product, f Facets) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
