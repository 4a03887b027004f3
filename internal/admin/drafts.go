package admin

import (
	"fmt"
	"strconv"
	"strings"

	"partscatalog/internal/domain/model"

	"github.com/shopspring/decimal"
)

// ProductDraft はフォーム入力そのまま（文字列）。数値は Payload で変換する。
type ProductDraft struct {
	Name         string
	Description  string
	Price        string
	Brand        string
	Manufacturer string // 空なら未設定
	Category     string
	ImageURL     string
	ImageHint    string
	Rating       string // 空なら 0
	ReviewCount  string // 空なら 0
	Discount     string // 空なら送らない
}

type ProductForm struct{}

func (ProductForm) Blank() ProductDraft {
	return ProductDraft{Category: model.CategoryEngine}
}

func (ProductForm) Load(p model.Product) (string, ProductDraft) {
	d := ProductDraft{
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.String(),
		Brand:        p.Brand,
		Manufacturer: p.ManufacturerName(),
		Category:     p.Category,
		ImageURL:     p.ImageURL,
		Rating:       strconv.FormatFloat(p.Rating, 'f', -1, 64),
		ReviewCount:  strconv.Itoa(p.ReviewCount),
	}
	if p.ImageHint != nil {
		d.ImageHint = *p.ImageHint
	}
	if p.Discount != nil {
		d.Discount = strconv.Itoa(*p.Discount)
	}
	return p.ID, d
}

func (ProductForm) Payload(d ProductDraft) (model.ProductInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil {
		return model.ProductInput{}, invalid("price must be a number")
	}
	if price.IsNegative() {
		return model.ProductInput{}, invalid("price must be >= 0")
	}

	rating, err := floatOrZero(d.Rating)
	if err != nil {
		return model.ProductInput{}, invalid("rating must be a number")
	}
	reviews, err := intOrZero(d.ReviewCount)
	if err != nil || reviews < 0 {
		return model.ProductInput{}, invalid("reviewCount must be a non-negative integer")
	}

	in := model.ProductInput{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
		Brand:       strings.TrimSpace(d.Brand),
		Category:    strings.TrimSpace(d.Category),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		ImageHint:   strings.TrimSpace(d.ImageHint),
		Rating:      rating,
		ReviewCount: reviews,
	}
	if m := strings.TrimSpace(d.Manufacturer); m != "" {
		in.Manufacturer = &m
	}
	if s := strings.TrimSpace(d.Discount); s != "" {
		discount, err := strconv.Atoi(s)
		if err != nil || discount < 0 || discount > 100 {
			return model.ProductInput{}, invalid("discount must be an integer between 0 and 100")
		}
		in.Discount = &discount
	}
	return in, nil
}

type BrandDraft struct {
	Name     string
	LogoURL  string
	LogoHint string
}

type BrandForm struct{}

func (BrandForm) Blank() BrandDraft { return BrandDraft{} }

func (BrandForm) Load(b model.Brand) (string, BrandDraft) {
	return b.ID, BrandDraft{Name: b.Name, LogoURL: b.LogoURL, LogoHint: b.LogoHint}
}

func (BrandForm) Payload(d BrandDraft) (model.BrandInput, error) {
	return model.BrandInput{
		Name:     strings.TrimSpace(d.Name),
		LogoURL:  strings.TrimSpace(d.LogoURL),
		LogoHint: strings.TrimSpace(d.LogoHint),
	}, nil
}

// ManufacturerDraft の Models はカンマ区切りの自由入力。
type ManufacturerDraft struct {
	Name        string
	ImageBase64 string // data URI。空なら送らない
	Models      string
}

type ManufacturerForm struct{}

func (ManufacturerForm) Blank() ManufacturerDraft { return ManufacturerDraft{} }

func (ManufacturerForm) Load(m model.Manufacturer) (string, ManufacturerDraft) {
	d := ManufacturerDraft{Name: m.Name, Models: strings.Join(m.Models, ", ")}
	if m.ImageBase64 != nil {
		d.ImageBase64 = *m.ImageBase64
	}
	return m.ID, d
}

func (ManufacturerForm) Payload(d ManufacturerDraft) (model.ManufacturerInput, error) {
	in := model.ManufacturerInput{
		Name:   strings.TrimSpace(d.Name),
		Models: ParseModels(d.Models),
	}
	if img := strings.TrimSpace(d.ImageBase64); img != "" {
		in.ImageBase64 = &img
	}
	return in, nil
}

// ParseModels は "V1, V2,,V3 " を ["V1","V2","V3"] にする。
func ParseModels(s string) []string {
	out := []string{}
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func floatOrZero(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func intOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDraft, msg)
}
