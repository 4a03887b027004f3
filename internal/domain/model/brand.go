package model

import "time"

// Brand の name は慣習的にユニーク（サーバー側で重複を拒否）。
type Brand struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	LogoURL   string    `gorm:"column:logo_url;not null" json:"logoUrl"`
	LogoHint  string    `gorm:"column:logo_hint;not null" json:"logoHint"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

type BrandInput struct {
	Name     string `json:"name" validate:"required"`
	LogoURL  string `json:"logoUrl" validate:"required"`
	LogoHint string `json:"logoHint" validate:"required"`
}
