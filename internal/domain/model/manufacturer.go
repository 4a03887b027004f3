package model

import (
	"time"

	"github.com/lib/pq"
)

// Manufacturer のロゴは data URI（data:image/png;base64,...）をそのまま保持する。
type Manufacturer struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	ImageBase64 *string        `gorm:"column:image_base64;type:text" json:"imageBase64,omitempty"`
	Models      pq.StringArray `gorm:"type:text[]" json:"models"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"-"`
}

type ManufacturerInput struct {
	Name        string   `json:"name" validate:"required"`
	ImageBase64 *string  `json:"imageBase64,omitempty"`
	Models      []string `json:"models,omitempty"`
}
