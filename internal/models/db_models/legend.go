package db_models

import "time"

type Legend struct {
	ID          string     `gorm:"type:uuid;primaryKey"`
	CategoryID  int        `gorm:"index;not null"`
	DistrictID  int        `gorm:"index;not null"`
	Name        string     `gorm:"type:varchar(150);not null"`
	Description string     `gorm:"type:text;not null"`
	ImageURL    *string    `gorm:"column:image_url;type:varchar(500)"`
	Date        *time.Time `gorm:"type:date"`
	IsActive    bool       `gorm:"not null"`
}

func (Legend) TableName() string {
	return "legends"
}
