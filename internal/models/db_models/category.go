package db_models

// Category groups legends (apariciones, espantos, ...).
type Category struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (Category) TableName() string {
	return "categories"
}
