package db_models

type District struct {
	ID       int    `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(100);not null"`
	CantonID int    `gorm:"index;not null"`
}

func (District) TableName() string {
	return "districts"
}
