package db_models

type Canton struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(100);not null"`
	ProvinceID int    `gorm:"index;not null"`

	Districts []District `gorm:"foreignKey:CantonID"`
}

func (Canton) TableName() string {
	return "cantons"
}
