package db_models

type Province struct {
	ID      int      `gorm:"primaryKey"`
	Name    string   `gorm:"type:varchar(100);not null"`
	Cantons []Canton `gorm:"foreignKey:ProvinceID"`
}

func (Province) TableName() string {
	return "provinces"
}
