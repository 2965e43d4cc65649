package models

type Company struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
}
