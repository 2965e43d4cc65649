package models

type JobCategory struct {
	BaseModel
	Title string `gorm:"uniqueIndex;not null" json:"title"`
}

type JobLevel struct {
	BaseModel
	Title string `gorm:"uniqueIndex;not null" json:"title"`
}
