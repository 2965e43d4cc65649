package models

import (
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FullName     string         `json:"fullName"`
	PhoneNumber  string         `json:"phoneNumber"`
	LevelID      *string        `gorm:"type:uuid" json:"levelId"`
	CategoryID   *string        `gorm:"type:uuid" json:"categoryId"`
	Tags         datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Relations
	Level    *JobLevel    `gorm:"foreignKey:LevelID" json:"level,omitempty"`
	Category *JobCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
