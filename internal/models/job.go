package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title           string         `gorm:"not null" json:"title"`
	LevelID         *string        `gorm:"type:uuid" json:"levelId"`
	CategoryID      *string        `gorm:"type:uuid" json:"categoryId"`
	TypeID          int            `json:"typeId"`
	Location        string         `json:"location"`
	Description     string         `json:"description"`
	Compensation    string         `json:"compensation"`
	ApplicationLink string         `json:"applicationLink"`
	IsExternal      bool           `gorm:"default:false" json:"isExternal"`
	CompanyID       *string        `gorm:"type:uuid" json:"companyId"`
	Tags            datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsApproved      bool           `gorm:"default:false" json:"isApproved"`
	CreatedBy       *string        `gorm:"type:uuid" json:"createdBy"`

	// Relations
	Level    *JobLevel    `gorm:"foreignKey:LevelID" json:"level,omitempty"`
	Category *JobCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Company  *Company     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// SavedJob links a user to a job saved for later. The composite index keeps
// the pairing unique under concurrent saves.
type SavedJob struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_job" json:"userId"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_job" json:"jobId"`
}
