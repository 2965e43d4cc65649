package models

import (
	"time"
)

type Event struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	TypeID      int        `json:"typeId"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	StartsAt    *time.Time `json:"startsAt"`
}

type EventRegistration struct {
	BaseModel
	EventID  string        `gorm:"type:uuid;not null;index" json:"eventId"`
	UserID   string        `gorm:"type:uuid;not null;index" json:"userId"`
	UserType EventUserType `gorm:"type:varchar(20);not null" json:"userType"`
}
