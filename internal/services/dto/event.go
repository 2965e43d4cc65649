package dto

import "time"

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	TypeID      int        `json:"typeId" validate:"min=0"`
	Location    string     `json:"location" validate:"max=200"`
	Description string     `json:"description"`
	StartsAt    *time.Time `json:"startsAt"`
}

type UpdateEventRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	TypeID      int        `json:"typeId" validate:"min=0"`
	Location    string     `json:"location" validate:"max=200"`
	Description string     `json:"description"`
	StartsAt    *time.Time `json:"startsAt"`
}

type SearchEventsRequest struct {
	TypeID *int   `form:"typeId" json:"typeId"`
	Title  string `form:"title" json:"title" validate:"max=200"`

	Page     int `form:"-" json:"-"`
	PageSize int `form:"-" json:"-"`
}

type RegisterEventRequest struct {
	UserType string `json:"userType" validate:"required,is-event-user-type"`
}
