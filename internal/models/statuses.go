package models

type UserRole string
type EventUserType string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	EventUserTypeAttendee  EventUserType = "attendee"
	EventUserTypeSpeaker   EventUserType = "speaker"
	EventUserTypeOrganizer EventUserType = "organizer"
)
