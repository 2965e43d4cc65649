package dto

type CreateUserRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Username    string   `json:"username" validate:"required,min=3,max=50"`
	Password    string   `json:"password" validate:"required,min=8"`
	FullName    string   `json:"fullName" validate:"max=200"`
	PhoneNumber string   `json:"phoneNumber" validate:"max=30"`
	LevelID     *string  `json:"levelId" validate:"omitempty,uuid"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,uuid"`
	Tags        []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
	// Honored only when the creator is an admin; everyone else gets "user".
	Role string `json:"role" validate:"omitempty,is-user-role"`
}

type UpdateUserRequest struct {
	FullName    string   `json:"fullName" validate:"max=200"`
	PhoneNumber string   `json:"phoneNumber" validate:"max=30"`
	LevelID     *string  `json:"levelId" validate:"omitempty,uuid"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,uuid"`
	Tags        []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
}

type SearchUsersRequest struct {
	CategoryID string `form:"categoryId" json:"categoryId" validate:"omitempty,uuid"`
	LevelID    string `form:"levelId" json:"levelId" validate:"omitempty,uuid"`
	Search     string `form:"search" json:"search" validate:"max=200"`

	Page     int `form:"-" json:"-"`
	PageSize int `form:"-" json:"-"`
}
