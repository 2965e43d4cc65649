package dto

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=200"`
	LevelID         *string  `json:"levelId" validate:"omitempty,uuid"`
	CategoryID      *string  `json:"categoryId" validate:"omitempty,uuid"`
	TypeID          int      `json:"typeId" validate:"min=0"`
	Location        string   `json:"location" validate:"max=200"`
	Description     string   `json:"description"`
	Compensation    string   `json:"compensation" validate:"max=200"`
	ApplicationLink string   `json:"applicationLink" validate:"omitempty,url"`
	IsExternal      bool     `json:"isExternal"`
	CompanyID       *string  `json:"companyId" validate:"omitempty,uuid"`
	Tags            []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
}

type UpdateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=200"`
	LevelID         *string  `json:"levelId" validate:"omitempty,uuid"`
	CategoryID      *string  `json:"categoryId" validate:"omitempty,uuid"`
	TypeID          int      `json:"typeId" validate:"min=0"`
	Location        string   `json:"location" validate:"max=200"`
	Description     string   `json:"description"`
	Compensation    string   `json:"compensation" validate:"max=200"`
	ApplicationLink string   `json:"applicationLink" validate:"omitempty,url"`
	IsExternal      bool     `json:"isExternal"`
	CompanyID       *string  `json:"companyId" validate:"omitempty,uuid"`
	Tags            []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
}

type SearchJobsRequest struct {
	CategoryID  string `form:"categoryId" json:"categoryId" validate:"omitempty,uuid"`
	LevelID     string `form:"levelId" json:"levelId" validate:"omitempty,uuid"`
	CompanyName string `form:"companyName" json:"companyName" validate:"max=200"`
	Title       string `form:"title" json:"title" validate:"max=200"`

	// Set by the handler from pageIndex/pageSize, not bound from the client
	// directly.
	Page     int `form:"-" json:"-"`
	PageSize int `form:"-" json:"-"`
}
