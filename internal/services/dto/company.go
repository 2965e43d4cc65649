package dto

type CompanyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
}

type SearchCompaniesRequest struct {
	Name string `form:"name" json:"name" validate:"max=200"`

	Page     int `form:"-" json:"-"`
	PageSize int `form:"-" json:"-"`
}
