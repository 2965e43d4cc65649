package dto

// TitleRequest is the create/update payload for job categories and job
// levels, which carry a title and nothing else.
type TitleRequest struct {
	Title string `json:"title" validate:"required,min=2,max=100"`
}
