package interview

// CreateInterviewRequest represents the request to create an interview
type CreateInterviewRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	ResumeText  string `json:"resume_text,omitempty"`
}

// ListInterviewsRequest represents query parameters for listing interviews
type ListInterviewsRequest struct {
	Page     int `query:"page" validate:"min=1"`
	PageSize int `query:"page_size" validate:"min=1,max=100"`
}
