package dto

type CreateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AddColumnRequest struct {
	Title string `json:"title"`
	// Status is optional; an empty value is derived from the title.
	Status   string `json:"status"`
	WIPLimit int    `json:"wipLimit"`
}

type ReorderColumnsRequest struct {
	Order []string `json:"order"`
}

type AddCardRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Labels      []string `json:"labels"`
	DueDate     *string  `json:"dueDate"`
}

// UpdateCardRequest is a partial edit: nil fields are left untouched. An
// empty dueDate string clears the due date.
type UpdateCardRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	Labels      []string `json:"labels"`
	DueDate     *string  `json:"dueDate"`
}

type MoveCardRequest struct {
	SourceColumnID string `json:"sourceColumnId"`
	TargetColumnID string `json:"targetColumnId"`
	Position       *int   `json:"position"`
}

// ErrorResponse is the error body. Column and Limit are set for rejected
// moves so the UI can name the full column.
type ErrorResponse struct {
	Error  string `json:"error"`
	Column string `json:"column,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}
