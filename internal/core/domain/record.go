package domain

// Plain records mirroring the persisted JSON shape. Dates travel as
// ISO-8601 strings; dueDate is null when the card has none.

type BoardRecord struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"createdAt"`
	Columns     []ColumnRecord `json:"columns"`
}

type ColumnRecord struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Status   string       `json:"status"`
	WIPLimit int          `json:"wipLimit"`
	Cards    []CardRecord `json:"cards"`
}

type CardRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
	Priority    string   `json:"priority"`
	Labels      []string `json:"labels"`
	DueDate     *string  `json:"dueDate"`
}
