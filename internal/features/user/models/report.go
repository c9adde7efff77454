package models

// DeleteStep records the outcome of one stage of a cascading delete
type DeleteStep struct {
	Name    string `json:"name" example:"interviews"`
	Removed int64  `json:"removed" example:"2"`
	Error   string `json:"error,omitempty"`
}

// DeleteReport represents the result of a cascading account delete:
// the dependent-data steps in execution order, then the root record.
type DeleteReport struct {
	UserID      string       `json:"user_id" example:"a9f51c6e"`
	Steps       []DeleteStep `json:"steps"`
	RootDeleted bool         `json:"root_deleted" example:"true"`
}
