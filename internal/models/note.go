package models

// Note is a timeline update posted on a project.
type Note struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Text      string `json:"text" validate:"required"`
	CreatedAt int64  `json:"createdAt"`
}
