package models

// DefaultUsername is stored when a client omits the username field.
const DefaultUsername = "anonymous"

// Post is a top-level forum entry. Score is always 0; nothing updates it yet.
type Post struct {
	ID       int64  `json:"id"`
	Score    int    `json:"score"`
	Text     string `json:"text"`
	Username string `json:"username"`
}
