package models

// Comment is attached to a post through Parent. Parent is not a foreign key,
// so it may point at a post that has since been deleted.
type Comment struct {
	ID       int64  `json:"id"`
	Parent   int64  `json:"parent"`
	Score    int    `json:"score"`
	Text     string `json:"text"`
	Username string `json:"username"`
}
