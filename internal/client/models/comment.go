package models

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentVisible CommentStatus = "VISIBLE"
	CommentHidden  CommentStatus = "HIDDEN"
	CommentDeleted CommentStatus = "DELETED"
)

type Comment struct {
	ID           int64         `json:"id"`
	ArticleID    int64         `json:"articleId"`
	UserID       int64         `json:"userId"`
	UserFullName string        `json:"userFullName"`
	Content      string        `json:"content"`
	Status       CommentStatus `json:"status"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}
