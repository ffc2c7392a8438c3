package models

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
)

type Article struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Excerpt      string        `json:"excerpt"`
	Content      string        `json:"content"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Status       ArticleStatus `json:"status"`
	PublishedAt  string        `json:"publishedAt"`
	AuthorID     int64         `json:"authorId"`
	CategoryID   int64         `json:"categoryId"`
	Keywords     string        `json:"keywords,omitempty"`
	CategoryName string        `json:"categoryName,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
