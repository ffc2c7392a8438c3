package models

// Page is the pagination envelope returned by the backend's list endpoints.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Empty            bool  `json:"empty"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
}

// EmptyPage returns the envelope a missing response body is normalized to.
func EmptyPage[T any](size int) *Page[T] {
	return &Page[T]{
		Content: []T{},
		Empty:   true,
		First:   true,
		Last:    true,
		Size:    size,
	}
}
