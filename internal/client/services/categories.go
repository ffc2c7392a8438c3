package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/models"
)

type CategoryService interface {
	List(ctx context.Context, page, size int) ([]models.Category, error)
}

type categoryService struct {
	api Doer
}

func NewCategoryService(apiClient Doer) CategoryService {
	return &categoryService{api: apiClient}
}

// List returns one page of categories. Never cached: the category rail must
// reflect backend changes immediately.
func (s *categoryService) List(ctx context.Context, page, size int) ([]models.Category, error) {
	if size <= 0 {
		size = 10
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	categories := []models.Category{}
	err := s.api.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "/categories",
		Query:  q,
	}, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}
