package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/models"
)

// DefaultSort orders article lists newest first.
const DefaultSort = "createdAt,desc"

const (
	articleListTTL   = 30 * time.Second
	articleDetailTTL = 30 * time.Second
)

// Doer is the request surface the services need; *api.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req api.Request, out any) error
}

// ArticleQuery is the public list filter set.
type ArticleQuery struct {
	Page         int
	Size         int
	Sort         string
	Name         string
	Keywords     string
	CategoryName string
	Status       models.ArticleStatus
}

// ArticleInput is the author-side create/update form. Thumbnail, when
// present, is attached as a binary multipart part.
type ArticleInput struct {
	Title      string
	Excerpt    string
	Content    string
	Keywords   string
	Status     models.ArticleStatus
	CategoryID int64
	Thumbnail  *api.FormFile
}

type ArticleService interface {
	List(ctx context.Context, q ArticleQuery) (*models.Page[models.Article], error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	ListByAuthor(ctx context.Context, authorID int64, name string) (*models.Page[models.Article], error)
	Create(ctx context.Context, input ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id int64, input ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

type articleService struct {
	api   Doer
	cache *memoCache
}

func NewArticleService(apiClient Doer) ArticleService {
	return &articleService{api: apiClient, cache: newMemoCache()}
}

func (q ArticleQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	sort := q.Sort
	if sort == "" {
		sort = DefaultSort
	}
	v.Set("sort", sort)
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.Keywords != "" {
		v.Set("keywords", q.Keywords)
	}
	if q.CategoryName != "" {
		v.Set("categoryName", q.CategoryName)
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	return v
}

// List fetches one page of the public article feed. Results are memoized
// briefly so paging back and forth does not re-hit the backend.
func (s *articleService) List(ctx context.Context, q ArticleQuery) (*models.Page[models.Article], error) {
	if q.Size <= 0 {
		q.Size = 10
	}
	key := "articles:list:" + q.values().Encode()
	if cached, ok := s.cache.get(key); ok {
		return cached.(*models.Page[models.Article]), nil
	}

	page := models.EmptyPage[models.Article](q.Size)
	err := s.api.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "/articles",
		Query:  q.values(),
	}, page)
	if err != nil {
		return nil, err
	}

	s.cache.set(key, page, articleListTTL)
	return page, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	key := "articles:slug:" + slug
	if cached, ok := s.cache.get(key); ok {
		return cached.(*models.Article), nil
	}

	var article models.Article
	err := s.api.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "/articles/slug/" + url.PathEscape(slug),
	}, &article)
	if err != nil {
		return nil, err
	}

	s.cache.set(key, &article, articleDetailTTL)
	return &article, nil
}

// GetByID is the author view of a single article; drafts are only visible to
// their owner, so the call is authenticated and never cached.
func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	err := s.api.Do(ctx, api.Request{
		Method:       http.MethodGet,
		Path:         fmt.Sprintf("/articles/%d", id),
		RequiresAuth: true,
	}, &article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ListByAuthor fetches the author's worklist. The backend has no author
// filter on the list endpoint, so a large page is fetched and narrowed to
// the author's own articles client-side.
func (s *articleService) ListByAuthor(ctx context.Context, authorID int64, name string) (*models.Page[models.Article], error) {
	const size = 200

	q := url.Values{}
	q.Set("page", "0")
	q.Set("size", strconv.Itoa(size))
	q.Set("sort", DefaultSort)
	if name != "" {
		q.Set("name", name)
	}

	page := models.EmptyPage[models.Article](size)
	err := s.api.Do(ctx, api.Request{
		Method:       http.MethodGet,
		Path:         "/articles",
		Query:        q,
		RequiresAuth: true,
	}, page)
	if err != nil {
		return nil, err
	}

	mine := make([]models.Article, 0, len(page.Content))
	for _, a := range page.Content {
		if a.AuthorID == authorID {
			mine = append(mine, a)
		}
	}

	return &models.Page[models.Article]{
		Content:          mine,
		Empty:            len(mine) == 0,
		First:            true,
		Last:             true,
		NumberOfElements: len(mine),
		Size:             size,
		TotalElements:    int64(len(mine)),
		TotalPages:       1,
	}, nil
}

func (input ArticleInput) form() *api.Form {
	fields := map[string]string{
		"title":   input.Title,
		"content": input.Content,
		"status":  string(input.Status),
	}
	if input.Excerpt != "" {
		fields["excerpt"] = input.Excerpt
	}
	if input.Keywords != "" {
		fields["keywords"] = input.Keywords
	}
	if input.CategoryID > 0 {
		fields["categoryId"] = strconv.FormatInt(input.CategoryID, 10)
	}

	form := &api.Form{Fields: fields}
	if input.Thumbnail != nil {
		form.Files = []api.FormFile{*input.Thumbnail}
	}
	return form
}

func (s *articleService) Create(ctx context.Context, input ArticleInput) (*models.Article, error) {
	var article models.Article
	err := s.api.Do(ctx, api.Request{
		Method:       http.MethodPost,
		Path:         "/articles",
		Form:         input.form(),
		RequiresAuth: true,
	}, &article)
	if err != nil {
		return nil, err
	}

	s.cache.invalidatePrefix("articles:")
	return &article, nil
}

func (s *articleService) Update(ctx context.Context, id int64, input ArticleInput) (*models.Article, error) {
	var article models.Article
	err := s.api.Do(ctx, api.Request{
		Method:       http.MethodPut,
		Path:         fmt.Sprintf("/articles/%d", id),
		Form:         input.form(),
		RequiresAuth: true,
	}, &article)
	if err != nil {
		return nil, err
	}

	s.cache.invalidatePrefix("articles:")
	return &article, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	err := s.api.Do(ctx, api.Request{
		Method:       http.MethodDelete,
		Path:         fmt.Sprintf("/articles/%d", id),
		RequiresAuth: true,
	}, nil)
	if err != nil {
		return err
	}

	s.cache.invalidatePrefix("articles:")
	return nil
}
