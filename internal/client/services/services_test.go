package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/models"
)

// fakeDoer records every request and answers each with a canned JSON payload.
type fakeDoer struct {
	requests []api.Request
	payload  any
	err      error
}

func (f *fakeDoer) Do(ctx context.Context, req api.Request, out any) error {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return f.err
	}
	if out == nil || f.payload == nil {
		return nil
	}
	raw, err := json.Marshal(f.payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func articlePage(articles ...models.Article) *models.Page[models.Article] {
	return &models.Page[models.Article]{
		Content:          articles,
		NumberOfElements: len(articles),
		TotalElements:    int64(len(articles)),
		TotalPages:       1,
		First:            true,
		Last:             true,
	}
}

func TestArticleList_QueryDefaults(t *testing.T) {
	doer := &fakeDoer{payload: articlePage()}
	svc := NewArticleService(doer)

	_, err := svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)

	require.Len(t, doer.requests, 1)
	req := doer.requests[0]
	assert.Equal(t, "/articles", req.Path)
	assert.False(t, req.RequiresAuth)
	assert.Equal(t, "0", req.Query.Get("page"))
	assert.Equal(t, "10", req.Query.Get("size"))
	assert.Equal(t, DefaultSort, req.Query.Get("sort"))
	assert.Empty(t, req.Query.Get("name"))
}

func TestArticleList_FiltersForwarded(t *testing.T) {
	doer := &fakeDoer{payload: articlePage()}
	svc := NewArticleService(doer)

	_, err := svc.List(context.Background(), ArticleQuery{
		Page:         2,
		Size:         5,
		Name:         "go",
		Keywords:     "testing",
		CategoryName: "Tech",
		Status:       models.StatusPublished,
	})
	require.NoError(t, err)

	q := doer.requests[0].Query
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "5", q.Get("size"))
	assert.Equal(t, "go", q.Get("name"))
	assert.Equal(t, "testing", q.Get("keywords"))
	assert.Equal(t, "Tech", q.Get("categoryName"))
	assert.Equal(t, "PUBLISHED", q.Get("status"))
}

func TestArticleList_CachesPerQuery(t *testing.T) {
	doer := &fakeDoer{payload: articlePage(models.Article{ID: 1, Title: "one"})}
	svc := NewArticleService(doer)

	first, err := svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)
	second, err := svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)

	assert.Len(t, doer.requests, 1, "second identical query should hit the cache")
	assert.Equal(t, first, second)

	_, err = svc.List(context.Background(), ArticleQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, doer.requests, 2, "different query is a different cache key")
}

func TestArticleList_ErrorNotCached(t *testing.T) {
	doer := &fakeDoer{err: errors.New("boom")}
	svc := NewArticleService(doer)

	_, err := svc.List(context.Background(), ArticleQuery{})
	require.Error(t, err)

	doer.err = nil
	doer.payload = articlePage()
	_, err = svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)
	assert.Len(t, doer.requests, 2)
}

func TestArticleGetBySlug_CachedAndEscaped(t *testing.T) {
	doer := &fakeDoer{payload: models.Article{ID: 7, Slug: "hello world"}}
	svc := NewArticleService(doer)

	a, err := svc.GetBySlug(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "/articles/slug/hello%20world", doer.requests[0].Path)

	_, err = svc.GetBySlug(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Len(t, doer.requests, 1)
}

func TestArticleGetByID_AuthenticatedUncached(t *testing.T) {
	doer := &fakeDoer{payload: models.Article{ID: 42}}
	svc := NewArticleService(doer)

	_, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	_, err = svc.GetByID(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, doer.requests, 2)
	assert.Equal(t, "/articles/42", doer.requests[0].Path)
	assert.True(t, doer.requests[0].RequiresAuth)
}

func TestArticleListByAuthor_FiltersClientSide(t *testing.T) {
	doer := &fakeDoer{payload: articlePage(
		models.Article{ID: 1, AuthorID: 10},
		models.Article{ID: 2, AuthorID: 11},
		models.Article{ID: 3, AuthorID: 10},
	)}
	svc := NewArticleService(doer)

	page, err := svc.ListByAuthor(context.Background(), 10, "")
	require.NoError(t, err)

	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(1), page.Content[0].ID)
	assert.Equal(t, int64(3), page.Content[1].ID)
	assert.Equal(t, 2, page.NumberOfElements)

	req := doer.requests[0]
	assert.True(t, req.RequiresAuth)
	assert.Equal(t, "200", req.Query.Get("size"))
	assert.Equal(t, "0", req.Query.Get("page"))
}

func TestArticleCreate_FormAssembly(t *testing.T) {
	doer := &fakeDoer{payload: models.Article{ID: 5}}
	svc := NewArticleService(doer)

	thumb := &api.FormFile{Field: "thumbnail", FileName: "cover.png", Reader: bytes.NewReader([]byte{1, 2, 3})}
	_, err := svc.Create(context.Background(), ArticleInput{
		Title:      "Title",
		Content:    "Body",
		Status:     models.StatusDraft,
		CategoryID: 3,
		Thumbnail:  thumb,
	})
	require.NoError(t, err)

	req := doer.requests[0]
	assert.Equal(t, "/articles", req.Path)
	assert.True(t, req.RequiresAuth)
	require.NotNil(t, req.Form)
	assert.Equal(t, "Title", req.Form.Fields["title"])
	assert.Equal(t, "DRAFT", req.Form.Fields["status"])
	assert.Equal(t, "3", req.Form.Fields["categoryId"])
	_, hasExcerpt := req.Form.Fields["excerpt"]
	assert.False(t, hasExcerpt, "empty optional fields stay out of the form")
	require.Len(t, req.Form.Files, 1)
	assert.Equal(t, "cover.png", req.Form.Files[0].FileName)
}

func TestArticleCreate_OmitsZeroCategory(t *testing.T) {
	doer := &fakeDoer{payload: models.Article{ID: 5}}
	svc := NewArticleService(doer)

	_, err := svc.Create(context.Background(), ArticleInput{
		Title:   "Title",
		Content: "Body",
		Status:  models.StatusDraft,
	})
	require.NoError(t, err)

	_, has := doer.requests[0].Form.Fields["categoryId"]
	assert.False(t, has)
	assert.Empty(t, doer.requests[0].Form.Files)
}

func TestArticleMutations_InvalidateListCache(t *testing.T) {
	doer := &fakeDoer{payload: articlePage()}
	svc := NewArticleService(doer)

	_, err := svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)

	doer.payload = models.Article{ID: 9}
	_, err = svc.Update(context.Background(), 9, ArticleInput{Title: "t", Content: "c", Status: models.StatusDraft})
	require.NoError(t, err)

	doer.payload = articlePage()
	_, err = svc.List(context.Background(), ArticleQuery{})
	require.NoError(t, err)

	assert.Len(t, doer.requests, 3, "update must evict the cached list")
}

func TestArticleDelete(t *testing.T) {
	doer := &fakeDoer{}
	svc := NewArticleService(doer)

	require.NoError(t, svc.Delete(context.Background(), 12))

	req := doer.requests[0]
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/articles/12", req.Path)
	assert.True(t, req.RequiresAuth)
}

func TestCommentsListByArticle_Cached(t *testing.T) {
	doer := &fakeDoer{payload: []models.Comment{{ID: 1, Content: "hi"}}}
	svc := NewCommentService(doer)

	comments, err := svc.ListByArticle(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "/articles/7/comments", doer.requests[0].Path)
	assert.False(t, doer.requests[0].RequiresAuth)

	_, err = svc.ListByArticle(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, doer.requests, 1)
}

func TestCommentCreate_InvalidatesThread(t *testing.T) {
	doer := &fakeDoer{payload: []models.Comment{}}
	svc := NewCommentService(doer)

	_, err := svc.ListByArticle(context.Background(), 7)
	require.NoError(t, err)

	doer.payload = models.Comment{ID: 2, Content: "new"}
	created, err := svc.Create(context.Background(), 7, "new")
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	post := doer.requests[1]
	assert.Equal(t, "POST", post.Method)
	assert.True(t, post.RequiresAuth)
	body, ok := post.Body.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "new", body["content"])

	doer.payload = []models.Comment{}
	_, err = svc.ListByArticle(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, doer.requests, 3, "create must evict the cached thread")
}

func TestCategoriesList_NeverCached(t *testing.T) {
	doer := &fakeDoer{payload: []models.Category{{ID: 1, Name: "Tech"}}}
	svc := NewCategoryService(doer)

	cats, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "10", doer.requests[0].Query.Get("size"))

	_, err = svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, doer.requests, 2)
}

func TestMemoCache_Expiry(t *testing.T) {
	c := newMemoCache()
	c.set("k", "v", 10*time.Millisecond)

	v, ok := c.get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.get("k")
	assert.False(t, ok)
}

func TestMemoCache_InvalidatePrefix(t *testing.T) {
	c := newMemoCache()
	c.set("articles:list:a", 1, time.Minute)
	c.set("articles:slug:b", 2, time.Minute)
	c.set("comments:7", 3, time.Minute)

	c.invalidatePrefix("articles:")

	_, ok := c.get("articles:list:a")
	assert.False(t, ok)
	_, ok = c.get("articles:slug:b")
	assert.False(t, ok)
	_, ok = c.get("comments:7")
	assert.True(t, ok)
}
