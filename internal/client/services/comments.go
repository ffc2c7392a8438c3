package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/models"
)

const commentListTTL = 20 * time.Second

type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, content string) (*models.Comment, error)
}

type commentService struct {
	api   Doer
	cache *memoCache
}

func NewCommentService(apiClient Doer) CommentService {
	return &commentService{api: apiClient, cache: newMemoCache()}
}

func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	key := fmt.Sprintf("comments:%d", articleID)
	if cached, ok := s.cache.get(key); ok {
		return cached.([]models.Comment), nil
	}

	comments := []models.Comment{}
	err := s.api.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/articles/%d/comments", articleID),
	}, &comments)
	if err != nil {
		return nil, err
	}

	s.cache.set(key, comments, commentListTTL)
	return comments, nil
}

// Create posts a comment and drops the cached thread so the next read shows it.
func (s *commentService) Create(ctx context.Context, articleID int64, content string) (*models.Comment, error) {
	var comment models.Comment
	err := s.api.Do(ctx, api.Request{
		Method:       http.MethodPost,
		Path:         fmt.Sprintf("/articles/%d/comments", articleID),
		Body:         map[string]string{"content": content},
		RequiresAuth: true,
	}, &comment)
	if err != nil {
		return nil, err
	}

	s.cache.invalidatePrefix(fmt.Sprintf("comments:%d", articleID))
	return &comment, nil
}
