package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLoginForm(t *testing.T) {
	tests := []struct {
		name    string
		form    LoginForm
		wantErr string
	}{
		{name: "valid", form: LoginForm{Email: "a@b.io", Password: "secret1"}},
		{name: "missing email", form: LoginForm{Password: "secret1"}, wantErr: "email is required"},
		{name: "bad email", form: LoginForm{Email: "not-an-email", Password: "secret1"}, wantErr: "email must be a valid email address"},
		{name: "short password", form: LoginForm{Email: "a@b.io", Password: "abc"}, wantErr: "password must be at least 6 characters"},
		{name: "long password", form: LoginForm{Email: "a@b.io", Password: strings.Repeat("x", 129)}, wantErr: "password must be at most 128 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.form)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCheckRegisterForm(t *testing.T) {
	valid := RegisterForm{FullName: "Ada Lovelace", Email: "ada@b.io", Password: "secret1"}
	assert.NoError(t, Check(valid))

	short := valid
	short.FullName = "A"
	err := Check(short)
	require.Error(t, err)
	assert.Equal(t, "full name must be at least 2 characters", err.Error())

	long := valid
	long.FullName = strings.Repeat("n", 81)
	err = Check(long)
	require.Error(t, err)
	assert.Equal(t, "full name must be at most 80 characters", err.Error())
}

func TestCheckArticleForm(t *testing.T) {
	valid := ArticleForm{Title: "Go generics", Content: "body", Status: "DRAFT"}
	assert.NoError(t, Check(valid))

	t.Run("category optional", func(t *testing.T) {
		form := valid
		form.CategoryID = 0
		assert.NoError(t, Check(form))
		form.CategoryID = 3
		assert.NoError(t, Check(form))
	})

	t.Run("negative category", func(t *testing.T) {
		form := valid
		form.CategoryID = -1
		err := Check(form)
		require.Error(t, err)
		assert.Equal(t, "category must be a positive id", err.Error())
	})

	t.Run("bad status", func(t *testing.T) {
		form := valid
		form.Status = "ARCHIVED"
		err := Check(form)
		require.Error(t, err)
		assert.Equal(t, "status must be one of: DRAFT PUBLISHED", err.Error())
	})

	t.Run("title too short", func(t *testing.T) {
		form := valid
		form.Title = "x"
		err := Check(form)
		require.Error(t, err)
		assert.Equal(t, "title must be at least 2 characters", err.Error())
	})

	t.Run("excerpt too long", func(t *testing.T) {
		form := valid
		form.Excerpt = strings.Repeat("e", 601)
		err := Check(form)
		require.Error(t, err)
		assert.Equal(t, "excerpt must be at most 600 characters", err.Error())
	})

	t.Run("missing content", func(t *testing.T) {
		form := valid
		form.Content = ""
		err := Check(form)
		require.Error(t, err)
		assert.Equal(t, "content is required", err.Error())
	})
}

func TestCheckCommentForm(t *testing.T) {
	assert.NoError(t, Check(CommentForm{Content: "nice post"}))

	err := Check(CommentForm{})
	require.Error(t, err)
	assert.Equal(t, "content is required", err.Error())

	err = Check(CommentForm{Content: strings.Repeat("c", 5001)})
	require.Error(t, err)
	assert.Equal(t, "content must be at most 5000 characters", err.Error())
}
