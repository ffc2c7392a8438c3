package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/guard"
	"github.com/mbs-dev/blogctl/internal/client/models"
	"github.com/mbs-dev/blogctl/internal/client/services"
	"github.com/mbs-dev/blogctl/internal/client/validation"
)

// Author is the guarded workspace for the AUTHOR role: the CLI counterpart
// of the protected dashboard routes.
func (a *App) Author(ctx context.Context, args []string) error {
	switch guard.Check(a.session, models.RoleAuthor) {
	case guard.Wait:
		fmt.Fprintln(a.out, "Session is still loading, try again.")
		return nil
	case guard.RedirectLogin:
		fmt.Fprintln(a.out, "Login required.")
		return nil
	case guard.RedirectPublic:
		fmt.Fprintln(a.out, "Author role required.")
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: author list | show <id> | new | edit <id> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		return a.authorList(ctx)
	case "show":
		id, ok := parseID(args[1:])
		if !ok {
			fmt.Fprintln(a.out, "Usage: author show <id>")
			return nil
		}
		return a.authorShow(ctx, id)
	case "new":
		return a.authorNew(ctx)
	case "edit":
		id, ok := parseID(args[1:])
		if !ok {
			fmt.Fprintln(a.out, "Usage: author edit <id>")
			return nil
		}
		return a.authorEdit(ctx, id)
	case "delete":
		id, ok := parseID(args[1:])
		if !ok {
			fmt.Fprintln(a.out, "Usage: author delete <id>")
			return nil
		}
		return a.authorDelete(ctx, id)
	default:
		fmt.Fprintln(a.out, "Usage: author list | show <id> | new | edit <id> | delete <id>")
		return nil
	}
}

func (a *App) authorList(ctx context.Context) error {
	user := a.session.User()

	page, err := a.articles.ListByAuthor(ctx, user.ID, "")
	if err != nil {
		return a.fail(ctx, err)
	}

	if len(page.Content) == 0 {
		fmt.Fprintln(a.out, "You have no articles yet; try 'author new'.")
		return nil
	}

	for _, article := range page.Content {
		fmt.Fprintf(a.out, "%6d  %-10s  %s\n", article.ID, article.Status, article.Title)
	}
	return nil
}

func (a *App) authorShow(ctx context.Context, id int64) error {
	article, err := a.articles.GetByID(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "#%d %s [%s]\n", article.ID, article.Title, article.Status)
	if article.Excerpt != "" {
		fmt.Fprintln(a.out, article.Excerpt)
	}
	if article.Keywords != "" {
		fmt.Fprintf(a.out, "Keywords: %s\n", article.Keywords)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, article.Content)
	return nil
}

func (a *App) authorNew(ctx context.Context) error {
	input, err := a.promptArticle(ctx, nil)
	if err != nil || input == nil {
		return err
	}

	article, err := a.articles.Create(ctx, *input)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Article #%d created (%s).\n", article.ID, article.Status)
	return nil
}

func (a *App) authorEdit(ctx context.Context, id int64) error {
	current, err := a.articles.GetByID(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}

	input, err := a.promptArticle(ctx, current)
	if err != nil || input == nil {
		return err
	}

	article, err := a.articles.Update(ctx, id, *input)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Article #%d updated (%s).\n", article.ID, article.Status)
	return nil
}

func (a *App) authorDelete(ctx context.Context, id int64) error {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete article #%d? (yes/no)", id), a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	if strings.ToLower(answer) != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.articles.Delete(ctx, id); err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Article #%d deleted.\n", id)
	return nil
}

// promptArticle collects the upsert form interactively. When current is
// non-nil its values are shown and kept on empty input. A validation failure
// prints the message and returns (nil, err); the caller makes no request.
func (a *App) promptArticle(ctx context.Context, current *models.Article) (*services.ArticleInput, error) {
	withDefault := func(prompt, def string) string {
		if def == "" {
			return prompt
		}
		return fmt.Sprintf("%s [%s]", prompt, def)
	}
	orDefault := func(value, def string) string {
		if value == "" {
			return def
		}
		return value
	}

	var defaults models.Article
	if current != nil {
		defaults = *current
	}

	title, err := GetSimpleText(a.reader, withDefault("Title", defaults.Title), a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	title = orDefault(title, defaults.Title)

	excerpt, err := GetSimpleText(a.reader, withDefault("Excerpt (optional)", defaults.Excerpt), a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	excerpt = orDefault(excerpt, defaults.Excerpt)

	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	content = orDefault(content, defaults.Content)

	keywords, err := GetSimpleText(a.reader, withDefault("Keywords (optional)", defaults.Keywords), a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	keywords = orDefault(keywords, defaults.Keywords)

	status, err := GetSimpleText(a.reader, withDefault("Status (DRAFT or PUBLISHED)", string(defaults.Status)), a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	status = strings.ToUpper(orDefault(status, string(defaults.Status)))

	categoryDefault := ""
	if defaults.CategoryID > 0 {
		categoryDefault = strconv.FormatInt(defaults.CategoryID, 10)
	}
	categoryRaw, err := GetSimpleText(a.reader, withDefault("Category id (optional)", categoryDefault), a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	categoryRaw = orDefault(categoryRaw, categoryDefault)

	var categoryID int64
	if categoryRaw != "" {
		categoryID, err = strconv.ParseInt(categoryRaw, 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "category must be a number")
			return nil, err
		}
	}

	form := validation.ArticleForm{
		Title:      title,
		Excerpt:    excerpt,
		Content:    content,
		Keywords:   keywords,
		Status:     status,
		CategoryID: categoryID,
	}
	if err := validation.Check(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil, err
	}

	input := &services.ArticleInput{
		Title:      title,
		Excerpt:    excerpt,
		Content:    content,
		Keywords:   keywords,
		Status:     models.ArticleStatus(status),
		CategoryID: categoryID,
	}

	thumbPath, err := GetSimpleText(a.reader, "Thumbnail file path (optional)", a.out)
	if err != nil {
		return nil, a.fail(ctx, err)
	}
	if thumbPath != "" {
		data, err := os.ReadFile(thumbPath)
		if err != nil {
			return nil, a.fail(ctx, fmt.Errorf("failed to read thumbnail: %w", err))
		}
		input.Thumbnail = &api.FormFile{
			Field:    "thumbnail",
			FileName: filepath.Base(thumbPath),
			Reader:   bytes.NewReader(data),
		}
	}

	return input, nil
}
