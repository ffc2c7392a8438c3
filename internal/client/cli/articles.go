package cli

import (
	"context"
	"fmt"

	"github.com/mbs-dev/blogctl/internal/client/models"
	"github.com/mbs-dev/blogctl/internal/client/services"
)

// Articles shows the first page of the published feed. A pending category
// selection from "goto <n>" is consumed here and applied as a filter.
func (a *App) Articles(ctx context.Context) error {
	query := services.ArticleQuery{Status: models.StatusPublished}
	if intent := a.nav.TakeAndClear(); intent != nil {
		query.CategoryName = intent.CategoryName
		fmt.Fprintf(a.out, "Category: %s\n", intent.CategoryName)
	}

	page, err := a.articles.List(ctx, query)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.feed = page
	a.feedQuery = query
	a.printFeedPage(page)
	return nil
}

// More continues the current listing, the CLI stand-in for infinite scroll.
func (a *App) More(ctx context.Context) error {
	if a.feed == nil {
		fmt.Fprintln(a.out, "Nothing to continue; run 'articles' first.")
		return nil
	}
	if a.feed.Last {
		fmt.Fprintln(a.out, "No more articles.")
		return nil
	}

	query := a.feedQuery
	query.Page = a.feed.Number + 1

	page, err := a.articles.List(ctx, query)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.feed = page
	a.feedQuery = query
	a.printFeedPage(page)
	return nil
}

func (a *App) printFeedPage(page *models.Page[models.Article]) {
	if page.Empty || len(page.Content) == 0 {
		fmt.Fprintln(a.out, "No articles found.")
		return
	}

	for _, article := range page.Content {
		category := article.CategoryName
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(a.out, "%-40s  %-12s  %s\n", article.Slug, category, article.Title)
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d articles). Use 'read <slug>' or 'more'.\n",
		page.Number+1, page.TotalPages, page.TotalElements)
}

// Read shows one article by slug.
func (a *App) Read(ctx context.Context, slug string) error {
	article, err := a.articles.GetBySlug(ctx, slug)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintln(a.out, article.Title)
	if article.Excerpt != "" {
		fmt.Fprintln(a.out, article.Excerpt)
	}
	if article.PublishedAt != "" {
		fmt.Fprintf(a.out, "Published: %s\n", article.PublishedAt)
	}
	if url := a.assetURL(article.ThumbnailURL); url != "" {
		fmt.Fprintf(a.out, "Thumbnail: %s\n", url)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, article.Content)
	fmt.Fprintf(a.out, "\nComments: 'comments %d'\n", article.ID)
	return nil
}
