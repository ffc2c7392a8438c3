package cli

import (
	"context"
	"fmt"

	"github.com/mbs-dev/blogctl/internal/client/validation"
)

// Comments shows the comment thread of an article.
func (a *App) Comments(ctx context.Context, articleID int64) error {
	comments, err := a.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return a.fail(ctx, err)
	}

	if len(comments) == 0 {
		fmt.Fprintln(a.out, "No comments yet.")
		return nil
	}

	for _, c := range comments {
		fmt.Fprintf(a.out, "[%s] %s:\n%s\n\n", c.CreatedAt, c.UserFullName, c.Content)
	}
	return nil
}

// Comment posts a new comment on an article.
func (a *App) Comment(ctx context.Context, articleID int64) error {
	if !a.session.Ready() {
		fmt.Fprintln(a.out, "Session is still loading, try again.")
		return nil
	}
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Login required to comment.")
		return nil
	}

	content, err := GetMultiline(a.reader, "Enter comment", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}

	if err := validation.Check(validation.CommentForm{Content: content}); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	comment, err := a.comments.Create(ctx, articleID, content)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Comment #%d posted.\n", comment.ID)
	return nil
}
