package cli

import (
	"context"
	"fmt"

	"github.com/mbs-dev/blogctl/internal/client/navintent"
)

// Categories lists the first page of categories and remembers them so
// "goto <n>" can pick one by its printed number.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.categories.List(ctx, 0, 50)
	if err != nil {
		return a.fail(ctx, err)
	}

	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories.")
		return nil
	}

	a.lastCategories = categories
	for i, c := range categories {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, c.Name)
	}
	fmt.Fprintln(a.out, "Use 'goto <n>' then 'articles' to browse a category.")
	return nil
}

// Goto records the selected category as a pending navigation; the next
// "articles" consumes it as a filter.
func (a *App) Goto(ctx context.Context, n int) error {
	if n < 1 || n > len(a.lastCategories) {
		fmt.Fprintln(a.out, "No such category; run 'categories' first.")
		return nil
	}

	selected := a.lastCategories[n-1]
	a.nav.Set(navintent.State{CategoryName: selected.Name})
	fmt.Fprintf(a.out, "Selected category %q; run 'articles' to browse it.\n", selected.Name)
	return nil
}
