package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/authbus"
	"github.com/mbs-dev/blogctl/internal/client/config"
	"github.com/mbs-dev/blogctl/internal/client/credentials"
	"github.com/mbs-dev/blogctl/internal/client/models"
	"github.com/mbs-dev/blogctl/internal/client/navintent"
	"github.com/mbs-dev/blogctl/internal/client/repositories/localstore"
	"github.com/mbs-dev/blogctl/internal/client/services"
	"github.com/mbs-dev/blogctl/internal/client/session"
	"github.com/mbs-dev/blogctl/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	api        *api.Client
	bus        *authbus.Bus
	session    *session.Manager
	articles   services.ArticleService
	comments   services.CommentService
	categories services.CategoryService
	nav        *navintent.Store

	reader *bufio.Reader
	out    io.Writer

	// feed is the last article page shown; "more" continues from it.
	feed      *models.Page[models.Article]
	feedQuery services.ArticleQuery

	// lastCategories backs "goto <n>" after a "categories" listing.
	lastCategories []models.Category
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localstore.InitDatabase(ctx, c.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	repo := localstore.NewSQLiteRepository(db)

	creds := credentials.New(repo, c.SecretKey, credentials.Keys{
		Token:        c.TokenKey,
		User:         c.UserKey,
		RefreshToken: c.RefreshTokenKey,
	})

	bus := authbus.New()

	tokens := func(ctx context.Context) (string, error) {
		token, err := creds.GetToken(ctx)
		if err != nil || token == nil {
			return "", err
		}
		return *token, nil
	}

	apiClient, err := api.NewClient(c.APIBaseURL, c.RequestTimeout, tokens, bus, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:     c,
		log:        log,
		api:        apiClient,
		bus:        bus,
		session:    session.NewManager(apiClient, creds, bus, log),
		articles:   services.NewArticleService(apiClient),
		comments:   services.NewCommentService(apiClient),
		categories: services.NewCategoryService(apiClient),
		nav:        navintent.New(),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run hydrates the session from the local store and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Hydrate(ctx)

	fmt.Fprintln(a.out, "blogctl (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

// takeNotice consumes a recorded forced-logout reason and renders it for the
// prompt. Returns "" when there is nothing to show.
func (a *App) takeNotice() string {
	switch a.bus.Reason() {
	case "":
		return ""
	case authbus.ReasonTokenExpired:
		a.bus.ClearReason()
		return "Your session has expired. Please login again."
	default:
		reason := a.bus.Reason()
		a.bus.ClearReason()
		return "You were logged out (" + reason + ")."
	}
}

// fail prints the normalized error message the way the web client shows its
// banner and logs the underlying error.
func (a *App) fail(ctx context.Context, err error) error {
	a.log.Debug(ctx, "command failed", "error", err)
	fmt.Fprintln(a.out, "Error:", errorMessage(err))
	return err
}

func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// assetURL resolves a possibly relative thumbnail path against the upload
// base URL.
func (a *App) assetURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(a.config.UploadBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
