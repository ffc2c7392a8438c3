package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	takeNotice() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Articles(ctx context.Context) error
	More(ctx context.Context) error
	Read(ctx context.Context, slug string) error
	Comments(ctx context.Context, articleID int64) error
	Comment(ctx context.Context, articleID int64) error
	Categories(ctx context.Context) error
	Goto(ctx context.Context, n int) error
	Author(ctx context.Context, args []string) error
}

// runREPL starts a read-eval-print loop for the blogctl CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help            — show available commands
//	  - articles        — show a page of published articles
//	  - more            — fetch the next page of the current listing
//	  - read <slug>     — show one article
//	  - comments <id>   — show the comments of an article
//	  - categories      — list categories
//	  - goto <n>        — jump to category n from the last listing
//	  - exit | quit     — leave the program
//
//	Not logged in additionally:
//	  - register        — create an account
//	  - login           — authenticate
//
//	Logged in additionally:
//	  - whoami          — show the current profile
//	  - comment <id>    — post a comment on an article
//	  - author ...      — author workspace (list, show, new, edit, delete)
//	  - logout          — log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if notice := a.takeNotice(); notice != "" {
			printlnFn(notice)
		}
		printlnFn(fmt.Sprintf("blogctl> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: articles, more, read <slug>, comments <id>, categories, goto <n>, exit")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, comment <id>, author [list|show <id>|new|edit <id>|delete <id>], logout")
			} else {
				printlnFn("Account: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "articles":
			_ = a.Articles(ctx)

		case "more":
			_ = a.More(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <slug>")
				continue
			}
			_ = a.Read(ctx, args[0])

		case "comments":
			id, ok := parseID(args)
			if !ok {
				printlnFn("Usage: comments <article id>")
				continue
			}
			_ = a.Comments(ctx, id)

		case "comment":
			id, ok := parseID(args)
			if !ok {
				printlnFn("Usage: comment <article id>")
				continue
			}
			_ = a.Comment(ctx, id)

		case "categories":
			_ = a.Categories(ctx)

		case "goto":
			if len(args) == 0 {
				printlnFn("Usage: goto <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				printlnFn("Usage: goto <n>")
				continue
			}
			_ = a.Goto(ctx, n)

		case "author":
			_ = a.Author(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
