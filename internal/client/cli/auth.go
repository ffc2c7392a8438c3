package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/validation"
	"github.com/mbs-dev/blogctl/internal/common"
)

// Register creates a new account and leaves the user to login afterwards,
// like the web client's sign-up page.
func (a *App) Register(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(password)

	form := validation.RegisterForm{FullName: fullName, Email: email, Password: string(password)}
	if err := validation.Check(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	err = a.api.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body: map[string]string{
			"fullName": form.FullName,
			"email":    form.Email,
			"password": form.Password,
		},
	}, nil)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintln(a.out, "Account created. You can now login.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(password)

	form := validation.LoginForm{Email: email, Password: string(password)}
	if err := validation.Check(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	result, err := a.session.Login(ctx, form.Email, form.Password)
	if err != nil {
		return a.fail(ctx, err)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", result.User.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current profile and the token expiry.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.FullName, user.Email)
	fmt.Fprintf(a.out, "Roles: %s\n", strings.Join(roles, ", "))

	if expiry, err := a.session.TokenExpiry(); err == nil {
		fmt.Fprintf(a.out, "Token expires: %s\n", expiry.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
