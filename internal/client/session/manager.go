// Package session owns the client's authentication state: the in-memory
// token and profile, the hydration readiness flags, and the login, logout
// and fetch-profile operations.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mbs-dev/blogctl/internal/client/api"
	"github.com/mbs-dev/blogctl/internal/client/authbus"
	"github.com/mbs-dev/blogctl/internal/client/credentials"
	"github.com/mbs-dev/blogctl/internal/client/models"
	"github.com/mbs-dev/blogctl/internal/logging"
)

var (
	// ErrMissingToken means the login response carried no access token.
	ErrMissingToken = errors.New("login response contains no access token")

	// ErrLoginFailed wraps network-level login failures. Structured backend
	// errors (*api.Error) are passed through unchanged so callers can branch
	// on the status code.
	ErrLoginFailed = errors.New("login failed")
)

// LoginResponse is the POST /auth/login payload.
type LoginResponse struct {
	AccessToken      string        `json:"accessToken"`
	TokenType        string        `json:"tokenType"`
	ExpiresInSeconds int64         `json:"expiresInSeconds"`
	Email            string        `json:"email"`
	FullName         string        `json:"fullName"`
	Roles            []models.Role `json:"roles"`
}

// LoginResult is what a successful Login returns.
type LoginResult struct {
	Token string
	User  *models.User
}

// Manager is constructed once at application start. It registers itself on
// the logout bus for the lifetime of the process; a 401 detected by the HTTP
// core therefore clears this state even though the two layers never import
// each other.
type Manager struct {
	api   *api.Client
	creds *credentials.Store
	log   logging.Logger

	mu         sync.RWMutex
	token      *string
	user       *models.User
	tokenReady bool
	userReady  bool
}

func NewManager(apiClient *api.Client, creds *credentials.Store, bus *authbus.Bus, log logging.Logger) *Manager {
	m := &Manager{api: apiClient, creds: creds, log: log}
	bus.Register(m.onForcedLogout)
	return m
}

func (m *Manager) onForcedLogout(reason string) {
	m.log.Warn(context.Background(), "forced logout", "reason", reason)
	m.Logout(context.Background())
}

// Hydrate restores token and user from the credential store. The two reads
// run concurrently; the readiness flags flip to true only after both have
// completed, whether or not either found a value. Unreadable records count
// as absent. Calling Hydrate again after completion is a no-op.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.RLock()
	done := m.tokenReady && m.userReady
	m.mu.RUnlock()
	if done {
		return
	}

	var (
		wg    sync.WaitGroup
		token *string
		user  *models.User
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		t, err := m.creds.GetToken(ctx)
		if err != nil {
			m.log.Warn(ctx, "token hydration failed", "error", err)
			return
		}
		token = t
	}()
	go func() {
		defer wg.Done()
		u, err := m.creds.GetUser(ctx)
		if err != nil {
			m.log.Warn(ctx, "user hydration failed", "error", err)
			return
		}
		user = u
	}()
	wg.Wait()

	m.mu.Lock()
	if token != nil {
		m.token = token
	}
	if user != nil {
		m.user = user
	}
	m.tokenReady = true
	m.userReady = true
	m.mu.Unlock()
}

// Login authenticates, persists the token, then fetches and persists the
// profile. The token is persisted before the profile fetch because the HTTP
// core's token accessor reads from the persisted store, not from memory.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp LoginResponse
	err := m.api.Do(ctx, api.Request{
		Method: "POST",
		Path:   "/auth/login",
		Body:   map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, m.loginError(err)
	}

	if resp.AccessToken == "" {
		return nil, ErrMissingToken
	}

	if err := m.setToken(ctx, &resp.AccessToken); err != nil {
		return nil, m.loginError(err)
	}

	user, err := m.FetchMe(ctx)
	if err != nil {
		return nil, m.loginError(err)
	}
	if err := m.setUser(ctx, user); err != nil {
		return nil, m.loginError(err)
	}

	m.log.Info(ctx, "login successful", "email", user.Email)
	return &LoginResult{Token: resp.AccessToken, User: user}, nil
}

// loginError re-throws structured backend errors unchanged and normalizes
// everything else (no response present) to ErrLoginFailed.
func (m *Manager) loginError(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrLoginFailed, err)
}

// Logout clears the in-memory state synchronously, then removes all three
// credential-store keys. Idempotent: logging out twice only re-clears.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.token = nil
	m.user = nil
	m.mu.Unlock()

	if err := m.creds.ClearAll(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored credentials", "error", err)
	}
}

// FetchMe returns the current profile. It does not persist the result;
// callers decide whether to store it.
func (m *Manager) FetchMe(ctx context.Context) (*models.User, error) {
	var user models.User
	err := m.api.Do(ctx, api.Request{
		Method:       "GET",
		Path:         "/me",
		RequiresAuth: true,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Manager) setToken(ctx context.Context, token *string) error {
	if err := m.creds.SetToken(ctx, token); err != nil {
		return err
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Manager) setUser(ctx context.Context, user *models.User) error {
	if err := m.creds.SetUser(ctx, user); err != nil {
		return err
	}
	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return nil
}

// Ready reports whether hydration finished for both token and user.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokenReady && m.userReady
}

// IsAuthenticated is true iff both token and user are present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != nil && m.user != nil
}

// Token returns the in-memory access token, or "" when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == nil {
		return ""
	}
	return *m.token
}

// User returns the in-memory profile, or nil when logged out.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}
