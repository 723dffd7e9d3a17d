// Package auth implements signup and login against the local user collection.
//
// Validation lives here, outside the store: the store itself never rejects
// an operation. Locally created accounts keep a bcrypt hash in a credentials
// file next to the storage slot; the seeded demo users have no credential
// record and authenticate by handle alone.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

var (
	ErrHandleRequired     = errors.New("username is required")
	ErrHandleTooShort     = errors.New("username must be at least 3 characters")
	ErrHandleTaken        = errors.New("username already taken")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const accountsFile = "accounts.json"

// Manager performs session auth against an injected store.
type Manager struct {
	store *store.Store
	dir   string
}

// New returns a manager that keeps its credentials file in dir.
func New(st *store.Store, dir string) *Manager {
	return &Manager{store: st, dir: dir}
}

// Login authenticates by handle and sets the session user.
func (m *Manager) Login(handle, password string) (*models.User, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrHandleRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	user, ok := m.store.UserByHandle(handle)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	creds, err := m.loadCredentials()
	if err != nil {
		return nil, err
	}
	if hash, ok := creds[strings.ToLower(user.Handle)]; ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
	}
	// Demo users carry no credential record and log in by handle alone.

	m.store.SetCurrentUser(&user)
	return &user, nil
}

// Signup creates an account, stores its credential and logs it in.
func (m *Manager) Signup(name, handle, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	handle = strings.TrimSpace(handle)
	if name == "" {
		return nil, ErrNameRequired
	}
	if handle == "" {
		return nil, ErrHandleRequired
	}
	if len(handle) < 3 {
		return nil, ErrHandleTooShort
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if _, exists := m.store.UserByHandle(handle); exists {
		return nil, ErrHandleTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:       store.NewID(),
		Name:     name,
		Handle:   handle,
		Avatar:   fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", handle),
		JoinedAt: time.Now().Format("January 2006"),
		Online:   true,
	}
	m.store.AddUser(user)
	m.store.SetCurrentUser(&user)

	creds, err := m.loadCredentials()
	if err != nil {
		return nil, err
	}
	creds[strings.ToLower(handle)] = string(hash)
	if err := m.saveCredentials(creds); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout clears the session user. Collections are untouched.
func (m *Manager) Logout() {
	m.store.SetCurrentUser(nil)
}

func (m *Manager) credentialsPath() string {
	return filepath.Join(m.dir, accountsFile)
}

func (m *Manager) loadCredentials() (map[string]string, error) {
	data, err := os.ReadFile(m.credentialsPath())
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	creds := make(map[string]string)
	if err := json.Unmarshal(data, &creds); err != nil {
		// A corrupt credentials file degrades to "no stored credentials".
		return make(map[string]string), nil
	}
	return creds, nil
}

func (m *Manager) saveCredentials(creds map[string]string) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(m.credentialsPath(), data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
