package auth

import (
	"errors"
	"testing"

	"github.com/nexicon/nexicon-cli/pkg/store"
)

func newManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st := store.New(store.Seed(), nil)
	return New(st, t.TempDir()), st
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("demo user logs in by handle alone", func(t *testing.T) {
		t.Parallel()
		m, st := newManager(t)

		user, err := m.Login("rohanmehta", "whatever6")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if user.ID != "user1" {
			t.Errorf("user = %s, want user1", user.ID)
		}

		current := st.CurrentUser()
		if current == nil || current.ID != "user1" {
			t.Errorf("session user = %+v, want user1", current)
		}
	})

	t.Run("handle lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		user, err := m.Login("PriyaStyles", "whatever6")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if user.ID != "user2" {
			t.Errorf("user = %s, want user2", user.ID)
		}
	})

	t.Run("unknown handle", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		if _, err := m.Login("ghost", "whatever6"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		tests := []struct {
			name     string
			handle   string
			password string
			wantErr  error
		}{
			{"empty handle", "", "whatever6", ErrHandleRequired},
			{"whitespace handle", "   ", "whatever6", ErrHandleRequired},
			{"short password", "rohanmehta", "tiny", ErrPasswordTooShort},
		}

		for _, tt := range tests {
			if _, err := m.Login(tt.handle, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
			}
		}
	})
}

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("creates the account and logs in", func(t *testing.T) {
		t.Parallel()
		m, st := newManager(t)

		user, err := m.Signup("New Person", "newperson", "secret99")
		if err != nil {
			t.Fatalf("Signup() error = %v", err)
		}
		if user.ID == "" {
			t.Error("expected a generated user ID")
		}
		if user.Handle != "newperson" {
			t.Errorf("handle = %q, want newperson", user.Handle)
		}
		if user.Avatar == "" {
			t.Error("expected a generated avatar URL")
		}

		if _, ok := st.UserByHandle("newperson"); !ok {
			t.Error("signed-up user missing from the collection")
		}
		current := st.CurrentUser()
		if current == nil || current.Handle != "newperson" {
			t.Errorf("session user = %+v, want newperson", current)
		}
	})

	t.Run("duplicate handle is rejected", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		if _, err := m.Signup("Impostor", "rohanmehta", "secret99"); !errors.Is(err, ErrHandleTaken) {
			t.Errorf("error = %v, want ErrHandleTaken", err)
		}
		// Case-insensitive too.
		if _, err := m.Signup("Impostor", "ROHANMEHTA", "secret99"); !errors.Is(err, ErrHandleTaken) {
			t.Errorf("error = %v, want ErrHandleTaken", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		tests := []struct {
			name     string
			fullName string
			handle   string
			password string
			wantErr  error
		}{
			{"empty name", "", "somebody", "secret99", ErrNameRequired},
			{"empty handle", "Somebody", "", "secret99", ErrHandleRequired},
			{"short handle", "Somebody", "ab", "secret99", ErrHandleTooShort},
			{"short password", "Somebody", "somebody", "tiny", ErrPasswordTooShort},
		}

		for _, tt := range tests {
			if _, err := m.Signup(tt.fullName, tt.handle, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
			}
		}
	})

	t.Run("password is checked on the next login", func(t *testing.T) {
		t.Parallel()
		m, st := newManager(t)

		if _, err := m.Signup("New Person", "newperson", "secret99"); err != nil {
			t.Fatalf("Signup() error = %v", err)
		}
		m.Logout()
		if st.CurrentUser() != nil {
			t.Fatal("expected logout to clear the session")
		}

		if _, err := m.Login("newperson", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
		}
		if _, err := m.Login("newperson", "secret99"); err != nil {
			t.Errorf("correct password: error = %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	m, st := newManager(t)

	if _, err := m.Login("rohanmehta", "whatever6"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	m.Logout()
	if st.CurrentUser() != nil {
		t.Error("session user still set after logout")
	}
	// Collections survive logout.
	if got := len(st.Users()); got == 0 {
		t.Error("user collection emptied by logout")
	}
}
