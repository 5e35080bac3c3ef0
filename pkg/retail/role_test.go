package retail

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"customer", RoleCustomer, false},
		{"manager ", RoleManager, false},
		{"  admin   ", RoleAdmin, false},
		{"Manager", RoleManager, false},
		{"superuser", "", true},
		{"", "", true},
		{"managers", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownRole) {
				t.Errorf("ParseRole(%q) error = %v, want ErrUnknownRole", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSession_AuthenticatedOnCopy(t *testing.T) {
	current := func(role Role) Session { return Session{UserID: 3, Role: role} }

	if !current(RoleManager).Authenticated() {
		t.Error("manager session copy not authenticated")
	}
	if current("").Authenticated() {
		t.Error("anonymous session copy authenticated")
	}
}

func TestSessionReset(t *testing.T) {
	for _, role := range []Role{RoleCustomer, RoleManager, RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			sess := Session{UserID: 7, Name: "bob", Role: role, Latitude: 1.5, Longitude: 2.5}
			if !sess.Authenticated() {
				t.Fatal("expected authenticated session")
			}

			sess.Reset()
			if sess != (Session{}) {
				t.Errorf("Reset() left %+v", sess)
			}
			if sess.Authenticated() {
				t.Error("session still authenticated after Reset()")
			}
		})
	}
}
