package session

import (
	"errors"
	"testing"

	"github.com/learnflow/gateway/internal/model"
)

func TestMintParseRoundTrip(t *testing.T) {
	token := Mint(model.RoleStudent, 42, "alice@example.com")
	if token != "student|42|alice@example.com" {
		t.Fatalf("unexpected token: %q", token)
	}

	id, err := Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id.Role != model.RoleStudent || id.UserID != 42 || id.Email != "alice@example.com" {
		t.Errorf("unexpected identity: %+v", id)
	}
	if id.Token() != token {
		t.Errorf("re-encode mismatch: %q", id.Token())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"NoSeparators", "garbage"},
		{"TwoFields", "student|1"},
		{"FourFields", "student|1|a@b.com|extra"},
		{"NonNumericID", "student|abc|a@b.com"},
		{"UnknownRole", "admin|1|a@b.com"},
		{"EmailWithPipe", "student|1|a|b@c.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.raw); !errors.Is(err, ErrMalformedToken) {
				t.Errorf("Parse(%q) err = %v, want ErrMalformedToken", tc.raw, err)
			}
		})
	}
}

func TestIdentityUser(t *testing.T) {
	id := Identity{Role: model.RoleTeacher, UserID: 7, Email: "prof.smith@school.edu"}
	user := id.User()

	if user.ID != 7 || user.Email != "prof.smith@school.edu" || user.Role != model.RoleTeacher {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Name != "prof.smith" {
		t.Errorf("Name = %q, want email local part", user.Name)
	}
	if !user.IsActive {
		t.Error("reconstructed user should be active")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("bob@example.com"); got != "bob" {
		t.Errorf("DisplayName = %q, want %q", got, "bob")
	}
	// No @ means the whole string is the name.
	if got := DisplayName("bob"); got != "bob" {
		t.Errorf("DisplayName = %q, want %q", got, "bob")
	}
	// Leading @ has no local part to take.
	if got := DisplayName("@example.com"); got != "@example.com" {
		t.Errorf("DisplayName = %q, want full input", got)
	}
}
