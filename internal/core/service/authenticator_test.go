package service

import (
	"errors"
	"testing"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/infrastructure/directory"
)

func seededAuthenticator() *Authenticator {
	return NewAuthenticator(directory.NewStatic())
}

func TestAuthenticator_MemberSuccess(t *testing.T) {
	auth := seededAuthenticator()

	user, err := auth.Authenticate("12434547", "vishnu2024", domain.RoleMember)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Name != "Vishnu A" {
		t.Fatalf("expected Vishnu A, got %s", user.Name)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthenticator_AdminUsesUsername(t *testing.T) {
	auth := seededAuthenticator()

	user, err := auth.Authenticate("8823931", "@RCC-2025", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Name != "System Administrator" {
		t.Fatalf("expected System Administrator, got %s", user.Name)
	}
}

func TestAuthenticator_RolePartitionIsStrict(t *testing.T) {
	auth := seededAuthenticator()

	// Right credential pair, wrong partition: never matches.
	if _, err := auth.Authenticate("8823931", "@RCC-2025", domain.RoleMember); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.Authenticate("12434547", "vishnu2024", domain.RoleBearer); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticator_EveryMemberMatchesOnlyOwnPartition(t *testing.T) {
	auth := seededAuthenticator()

	for _, m := range directory.NewStatic().Members() {
		user, err := auth.Authenticate(m.RID, m.Password, domain.RoleMember)
		if err != nil {
			t.Fatalf("member %s: %v", m.Name, err)
		}
		if user.RID != m.RID {
			t.Fatalf("member %s: got %s", m.Name, user.RID)
		}
		if _, err := auth.Authenticate(m.RID, m.Password, domain.RoleBearer); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("member %s matched in bearer partition", m.Name)
		}
	}
}

func TestAuthenticator_WrongPassword(t *testing.T) {
	auth := seededAuthenticator()

	if _, err := auth.Authenticate("12434547", "Vishnu2024", domain.RoleMember); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected case-sensitive rejection, got %v", err)
	}
	if _, err := auth.Authenticate("12152803", "wrong", domain.RoleBearer); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticator_AdvertisedDemoCredentialDoesNotExist(t *testing.T) {
	auth := seededAuthenticator()

	// The login screen advertises this pair, but no such RID ships in the
	// roster. It must fail like any other bad credential.
	if _, err := auth.Authenticate("834573401", "member2024", domain.RoleMember); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticator_EmptyAndUnknownInputs(t *testing.T) {
	auth := seededAuthenticator()

	cases := []struct {
		identifier, password string
		role                 domain.Role
	}{
		{"", "vishnu2024", domain.RoleMember},
		{"12434547", "", domain.RoleMember},
		{"12434547", "vishnu2024", domain.Role("guest")},
	}
	for _, tc := range cases {
		if _, err := auth.Authenticate(tc.identifier, tc.password, tc.role); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("(%q,%q,%q): expected ErrInvalidCredentials, got %v", tc.identifier, tc.password, tc.role, err)
		}
	}
}

func TestAuthenticator_FirstMatchInListOrder(t *testing.T) {
	// Two records with the same credentials: list order decides.
	bearers := []domain.User{
		{ID: "12", RID: "999", Password: "pw", Role: domain.RoleBearer, Name: "First"},
		{ID: "12", RID: "999", Password: "pw", Role: domain.RoleBearer, Name: "Second"},
	}
	auth := NewAuthenticator(directory.NewStaticFrom(nil, bearers, nil))

	user, err := auth.Authenticate("999", "pw", domain.RoleBearer)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Name != "First" {
		t.Fatalf("expected first record in list order, got %s", user.Name)
	}
}

func TestAuthenticator_IsPure(t *testing.T) {
	auth := seededAuthenticator()

	user, err := auth.Authenticate("12434547", "vishnu2024", domain.RoleMember)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	user.Name = "mutated"

	again, err := auth.Authenticate("12434547", "vishnu2024", domain.RoleMember)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if again.Name != "Vishnu A" {
		t.Fatalf("caller mutation leaked into the directory")
	}
}
