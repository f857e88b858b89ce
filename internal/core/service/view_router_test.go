package service

import (
	"testing"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

func TestViewRouter_SelectView(t *testing.T) {
	router := NewViewRouter()

	cases := []struct {
		name string
		user *domain.User
		want domain.ViewVariant
	}{
		{"no session", nil, domain.ViewLogin},
		{"member", &domain.User{Role: domain.RoleMember}, domain.ViewMember},
		{"bearer", &domain.User{Role: domain.RoleBearer}, domain.ViewBearer},
		{"admin", &domain.User{Role: domain.RoleAdmin}, domain.ViewAdmin},
		{"unknown role", &domain.User{Role: "superuser"}, domain.ViewLogin},
		{"empty role", &domain.User{}, domain.ViewLogin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := router.SelectView(tc.user); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
