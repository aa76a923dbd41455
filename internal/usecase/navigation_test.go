package usecase

import (
	"testing"

	"giro_backoffice/internal/domain/entities"
)

func TestMenuForRole(t *testing.T) {
	t.Run("admin sees every entry", func(t *testing.T) {
		menu := MenuForRole(entities.RoleAdmin)
		if len(menu) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(menu))
		}
		found := false
		for _, item := range menu {
			if item.Href == "/usuarios" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected /usuarios in admin menu: %+v", menu)
		}
	})

	t.Run("regular user never sees usuarios", func(t *testing.T) {
		menu := MenuForRole(entities.RoleUser)
		if len(menu) != 4 {
			t.Fatalf("expected 4 entries, got %d", len(menu))
		}
		for _, item := range menu {
			if item.Href == "/usuarios" {
				t.Fatalf("regular user must not see /usuarios: %+v", menu)
			}
		}
	})

	t.Run("unknown role sees nothing", func(t *testing.T) {
		if menu := MenuForRole(entities.Role("GUEST")); len(menu) != 0 {
			t.Fatalf("expected empty menu, got %+v", menu)
		}
	})

	t.Run("order follows the fixed menu", func(t *testing.T) {
		menu := MenuForRole(entities.RoleUser)
		expected := []string{"/dashboard", "/operacoes", "/parceiros", "/configuracoes"}
		for i, href := range expected {
			if menu[i].Href != href {
				t.Fatalf("expected %s at %d, got %s", href, i, menu[i].Href)
			}
		}
	})
}
