package usecase

import "giro_backoffice/internal/domain/entities"

// MenuItem is one entry of the navigation shell, tagged with the roles
// allowed to see it.

type MenuItem struct {
	Href  string
	Label string
	Icon  string
	Roles []entities.Role
}

var menuItems = []MenuItem{
	{Href: "/dashboard", Label: "Dashboard", Icon: "layout-dashboard", Roles: []entities.Role{entities.RoleAdmin, entities.RoleUser}},
	{Href: "/operacoes", Label: "Minhas Operações", Icon: "briefcase", Roles: []entities.Role{entities.RoleAdmin, entities.RoleUser}},
	{Href: "/parceiros", Label: "Parceiros", Icon: "handshake", Roles: []entities.Role{entities.RoleAdmin, entities.RoleUser}},
	{Href: "/usuarios", Label: "Usuários", Icon: "users", Roles: []entities.Role{entities.RoleAdmin}},
	{Href: "/configuracoes", Label: "Configurações", Icon: "settings", Roles: []entities.Role{entities.RoleAdmin, entities.RoleUser}},
}

// MenuForRole filters the fixed menu against the caller's role.
func MenuForRole(role entities.Role) []MenuItem {
	out := make([]MenuItem, 0, len(menuItems))
	for _, item := range menuItems {
		for _, r := range item.Roles {
			if r == role {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
