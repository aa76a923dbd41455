package response

import "giro_backoffice/internal/usecase"

type MenuItemResponse struct {
	Href  string `json:"href"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// NavigationResponse is the role-filtered menu plus the sign-out action
// the shell's footer triggers.
type NavigationResponse struct {
	Items      []MenuItemResponse `json:"items"`
	LogoutHref string             `json:"logout_href"`
}

func FromMenu(items []usecase.MenuItem, logoutHref string) NavigationResponse {
	out := NavigationResponse{Items: make([]MenuItemResponse, 0, len(items)), LogoutHref: logoutHref}
	for _, item := range items {
		out.Items = append(out.Items, MenuItemResponse{Href: item.Href, Label: item.Label, Icon: item.Icon})
	}
	return out
}
