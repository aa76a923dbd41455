package response

// LoginResponse tells the client where to land after a successful
// sign-in. The session itself travels in the cookie.
type LoginResponse struct {
	RedirectTo string `json:"redirect_to"`
}

// SignUpResponse signals that the account was created and a
// confirmation email is on its way; no session exists yet.
type SignUpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LogoutResponse struct {
	RedirectTo string `json:"redirect_to"`
}

type MeResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
