package handlers

import (
	"errors"
	"log"
	"net/http"

	request "giro_backoffice/internal/adapter/http/dto/request"
	response "giro_backoffice/internal/adapter/http/dto/response"
	"giro_backoffice/internal/adapter/http/middleware"
	"giro_backoffice/internal/usecase"
	"giro_backoffice/internal/usecase/interfaces"
	"giro_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Dados de acesso inválidos.", http.StatusBadRequest)
	errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Credenciais inválidas. Verifique seu e-mail e senha.", http.StatusUnauthorized)
	errEmailRegistered    = pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Este e-mail já está cadastrado.", http.StatusConflict)
	errSignUpFailed       = pkg.NewDomainErrorSimple("SIGNUP_FAILED", "Não foi possível criar a conta. Verifique os dados e tente novamente.", http.StatusUnprocessableEntity)
	errNoSession          = pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Sessão inválida ou expirada.", http.StatusUnauthorized)
)

// AuthHandler exposes the identity-provider flows. Sessions live in an
// HTTP-only cookie holding the provider access token.

type AuthHandler struct {
	usecase  usecase.IAuthUseCase
	profiles interfaces.IProfileRepository
}

func NewAuthHandler(uc usecase.IAuthUseCase, profiles interfaces.IProfileRepository) *AuthHandler {
	return &AuthHandler{usecase: uc, profiles: profiles}
}

// Login godoc
//
//	@Summary  Sign in with email and password
//	@Tags     auth
//	@Accept   json
//	@Produce  json
//	@Param    payload body request.LoginRequest true "credentials"
//	@Success  200 {object} response.LoginResponse
//	@Failure  401 {object} pkg.HTTPError
//	@Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		// Always the generic message; never reveal whether the email exists.
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}

	c.SetCookie(middleware.SessionCookieName, session.AccessToken, session.ExpiresIn, "/", "", false, true)
	c.JSON(http.StatusOK, response.LoginResponse{RedirectTo: middleware.DashboardPath})
}

// SignUp godoc
//
//	@Summary  Register a new account
//	@Tags     auth
//	@Accept   json
//	@Produce  json
//	@Param    payload body request.SignUpRequest true "account data"
//	@Success  200 {object} response.SignUpResponse
//	@Failure  409 {object} pkg.HTTPError
//	@Router   /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.Password, payload.FullName)
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		c.JSON(errEmailRegistered.HTTPStatus, errEmailRegistered.ToHTTPError())
	case err != nil:
		c.JSON(errSignUpFailed.HTTPStatus, errSignUpFailed.ToHTTPError())
	default:
		c.JSON(http.StatusOK, response.SignUpResponse{
			Success: true,
			Message: "Cadastro realizado! Confirme seu e-mail para acessar.",
		})
	}
}

// Logout godoc
//
//	@Summary  Terminate the current session
//	@Tags     auth
//	@Produce  json
//	@Success  200 {object} response.LogoutResponse
//	@Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.SessionTokenFromRequest(c)
	h.usecase.SignOut(c.Request.Context(), token)

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.LogoutResponse{RedirectTo: middleware.LoginPath})
}

// Me godoc
//
//	@Summary  Current authenticated user
//	@Tags     auth
//	@Produce  json
//	@Success  200 {object} response.MeResponse
//	@Failure  401 {object} pkg.HTTPError
//	@Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.SessionTokenFromRequest(c)
	user, err := h.usecase.Me(c.Request.Context(), token)
	if err != nil {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	role := "USER"
	profile, err := h.profiles.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("[auth][handler] profile lookup failed user_id=%s err=%v", user.ID, err)
	} else if profile.Role != "" {
		role = string(profile.Role)
	}

	c.JSON(http.StatusOK, response.MeResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     role,
	})
}
