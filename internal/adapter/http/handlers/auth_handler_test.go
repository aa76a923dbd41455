package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"giro_backoffice/internal/adapter/http/handlers/mocks"
	"giro_backoffice/internal/adapter/http/middleware"
	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase"
	"giro_backoffice/internal/usecase/interfaces"
	mock_interfaces "giro_backoffice/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials keep the generic message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().SignIn(gomock.Any(), "maria@example.com", "wrong").Return(interfaces.IdentitySession{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"maria@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected code: %s", body.Code)
		}
		if body.Message != "Credenciais inválidas. Verifique seu e-mail e senha." {
			t.Fatalf("unexpected message: %s", body.Message)
		}
	})

	t.Run("success sets the session cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().SignIn(gomock.Any(), "maria@example.com", "secret").Return(interfaces.IdentitySession{AccessToken: "jwt-token", ExpiresIn: 3600}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"maria@example.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(cookie, middleware.SessionCookieName+"=jwt-token") {
			t.Fatalf("expected session cookie, got %q", cookie)
		}
		if !strings.Contains(cookie, "HttpOnly") {
			t.Fatalf("expected HttpOnly cookie, got %q", cookie)
		}
		var body struct {
			RedirectTo string `json:"redirect_to"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.RedirectTo != middleware.DashboardPath {
			t.Fatalf("unexpected redirect: %s", body.RedirectTo)
		}
	})
}

func TestAuthHandler_SignUp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/signup", h.SignUp)

		uc.EXPECT().SignUp(gomock.Any(), "maria@example.com", "secret1", "Maria Souza").Return(usecase.ErrEmailAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(`{"email":"maria@example.com","password":"secret1","full_name":"Maria Souza"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Message != "Este e-mail já está cadastrado." {
			t.Fatalf("unexpected message: %s", body.Message)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/signup", h.SignUp)

		uc.EXPECT().SignUp(gomock.Any(), "maria@example.com", "secret1", "Maria Souza").Return(errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(`{"email":"maria@example.com","password":"secret1","full_name":"Maria Souza"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("short password rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/signup", h.SignUp)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(`{"email":"maria@example.com","password":"123","full_name":"Maria Souza"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/signup", h.SignUp)

		uc.EXPECT().SignUp(gomock.Any(), "maria@example.com", "secret1", "Maria Souza").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(`{"email":"maria@example.com","password":"secret1","full_name":"Maria Souza"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Message == "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("clears cookie and redirects to login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		uc.EXPECT().SignOut(gomock.Any(), "jwt-token")

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "jwt-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(cookie, middleware.SessionCookieName+"=") || !strings.Contains(cookie, "Max-Age=0") {
			t.Fatalf("expected expired cookie, got %q", cookie)
		}
		var body struct {
			RedirectTo string `json:"redirect_to"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.RedirectTo != middleware.LoginPath {
			t.Fatalf("unexpected redirect: %s", body.RedirectTo)
		}
	})

	t.Run("logout without cookie still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		uc.EXPECT().SignOut(gomock.Any(), "")

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		uc.EXPECT().Me(gomock.Any(), "").Return(interfaces.IdentityUser{}, usecase.ErrNotAuthenticated)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("role comes from the profile store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		h := NewAuthHandler(uc, profiles)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		uc.EXPECT().Me(gomock.Any(), "jwt-token").Return(interfaces.IdentityUser{ID: "user-1", Email: "maria@example.com", FullName: "Maria Souza"}, nil)
		profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{ID: "user-1", Role: entities.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "jwt-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "user-1" || body.Role != "ADMIN" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("profile lookup failure defaults the role to USER", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		h := NewAuthHandler(uc, profiles)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		uc.EXPECT().Me(gomock.Any(), "jwt-token").Return(interfaces.IdentityUser{ID: "user-1"}, nil)
		profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "jwt-token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Role string `json:"role"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Role != "USER" {
			t.Fatalf("expected USER, got %s", body.Role)
		}
	})
}
