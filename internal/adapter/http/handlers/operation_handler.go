package handlers

import (
	"errors"
	"log"
	"net/http"

	request "giro_backoffice/internal/adapter/http/dto/request"
	response "giro_backoffice/internal/adapter/http/dto/response"
	"giro_backoffice/internal/adapter/http/middleware"
	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/domain/form"
	"giro_backoffice/internal/usecase"
	"giro_backoffice/internal/usecase/interfaces"
	"giro_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOperationPayload = pkg.NewDomainErrorSimple("INVALID_OPERATION_INPUT", "Payload de operação inválido.", http.StatusBadRequest)

// validationHTTPError extends the standard error body with the
// field-scoped failures the form annotates.

type validationHTTPError struct {
	pkg.HTTPError
	Fields []request.FieldError `json:"fields"`
}

// OperationHandler handles operation registration, listing and the
// creation-form support endpoints.

type OperationHandler struct {
	usecase  usecase.IOperationUseCase
	partners interfaces.IPartnerRepository
}

func NewOperationHandler(uc usecase.IOperationUseCase, partners interfaces.IPartnerRepository) *OperationHandler {
	return &OperationHandler{usecase: uc, partners: partners}
}

// Create godoc
//
//	@Summary  Register a new operation
//	@Tags     operacoes
//	@Accept   json
//	@Produce  json
//	@Param    payload body request.OperationRequest true "operation data"
//	@Success  201 {object} response.OperationResponse
//	@Failure  400 {object} pkg.HTTPError
//	@Failure  502 {object} pkg.HTTPError
//	@Security Bearer
//	@Router   /operacoes [post]
func (h *OperationHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.OperationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOperationPayload.HTTPStatus, errInvalidOperationPayload.ToHTTPError())
		return
	}

	// Field-level validation happens before any write is attempted.
	if fieldErrs := payload.Validate(); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, validationHTTPError{
			HTTPError: errInvalidOperationPayload.ToHTTPError(),
			Fields:    fieldErrs,
		})
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), principal.UserID, payload.ToCommand())
	if err != nil {
		appErr := mapOperationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOperation(created))
}

// List godoc
//
//	@Summary  List operations visible to the caller
//	@Tags     operacoes
//	@Produce  json
//	@Success  200 {array} response.OperationResponse
//	@Security Bearer
//	@Router   /operacoes [get]
func (h *OperationHandler) List(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	ops, err := h.usecase.ListVisible(c.Request.Context(), principal.UserID, principal.IsAdmin())
	if err != nil {
		appErr := mapOperationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperations(ops))
}

// GetByID godoc
//
//	@Summary  Operation details with socios
//	@Tags     operacoes
//	@Produce  json
//	@Param    id path string true "operation id"
//	@Success  200 {object} response.OperationDetailResponse
//	@Failure  404 {object} pkg.HTTPError
//	@Security Bearer
//	@Router   /operacoes/{id} [get]
func (h *OperationHandler) GetByID(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	op, socios, err := h.usecase.GetVisibleByID(c.Request.Context(), principal.UserID, principal.IsAdmin(), c.Param("id"))
	if err != nil {
		appErr := mapOperationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperationDetail(op, socios))
}

// FormSchema godoc
//
//	@Summary  Creation-form schema and selectable partners
//	@Tags     operacoes
//	@Produce  json
//	@Success  200 {object} response.FormSchemaResponse
//	@Security Bearer
//	@Router   /operacoes/nova/schema [get]
func (h *OperationHandler) FormSchema(c *gin.Context) {
	partners := h.listPartnersDegraded(c)
	c.JSON(http.StatusOK, response.FromFormSchema(form.OperationSchema(), partners))
}

// ListPartners godoc
//
//	@Summary  Referral partners
//	@Tags     parceiros
//	@Produce  json
//	@Success  200 {array} response.PartnerResponse
//	@Security Bearer
//	@Router   /parceiros [get]
func (h *OperationHandler) ListPartners(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPartners(h.listPartnersDegraded(c)))
}

// listPartnersDegraded renders an empty partner list on query failure
// instead of failing the form.
func (h *OperationHandler) listPartnersDegraded(c *gin.Context) []entities.Partner {
	partners, err := h.partners.List(c.Request.Context())
	if err != nil {
		log.Printf("[operation][handler] partner query failed err=%v", err)
		return nil
	}
	return partners
}

func mapOperationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Sessão inválida ou expirada.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbiddenOperation):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operação pertence a outro usuário.", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOperationNotFound):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_FOUND", "Operação não encontrada.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOperationData), errors.Is(err, usecase.ErrSociosOnlyForPJ):
		return pkg.NewDomainErrorSimple("INVALID_OPERATION_INPUT", "Payload de operação inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGalleriaIntegration):
		return pkg.NewDomainErrorSimple("GALLERIA_INTEGRATION_ERROR",
			"Operação salva, mas o envio ao Galleria Bank falhou. Reenvie manualmente.", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Falha ao salvar a operação no banco de dados.", err, http.StatusInternalServerError)
	}
}
