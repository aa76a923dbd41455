package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated     = errors.New("caller not authenticated")
	ErrOperationNotFound    = errors.New("operation not found")
	ErrForbiddenOperation   = errors.New("operation belongs to another user")
	ErrInvalidOperationData = errors.New("invalid operation data")
	ErrSociosOnlyForPJ      = errors.New("socios are only accepted for PJ payers")
	ErrGalleriaIntegration  = errors.New("operation saved but galleria integration failed")
)

const galleriaIntegracaoName = "Giro Capital"

// Views whose cached representation depends on the operations table.
const (
	ViewOperacoes = "/operacoes"
	ViewDashboard = "/dashboard"
)

// SocioInput is one co-owner entry from the creation form.

type SocioInput struct {
	Name string
	Cpf  string
}

// CreateOperationCommand is the validated creation payload. Every field
// is explicitly enumerated; the HTTP layer guarantees it passed the
// shared form schema before it gets here.

type CreateOperationCommand struct {
	PartnerID      string
	TipoOperacao   entities.TipoOperacao
	QuantoPrecisa  float64
	TipoPessoa     entities.TipoPessoa
	PagadorNome    string
	PagadorCpfCnpj string
	PagadorEmail   string
	Observacao     string
	Socios         []SocioInput
	SendToGalleria bool
}

// IOperationUseCase exposes the operation registration workflow and the
// role-aware read paths.

type IOperationUseCase interface {
	Create(ctx context.Context, callerID string, cmd CreateOperationCommand) (entities.Operation, error)
	ListVisible(ctx context.Context, callerID string, isAdmin bool) ([]entities.Operation, error)
	GetVisibleByID(ctx context.Context, callerID string, isAdmin bool, id string) (entities.Operation, []entities.Socio, error)
}

type OperationUseCase struct {
	repo    interfaces.IOperationRepository
	gateway interfaces.IBankingGateway
	views   interfaces.IViewInvalidator
}

var _ IOperationUseCase = (*OperationUseCase)(nil)

func NewOperationUseCase(repo interfaces.IOperationRepository, gateway interfaces.IBankingGateway, views interfaces.IViewInvalidator) *OperationUseCase {
	return &OperationUseCase{repo: repo, gateway: gateway, views: views}
}

// Create persists the operation and its socios atomically, then forwards
// the derived payload to Galleria Bank when requested.
//
// Failure contract:
//   - persistence failure: nothing is stored, the error is a plain
//     repository error
//   - integration failure: the operation is already durable; the caller
//     gets ErrGalleriaIntegration together with the stored row, whose
//     integration status is set to "falha"
func (u *OperationUseCase) Create(ctx context.Context, callerID string, cmd CreateOperationCommand) (entities.Operation, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return entities.Operation{}, ErrNotAuthenticated
	}
	if err := validateCommand(cmd); err != nil {
		return entities.Operation{}, err
	}

	now := time.Now().UTC()
	op := entities.Operation{
		ID:               uuid.NewString(),
		CreatedAt:        now,
		CreatedBy:        callerID,
		PartnerID:        strings.TrimSpace(cmd.PartnerID),
		TipoOperacao:     cmd.TipoOperacao,
		QuantoPrecisa:    cmd.QuantoPrecisa,
		TipoPessoa:       cmd.TipoPessoa,
		PagadorNome:      strings.TrimSpace(cmd.PagadorNome),
		PagadorCpfCnpj:   strings.TrimSpace(cmd.PagadorCpfCnpj),
		PagadorEmail:     strings.TrimSpace(cmd.PagadorEmail),
		Observacao:       strings.TrimSpace(cmd.Observacao),
		Status:           entities.OperationStatusPreAnalise,
		IntegracaoStatus: entities.IntegrationStatusNaoSolicitada,
	}

	socios := make([]entities.Socio, 0, len(cmd.Socios))
	for _, s := range cmd.Socios {
		socios = append(socios, entities.Socio{
			OperationID: op.ID,
			Name:        strings.TrimSpace(s.Name),
			Cpf:         strings.TrimSpace(s.Cpf),
		})
	}

	log.Printf("[operation][usecase] create start operation_id=%s created_by=%s tipo_pessoa=%s socios=%d send_to_galleria=%t",
		op.ID, callerID, op.TipoPessoa, len(socios), cmd.SendToGalleria)

	created, err := u.repo.CreateWithSocios(ctx, op, socios)
	if err != nil {
		log.Printf("[operation][usecase] transactional write failed operation_id=%s err=%v", op.ID, err)
		return entities.Operation{}, err
	}

	if cmd.SendToGalleria {
		if u.gateway == nil {
			// The row is already durable; an unconfigured gateway is an
			// integration failure, not a rollback.
			log.Printf("[operation][usecase] galleria gateway not configured operation_id=%s", created.ID)
			created.IntegracaoStatus = entities.IntegrationStatusFalha
			if uerr := u.repo.UpdateIntegrationStatus(ctx, created.ID, entities.IntegrationStatusFalha); uerr != nil {
				log.Printf("[operation][usecase] integration status update failed operation_id=%s err=%v", created.ID, uerr)
			}
			u.views.Invalidate(ViewOperacoes, ViewDashboard)
			return created, ErrGalleriaIntegration
		}
		payload := buildGalleriaPayload(created)
		if err := u.gateway.CreateOperation(ctx, payload); err != nil {
			log.Printf("[operation][usecase] galleria forward failed operation_id=%s err=%v", created.ID, err)
			created.IntegracaoStatus = entities.IntegrationStatusFalha
			if uerr := u.repo.UpdateIntegrationStatus(ctx, created.ID, entities.IntegrationStatusFalha); uerr != nil {
				log.Printf("[operation][usecase] integration status update failed operation_id=%s err=%v", created.ID, uerr)
			}
			u.views.Invalidate(ViewOperacoes, ViewDashboard)
			return created, ErrGalleriaIntegration
		}
		created.IntegracaoStatus = entities.IntegrationStatusEnviada
		if uerr := u.repo.UpdateIntegrationStatus(ctx, created.ID, entities.IntegrationStatusEnviada); uerr != nil {
			log.Printf("[operation][usecase] integration status update failed operation_id=%s err=%v", created.ID, uerr)
		}
		log.Printf("[operation][usecase] galleria forward success operation_id=%s", created.ID)
	}

	u.views.Invalidate(ViewOperacoes, ViewDashboard)
	log.Printf("[operation][usecase] create success operation_id=%s integracao_status=%s", created.ID, created.IntegracaoStatus)
	return created, nil
}

// ListVisible returns the caller's operations newest first; admins see
// everything.
func (u *OperationUseCase) ListVisible(ctx context.Context, callerID string, isAdmin bool) ([]entities.Operation, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}
	creator := callerID
	if isAdmin {
		creator = ""
	}
	return u.repo.List(ctx, creator)
}

// GetVisibleByID loads one operation with its socios, enforcing the
// ownership rule for non-admin callers.
func (u *OperationUseCase) GetVisibleByID(ctx context.Context, callerID string, isAdmin bool, id string) (entities.Operation, []entities.Socio, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return entities.Operation{}, nil, ErrNotAuthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Operation{}, nil, ErrOperationNotFound
	}

	op, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Operation{}, nil, err
	}
	if op.ID == "" {
		return entities.Operation{}, nil, ErrOperationNotFound
	}
	if !isAdmin && op.CreatedBy != callerID {
		return entities.Operation{}, nil, ErrForbiddenOperation
	}

	socios, err := u.repo.ListSociosByOperationID(ctx, id)
	if err != nil {
		return entities.Operation{}, nil, err
	}
	return op, socios, nil
}

func validateCommand(cmd CreateOperationCommand) error {
	if cmd.TipoOperacao != entities.TipoOperacaoHomeEquity && cmd.TipoOperacao != entities.TipoOperacaoEmprestimo {
		return ErrInvalidOperationData
	}
	if cmd.QuantoPrecisa <= 0 {
		return ErrInvalidOperationData
	}
	switch cmd.TipoPessoa {
	case entities.TipoPessoaFisica:
		if len(cmd.Socios) > 0 {
			return ErrSociosOnlyForPJ
		}
	case entities.TipoPessoaJuridica:
	default:
		return ErrInvalidOperationData
	}
	if len(strings.TrimSpace(cmd.PagadorNome)) < 3 || len(strings.TrimSpace(cmd.PagadorCpfCnpj)) < 11 {
		return ErrInvalidOperationData
	}
	if strings.TrimSpace(cmd.PagadorEmail) == "" {
		return ErrInvalidOperationData
	}
	for _, s := range cmd.Socios {
		if strings.TrimSpace(s.Name) == "" || len(strings.TrimSpace(s.Cpf)) < 11 {
			return ErrInvalidOperationData
		}
	}
	return nil
}

func buildGalleriaPayload(op entities.Operation) interfaces.GalleriaOperationPayload {
	return interfaces.GalleriaOperationPayload{
		Integracao:             galleriaIntegracaoName,
		TipoOperacao:           string(op.TipoOperacao),
		ContratoPrioridadeAlta: false,
		Divida:                 "Nao",
		CobrarComissaoCliente:  "Nao",
		QuantoPrecisa:          op.QuantoPrecisa,
		Observacao:             op.Observacao,
		TipoPessoa:             string(op.TipoPessoa),
		PagadorRecebedor: interfaces.GalleriaPagadorRecebedor{
			CpfCnpj: op.PagadorCpfCnpj,
			Nome:    op.PagadorNome,
			Email:   op.PagadorEmail,
		},
	}
}
