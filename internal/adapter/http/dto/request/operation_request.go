package request

import (
	"net/mail"
	"strconv"
	"strings"

	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/domain/form"
	"giro_backoffice/internal/usecase"

	"github.com/google/uuid"
)

// FieldError is one field-scoped validation failure, keyed the way the
// form schema names the field.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SocioRequest struct {
	Name string `json:"name"`
	Cpf  string `json:"cpf"`
}

// OperationRequest is the creation payload. The rules enforced by
// Validate are the same ones served to the client via the form schema,
// so the two sides cannot drift.
type OperationRequest struct {
	PartnerID      string         `json:"partner_id"`
	TipoOperacao   string         `json:"tipo_operacao"`
	QuantoPrecisa  float64        `json:"quanto_precisa"`
	TipoPessoa     string         `json:"tipo_pessoa"`
	PagadorNome    string         `json:"pagador_nome"`
	PagadorCpfCnpj string         `json:"pagador_cpf_cnpj"`
	PagadorEmail   string         `json:"pagador_email"`
	Observacao     string         `json:"observacao"`
	Socios         []SocioRequest `json:"socios"`
	SendToGalleria bool           `json:"send_to_galleria"`
}

// Validate checks every field against the shared schema and returns all
// failures at once, so the client can annotate the whole form.
func (r OperationRequest) Validate() []FieldError {
	var errs []FieldError

	switch entities.TipoOperacao(strings.TrimSpace(r.TipoOperacao)) {
	case entities.TipoOperacaoHomeEquity, entities.TipoOperacaoEmprestimo:
	default:
		errs = append(errs, FieldError{Field: "tipo_operacao", Message: form.MsgCampoObrigatorio})
	}

	if r.QuantoPrecisa <= 0 {
		errs = append(errs, FieldError{Field: "quanto_precisa", Message: form.MsgValorMaiorZero})
	}

	tipoPessoa := entities.TipoPessoa(strings.TrimSpace(r.TipoPessoa))
	switch tipoPessoa {
	case entities.TipoPessoaFisica, entities.TipoPessoaJuridica:
	default:
		errs = append(errs, FieldError{Field: "tipo_pessoa", Message: form.MsgCampoObrigatorio})
	}

	if len(strings.TrimSpace(r.PagadorNome)) < form.MinPagadorNomeLen {
		errs = append(errs, FieldError{Field: "pagador_nome", Message: form.MsgNomeObrigatorio})
	}
	if len(strings.TrimSpace(r.PagadorCpfCnpj)) < form.MinCpfCnpjLen {
		errs = append(errs, FieldError{Field: "pagador_cpf_cnpj", Message: form.MsgDocumentoInvalido})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(r.PagadorEmail)); err != nil {
		errs = append(errs, FieldError{Field: "pagador_email", Message: form.MsgEmailInvalido})
	}

	if r.PartnerID != "" {
		if err := uuid.Validate(r.PartnerID); err != nil {
			errs = append(errs, FieldError{Field: "partner_id", Message: form.MsgCampoObrigatorio})
		}
	}

	// The socios sub-list only exists for PJ payers.
	if tipoPessoa == entities.TipoPessoaFisica && len(r.Socios) > 0 {
		errs = append(errs, FieldError{Field: "socios", Message: form.MsgCampoObrigatorio})
	}
	for i, s := range r.Socios {
		prefix := "socios[" + strconv.Itoa(i) + "]."
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, FieldError{Field: prefix + "name", Message: form.MsgNomeObrigatorio})
		}
		if len(strings.TrimSpace(s.Cpf)) < form.MinCpfCnpjLen {
			errs = append(errs, FieldError{Field: prefix + "cpf", Message: form.MsgDocumentoInvalido})
		}
	}

	return errs
}

// ToCommand maps the validated payload onto the workflow command.
func (r OperationRequest) ToCommand() usecase.CreateOperationCommand {
	socios := make([]usecase.SocioInput, 0, len(r.Socios))
	for _, s := range r.Socios {
		socios = append(socios, usecase.SocioInput{Name: s.Name, Cpf: s.Cpf})
	}
	return usecase.CreateOperationCommand{
		PartnerID:      r.PartnerID,
		TipoOperacao:   entities.TipoOperacao(strings.TrimSpace(r.TipoOperacao)),
		QuantoPrecisa:  r.QuantoPrecisa,
		TipoPessoa:     entities.TipoPessoa(strings.TrimSpace(r.TipoPessoa)),
		PagadorNome:    r.PagadorNome,
		PagadorCpfCnpj: r.PagadorCpfCnpj,
		PagadorEmail:   r.PagadorEmail,
		Observacao:     r.Observacao,
		Socios:         socios,
		SendToGalleria: r.SendToGalleria,
	}
}
