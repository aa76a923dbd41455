package response

import (
	"time"

	"giro_backoffice/internal/domain/entities"
)

type OperationResponse struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedBy        string    `json:"created_by"`
	PartnerID        string    `json:"partner_id,omitempty"`
	TipoOperacao     string    `json:"tipo_operacao"`
	QuantoPrecisa    float64   `json:"quanto_precisa"`
	TipoPessoa       string    `json:"tipo_pessoa"`
	PagadorNome      string    `json:"pagador_nome"`
	PagadorCpfCnpj   string    `json:"pagador_cpf_cnpj"`
	PagadorEmail     string    `json:"pagador_email"`
	Observacao       string    `json:"observacao,omitempty"`
	Status           string    `json:"status"`
	IntegracaoStatus string    `json:"integracao_status"`
}

type SocioResponse struct {
	Name string `json:"name"`
	Cpf  string `json:"cpf"`
}

type OperationDetailResponse struct {
	OperationResponse
	Socios []SocioResponse `json:"socios"`
}

func FromOperation(op entities.Operation) OperationResponse {
	return OperationResponse{
		ID:               op.ID,
		CreatedAt:        op.CreatedAt,
		CreatedBy:        op.CreatedBy,
		PartnerID:        op.PartnerID,
		TipoOperacao:     string(op.TipoOperacao),
		QuantoPrecisa:    op.QuantoPrecisa,
		TipoPessoa:       string(op.TipoPessoa),
		PagadorNome:      op.PagadorNome,
		PagadorCpfCnpj:   op.PagadorCpfCnpj,
		PagadorEmail:     op.PagadorEmail,
		Observacao:       op.Observacao,
		Status:           string(op.Status),
		IntegracaoStatus: string(op.IntegracaoStatus),
	}
}

func FromOperations(ops []entities.Operation) []OperationResponse {
	out := make([]OperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, FromOperation(op))
	}
	return out
}

func FromOperationDetail(op entities.Operation, socios []entities.Socio) OperationDetailResponse {
	detail := OperationDetailResponse{OperationResponse: FromOperation(op), Socios: []SocioResponse{}}
	for _, s := range socios {
		detail.Socios = append(detail.Socios, SocioResponse{Name: s.Name, Cpf: s.Cpf})
	}
	return detail
}
