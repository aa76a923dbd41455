package entities

import "time"

// OperationStatus represents the business status of a credit operation.
//
// Domain notes:
//   - Transitions are driven by the back-office analysts, not by this
//     service; we only set the initial value at creation.

type OperationStatus string

const (
	OperationStatusPreAnalise       OperationStatus = "Pré-análise"
	OperationStatusAnalise          OperationStatus = "Análise"
	OperationStatusCreditoAprovado  OperationStatus = "Crédito Aprovado"
	OperationStatusContratoAssinado OperationStatus = "Contrato Assinado"
	OperationStatusRecusada         OperationStatus = "Recusada"
)

// IntegrationStatus records the outcome of the optional forward to the
// Galleria Bank API, decoupled from the business status.

type IntegrationStatus string

const (
	IntegrationStatusNaoSolicitada IntegrationStatus = "nao_solicitada"
	IntegrationStatusEnviada       IntegrationStatus = "enviada"
	IntegrationStatusFalha         IntegrationStatus = "falha"
)

// TipoOperacao is the requested credit product.

type TipoOperacao string

const (
	TipoOperacaoHomeEquity TipoOperacao = "Home Equity"
	TipoOperacaoEmprestimo TipoOperacao = "Emprestimo"
)

// TipoPessoa distinguishes individual (PF) from company (PJ) payers.

type TipoPessoa string

const (
	TipoPessoaFisica   TipoPessoa = "PF"
	TipoPessoaJuridica TipoPessoa = "PJ"
)

// Operation is a credit/loan request registered by a back-office user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_by-index): created_by
//
// Ownership: CreatedBy drives read visibility for non-admin callers.

type Operation struct {
	ID               string            `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	CreatedBy        string            `json:"created_by"`
	PartnerID        string            `json:"partner_id,omitempty"`
	TipoOperacao     TipoOperacao      `json:"tipo_operacao"`
	QuantoPrecisa    float64           `json:"quanto_precisa"`
	TipoPessoa       TipoPessoa        `json:"tipo_pessoa"`
	PagadorNome      string            `json:"pagador_nome"`
	PagadorCpfCnpj   string            `json:"pagador_cpf_cnpj"`
	PagadorEmail     string            `json:"pagador_email"`
	Observacao       string            `json:"observacao,omitempty"`
	Status           OperationStatus   `json:"status"`
	IntegracaoStatus IntegrationStatus `json:"integracao_status"`
	CreatorFullName  string            `json:"creator_full_name,omitempty"`
}

// Socio is a company co-owner attached to a PJ operation. Socios never
// exist without their parent operation; both are written in a single
// transaction.

type Socio struct {
	OperationID string `json:"operation_id"`
	Name        string `json:"name"`
	Cpf         string `json:"cpf"`
}
