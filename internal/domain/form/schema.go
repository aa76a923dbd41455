package form

// Single source of truth for the "nova operação" form: the schema below
// is served to the client for rendering and drives the server-side
// validation, so the two can never drift.

const (
	MinPagadorNomeLen = 3
	MinCpfCnpjLen     = 11
)

// Validation messages shown next to each field (pt-BR, as the
// back-office users see them).
const (
	MsgCampoObrigatorio  = "Campo obrigatório"
	MsgValorMaiorZero    = "Valor deve ser maior que zero"
	MsgNomeObrigatorio   = "Nome é obrigatório"
	MsgDocumentoInvalido = "Documento inválido"
	MsgEmailInvalido     = "E-mail inválido"
)

// Condition gates a section's visibility on another field's value.

type Condition struct {
	Field  string `json:"field"`
	Equals string `json:"equals"`
}

type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	MinLen   int      `json:"min_len,omitempty"`
	Min      float64  `json:"min,omitempty"`
	Options  []string `json:"options,omitempty"`
	Message  string   `json:"message,omitempty"`
}

type Section struct {
	Title       string     `json:"title"`
	Fields      []Field    `json:"fields"`
	VisibleWhen *Condition `json:"visible_when,omitempty"`
	Repeatable  bool       `json:"repeatable,omitempty"`
}

type Schema struct {
	Sections []Section `json:"sections"`
}

// OperationSchema describes the multi-section creation form. The socios
// section is only visible (and only accepted) for PJ payers.
func OperationSchema() Schema {
	return Schema{
		Sections: []Section{
			{
				Title: "Dados da Operação",
				Fields: []Field{
					{Name: "tipo_operacao", Label: "Tipo de Operação", Type: "select", Required: true, Options: []string{"Home Equity", "Emprestimo"}, Message: MsgCampoObrigatorio},
					{Name: "quanto_precisa", Label: "Valor Necessário (R$)", Type: "number", Required: true, Min: 1, Message: MsgValorMaiorZero},
					{Name: "partner_id", Label: "Parceiro", Type: "select"},
				},
			},
			{
				Title: "Dados do Cliente",
				Fields: []Field{
					{Name: "tipo_pessoa", Label: "Tipo de Pessoa", Type: "select", Required: true, Options: []string{"PF", "PJ"}, Message: MsgCampoObrigatorio},
					{Name: "pagador_nome", Label: "Nome Completo / Razão Social", Type: "text", Required: true, MinLen: MinPagadorNomeLen, Message: MsgNomeObrigatorio},
					{Name: "pagador_cpf_cnpj", Label: "CPF / CNPJ", Type: "text", Required: true, MinLen: MinCpfCnpjLen, Message: MsgDocumentoInvalido},
					{Name: "pagador_email", Label: "E-mail", Type: "email", Required: true, Message: MsgEmailInvalido},
					{Name: "observacao", Label: "Observação", Type: "textarea"},
				},
			},
			{
				Title:       "Sócios",
				VisibleWhen: &Condition{Field: "tipo_pessoa", Equals: "PJ"},
				Repeatable:  true,
				Fields: []Field{
					{Name: "name", Label: "Nome do Sócio", Type: "text", Required: true, Message: MsgNomeObrigatorio},
					{Name: "cpf", Label: "CPF", Type: "text", Required: true, MinLen: MinCpfCnpjLen, Message: MsgDocumentoInvalido},
				},
			},
			{
				Title: "Integração",
				Fields: []Field{
					{Name: "send_to_galleria", Label: "Enviar para o Galleria Bank", Type: "checkbox"},
				},
			},
		},
	}
}
