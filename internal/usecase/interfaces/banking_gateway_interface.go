package interfaces

import "context"

// GalleriaPagadorRecebedor identifies the payer/receiver on the partner
// side.

type GalleriaPagadorRecebedor struct {
	CpfCnpj string `json:"cpfCnpj"`
	Nome    string `json:"nome"`
	Email   string `json:"email"`
}

// GalleriaImovelCobranca carries the collateral-property fields. The
// creation form does not collect them yet, so the nested object is sent
// empty as the partner API expects it to be present.

type GalleriaImovelCobranca struct{}

// GalleriaOperationPayload is the exact body of POST /services/CriarOperacao.
// Fields absent from the internal form carry the partner's documented
// defaults (divida="Nao", cobrarComissaoCliente="Nao", observacao="").

type GalleriaOperationPayload struct {
	Integracao             string                   `json:"integracao"`
	TipoOperacao           string                   `json:"tipoOperacao"`
	ContratoPrioridadeAlta bool                     `json:"contratoPrioridadeAlta"`
	Divida                 string                   `json:"divida"`
	CobrarComissaoCliente  string                   `json:"cobrarComissaoCliente"`
	QuantoPrecisa          float64                  `json:"quantoPrecisa"`
	Observacao             string                   `json:"observacao"`
	TipoPessoa             string                   `json:"tipoPessoa"`
	PagadorRecebedor       GalleriaPagadorRecebedor `json:"pagadorRecebedor"`
	ImovelCobranca         GalleriaImovelCobranca   `json:"imovelCobranca"`
}

// IBankingGateway abstracts the Galleria Bank integration. A non-2xx
// response or transport failure returns an error; the call is synchronous
// and never retried.

type IBankingGateway interface {
	CreateOperation(ctx context.Context, payload GalleriaOperationPayload) error
}
