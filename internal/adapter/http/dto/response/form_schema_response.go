package response

import (
	"giro_backoffice/internal/domain/entities"
	"giro_backoffice/internal/domain/form"
)

type PartnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FormSchemaResponse bundles the declarative creation-form schema with
// the selectable partners, so the client renders and validates from the
// same source the server enforces.
type FormSchemaResponse struct {
	Schema   form.Schema       `json:"schema"`
	Partners []PartnerResponse `json:"partners"`
}

func FromFormSchema(schema form.Schema, partners []entities.Partner) FormSchemaResponse {
	out := FormSchemaResponse{Schema: schema, Partners: make([]PartnerResponse, 0, len(partners))}
	for _, p := range partners {
		out.Partners = append(out.Partners, PartnerResponse{ID: p.ID, Name: p.Name})
	}
	return out
}

func FromPartners(partners []entities.Partner) []PartnerResponse {
	out := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, PartnerResponse{ID: p.ID, Name: p.Name})
	}
	return out
}
