package form

import (
	"encoding/json"
	"testing"
)

func TestOperationSchema(t *testing.T) {
	schema := OperationSchema()

	t.Run("four sections in form order", func(t *testing.T) {
		if len(schema.Sections) != 4 {
			t.Fatalf("expected 4 sections, got %d", len(schema.Sections))
		}
		titles := []string{"Dados da Operação", "Dados do Cliente", "Sócios", "Integração"}
		for i, title := range titles {
			if schema.Sections[i].Title != title {
				t.Fatalf("expected %q at %d, got %q", title, i, schema.Sections[i].Title)
			}
		}
	})

	t.Run("socios section is conditional and repeatable", func(t *testing.T) {
		socios := schema.Sections[2]
		if socios.VisibleWhen == nil {
			t.Fatalf("expected visibility condition")
		}
		if socios.VisibleWhen.Field != "tipo_pessoa" || socios.VisibleWhen.Equals != "PJ" {
			t.Fatalf("unexpected condition: %+v", socios.VisibleWhen)
		}
		if !socios.Repeatable {
			t.Fatalf("socios section must be repeatable")
		}
	})

	t.Run("constraints match the server-side validation", func(t *testing.T) {
		fields := map[string]Field{}
		for _, s := range schema.Sections {
			for _, f := range s.Fields {
				fields[f.Name] = f
			}
		}

		if f := fields["pagador_nome"]; f.MinLen != MinPagadorNomeLen || !f.Required {
			t.Fatalf("unexpected pagador_nome: %+v", f)
		}
		if f := fields["pagador_cpf_cnpj"]; f.MinLen != MinCpfCnpjLen {
			t.Fatalf("unexpected pagador_cpf_cnpj: %+v", f)
		}
		if f := fields["quanto_precisa"]; f.Min != 1 || f.Message != MsgValorMaiorZero {
			t.Fatalf("unexpected quanto_precisa: %+v", f)
		}
		if f := fields["tipo_pessoa"]; len(f.Options) != 2 {
			t.Fatalf("unexpected tipo_pessoa: %+v", f)
		}
		if f := fields["partner_id"]; f.Required {
			t.Fatalf("partner must stay optional: %+v", f)
		}
		if f := fields["send_to_galleria"]; f.Type != "checkbox" {
			t.Fatalf("unexpected send_to_galleria: %+v", f)
		}
	})

	t.Run("serializes without empty optional keys", func(t *testing.T) {
		raw, err := json.Marshal(schema)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		sections, ok := decoded["sections"].([]any)
		if !ok || len(sections) != 4 {
			t.Fatalf("unexpected serialized schema: %s", raw)
		}
		first, _ := sections[0].(map[string]any)
		if _, present := first["visible_when"]; present {
			t.Fatalf("unconditional section must omit visible_when: %s", raw)
		}
	})
}
