package banking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"giro_backoffice/internal/usecase/interfaces"
)

var ErrMissingGalleriaToken = errors.New("missing GALLERIA_BANK_API_TOKEN")

const createOperationPath = "/services/CriarOperacao"

// GalleriaGateway forwards operations to the Galleria Bank back-office
// API. One synchronous POST per operation, bearer-token auth, no retry;
// the caller resubmits manually on failure.

type GalleriaGateway struct {
	client   *http.Client
	baseURL  string
	token    string
	mockMode bool
}

var _ interfaces.IBankingGateway = (*GalleriaGateway)(nil)

func NewGalleriaGateway(baseURL, token string) (*GalleriaGateway, error) {
	if isGalleriaMockEnabled() {
		log.Printf("[galleria][gateway] mock mode enabled")
		return &GalleriaGateway{mockMode: true}, nil
	}

	if token == "" {
		log.Printf("[galleria][gateway] missing GALLERIA_BANK_API_TOKEN")
		return nil, ErrMissingGalleriaToken
	}

	return &GalleriaGateway{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}, nil
}

func (g *GalleriaGateway) CreateOperation(ctx context.Context, payload interfaces.GalleriaOperationPayload) error {
	if g != nil && g.mockMode {
		log.Printf("[galleria][gateway] mock create success tipo_operacao=%s quanto_precisa=%.2f", payload.TipoOperacao, payload.QuantoPrecisa)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := g.baseURL + createOperationPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	log.Printf("[galleria][gateway] create start url=%s payload_len=%d", url, len(body))
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[galleria][gateway] transport failure err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The partner's error bodies are free-form; log them verbatim.
		errorBody, _ := io.ReadAll(resp.Body)
		log.Printf("[galleria][gateway] create failed status=%d body=%s", resp.StatusCode, string(errorBody))
		return fmt.Errorf("galleria bank returned status %d", resp.StatusCode)
	}

	log.Printf("[galleria][gateway] create success status=%d", resp.StatusCode)
	return nil
}

func isGalleriaMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("GALLERIA_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
