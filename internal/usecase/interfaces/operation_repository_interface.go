package interfaces

import (
	"context"
	"time"

	"giro_backoffice/internal/domain/entities"
)

// IOperationRepository abstracts DynamoDB persistence for Operation and
// its Socios.
//
// The back-office must be able to:
//   - create an operation together with its socios in one transaction
//   - record the outcome of the Galleria forward on the stored row
//   - list operations for the caller (createdBy == "" means unrestricted,
//     the admin read path)

type IOperationRepository interface {
	CreateWithSocios(ctx context.Context, op entities.Operation, socios []entities.Socio) (entities.Operation, error)
	UpdateIntegrationStatus(ctx context.Context, id string, status entities.IntegrationStatus) error
	GetByID(ctx context.Context, id string) (entities.Operation, error)
	List(ctx context.Context, createdBy string) ([]entities.Operation, error)
	ListByPeriod(ctx context.Context, createdBy string, from, to time.Time) ([]entities.Operation, error)
	ListRecent(ctx context.Context, createdBy string, limit int) ([]entities.Operation, error)
	ListSociosByOperationID(ctx context.Context, operationID string) ([]entities.Socio, error)
}
