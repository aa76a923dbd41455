package interfaces

import (
	"context"

	"giro_backoffice/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.
// Profiles are written by the identity-provider sync, not by this
// service; reads resolve the caller's role and display names.

type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
}
