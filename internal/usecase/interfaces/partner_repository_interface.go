package interfaces

import (
	"context"

	"giro_backoffice/internal/domain/entities"
)

// IPartnerRepository abstracts read-only access to referral partners.

type IPartnerRepository interface {
	List(ctx context.Context) ([]entities.Partner, error)
}
