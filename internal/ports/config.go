package ports

import (
	"context"
	"hue-controller/internal/domain/model"
)

type CredentialRepository interface {
	Get(ctx context.Context) (*model.Credentials, error)
	Save(ctx context.Context, credentials *model.Credentials) error
}
