package ports

import (
	"context"
	"hue-controller/internal/domain/model"
)

// LightPort is the bridge client seen from the domain.
type LightPort interface {
	GetLights(ctx context.Context) ([]*model.Light, error)
	SetLightState(ctx context.Context, light *model.Light, update model.StateUpdate) error
}
