package translator

import (
	"hue-controller/internal/domain/model"
)

// Translator converts between domain light state and the wire types of one
// bridge API generation.
type Translator[L any, U any] interface {
	ToHue(update model.StateUpdate) U
	FromHue(light L) *model.Light
}
