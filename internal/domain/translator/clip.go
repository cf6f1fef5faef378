package translator

import (
	"github.com/openhue/openhue-go"
	"hue-controller/internal/domain/model"
	"math"
)

// ClipStrategy targets the v2 CLIP API through openhue-go, where brightness
// is a percentage.
type ClipStrategy struct{}

var _ Translator[openhue.LightGet, openhue.UpdateLightJSONRequestBody] = (*ClipStrategy)(nil)

func (s *ClipStrategy) ToHue(update model.StateUpdate) openhue.UpdateLightJSONRequestBody {
	body := openhue.UpdateLightJSONRequestBody{}
	if update.On != nil {
		on := *update.On
		body.On = &openhue.On{On: &on}
	}
	if update.Brightness != nil {
		on := true
		body.On = &openhue.On{On: &on}
		pct := ToPercent(*update.Brightness)
		body.Dimming = &openhue.Dimming{Brightness: &pct}
	}
	return body
}

func (s *ClipStrategy) FromHue(light openhue.LightGet) *model.Light {
	l := &model.Light{State: &model.LightState{Reachable: true}}
	if light.Id != nil {
		l.ID = *light.Id
	}
	if light.Metadata != nil && light.Metadata.Name != nil {
		l.Name = *light.Metadata.Name
	}
	if light.On != nil && light.On.On != nil {
		l.State.On = *light.On.On
	}
	if light.Dimming != nil && light.Dimming.Brightness != nil {
		l.State.Brightness = FromPercent(float64(*light.Dimming.Brightness))
	}
	return l
}

func ToPercent(bri int) openhue.Brightness {
	return openhue.Brightness(float64(bri) * 100 / model.MaxBrightness)
}

func FromPercent(pct float64) int {
	return int(math.Round(pct * model.MaxBrightness / 100))
}
