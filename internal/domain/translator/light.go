package translator

import (
	"github.com/amimof/huego"
	"hue-controller/internal/domain/model"
	"strconv"
)

// LightStrategy targets the v1 REST API through huego.
type LightStrategy struct{}

var _ Translator[huego.Light, huego.State] = (*LightStrategy)(nil)

// ToHue builds the body of a v1 state write. huego always serialises "on", so
// a brightness write carries on=true; the bridge rejects bri on a light that is off.
func (s *LightStrategy) ToHue(update model.StateUpdate) huego.State {
	state := huego.State{}
	if update.On != nil {
		state.On = *update.On
	}
	if update.Brightness != nil {
		state.On = true
		state.Bri = uint8(*update.Brightness)
	}
	return state
}

func (s *LightStrategy) FromHue(light huego.Light) *model.Light {
	l := &model.Light{
		ID:    strconv.Itoa(light.ID),
		Name:  light.Name,
		State: &model.LightState{},
	}
	if light.State != nil {
		l.State.On = light.State.On
		l.State.Brightness = int(light.State.Bri)
		l.State.Reachable = light.State.Reachable
	}
	return l
}
