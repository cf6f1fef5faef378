package service

import (
	"context"
	"errors"
	"fmt"
	"hue-controller/internal/domain/model"
	"hue-controller/internal/ports"

	"go.uber.org/zap"
)

var ErrLightNotFound = errors.New("light not found")

// Controller applies on/off and brightness intents to every light of the bridge.
// Brightness is tracked locally, seeded from the reference light.
type Controller struct {
	port       ports.LightPort
	lights     []*model.Light
	reference  *model.Light
	brightness int
	logger     *zap.Logger
}

func NewController(ctx context.Context, port ports.LightPort, referenceName string, logger *zap.Logger) (*Controller, error) {
	if referenceName == "" {
		referenceName = model.DefaultReferenceLight
	}
	lights, err := port.GetLights(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing lights: %w", err)
	}
	reference, ok := model.FindLight(lights, referenceName)
	if !ok {
		return nil, fmt.Errorf("reference light %q: %w", referenceName, ErrLightNotFound)
	}

	c := &Controller{
		port:      port,
		lights:    lights,
		reference: reference,
		logger:    logger,
	}
	if reference.State != nil {
		c.brightness = Clamp(reference.State.Brightness)
	}
	logger.Debug("controller ready",
		zap.Int("lights", len(lights)),
		zap.String("reference", reference.Name),
		zap.Int("brightness", c.brightness))
	return c, nil
}

func (c *Controller) Lights() []*model.Light {
	return c.lights
}

func (c *Controller) Reference() *model.Light {
	return c.reference
}

func (c *Controller) Brightness() int {
	return c.brightness
}

func (c *Controller) TurnOn(ctx context.Context) error {
	return c.apply(ctx, model.OnUpdate(true))
}

func (c *Controller) TurnOff(ctx context.Context) error {
	return c.apply(ctx, model.OnUpdate(false))
}

// SetBrightness stores the clamped value before writing it, so Brightness
// reflects the last request even when a write fails.
func (c *Controller) SetBrightness(ctx context.Context, value int) error {
	c.brightness = Clamp(value)
	return c.apply(ctx, model.BrightnessUpdate(c.brightness))
}

func (c *Controller) IncreaseBrightness(ctx context.Context) error {
	return c.SetBrightness(ctx, c.brightness+model.BrightnessInterval)
}

func (c *Controller) DecreaseBrightness(ctx context.Context) error {
	return c.SetBrightness(ctx, c.brightness-model.BrightnessInterval)
}

func (c *Controller) Regulate(ctx context.Context, cmd model.BrightnessCommand) error {
	switch cmd {
	case model.BrightnessIncrease:
		return c.IncreaseBrightness(ctx)
	case model.BrightnessDecrease:
		return c.DecreaseBrightness(ctx)
	default:
		c.logger.Warn("brightness command needs a value", zap.Stringer("command", cmd))
		return nil
	}
}

func (c *Controller) apply(ctx context.Context, update model.StateUpdate) error {
	for _, l := range c.lights {
		if err := c.port.SetLightState(ctx, l, update); err != nil {
			return fmt.Errorf("updating light %s (%s): %w", l.ID, l.Name, err)
		}
		if l.State == nil {
			l.State = &model.LightState{}
		}
		if update.On != nil {
			l.State.On = *update.On
		}
		if update.Brightness != nil {
			l.State.Brightness = *update.Brightness
		}
	}
	return nil
}

func Clamp(value int) int {
	return max(model.MinBrightness, min(model.MaxBrightness, value))
}

// ParseSetValue accepts ASCII decimal digits only and a value inside the
// brightness range.
func ParseSetValue(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	v := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + int(r-'0')
		if v > model.MaxBrightness {
			return 0, false
		}
	}
	return v, true
}
