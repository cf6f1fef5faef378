package service

import (
	"context"
	"hue-controller/internal/domain/model"

	"go.uber.org/zap"
)

// action is bound to a matched argument list.
type action func(ctx context.Context) error

type rule struct {
	name  string
	match func(args []string) (action, bool)
}

// Dispatcher maps the positional command line onto controller operations.
// Rules are evaluated in order and the first match wins.
type Dispatcher struct {
	controller *Controller
	rules      []rule
	logger     *zap.Logger
}

func NewDispatcher(controller *Controller, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{controller: controller, logger: logger}
	d.rules = []rule{
		{name: "on", match: d.matchOn},
		{name: "off", match: d.matchOff},
		{name: "brightness set", match: d.matchBrightnessSet},
		{name: "brightness set invalid", match: d.matchInvalidBrightnessSet},
		{name: "brightness regulate", match: d.matchBrightnessRegulate},
	}
	return d
}

// Dispatch runs the operation matching args. Unknown commands are logged and
// are not an error; only device failures are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) error {
	d.logger.Info("application arguments", zap.Strings("args", args))
	for _, r := range d.rules {
		if act, ok := r.match(args); ok {
			d.logger.Debug("command matched", zap.String("rule", r.name))
			return act(ctx)
		}
	}
	d.logger.Error("command has not been implemented", zap.Strings("args", args))
	return nil
}

func (d *Dispatcher) matchOn(args []string) (action, bool) {
	if len(args) == 1 && args[0] == "on" {
		return d.controller.TurnOn, true
	}
	return nil, false
}

func (d *Dispatcher) matchOff(args []string) (action, bool) {
	if len(args) == 1 && args[0] == "off" {
		return d.controller.TurnOff, true
	}
	return nil, false
}

func (d *Dispatcher) matchBrightnessSet(args []string) (action, bool) {
	if len(args) != 3 || args[0] != "brightness" || !model.BrightnessSet.Is(args[1]) {
		return nil, false
	}
	v, ok := ParseSetValue(args[2])
	if !ok {
		return nil, false
	}
	return func(ctx context.Context) error {
		return d.controller.SetBrightness(ctx, v)
	}, true
}

func (d *Dispatcher) matchInvalidBrightnessSet(args []string) (action, bool) {
	if len(args) != 3 || args[0] != "brightness" || !model.BrightnessSet.Is(args[1]) {
		return nil, false
	}
	return func(ctx context.Context) error {
		d.logger.Error("invalid brightness value",
			zap.String("value", args[2]),
			zap.Int("min", model.MinBrightness),
			zap.Int("max", model.MaxBrightness))
		return nil
	}, true
}

func (d *Dispatcher) matchBrightnessRegulate(args []string) (action, bool) {
	if len(args) != 2 || args[0] != "brightness" {
		return nil, false
	}
	cmd, ok := model.ParseBrightnessCommand(args[1])
	if !ok {
		return nil, false
	}
	return func(ctx context.Context) error {
		return d.controller.Regulate(ctx, cmd)
	}, true
}
