package hue

import (
	"context"
	"fmt"
	"github.com/amimof/huego"
	"hue-controller/internal/domain/model"
	"hue-controller/internal/domain/translator"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Client is the v1 REST light port backed by huego.
type Client struct {
	bridge     *huego.Bridge
	translator *translator.LightStrategy
	logger     *zap.Logger
}

func NewClient(host, username string, logger *zap.Logger) *Client {
	return &Client{
		bridge:     huego.New(host, username),
		translator: &translator.LightStrategy{},
		logger:     logger,
	}
}

// GetLights returns the bridge lights ordered by numeric id.
func (c *Client) GetLights(ctx context.Context) ([]*model.Light, error) {
	lights, err := c.bridge.GetLightsContext(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(lights, func(i, j int) bool { return lights[i].ID < lights[j].ID })

	out := make([]*model.Light, 0, len(lights))
	for _, l := range lights {
		out = append(out, c.translator.FromHue(l))
	}
	c.logger.Debug("lights listed", zap.String("host", c.bridge.Host), zap.Int("count", len(out)))
	return out, nil
}

func (c *Client) SetLightState(ctx context.Context, light *model.Light, update model.StateUpdate) error {
	id, err := strconv.Atoi(light.ID)
	if err != nil {
		return fmt.Errorf("invalid v1 light id %q", light.ID)
	}
	state := c.translator.ToHue(update)
	if _, err := c.bridge.SetLightStateContext(ctx, id, state); err != nil {
		return err
	}
	c.logger.Debug("light state written",
		zap.Int("id", id),
		zap.Bool("on", state.On),
		zap.Uint8("bri", state.Bri))
	return nil
}
