package clip

import (
	"context"
	"crypto/tls"
	"fmt"
	"github.com/openhue/openhue-go"
	"hue-controller/internal/domain/model"
	"hue-controller/internal/domain/translator"
	"net/http"

	"go.uber.org/zap"
)

// Client is the v2 CLIP light port backed by openhue-go.
type Client struct {
	host       string
	api        *openhue.ClientWithResponses
	translator *translator.ClipStrategy
	logger     *zap.Logger
}

// NewClient talks to the bridge over https. Bridges ship a self-signed
// certificate, so verification is disabled.
func NewClient(host, applicationKey string, logger *zap.Logger) (*Client, error) {
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	return newClient(fmt.Sprintf("https://%s", host), applicationKey, httpClient, logger)
}

func newClient(apiURL, applicationKey string, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	api, err := openhue.NewClientWithResponses(
		apiURL,
		openhue.WithHTTPClient(httpClient),
		openhue.WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
			req.Header.Set("hue-application-key", applicationKey)
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Hue client for %s: %w", apiURL, err)
	}
	return &Client{
		host:       apiURL,
		api:        api,
		translator: &translator.ClipStrategy{},
		logger:     logger,
	}, nil
}

func (c *Client) GetLights(ctx context.Context) ([]*model.Light, error) {
	resp, err := c.api.GetLightsWithResponse(ctx)
	if err != nil {
		return nil, err
	}
	if resp.HTTPResponse != nil && resp.HTTPResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge returned HTTP %d", resp.HTTPResponse.StatusCode)
	}
	if resp.JSON200 == nil || resp.JSON200.Data == nil {
		return nil, fmt.Errorf("bridge %s returned no light data", c.host)
	}

	out := make([]*model.Light, 0, len(*resp.JSON200.Data))
	for _, l := range *resp.JSON200.Data {
		if l.Id == nil {
			continue
		}
		out = append(out, c.translator.FromHue(l))
	}
	c.logger.Debug("lights listed", zap.String("host", c.host), zap.Int("count", len(out)))
	return out, nil
}

func (c *Client) SetLightState(ctx context.Context, light *model.Light, update model.StateUpdate) error {
	body := c.translator.ToHue(update)
	resp, err := c.api.UpdateLightWithResponse(ctx, light.ID, body)
	if err != nil {
		return err
	}
	if resp.HTTPResponse != nil && resp.HTTPResponse.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge returned HTTP %d", resp.HTTPResponse.StatusCode)
	}
	c.logger.Debug("light state written", zap.String("id", light.ID), zap.String("name", light.Name))
	return nil
}
