package hue

import (
	"context"
	"fmt"
	"github.com/amimof/huego"
	"os"
)

// Pairer creates a bridge user with huego. The link button on the bridge has
// to be pressed before Pair is called.
type Pairer struct {
	DeviceType string
}

func NewPairer() *Pairer {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	// devicetype is limited to 20 characters of application and 19 of device.
	if len(host) > 19 {
		host = host[:19]
	}
	return &Pairer{DeviceType: fmt.Sprintf("huectl#%s", host)}
}

func (p *Pairer) Pair(ctx context.Context, host string) (string, error) {
	user, err := huego.New(host, "").CreateUserContext(ctx, p.DeviceType)
	if err != nil {
		return "", fmt.Errorf("press the bridge link button and retry: %w", err)
	}
	return user, nil
}
