package ports

import "context"

// BridgeLocator returns the hosts of the bridges reachable from this machine.
type BridgeLocator interface {
	Locate(ctx context.Context) ([]string, error)
}

// BridgePairer registers a new user on the bridge at host. The bridge link
// button must have been pressed shortly before.
type BridgePairer interface {
	Pair(ctx context.Context, host string) (string, error)
}
