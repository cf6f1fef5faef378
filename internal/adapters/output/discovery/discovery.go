package discovery

import (
	"context"
	"github.com/amimof/huego"
	"github.com/hashicorp/mdns"
	"time"

	"go.uber.org/zap"
)

const hueService = "_hue._tcp"

// Locator finds bridges with the Hue cloud discovery endpoint and falls back
// to an mDNS query on the local network.
type Locator struct {
	timeout time.Duration
	logger  *zap.Logger

	cloud func(ctx context.Context) ([]huego.Bridge, error)
	query func(params *mdns.QueryParam) error
}

func NewLocator(timeout time.Duration, logger *zap.Logger) *Locator {
	return &Locator{
		timeout: timeout,
		logger:  logger,
		cloud:   huego.DiscoverAllContext,
		query:   mdns.Query,
	}
}

func (l *Locator) Locate(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var hosts []string
	add := func(host string) {
		if host == "" || seen[host] {
			return
		}
		seen[host] = true
		hosts = append(hosts, host)
	}

	cloudCtx, cancel := context.WithTimeout(ctx, l.timeout)
	bridges, err := l.cloud(cloudCtx)
	cancel()
	if err != nil {
		l.logger.Debug("cloud discovery failed", zap.Error(err))
	}
	for _, b := range bridges {
		add(b.Host)
	}
	if len(hosts) > 0 {
		return hosts, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.logger.Debug("cloud discovery found nothing, querying mDNS", zap.String("service", hueService))
	for _, host := range l.queryMDNS(ctx) {
		add(host)
	}
	return hosts, nil
}

func (l *Locator) queryMDNS(ctx context.Context) []string {
	entries := make(chan *mdns.ServiceEntry, 10)

	go func() {
		params := &mdns.QueryParam{
			Service:             hueService,
			Domain:              "local",
			Timeout:             l.timeout,
			Entries:             entries,
			DisableIPv6:         true,
			WantUnicastResponse: true,
		}
		if err := l.query(params); err != nil {
			l.logger.Debug("mDNS query failed", zap.Error(err))
		}
		close(entries)
	}()

	var hosts []string
	for entry := range entries {
		if ctx.Err() != nil {
			continue
		}
		if entry.AddrV4 == nil {
			continue
		}
		l.logger.Debug("mDNS entry", zap.String("name", entry.Name), zap.Stringer("addr", entry.AddrV4))
		hosts = append(hosts, entry.AddrV4.String())
	}
	return hosts
}
