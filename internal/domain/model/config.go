package model

type BridgeAPI string

const (
	BridgeAPIV1 BridgeAPI = "v1"
	BridgeAPIV2 BridgeAPI = "v2"
)

type BridgeConfig struct {
	Host     string
	Username string
	API      BridgeAPI
}

type Settings struct {
	Bridge          BridgeConfig
	ReferenceLight  string
	CredentialsFile string
	LogConfig       string // path to a JSON encoded zap config
}

// Merge overlays the non-empty fields of o on top of s.
func (s Settings) Merge(o Settings) Settings {
	if o.Bridge.Host != "" {
		s.Bridge.Host = o.Bridge.Host
	}
	if o.Bridge.Username != "" {
		s.Bridge.Username = o.Bridge.Username
	}
	if o.Bridge.API != "" {
		s.Bridge.API = o.Bridge.API
	}
	if o.ReferenceLight != "" {
		s.ReferenceLight = o.ReferenceLight
	}
	if o.CredentialsFile != "" {
		s.CredentialsFile = o.CredentialsFile
	}
	if o.LogConfig != "" {
		s.LogConfig = o.LogConfig
	}
	return s
}

type BridgeCredential struct {
	Host     string `json:"host"`
	Username string `json:"username"`
}

type Credentials struct {
	Bridges []*BridgeCredential `json:"bridges"` // Ordered slice
}

func (c *Credentials) Username(host string) string {
	for _, b := range c.Bridges {
		if b.Host == host {
			return b.Username
		}
	}
	return ""
}

func (c *Credentials) Set(host, username string) {
	for _, b := range c.Bridges {
		if b.Host == host {
			b.Username = username
			return
		}
	}
	c.Bridges = append(c.Bridges, &BridgeCredential{Host: host, Username: username})
}
