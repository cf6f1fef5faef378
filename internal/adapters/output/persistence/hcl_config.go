package persistence

import (
	"fmt"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"hue-controller/internal/domain/model"
	"os"
	"path/filepath"
)

const appName = "huectl"

type hclSettings struct {
	ReferenceLight  string     `hcl:"reference_light,optional"`
	CredentialsFile string     `hcl:"credentials_file,optional"`
	LogConfig       string     `hcl:"log_config,optional"`
	Bridge          *hclBridge `hcl:"bridge,block"`
}

type hclBridge struct {
	Host     string `hcl:"host,optional"`
	Username string `hcl:"username,optional"`
	API      string `hcl:"api,optional"`
}

// ConfigDir is $XDG_CONFIG_HOME/huectl or its platform equivalent.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appName)
}

func DefaultSettings() model.Settings {
	dir := ConfigDir()
	return model.Settings{
		Bridge:          model.BridgeConfig{API: model.BridgeAPIV1},
		ReferenceLight:  model.DefaultReferenceLight,
		CredentialsFile: filepath.Join(dir, "credentials.json"),
	}
}

func DefaultSettingsPath() string {
	return filepath.Join(ConfigDir(), "config.hcl")
}

// LoadSettings reads an HCL settings file. A missing file yields empty
// settings so callers can merge it over the defaults unconditionally.
func LoadSettings(path string) (model.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Settings{}, nil
		}
		return model.Settings{}, err
	}
	return ParseSettings(content, path)
}

func ParseSettings(content []byte, filename string) (model.Settings, error) {
	file, diags := hclsyntax.ParseConfig(content, filename, hcl.Pos{Line: 1, Column: 1})
	if diags != nil && diags.HasErrors() {
		return model.Settings{}, fmt.Errorf("config parse: %w", diags)
	}

	raw := &hclSettings{}
	diags = gohcl.DecodeBody(file.Body, nil, raw)
	if diags != nil && diags.HasErrors() {
		return model.Settings{}, fmt.Errorf("config parse: %w", diags)
	}

	s := model.Settings{
		ReferenceLight:  raw.ReferenceLight,
		CredentialsFile: raw.CredentialsFile,
		LogConfig:       raw.LogConfig,
	}
	if raw.Bridge != nil {
		api, err := ParseBridgeAPI(raw.Bridge.API)
		if err != nil {
			return model.Settings{}, fmt.Errorf("config %s: %w", filename, err)
		}
		s.Bridge = model.BridgeConfig{
			Host:     raw.Bridge.Host,
			Username: raw.Bridge.Username,
			API:      api,
		}
	}
	return s, nil
}

// ParseBridgeAPI accepts "v1", "v2" or the empty string.
func ParseBridgeAPI(v string) (model.BridgeAPI, error) {
	switch model.BridgeAPI(v) {
	case "", model.BridgeAPIV1, model.BridgeAPIV2:
		return model.BridgeAPI(v), nil
	}
	return "", fmt.Errorf("unknown bridge api %q", v)
}
