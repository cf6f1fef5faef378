package cli

import (
	"hue-controller/internal/adapters/output/persistence"
	"hue-controller/internal/domain/model"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Config         string `short:"c" long:"config" env:"HUECTL_CONFIG" description:"HCL settings file"`
	Host           string `long:"host" env:"HUE_HOST" description:"bridge address, discovered when empty"`
	User           string `long:"user" env:"HUE_USER" description:"bridge username (v2 application key)"`
	API            string `long:"api" env:"HUE_API" choice:"v1" choice:"v2" description:"bridge API generation"`
	ReferenceLight string `long:"reference-light" env:"HUE_REFERENCE_LIGHT" description:"light whose brightness seeds relative changes"`
	Credentials    string `long:"credentials" env:"HUECTL_CREDENTIALS" description:"JSON file holding bridge usernames"`
	LogConfig      string `long:"log-config" env:"HUECTL_LOG_CONFIG" description:"JSON encoded zap logging config"`
}

func (o *Options) Settings() model.Settings {
	return model.Settings{
		Bridge: model.BridgeConfig{
			Host:     o.Host,
			Username: o.User,
			API:      model.BridgeAPI(o.API),
		},
		ReferenceLight:  o.ReferenceLight,
		CredentialsFile: o.Credentials,
		LogConfig:       o.LogConfig,
	}
}

// ParseOptions splits the command line into options and the positional
// command. Use "--" before a command argument that starts with a dash.
func ParseOptions(args []string) (*Options, []string, error) {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	parser.Usage = "[OPTIONS] on | off | brightness set <0-254> | brightness increase | brightness decrease"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	return options, rest, nil
}

// LoadSettings layers defaults, the settings file and the command line.
func LoadSettings(options *Options) (model.Settings, error) {
	path := options.Config
	if path == "" {
		path = persistence.DefaultSettingsPath()
	}
	fromFile, err := persistence.LoadSettings(path)
	if err != nil {
		return model.Settings{}, err
	}
	return persistence.DefaultSettings().Merge(fromFile).Merge(options.Settings()), nil
}

func IsHelp(err error) bool {
	flagsErr, ok := err.(*flags.Error)
	return ok && flagsErr.Type == flags.ErrHelp
}
