package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/sakuramilk/sc02c-liblights/lights"
	"github.com/sakuramilk/sc02c-liblights/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Configuration holds the lightsd configuration
type Configuration struct {
	Debug      bool
	ServerPort int
	SysfsRoot  string
	Paths      lights.Paths
}

// GetConfigFromArgs parses the command line and returns the resulting
// configuration. Control file paths default to the SC-02C kernel's; a TOML
// config file may override individual paths, and --sysfs-root prefixes all
// of them (used to point lightsd at a staging tree on a bench rig).
func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration
	var configFile string

	a := kingpin.New(filepath.Base(os.Args[0]), "sc02c lights daemon")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("port", "API listener port").Default("8080").IntVar(&cfg.ServerPort)
	a.Flag("sysfs-root", "Prefix for all sysfs control files").Default("").StringVar(&cfg.SysfsRoot)
	a.Flag("config", "TOML file overriding individual control file paths").Short('c').Default("").StringVar(&configFile)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}

	cfg.Paths = lights.DefaultPaths()
	if configFile != "" {
		content, err := os.ReadFile(configFile)
		if err != nil {
			return cfg, fmt.Errorf("unable to read config file: %w", err)
		}
		// unmarshal on top of the defaults, so the file only needs to list
		// the paths it changes
		if err = toml.Unmarshal(content, &cfg.Paths); err != nil {
			return cfg, fmt.Errorf("invalid config file: %w", err)
		}
	}
	if cfg.SysfsRoot != "" {
		cfg.Paths = cfg.Paths.WithRoot(cfg.SysfsRoot)
	}
	return cfg, nil
}
