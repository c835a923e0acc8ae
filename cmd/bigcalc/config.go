package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-errors/errors"
)

// config is the optional TOML configuration file. Command line flags take precedence.
//
//	calculator = "portable"
//	log_level  = "debug"
//	rounding   = "half-up"
type config struct {
	Calculator string `toml:"calculator"`
	LogLevel   string `toml:"log_level"`
	Rounding   string `toml:"rounding"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, errors.WrapPrefix(err, path+": failed to parse TOML", 0)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, errors.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
