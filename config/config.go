// Package config resolves the command-line arguments and environment of a
// minigrep invocation into a Config.
package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"
)

// IgnoreCaseEnv enables case-insensitive search when present, whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

var validate = validator.New()

// Config is the resolved configuration of a single run.
type Config struct {
	Query      string `mapstructure:"query"`
	Filename   string `mapstructure:"filename"`
	IgnoreCase bool   `mapstructure:"ignore_case"`
}

// LookupFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

type invocation struct {
	// program name, query, filename
	Args []string `validate:"len=3"`
}

// New builds a Config from the full argument vector (program name first) and
// an environment lookup. A nil lookup reads the process environment.
func New(args []string, lookup LookupFunc) (Config, error) {
	if err := validate.Struct(invocation{Args: args}); err != nil {
		return Config{}, failure.Wrap(err, failure.WithCode(NotEnoughArguments),
			failure.Message("Not enough arguments"),
			failure.Context{
				"count": strconv.Itoa(len(args)),
			},
		)
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	_, ignoreCase := lookup(IgnoreCaseEnv)

	var cfg Config
	if err := mapstructure.Decode(map[string]any{
		"query":       args[1],
		"filename":    args[2],
		"ignore_case": ignoreCase,
	}, &cfg); err != nil {
		return Config{}, failure.Wrap(err)
	}
	return cfg, nil
}
