package main

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/domenkozar/language-ecmascript/parser"
)

const (
	printTree   = "tree"
	printJS     = "js"
	printParens = "parens"
	printNone   = "none"
)

type config struct {
	MaxDepth int    `json:"maxDepth"`
	Print    string `json:"print"`
}

func defaultConfig() config {
	return config{
		MaxDepth: parser.DefaultOptions.MaxDepth,
		Print:    printTree,
	}
}

// loadConfig reads a YAML config file. Missing keys keep their defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c config) validate() error {
	switch c.Print {
	case printTree, printJS, printParens, printNone:
	default:
		return errors.Errorf("unknown print mode %q", c.Print)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("maxDepth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}
