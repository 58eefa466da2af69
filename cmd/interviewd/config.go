package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cloudfit/interviewd/internal/api"
	"github.com/cloudfit/interviewd/internal/storage"
	"github.com/cloudfit/interviewd/pkg/environment"
	"github.com/cloudfit/interviewd/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	API         api.Config      `yaml:"API"`
	Storage     storage.Config  `yaml:"Storage"`
}

func loadConfig() (*Config, error) {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	rawEnv := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	path, err := filepath.Abs(*configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if *rawEnv != "" {
		cfg.Environment = environment.FromString(*rawEnv)
	}

	return &cfg, nil
}
