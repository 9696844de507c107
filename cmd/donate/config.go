// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/campaignapi"
	"github.com/farhanmansurii/Donate-frontend/internal/infrastructure/nats"
	"github.com/farhanmansurii/Donate-frontend/pkg/constants"
)

// appConfig is the configuration of the donate command. Values come from the
// environment first; a YAML file given with --config overrides them.
type appConfig struct {
	CampaignSource string `env:"CAMPAIGN_SOURCE" envDefault:"http" yaml:"campaign_source"`
	SessionSource  string `env:"SESSION_SOURCE" envDefault:"memory" yaml:"session_source"`
	SessionID      string `env:"SESSION_ID" yaml:"session_id"`
	PublishEvents  bool   `env:"PUBLISH_DONATION_EVENTS" envDefault:"false" yaml:"publish_events"`

	CampaignAPI campaignapi.Config `yaml:"campaign_api"`
	NATS        nats.Config        `yaml:"nats"`
}

// loadConfig reads the environment and then the optional YAML file
func loadConfig(path string) (appConfig, error) {
	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	var err error
	if cfg.CampaignAPI, err = campaignapi.NewConfigFromEnv(); err != nil {
		return cfg, fmt.Errorf("parsing campaign service environment: %w", err)
	}
	if cfg.NATS, err = nats.NewConfigFromEnv(); err != nil {
		return cfg, fmt.Errorf("parsing NATS environment: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	if err := constants.ValidateSource(c.CampaignSource, constants.SourceHTTP, constants.SourceMock); err != nil {
		return err
	}
	return constants.ValidateSource(c.SessionSource, constants.SourceNATS, constants.SourceMemory, constants.SourceMock)
}
