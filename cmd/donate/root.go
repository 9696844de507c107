// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	configPath     string
	baseURL        string
	campaignSource string
	sessionSource  string
	sessionID      string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "donate",
		Short: "Browse campaigns and donate to them",
		Long: `donate talks to the campaign service to list fundraising campaigns,
show the progress of one campaign and submit donations.

Sources are chosen with CAMPAIGN_SOURCE (http, mock) and SESSION_SOURCE
(nats, memory, mock) or the matching flags.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.baseURL, "base-url", "", "campaign service base URL")
	flags.StringVar(&opts.campaignSource, "campaign-source", "", "campaign service implementation (http, mock)")
	flags.StringVar(&opts.sessionSource, "session-source", "", "session store implementation (nats, memory, mock)")
	flags.StringVar(&opts.sessionID, "session-id", "", "session whose user data names the donor")

	root.AddCommand(
		newListCommand(opts),
		newShowCommand(opts),
		newDonateCommand(opts),
	)

	return root
}

// config loads the configuration and applies flag overrides
func (o *rootOptions) config() (appConfig, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.baseURL != "" {
		cfg.CampaignAPI.BaseURL = o.baseURL
	}
	if o.campaignSource != "" {
		cfg.CampaignSource = o.campaignSource
	}
	if o.sessionSource != "" {
		cfg.SessionSource = o.sessionSource
	}
	if o.sessionID != "" {
		cfg.SessionID = o.sessionID
	}
	return cfg, cfg.validate()
}

// run builds the providers for one command invocation and closes them after
func (o *rootOptions) run(cmd *cobra.Command, fn func(*providers) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}

	p, err := newProviders(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	return fn(p)
}
