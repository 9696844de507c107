// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/farhanmansurii/Donate-frontend/internal/domain/model"
	"github.com/farhanmansurii/Donate-frontend/internal/service"
	errs "github.com/farhanmansurii/Donate-frontend/pkg/errors"
	"github.com/farhanmansurii/Donate-frontend/pkg/progress"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every campaign with its progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(p *providers) error {
				catalog := service.NewCatalogView(p.repository())
				defer catalog.Close()

				cards, err := catalog.Load(cmd.Context())
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No campaigns available right now.")
					return err
				}
				printCatalog(cmd.OutOrStdout(), cards)
				return nil
			})
		},
	}
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <campaign-id>",
		Short: "Show one campaign, its progress and its donations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(p *providers) error {
				identity := p.identity()
				view := service.NewCampaignView(args[0], p.repository(), p.controller(), identity)
				defer view.Close()

				if err := view.Load(cmd.Context()); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), unavailableMessage(err))
					return err
				}
				printCampaign(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}
}

func newDonateCommand(opts *rootOptions) *cobra.Command {
	var amount, name string

	cmd := &cobra.Command{
		Use:   "donate <campaign-id>",
		Short: "Donate to a campaign",
		Long: `Donate to a campaign. Without --name the donor is taken from the
session, falling back to "Anonymous".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(p *providers) error {
				out := cmd.OutOrStdout()
				view := service.NewCampaignView(args[0], p.repository(), p.controller(), p.identity())
				defer view.Close()

				if err := view.Load(cmd.Context()); err != nil {
					fmt.Fprintln(out, unavailableMessage(err))
					return err
				}

				result, err := view.Donate(cmd.Context(), name, amount)
				if err != nil {
					fmt.Fprintln(out, failureMessage(err))
					return err
				}

				fmt.Fprintf(out, "Thank you, %s! Your donation of %s to %q was received.\n",
					result.Donation.DonorName, progress.FormatAmount(result.Donation.Amount), view.Snapshot().Title)
				if result.StaleDisplay {
					fmt.Fprintln(out, "The campaign progress could not be refreshed and may be out of date.")
				}
				if display, loaded, err := view.Progress(); loaded && err == nil {
					fmt.Fprintln(out, progressLine(display))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to donate")
	cmd.Flags().StringVar(&name, "name", "", "donor name shown on the campaign")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func printCatalog(w io.Writer, cards []service.CatalogCard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No campaigns yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tRAISED\tGOAL\tPROGRESS\tCREATED BY")
	for _, card := range cards {
		c := card.Campaign
		percent := "n/a"
		if card.ProgressErr == nil {
			percent = fmt.Sprintf("%.0f%%", card.Progress.Percentage)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Title, statusLabel(c), progress.FormatAmount(c.AmountRaised),
			progress.FormatAmount(c.Goal), percent, c.CreatedBy)
	}
	_ = tw.Flush()
}

func printCampaign(w io.Writer, view *service.CampaignView) {
	c := view.Snapshot()

	fmt.Fprintf(w, "%s (%s)\n", c.Title, statusLabel(c))
	if c.Description != "" {
		fmt.Fprintln(w, c.Description)
	}
	if c.Recipient != "" {
		fmt.Fprintf(w, "Recipient: %s\n", c.Recipient)
	}
	if location := strings.TrimSpace(strings.Join([]string{c.Country, c.ZipCode}, " ")); location != "" {
		fmt.Fprintf(w, "Location: %s\n", location)
	}
	if c.CreatedBy != "" {
		fmt.Fprintf(w, "Created by: %s\n", c.CreatedBy)
	}

	display, _, err := view.Progress()
	if err != nil {
		fmt.Fprintln(w, "Progress: unavailable (campaign has no goal)")
	} else {
		fmt.Fprintln(w, progressLine(display))
	}
	if c.TopDonor != "" {
		fmt.Fprintf(w, "Top donor: %s\n", c.TopDonor)
	}

	fmt.Fprintf(w, "Donations (%d):\n", len(c.Donations))
	for _, d := range c.Donations {
		fmt.Fprintf(w, "  %s  %s\n", progress.FormatAmount(d.Amount), d.DonorName)
	}
	fmt.Fprintf(w, "Donating as: %s\n", view.DonorName())
}

func progressLine(d progress.Display) string {
	return fmt.Sprintf("Progress: %s raised of %s (%.0f%%), %s to go", d.Raised, d.Goal, d.Percentage, d.Remaining)
}

func statusLabel(c *model.Campaign) string {
	if c.Status == "" {
		return string(model.CampaignStatusActive)
	}
	return string(c.Status)
}

func unavailableMessage(err error) string {
	var notFound errs.NotFound
	if errors.As(err, &notFound) {
		return "Campaign not found."
	}
	return "Campaign unavailable, please try again later."
}

func failureMessage(err error) string {
	var (
		validation errs.Validation
		busy       errs.Busy
	)
	switch {
	case errors.As(err, &validation):
		return fmt.Sprintf("Please check the %s: %s.", validation.Field, validation.Reason)
	case errors.As(err, &busy):
		return "A donation is already being submitted, please wait."
	default:
		return "Your donation could not be processed, please try again."
	}
}
