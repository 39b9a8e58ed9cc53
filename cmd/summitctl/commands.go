package main

import (
	"fmt"
	"time"

	"github.com/accessviewafrica/summit-registration/api"
	"github.com/accessviewafrica/summit-registration/config"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/spf13/cobra"
)

func createTableCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "create-table",
		Short: "Create the registration table and its index if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), open, func(svc service) error {
				err := svc.CreateTable(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Table ready")
				return nil
			})
		},
	}
}

func statusCmd(open opener) *cobra.Command {
	var ids registration.ProviderIDs

	cmd := &cobra.Command{
		Use:   "status [client-reference]",
		Short: "Check a registration's payment status with the provider and reconcile it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), open, func(svc service) error {
				result, err := svc.ReconcileFromPoll(cmd.Context(), args[0], ids)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Reference: %s\n", args[0])
				fmt.Fprintf(out, "Status:    %s (%s)\n", result.Status, result.Source)
				if result.ProviderStatus != "" {
					fmt.Fprintf(out, "Provider:  %s\n", result.ProviderStatus)
				}
				if result.ProviderError != "" {
					fmt.Fprintf(out, "Provider:  unavailable (%s)\n", result.ProviderError)
				}
				if result.Changed {
					fmt.Fprintln(out, "Updated:   yes")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&ids.TransactionID, "transaction-id", "", "Hubtel transaction id")
	cmd.Flags().StringVar(&ids.NetworkTransactionID, "network-transaction-id", "", "Mobile network transaction id")

	return cmd
}

func remindCmd(open opener, now func() time.Time) *cobra.Command {
	var olderThan time.Duration
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Email a payment reminder to every pending registration older than a cutoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}

			return withService(cmd.Context(), open, func(svc service) error {
				candidates, err := svc.ReminderCandidates(cmd.Context(), now().Add(-olderThan), 100)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				sent, failed := 0, 0
				for _, reg := range candidates {
					if dryRun {
						fmt.Fprintf(out, "would remind %s <%s>\n", reg.ClientReference, reg.CustomerInfo.Email)
						continue
					}

					_, err := svc.SendPaymentReminder(cmd.Context(), reg.ClientReference, "")
					if err != nil {
						failed++
						fmt.Fprintf(cmd.ErrOrStderr(), "failed to remind %s: %s\n", reg.ClientReference, err)
						continue
					}
					sent++
				}

				fmt.Fprintf(out, "%d pending, %d reminded, %d failed\n", len(candidates), sent, failed)
				if failed > 0 {
					return fmt.Errorf("%d reminders failed", failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "Only remind registrations created before this long ago")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List who would be reminded without sending")

	return cmd
}

func tokenCmd(cfg config.Config, now func() time.Time) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := api.NewAdminToken(cfg.JWTSecret, subject, ttl, now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "How long the token is valid")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
