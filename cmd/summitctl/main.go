// summitctl runs operational tasks against the registration store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/accessviewafrica/summit-registration/app"
	"github.com/accessviewafrica/summit-registration/config"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/spf13/cobra"
)

// service is what the commands need from the wired application.
type service interface {
	CreateTable(ctx context.Context) error
	ReconcileFromPoll(ctx context.Context, clientReference string, ids registration.ProviderIDs) (registration.PollResult, error)
	ReminderCandidates(ctx context.Context, cutoff time.Time, limit int32) ([]registration.Registration, error)
	SendPaymentReminder(ctx context.Context, clientReference string, link string) (registration.Registration, error)
	Close(ctx context.Context) error
}

type appService struct {
	*app.App
}

func (s appService) CreateTable(ctx context.Context) error {
	return s.DB().CreateTable(ctx)
}

func (s appService) ReconcileFromPoll(ctx context.Context, clientReference string, ids registration.ProviderIDs) (registration.PollResult, error) {
	return s.Reconciler().ReconcileFromPoll(ctx, clientReference, ids)
}

func (s appService) ReminderCandidates(ctx context.Context, cutoff time.Time, limit int32) ([]registration.Registration, error) {
	return s.Reconciler().ReminderCandidates(ctx, cutoff, limit)
}

func (s appService) SendPaymentReminder(ctx context.Context, clientReference string, link string) (registration.Registration, error) {
	return s.Reconciler().SendPaymentReminder(ctx, clientReference, link)
}

type opener func(ctx context.Context) (service, error)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %s\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	open := func(ctx context.Context) (service, error) {
		a, err := app.New(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return appService{a}, nil
	}

	err = newRootCmd(cfg, open, time.Now).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, open opener, now func() time.Time) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "summitctl",
		Short:         "Operational tasks for summit registration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(createTableCmd(open))
	rootCmd.AddCommand(statusCmd(open))
	rootCmd.AddCommand(remindCmd(open, now))
	rootCmd.AddCommand(tokenCmd(cfg, now))

	return rootCmd
}

// withService opens the application for the duration of fn.
func withService(ctx context.Context, open opener, fn func(svc service) error) error {
	svc, err := open(ctx)
	if err != nil {
		return err
	}
	defer svc.Close(ctx)

	return fn(svc)
}
