package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"eventsboard/config"
	"eventsboard/internal/adapters/backend"
	"eventsboard/internal/adapters/email"
	"eventsboard/internal/domain"
	"eventsboard/internal/repository/postgres"
	"eventsboard/internal/services"
)

func newBackendClient(cfg *config.Config) *backend.Client {
	return backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.BackendTimeout})
}

// newReferenceRepository picks where users and categories come from. The
// returned close func releases the database pool when Postgres is used.
func newReferenceRepository(ctx context.Context, cfg *config.Config, client *backend.Client) (domain.ReferenceRepository, func(), error) {
	if cfg.ReferenceSource != config.ReferenceSourcePostgres {
		return client, func() {}, nil
	}
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("open reference database: %w", err)
	}
	return postgres.NewReferenceRepository(db), func() { db.Close() }, nil
}

// newNotifier logs every notification, forwards it to extra, and mails a copy
// when NOTIFY_EMAIL_TO is set.
func newNotifier(cfg *config.Config, logger *slog.Logger, extra ...domain.Notifier) domain.Notifier {
	fan := services.FanOut{services.NewLogNotifier(logger)}
	fan = append(fan, extra...)
	if cfg.Notify.To == "" {
		return fan
	}
	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Notify.Provider,
		FromAddress: cfg.Notify.FromAddress,
		FromName:    cfg.Notify.FromName,
		SES: email.SESConfig{
			Region:             cfg.Notify.AWSRegion,
			AccessKeyID:        cfg.Notify.AWSAccessKeyID,
			SecretAccessKey:    cfg.Notify.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Notify.InsecureSkipVerify,
		},
	}, logger)
	return append(fan, services.NewEmailNotifier(mailer, email.NewNotificationRenderer(), cfg.Notify.To))
}

// newBoard wires a board against the configured backend and reference source.
func newBoard(ctx context.Context, notifier domain.Notifier, navigator domain.Navigator) (*services.Board, func(), error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	client := newBackendClient(cfg)
	reference, closeRef, err := newReferenceRepository(ctx, cfg, client)
	if err != nil {
		return nil, nil, err
	}
	fetcher := services.NewDataFetcher(client, reference, logger, cfg.BackendTimeout)
	board := services.NewBoard(fetcher, client, notifier, navigator, logger, services.WithLocation(loc))
	return board, closeRef, nil
}
