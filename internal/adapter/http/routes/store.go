package routes

import (
	"context"
	"fmt"

	"quickgigs/internal/adapter/persistence/repository"
	"quickgigs/internal/infrastructure/config"
	"quickgigs/internal/infrastructure/database"
	"quickgigs/internal/usecase/interfaces"
)

// store bundles the Ledger Store repositories for the configured backend.
type store struct {
	gigs         interfaces.IGigRepository
	applications interfaces.IApplicationRepository
	payments     interfaces.IPaymentRepository
	events       interfaces.IWebhookEventRepository
	close        func() error
}

func openStore(ctx context.Context, cfg config.StoreConfig) (*store, error) {
	switch cfg.Driver {
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to dynamodb: %w", err)
		}
		tables := repository.DynamoTables{
			Gigs:          cfg.DynamoDB.GigsTable,
			Applications:  cfg.DynamoDB.ApplicationsTable,
			Payments:      cfg.DynamoDB.PaymentsTable,
			History:       cfg.DynamoDB.HistoryTable,
			WebhookEvents: cfg.DynamoDB.WebhookEventsTable,
		}
		return &store{
			gigs:         repository.NewGigDynamoRepository(ddb, tables),
			applications: repository.NewApplicationDynamoRepository(ddb, tables),
			payments:     repository.NewPaymentDynamoRepository(ddb, tables),
			events:       repository.NewWebhookEventDynamoRepository(ddb, tables),
			close:        func() error { return nil },
		}, nil
	default:
		db, err := database.ConnectGorm(cfg, repository.Models()...)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &store{
			gigs:         repository.NewGigGormRepository(db),
			applications: repository.NewApplicationGormRepository(db),
			payments:     repository.NewPaymentGormRepository(db),
			events:       repository.NewWebhookEventGormRepository(db),
			close:        sqlDB.Close,
		}, nil
	}
}
