// Package persistence picks the repository backend named in the config.
package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"hoa_stickers/internal/adapter/persistence/postgres"
	"hoa_stickers/internal/adapter/persistence/repository"
	"hoa_stickers/internal/config"
	"hoa_stickers/internal/infrastructure/database"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Store bundles the three repositories of one backend.
type Store struct {
	Residents interfaces.IResidentRepository
	Products  interfaces.IProductRepository
	Purchases interfaces.IPurchaseRepository

	backend string
	db      *sql.DB
	ddb     *dynamodb.Client
	tables  repository.Tables
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Store{
			Residents: postgres.NewResidentRepository(db),
			Products:  postgres.NewProductRepository(db),
			Purchases: postgres.NewPurchaseRepository(db),
			backend:   cfg.Backend,
			db:        db,
		}, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		tables := repository.Tables{
			Residents: cfg.ResidentsTable,
			Products:  cfg.ProductsTable,
			Purchases: cfg.PurchasesTable,
		}
		return &Store{
			Residents: repository.NewResidentDynamoRepository(ddb, tables.Residents),
			Products:  repository.NewProductDynamoRepository(ddb, tables.Products),
			Purchases: repository.NewPurchaseDynamoRepository(ddb, tables.Purchases, tables.Products, tables.Residents),
			backend:   cfg.Backend,
			ddb:       ddb,
			tables:    tables,
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

func (s *Store) Backend() string { return s.backend }

// Migrate creates the schema (Postgres) or tables (DynamoDB).
func (s *Store) Migrate(ctx context.Context) error {
	if s.db != nil {
		return postgres.Migrate(ctx, s.db)
	}
	return repository.EnsureTables(ctx, s.ddb, s.tables)
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
