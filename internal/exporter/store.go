package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"offerfeat/internal/config"
	"offerfeat/internal/errors"
	"offerfeat/pkg/contracts/domain"
)

// Store persists the feature table into a SQLite database
type Store struct {
	db        *gorm.DB
	tableName string
	batchSize int
	logger    *slog.Logger
}

// OpenStore opens (or creates) the SQLite database at path
func OpenStore(path string, cfg config.StoreConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TableName == "" {
		cfg.TableName = config.DefaultTableName
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = config.DefaultBatchSize
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("open database %s", path), err)
	}

	return &Store{
		db:        db,
		tableName: cfg.TableName,
		batchSize: cfg.BatchSize,
		logger:    logger,
	}, nil
}

// TableName returns the name of the table Replace writes
func (s *Store) TableName() string {
	return s.tableName
}

// Replace swaps the stored table for table. Drop, create and every insert
// run in one transaction: on any failure the previous table is kept.
func (s *Store) Replace(ctx context.Context, table *domain.FeatureTable) error {
	cols := Columns(table)
	name := quoteIdent(s.tableName)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DROP TABLE IF EXISTS " + name).Error; err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
		if err := tx.Exec(createTableDDL(name, cols)).Error; err != nil {
			return fmt.Errorf("create table: %w", err)
		}
		if table.Len() == 0 {
			return nil
		}

		records := make([]map[string]interface{}, table.Len())
		for i := range table.Rows {
			rec := make(map[string]interface{}, len(cols))
			for _, c := range cols {
				rec[c.Name] = c.Value(&table.Rows[i])
			}
			records[i] = rec
		}

		if err := tx.Table(s.tableName).CreateInBatches(records, s.batchSize).Error; err != nil {
			return fmt.Errorf("insert rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("replace table %s", s.tableName), err).
			WithContext("rows", table.Len())
	}

	s.logger.InfoContext(ctx, "Feature table stored",
		slog.String("table", s.tableName),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(cols)))
	return nil
}

// Count returns the number of rows currently stored
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Table(s.tableName).Count(&n).Error; err != nil {
		return 0, errors.NewStorageError(fmt.Sprintf("count %s", s.tableName), err)
	}
	return n, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func createTableDDL(name string, cols []Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(c.Name), c.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
