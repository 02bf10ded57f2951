package integrity

import (
	"context"
	"errors"
	"fmt"

	"sports-catalog/core/storage"
	"sports-catalog/feature/catalog"
	"sports-catalog/feature/favourites"
	"sports-catalog/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by database checks when no connection is configured.
var ErrNoDatabase = errors.New("database connection is not configured")

// RequiredFolders lists the snapshot folders that must exist in the bucket.
func RequiredFolders() []string {
	folders := make([]string, len(catalog.Kinds))
	for i, kind := range catalog.Kinds {
		folders[i] = catalog.SnapshotPrefix + "/" + kind
	}
	return folders
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns a list of missing snapshot folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, RequiredFolders())
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckDatabase verifies the favourites table.
func (s *Service) CheckDatabase() (checks.TableReport, error) {
	if s.db == nil {
		return checks.TableReport{}, ErrNoDatabase
	}
	return checks.CheckTable(s.db, favourites.TableName, favourites.Columns)
}

// FixDatabase creates or migrates the favourites table.
func (s *Service) FixDatabase() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return favourites.NewService(s.db, nil, s.logger).Migrate()
}
