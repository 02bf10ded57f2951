package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"sports-catalog/core/storage"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// SnapshotPrefix is the folder holding exported windows, one subfolder per kind.
const SnapshotPrefix = "snapshots"

var (
	// ErrExportDisabled is returned when no object storage is configured.
	ErrExportDisabled = errors.New("snapshot export is disabled")
	// ErrInvalidSnapshot is returned for snapshot names that are not plain json files.
	ErrInvalidSnapshot = errors.New("invalid snapshot name")
)

// Snapshot is the document written for one export.
type Snapshot struct {
	Owner      string    `json:"owner"`
	ExportedAt time.Time `json:"exported_at"`
	Page       Page      `json:"page"`
}

// ExportResult describes a written snapshot.
type ExportResult struct {
	Key   string `json:"key"`
	Size  int64  `json:"size"`
	Items int    `json:"items"`
}

// ExportInfo describes a stored snapshot.
type ExportInfo struct {
	Name         string    `json:"name"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Exporter writes visible windows to object storage as JSON.
type Exporter struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewExporter creates a snapshot exporter for bucket.
func NewExporter(client storage.Client, bucket string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{client: client, bucket: bucket, logger: logger, now: time.Now}
}

// SnapshotFolder returns the folder of one kind, with a trailing slash.
func SnapshotFolder(kind string) string {
	return SnapshotPrefix + "/" + kind + "/"
}

// Export writes page under snapshots/<kind>/<owner>-<generation>-<unix>.json, creating
// the bucket when it does not exist yet.
func (x *Exporter) Export(ctx context.Context, owner string, page Page) (ExportResult, error) {
	exists, err := x.client.BucketExists(ctx, x.bucket)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := x.client.MakeBucket(ctx, x.bucket, minio.MakeBucketOptions{}); err != nil {
			return ExportResult{}, fmt.Errorf("failed to create bucket: %w", err)
		}
		x.logger.Info("Created snapshot bucket", zap.String("bucket", x.bucket))
	}

	now := x.now().UTC()
	data, err := json.Marshal(Snapshot{Owner: owner, ExportedAt: now, Page: page})
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s%s-%d-%d.json", SnapshotFolder(page.Kind), owner, page.Generation, now.Unix())
	info, err := x.client.PutObject(ctx, x.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	size := info.Size
	if size == 0 {
		size = int64(len(data))
	}
	x.logger.Info("Snapshot exported", zap.String("key", key), zap.Int("items", page.Count))
	return ExportResult{Key: key, Size: size, Items: page.Count}, nil
}

// List returns the stored snapshots of a kind.
func (x *Exporter) List(ctx context.Context, kind string) ([]ExportInfo, error) {
	var out []ExportInfo
	for obj := range x.client.ListObjects(ctx, x.bucket, minio.ListObjectsOptions{
		Prefix:    SnapshotFolder(kind),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		out = append(out, ExportInfo{
			Name:         path.Base(obj.Key),
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return out, nil
}

// Open returns the content of one stored snapshot.
func (x *Exporter) Open(ctx context.Context, kind, name string) (io.ReadCloser, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") || !strings.HasSuffix(name, ".json") {
		return nil, ErrInvalidSnapshot
	}
	if !validKind(kind) {
		return nil, ErrUnknownKind
	}

	obj, err := x.client.GetObject(ctx, x.bucket, SnapshotFolder(kind)+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return obj, nil
}
