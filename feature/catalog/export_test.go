package catalog

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"sports-catalog/core/storage/mocks"
	"sports-catalog/core/upstream"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var exportTime = time.Unix(1792324800, 0)

func newTestExporter(client *mocks.Client) *Exporter {
	x := NewExporter(client, "catalog", zap.NewNop())
	x.now = func() time.Time { return exportTime }
	return x
}

func TestExporter_Export(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "catalog", mock.Anything).Return(nil)

	var uploaded []byte
	client.On("PutObject", mock.Anything, "catalog", "snapshots/teams/alice-2-1792324800.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = data
		}).
		Return(minio.UploadInfo{}, nil)

	page := Page{Kind: KindTeams, Generation: 2, Items: []upstream.Team{arsenal}, Count: 1, Revealed: 1, Total: 1}
	res, err := newTestExporter(client).Export(context.Background(), "alice", page)

	require.NoError(t, err)
	assert.Equal(t, "snapshots/teams/alice-2-1792324800.json", res.Key)
	assert.Equal(t, 1, res.Items)
	assert.Equal(t, int64(len(uploaded)), res.Size)

	var doc struct {
		Owner string `json:"owner"`
		Page  struct {
			Kind  string          `json:"kind"`
			Items []upstream.Team `json:"items"`
		} `json:"page"`
	}
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	assert.Equal(t, "alice", doc.Owner)
	assert.Equal(t, KindTeams, doc.Page.Kind)
	assert.Equal(t, []upstream.Team{arsenal}, doc.Page.Items)

	client.AssertExpectations(t)
}

func TestExporter_ExportExistingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	client.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{Size: 42}, nil)

	res, err := newTestExporter(client).Export(context.Background(), "bob", Page{Kind: KindMatches})

	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Size)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestExporter_ExportError(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(false, assert.AnError)

	_, err := newTestExporter(client).Export(context.Background(), "bob", Page{Kind: KindTeams})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestExporter_List(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "snapshots/players/alice-1-1.json", Size: 10}
	ch <- minio.ObjectInfo{Key: "snapshots/players/.keep"}
	ch <- minio.ObjectInfo{Key: "snapshots/players/bob-3-2.json", Size: 20}
	close(ch)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "catalog", minio.ListObjectsOptions{Prefix: "snapshots/players/", Recursive: true}).
		Return((<-chan minio.ObjectInfo)(ch))

	list, err := newTestExporter(client).List(context.Background(), KindPlayers)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice-1-1.json", list[0].Name)
	assert.Equal(t, int64(20), list[1].Size)
}

func TestExporter_Open(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "catalog", "snapshots/teams/alice-1-1.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"owner":"alice"}`))), nil)
	x := newTestExporter(client)

	obj, err := x.Open(context.Background(), KindTeams, "alice-1-1.json")
	require.NoError(t, err)
	data, _ := io.ReadAll(obj)
	assert.JSONEq(t, `{"owner":"alice"}`, string(data))

	for _, name := range []string{"", "../secret.json", "a/b.json", "notes.txt"} {
		_, err := x.Open(context.Background(), KindTeams, name)
		assert.ErrorIs(t, err, ErrInvalidSnapshot, name)
	}

	_, err = x.Open(context.Background(), "stadiums", "a.json")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
