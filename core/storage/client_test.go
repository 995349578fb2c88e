package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"games-in-common/core/storage"
	"games-in-common/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr bool
	}{
		{name: "Plain", cfg: storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Region: "us-east-1"}},
		{name: "HTTPScheme", cfg: storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{name: "HTTPSScheme", cfg: storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true}},
		{name: "NoEndpoint", cfg: storage.Config{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("BucketExists", ctx, "b").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, c, "b"))
		c.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("BucketExists", ctx, "b").Return(false, nil)
		c.On("MakeBucket", ctx, "b", minio.MakeBucketOptions{}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, c, "b"))
		c.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("BucketExists", ctx, "b").Return(false, errors.New("connection refused"))

		assert.ErrorContains(t, storage.EnsureBucket(ctx, c, "b"), "connection refused")
	})
}

func TestListKeys(t *testing.T) {
	ctx := context.Background()

	c := new(mocks.Client)
	c.On("ListObjects", ctx, "b", minio.ListObjectsOptions{Prefix: "p/", Recursive: true}).
		Return(mocks.Listing(
			minio.ObjectInfo{Key: "p/c.json"},
			minio.ObjectInfo{Key: "p/a.json"},
			minio.ObjectInfo{Key: "p/readme.txt"},
		)).Once()

	keys, err := storage.ListKeys(ctx, c, "b", "p/", func(k string) bool {
		return strings.HasSuffix(k, ".json")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p/a.json", "p/c.json"}, keys)

	c.On("ListObjects", ctx, "b", mock.Anything).
		Return(mocks.Listing(minio.ObjectInfo{Err: errors.New("access denied")})).Once()

	_, err = storage.ListKeys(ctx, c, "b", "p/", nil)
	assert.ErrorContains(t, err, "access denied")
}

func TestPutAndGetJSON(t *testing.T) {
	ctx := context.Background()
	type doc struct {
		Name string `json:"name"`
	}

	var uploaded []byte
	c := new(mocks.Client)
	c.On("PutObject", ctx, "b", "k.json", mock.Anything, mock.Anything, minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = body
		}).
		Return(minio.UploadInfo{}, nil)

	n, err := storage.PutJSON(ctx, c, "b", "k.json", doc{Name: "Portal"})
	require.NoError(t, err)
	assert.Equal(t, len(uploaded), n)
	assert.JSONEq(t, `{"name":"Portal"}`, string(uploaded))

	c.On("GetObject", ctx, "b", "k.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(bytes.NewReader(uploaded)), nil)

	var got doc
	require.NoError(t, storage.GetJSON(ctx, c, "b", "k.json", &got))
	assert.Equal(t, "Portal", got.Name)

	c.On("GetObject", ctx, "b", "broken.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(bytes.NewReader([]byte("{"))), nil)
	assert.Error(t, storage.GetJSON(ctx, c, "b", "broken.json", &got))
}
