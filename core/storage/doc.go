// Package storage keeps Steam app list snapshots in S3-compatible object storage.
//
// Client is the narrow slice of the MinIO API the service needs; NewClient returns a
// minio-backed implementation and core/storage/mocks a testify mock. The helpers
// EnsureBucket, ListKeys, PutJSON and GetJSON hold the bucket and JSON plumbing so that
// callers only deal with keys and Go values.
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//	    return err
//	}
//	keys, err := storage.ListKeys(ctx, client, cfg.Storage.Bucket, "catalog/", nil)
package storage
