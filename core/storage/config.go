package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding app list snapshots.
	Bucket string `mapstructure:"bucket" default:"games-in-common"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// SnapshotPrefix is the object key prefix for app list snapshots.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"catalog/"`
	// KeepSnapshots is how many app list snapshots are retained. Zero keeps all.
	KeepSnapshots int `mapstructure:"keep_snapshots" default:"3"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
