package config

// StorageConfig contains S3-compatible object storage configuration for
// listing images. In development this points at MinIO.
type StorageConfig struct {
	Endpoint  string `env:"ENDPOINT"   envDefault:"http://localhost:9000"`
	Region    string `env:"REGION"     envDefault:"us-east-1"`
	Bucket    string `env:"BUCKET"     envDefault:"makaan-properties"`
	AccessKey string `env:"ACCESS_KEY" envDefault:""`
	SecretKey string `env:"SECRET_KEY" envDefault:""`

	// PublicBaseURL is the URL prefix clients use to fetch stored images.
	// When empty, image URLs are built from Endpoint and Bucket.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:""`
}
