// Package constants holds configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Object storage bucket for listing and avatar images.
const ProductImagesBucket = "product-images"

// Headers.
const (
	HeaderCartSession = "X-Cart-Session"
	HeaderOrderID     = "X-Order-Id"
)
