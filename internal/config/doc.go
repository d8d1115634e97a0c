// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file, and an optional YAML
// config file. It keeps provider endpoints and credentials out of the code
// and gives the rest of the application typed, validated settings.
package config
