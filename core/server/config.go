package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BaseURL is the externally visible base URL of this server.
	// It is used to build download URLs for stored images.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8080"`
	// BodyLimitMB caps the size of a multipart upload in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}

// FileURL returns the public download URL for a stored object key.
func (c Config) FileURL(key string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/files/" + key
}
