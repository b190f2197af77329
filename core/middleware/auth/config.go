package auth

// Config holds configuration for the bearer-token middleware.
type Config struct {
	// Secret is the HMAC key used to verify JWT signatures.
	Secret string `mapstructure:"jwt_secret" default:""`
}
