package config

// Config holds the application configuration. It is built once in main from
// the environment and handed to the router; nothing reads it globally, so
// tests can construct their own.
type Config struct {
	JWTSecret string
	UploadDir string
	Port      string
}
