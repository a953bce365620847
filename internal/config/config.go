// Package config loads the server's runtime configuration.
package config

// Config is the root application configuration, grounded on the teacher's
// own `-addr`/`-data` flag pair and generalized to the
// `heartmarshall-genius-disctionary-backend` config-struct style (ENV over
// YAML over defaults via cleanenv).
type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Seed   SeedConfig   `yaml:"seed"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr         string `yaml:"addr" env:"VOCAB_TUISTER_ADDR" env-default:":5000"`
	SynonymsPath string `yaml:"synonyms_path" env:"VOCAB_TUISTER_SYNONYMS_PATH"`
}

// CORSConfig holds CORS settings (carried from the teacher's `rs/cors`
// dependency, not exercised by the teacher's own main.go).
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"VOCAB_TUISTER_CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// SeedConfig surfaces the random-seed environment variable in the typed
// config struct; nothing reads this field, since rogo.NewRand reads the
// environment variable itself (spec §6.5).
type SeedConfig struct {
	RandomSeed string `yaml:"random_seed" env:"VOCAB_TUISTER_RANDOM_SEED"`
}
