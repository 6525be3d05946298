// Package config loads environment-driven configuration structs.
//
// Structs declare their settings with `env` field tags; Load parses them
// once per type and caches the result for the process lifetime:
//
//	type StoreConfig struct {
//	    URL     string        `env:"NAMEKIT_MONGODB_URL,required"`
//	    Timeout time.Duration `env:"NAMEKIT_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// A .env file in the working directory is honored once per process, which
// keeps local development close to deployed behavior.
package config
