// Package config provides configuration management for the demo.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file (through godotenv). Defaults live on the partial config
// structs as `default` struct tags.
//
// # Configuration Structure
//
//   - Server: port (SERVER_PORT or PORT, default 3000) and static asset settings
//   - Database: item store driver (memory by default) and connection details
//   - Storage: S3/MinIO credentials, bucket and prefix for public assets
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
