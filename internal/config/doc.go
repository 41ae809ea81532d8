// Package config provides configuration management for the feature table
// batch job.
//
// # Configuration Sources
//
// Configuration is assembled in three layers, later layers overriding
// earlier ones:
//
//	1. Default() values
//	2. A YAML file (OFFER_CONFIG_FILE, config.yaml or configs/config.yaml)
//	3. Environment variables
//
// # Environment Variables
//
// All environment variables follow the pattern OFFER_<SECTION>_<FIELD>:
//
//	OFFER_LOGGING_LEVEL=debug
//	OFFER_STORE_TABLE_NAME=User
//	OFFER_STORE_BATCH_SIZE=1000
//	OFFER_EXPORT_CSV_PATH=data/features.csv
//	OFFER_TELEMETRY_TRACING_ENABLED=true
//
// Input and output paths are not configuration: they are the positional
// arguments of the processor command.
package config
