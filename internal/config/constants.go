package config

// Application constants
const (
	AppName    = "offer-features"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. OFFER_STORE_TABLE_NAME
	EnvPrefix = "OFFER"

	// ConfigFileEnv names an explicit YAML configuration file
	ConfigFileEnv = "OFFER_CONFIG_FILE"

	DefaultTableName        = "User"
	DefaultBatchSize        = 500
	DefaultAgeSentinel      = 118
	DefaultMemberDateLayout = "20060102"
	DefaultUnknownGender    = "na"
	DefaultFailLabel        = "offer_fail"
	DefaultLogFile          = "logs/processor.log"
)
