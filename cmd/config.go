package cmd

// Storage mode values for Config.Storage.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort              string
	Storage               string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaOrderEventsTopic string
}
