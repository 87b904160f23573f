package config

const (
	EnvPrefix = "VITRUM"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "VITRUM_APP_ENV"
	EnvPort   = "VITRUM_APP_PORT"

	EnvDBDSN  = "VITRUM_DB_DSN"
	EnvDBHost = "VITRUM_DB_HOST"
	EnvDBUser = "VITRUM_DB_USER"
	EnvDBName = "VITRUM_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
