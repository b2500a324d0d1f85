package config

// EnvPrefix is the envconfig prefix shared by every service binary.
const EnvPrefix = "MEALBRIDGE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, spelled out so tests and ops tooling can
// reference them without duplicating strings.
const (
	EnvAppEnv                 = "MEALBRIDGE_APP_ENV"
	EnvPort                   = "MEALBRIDGE_APP_PORT"
	EnvDBDSN                  = "MEALBRIDGE_DB_DSN"
	EnvDBHost                 = "MEALBRIDGE_DB_HOST"
	EnvDBUser                 = "MEALBRIDGE_DB_USER"
	EnvDBName                 = "MEALBRIDGE_DB_NAME"
	EnvRedisURL               = "MEALBRIDGE_REDIS_URL"
	EnvJWTSecret              = "MEALBRIDGE_JWT_SECRET"
	EnvJWTIssuer              = "MEALBRIDGE_JWT_ISSUER"
	EnvJWTExpMins             = "MEALBRIDGE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "MEALBRIDGE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
