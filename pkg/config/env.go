package config

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv           = "STOCKROOM_APP_ENV"
	EnvLogLevel         = "STOCKROOM_LOG_LEVEL"
	EnvAPIBaseURL       = "STOCKROOM_API_BASE_URL"
	EnvRedisURL         = "STOCKROOM_REDIS_URL"
	EnvRedisAddr        = "STOCKROOM_REDIS_ADDR"
	EnvRealtimeDatabase = "STOCKROOM_REALTIME_DATABASE"
	EnvSessionPath      = "STOCKROOM_SESSION_PATH"
	EnvDebugAddr        = "STOCKROOM_DEBUG_ADDR"
)
