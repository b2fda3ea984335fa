package config

import (
	"typeform-connector/internal/pkg/constvars"
	"typeform-connector/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", constvars.EnvironmentDevelopment),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "UTC"),
		},
		Typeform: Typeform{
			BaseUrl:                 utils.GetEnvString("TYPEFORM_BASE_URL", constvars.TypeformBaseUrl),
			FormID:                  utils.GetEnvString("TYPEFORM_FORM_ID", ""),
			AccessToken:             utils.GetEnvString("TYPEFORM_ACCESS_TOKEN", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("TYPEFORM_REQUEST_TIMEOUT_IN_SECONDS", 30),
		},
	}
}
