package config

type (
	InternalConfig struct {
		App      App
		Typeform Typeform
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env      string
		Timezone string
	}

	Typeform struct {
		BaseUrl                 string
		FormID                  string
		AccessToken             string
		RequestTimeoutInSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
