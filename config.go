package sigment

import (
	"strings"

	"github.com/joho/godotenv"
	env "github.com/knadh/koanf/providers/env"
	koanf "github.com/knadh/koanf/v2"

	"github.com/sigment/sigment-go/auth"
)

// ConfigFromEnv builds a Config from the environment, with an optional
// .env file in the working directory layered underneath (missing file is
// fine). Recognized variables:
//
//	SIGMENT_API_URL          base URL, default http://localhost:8000
//	SIGMENT_ACCESS_TOKEN     bearer token; overrides the credential file
//	SIGMENT_ORGANIZATION_ID  organization scope for all requests
//	SIGMENT_USER_AGENT       custom User-Agent
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("SIGMENT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SIGMENT_"))
	}), nil); err != nil {
		return Config{}, ConfigError{Reason: "env load failed: " + err.Error()}
	}

	cfg := Config{
		BaseURL:   k.String("api_url"),
		UserAgent: k.String("user_agent"),
	}
	if token := k.String("access_token"); token != "" {
		cfg.Resolver = auth.Static{Identity: auth.Identity{
			Token:          token,
			OrganizationID: k.String("organization_id"),
		}}
	}
	return cfg, nil
}
