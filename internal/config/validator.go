package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the environment variables a deployment must set explicitly
var RequiredEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// Example values shipped in documentation that must not reach production
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal problems
// such as example secrets or a half-configured Discord notifier.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	hasToken := os.Getenv("DISCORD_TOKEN") != ""
	hasChannel := os.Getenv("DISCORD_REMINDER_CHANNEL_ID") != ""
	if hasToken != hasChannel {
		warnings = append(warnings, "DISCORD_TOKEN and DISCORD_REMINDER_CHANNEL_ID must both be set to post reminders to Discord - falling back to log reminders")
	}

	return warnings, nil
}
