package config

import "time"

// AuthConfig holds the login credential pair and token settings.
// There are no built-in credentials: login stays disabled until all of
// username, password hash and signing secret are provided.
type AuthConfig struct {
	Username     string
	PasswordHash string
	Role         string
	RequireToken bool
	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	JWTTTL       time.Duration
}

func loadAuth() AuthConfig {
	return AuthConfig{
		Username:     envOrDefault(envAuthUsername, ""),
		PasswordHash: envOrDefault(envAuthPasswordHash, ""),
		Role:         envOrDefault(envAuthRole, defaultAuthRole),
		RequireToken: boolEnvOrDefault(envAuthRequireToken, false),
		JWTSecret:    envOrDefault(envJWTSecret, ""),
		JWTIssuer:    envOrDefault(envJWTIssuer, defaultJWTIssuer),
		JWTAudience:  envOrDefault(envJWTAudience, defaultJWTAudience),
		JWTTTL:       durationEnvOrDefault(envJWTTTL, defaultJWTTTL),
	}
}

// LoginEnabled reports whether enough settings exist to issue tokens.
func (c AuthConfig) LoginEnabled() bool {
	return c.Username != "" && c.PasswordHash != "" && c.JWTSecret != ""
}
