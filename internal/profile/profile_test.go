package profile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, envVar := range []string{
		"SEEKR_AI_ENABLED",
		"SEEKR_AI_OPENAI_API_KEY",
		"SEEKR_AI_OPENAI_BASE_URL",
		"SEEKR_AI_MODEL",
		"SEEKR_JWT_SECRET",
	} {
		os.Unsetenv(envVar)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnvVars(t)

	profile := &Profile{}
	profile.FromEnv()

	require.False(t, profile.AIEnabled)
	require.Equal(t, "https://api.openai.com/v1", profile.AIOpenAIBaseURL)
	require.Equal(t, "gpt-4o-mini", profile.AIModel)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SEEKR_AI_ENABLED", "true")
	t.Setenv("SEEKR_AI_OPENAI_API_KEY", "test-key")
	t.Setenv("SEEKR_AI_MODEL", "gpt-4o")
	t.Setenv("SEEKR_JWT_SECRET", "env-secret")

	profile := &Profile{}
	profile.FromEnv()

	require.True(t, profile.AIEnabled)
	require.Equal(t, "test-key", profile.AIOpenAIAPIKey)
	require.Equal(t, "gpt-4o", profile.AIModel)
	require.Equal(t, "env-secret", profile.JWTSecret)
}

func TestIsAIEnabled(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected bool
	}{
		{
			name:     "disabled",
			profile:  Profile{AIEnabled: false, AIOpenAIAPIKey: "key"},
			expected: false,
		},
		{
			name:     "enabled without key",
			profile:  Profile{AIEnabled: true},
			expected: false,
		},
		{
			name:     "enabled with key",
			profile:  Profile{AIEnabled: true, AIOpenAIAPIKey: "key"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.profile.IsAIEnabled())
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	profile := &Profile{Mode: "invalid"}
	require.NoError(t, profile.Validate())
	require.Equal(t, "demo", profile.Mode)
	require.Equal(t, "memory", profile.Driver)
}

func TestValidateSQLiteDSN(t *testing.T) {
	profile := &Profile{Mode: "dev", Driver: "sqlite", Data: t.TempDir()}
	require.NoError(t, profile.Validate())
	require.Contains(t, profile.DSN, "seekr_dev.db")
}

func TestValidatePostgresRequiresDSN(t *testing.T) {
	profile := &Profile{Mode: "dev", Driver: "postgres", Data: t.TempDir()}
	require.Error(t, profile.Validate())
}
