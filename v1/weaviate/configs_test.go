package weaviate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

func TestConfigValidateReportsAllMissing(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, vectorstore.ErrConfiguration)
	for _, name := range []string{"WEAVIATE_URL", "WEAVIATE_API_KEY", "OPENAI_API_KEY", "COHERE_API_KEY"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestConfigValidateAnonymousSkipsCredentials(t *testing.T) {
	cfg := DefaultConfig().WithAnonymous(true)
	cfg.URL = "http://localhost:8080"

	assert.NoError(t, cfg.Validate())
}

func TestConfigValidateComplete(t *testing.T) {
	cfg := DefaultConfig().WithAPIKey("secret")
	cfg.URL = "https://cluster.weaviate.cloud"
	cfg.OpenAIAPIKey = "sk-test"
	cfg.CohereAPIKey = "co-test"

	assert.NoError(t, cfg.Validate())
}

func TestConfigEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantScheme string
		wantHost   string
		wantErr    bool
	}{
		{name: "https url", url: "https://cluster.weaviate.cloud", wantScheme: "https", wantHost: "cluster.weaviate.cloud"},
		{name: "http url with port", url: "http://localhost:8080", wantScheme: "http", wantHost: "localhost:8080"},
		{name: "bare host defaults to https", url: "cluster.weaviate.cloud", wantScheme: "https", wantHost: "cluster.weaviate.cloud"},
		{name: "garbage", url: "://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.URL = tt.url

			scheme, host, err := cfg.endpoint()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, vectorstore.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScheme, scheme)
			assert.Equal(t, tt.wantHost, host)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("WEAVIATE_URL", "https://cluster.weaviate.cloud")
	t.Setenv("WEAVIATE_API_KEY", "secret")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("COHERE_API_KEY", "co-test")
	t.Setenv("WEAVIATE_BATCH_SIZE", "25")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://cluster.weaviate.cloud", cfg.URL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 25, cfg.BatchSize)
	assert.NoError(t, cfg.Validate())
}

func TestValidateErrorListsOnlyMissing(t *testing.T) {
	cfg := DefaultConfig().WithAPIKey("secret")
	cfg.URL = "https://cluster.weaviate.cloud"
	cfg.OpenAIAPIKey = "sk-test"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COHERE_API_KEY")
	assert.False(t, strings.Contains(err.Error(), "WEAVIATE_URL"))
}
