package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every bound variable; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, e := range envs {
			t.Setenv(e, "")
		}
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("VANITYOS_API_KEY", "secret")

	c, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "secret", c.APIKey)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, BackendAuto, c.Classifier.Backend)
	assert.Equal(t, "ml/out/labels.json", c.Classifier.LabelsPath)
	assert.Equal(t, 3, c.Classifier.TopK)
	assert.Equal(t, 10*time.Minute, c.Classifier.CacheTTL)
	assert.Equal(t, int64(10<<20), c.MaxUploadBytes)
	assert.False(t, c.Database.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("VANITYOS_API_KEY", "k")
	t.Setenv("PORT", "9090")
	t.Setenv("VANITYOS_MODEL_PATH", "/models/food.onnx")
	t.Setenv("VANITYOS_CLASSIFIER", "REKOGNITION")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("VANITYOS_CACHE_TTL", "0s")
	t.Setenv("DB_HOST", "db.internal")

	c, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "/models/food.onnx", c.Classifier.ModelPath)
	assert.Equal(t, BackendRekognition, c.Classifier.Backend)
	assert.Equal(t, time.Duration(0), c.Classifier.CacheTTL)
	assert.True(t, c.Database.Enabled())
}

func TestLoadFromConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("VANITYOS_API_KEY", "k")
	path := filepath.Join(t.TempDir(), "vanityos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\nclassifier:\n  top_k: 5\n"), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7000, c.Port)
	assert.Equal(t, 5, c.Classifier.TopK)
}

func TestLoadValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("VANITYOS_API_KEY", "")
	_, err := Load(newViper())
	assert.ErrorContains(t, err, "VANITYOS_API_KEY")

	t.Setenv("VANITYOS_API_KEY", "k")
	t.Setenv("VANITYOS_CLASSIFIER", "tensorflow")
	_, err = Load(newViper())
	assert.ErrorContains(t, err, "unknown classifier backend")

	t.Setenv("VANITYOS_CLASSIFIER", "rekognition")
	t.Setenv("AWS_REGION", "")
	_, err = Load(newViper())
	assert.ErrorContains(t, err, "AWS_REGION")
}

func TestLoadDotEnvMissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VANITYOS_TEST_DOTENV=loaded\n"), 0o644))
	t.Setenv("VANITYOS_TEST_DOTENV", "")
	os.Unsetenv("VANITYOS_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("VANITYOS_TEST_DOTENV"))
}
