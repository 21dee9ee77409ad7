package hotel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	HotelName string `json:"hotelName"`
	HttpPort  string `json:"httpPort"`
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestConfiguration_LoadsPlainFile(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "properties.json"),
		[]byte(`{"hotelName":"Grand Hotel","httpPort":"8080"}`), 0o644))

	config, err := Configuration[testConfig]()
	require.NoError(t, err)
	assert.Equal(t, "Grand Hotel", config.HotelName)
	assert.Equal(t, "8080", config.HttpPort)
}

func TestConfiguration_CustomPath(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.json"),
		[]byte(`{"hotelName":"Seaside"}`), 0o644))

	config, err := Configuration[testConfig]("custom")
	require.NoError(t, err)
	assert.Equal(t, "Seaside", config.HotelName)
}

func TestConfiguration_MissingFile(t *testing.T) {
	inTempDir(t)
	_, err := Configuration[testConfig]()
	assert.Error(t, err)
}

func TestConfiguration_InvalidJson(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"),
		[]byte("not json"), 0o644))

	_, err := Configuration[testConfig]("bad")
	assert.Error(t, err)
}
