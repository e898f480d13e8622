package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the test, restoring it on cleanup.
// Equivalent to t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoaderLayering(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userDir := filepath.Join(home, UserConfigDir)
	require.NoError(t, os.MkdirAll(userDir, 0755))
	userCfg := `
business:
  company_name: User Co
site:
  url: https://user.example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(userDir, UserConfigFile), []byte(userCfg), 0644))

	project := t.TempDir()
	projectCfg := `
multiple_locations: true
site:
  url: https://project.example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte(projectCfg), 0644))

	// Run from a subdirectory so the upward search is exercised.
	sub := filepath.Join(project, "content", "pages")
	require.NoError(t, os.MkdirAll(sub, 0755))
	chdir(t, sub)

	opts, err := NewLoader(nil).Load()
	require.NoError(t, err)

	// Project config wins over user config, user config over defaults.
	assert.Equal(t, "https://project.example.com", opts.Site.URL)
	assert.Equal(t, "User Co", opts.Business.CompanyName)
	assert.True(t, opts.MultipleLocations.Bool())
	assert.Equal(t, "LocalBusiness", opts.DefaultBusinessType)
}

func TestLoaderWithoutConfigFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	opts, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost", opts.Site.URL)
}

func TestEnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	loader := NewLoader(nil)
	require.NoError(t, loader.EnsureUserConfig())

	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	_, err := os.Stat(path)
	require.NoError(t, err)

	// A second call leaves the existing file alone.
	require.NoError(t, os.WriteFile(path, []byte("primary_location: hq\n"), 0644))
	require.NoError(t, loader.EnsureUserConfig())

	opts, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hq", opts.PrimaryLocation)
}
