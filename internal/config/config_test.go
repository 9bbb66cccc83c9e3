package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bva/internal/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
include_loops: true
on_malformed: skip
parallel: 8
types:
  go:
    time.Duration: int
  java:
    Long: integer
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IncludeLoops)
	assert.Equal(t, "skip", cfg.OnMalformed)
	assert.Equal(t, 8, cfg.Parallel)
	assert.Equal(t, ".bva-reports", cfg.Reports)
	assert.Equal(t, "int", cfg.Types[m.LanguageGo]["time.Duration"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "unknown field", content: "colour: blue\n"},
		{name: "not yaml", content: "on_malformed: [\n"},
		{name: "bad policy", content: "on_malformed: ignore\n", invalid: true},
		{name: "negative parallel", content: "parallel: -2\n", invalid: true},
		{name: "unknown primitive", content: "types:\n  go:\n    Money: decimal\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)

			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.OnMalformed = "skip"
	cfg.Types = map[m.Language]map[string]string{m.LanguageJava: {"Short": "int"}}

	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAllTypeAliases(t *testing.T) {
	cfg := Default()
	cfg.Types = map[m.Language]map[string]string{
		m.LanguageGo:   {"time.Duration": "int", "Celsius": "double"},
		m.LanguageJava: {"Letter": "character"},
	}

	aliases, err := cfg.AllTypeAliases()
	require.NoError(t, err)

	assert.Equal(t, map[m.Language]map[string]m.PrimitiveType{
		m.LanguageGo:   {"time.Duration": m.Integer, "Celsius": m.FloatingPoint},
		m.LanguageJava: {"Letter": m.Character},
	}, aliases)

	empty, err := Default().AllTypeAliases()
	require.NoError(t, err)
	assert.Empty(t, empty)
}
