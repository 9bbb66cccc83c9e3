package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bva/internal/model"
)

func TestFrontendRegistry_For(t *testing.T) {
	registry := NewDefaultFrontendRegistry()

	goFE, err := registry.For("pkg/calc.go")
	require.NoError(t, err)
	assert.Equal(t, m.LanguageGo, goFE.Language())

	javaFE, err := registry.For("src/Example.JAVA")
	require.NoError(t, err)
	assert.Equal(t, m.LanguageJava, javaFE.Language())

	_, err = registry.For("script.py")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)

	assert.Equal(t, []string{".go", ".java"}, registry.Extensions())
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}

func findMethod(t *testing.T, unit m.Unit, qualified string, line int) m.Method {
	t.Helper()

	for _, method := range unit.Methods {
		if method.QualifiedName() == qualified && (line == 0 || method.Line == line) {
			return method
		}
	}

	require.Failf(t, "method not found", "%s at line %d", qualified, line)

	return m.Method{}
}
