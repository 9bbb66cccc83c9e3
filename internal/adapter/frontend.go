package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/bva/internal/model"
)

// ErrUnsupportedLanguage is returned for files no front end understands.
var ErrUnsupportedLanguage = errors.New("unsupported source language")

// Frontend turns one source file into the neutral syntax model.
type Frontend interface {
	Language() m.Language
	Extensions() []string
	Parse(path m.Path, src []byte) (m.Unit, error)
}

// FrontendRegistry selects a Frontend by file extension.
type FrontendRegistry interface {
	For(path m.Path) (Frontend, error)
	Extensions() []string
}

type frontendRegistry struct {
	byExt map[string]Frontend
}

// NewFrontendRegistry registers the given front ends under their extensions.
// Later front ends win on extension clashes.
func NewFrontendRegistry(frontends ...Frontend) FrontendRegistry {
	r := &frontendRegistry{byExt: make(map[string]Frontend)}
	for _, fe := range frontends {
		for _, ext := range fe.Extensions() {
			r.byExt[strings.ToLower(ext)] = fe
		}
	}

	return r
}

// NewDefaultFrontendRegistry knows Go and Java.
func NewDefaultFrontendRegistry() FrontendRegistry {
	return NewFrontendRegistry(NewGoFrontend(), NewJavaFrontend())
}

func (r *frontendRegistry) For(path m.Path) (Frontend, error) {
	ext := strings.ToLower(filepath.Ext(string(path)))

	fe, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
	}

	return fe, nil
}

func (r *frontendRegistry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}
