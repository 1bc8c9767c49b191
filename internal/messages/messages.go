// Package messages holds the user-facing text of petdb as a catalog of
// named fmt templates. Defaults are embedded; a YAML file may override any
// subset of keys.
package messages

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrVerbMismatch is returned by Load when an override takes a different
// number of arguments than the message it replaces.
var ErrVerbMismatch = errors.New("message override has the wrong number of format verbs")

//go:embed messages.yaml
var defaultsYAML []byte

// Catalog maps message keys to templates.
type Catalog struct {
	templates map[string]string
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := parse(defaultsYAML)
	if err != nil {
		// The embedded file is part of the build.
		panic(fmt.Sprintf("messages: embedded catalog: %v", err))
	}
	return c
}

// Load returns the embedded catalog with the keys in overridePath layered on
// top. An empty overridePath yields the defaults.
func Load(overridePath string) (*Catalog, error) {
	c := Default()
	if overridePath == "" {
		return c, nil
	}
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("read messages file: %w", err)
	}
	over, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse messages file %s: %w", overridePath, err)
	}
	for k, v := range over.templates {
		// Messages without verbs are printed verbatim, so only formatted
		// ones need to agree.
		if def, ok := c.templates[k]; ok && verbs(def) > 0 && verbs(def) != verbs(v) {
			return nil, fmt.Errorf("%w: %s in %s has %d, want %d", ErrVerbMismatch, k, overridePath, verbs(v), verbs(def))
		}
		c.templates[k] = v
	}
	return c, nil
}

// verbs counts the fmt directives in tmpl. "%%" is not a directive.
func verbs(tmpl string) int {
	n := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}

func parse(data []byte) (*Catalog, error) {
	templates := map[string]string{}
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, err
	}
	return &Catalog{templates: templates}, nil
}

// Get formats the template for key with args. An unknown key yields the key
// itself so a missing entry is visible rather than blank.
func (c *Catalog) Get(key string, args ...any) string {
	tmpl, ok := c.templates[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Has reports whether key is defined.
func (c *Catalog) Has(key string) bool {
	_, ok := c.templates[key]
	return ok
}
