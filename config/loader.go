package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/configloader/templating"
)

// Loader renders a configuration template and parses the
// result into a Store. A nil Engine uses the default
// double-brace tags.
type Loader struct {
	Store  *Store
	Engine *templating.Engine
}

// Init renders text with vars, parses the rendered YAML, and
// publishes it to the store, completing initialization.
//
// The already-initialized check happens before any rendering,
// so a failed render or parse never consumes the one-shot
// initialization: on any failure the store is left exactly as
// it was. A rendered document that is empty or
// whitespace-only loads as an empty configuration, not an
// error.
func (lo *Loader) Init(
	text string,
	vars map[string]interface{},
) error {
	const errCtx = "initializing config"

	if lo.Store.initialized() {
		return fmt.Errorf(
			"%s: %w", errCtx, ErrAlreadyInitialized,
		)
	}

	rendered, err := lo.engine().Render(text, vars)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	var items map[string]interface{}

	if err := yaml.Unmarshal(
		[]byte(rendered), &items,
	); err != nil {
		return fmt.Errorf(
			"%s: %w: %w",
			errCtx, ErrDocumentSyntax, err,
		)
	}

	// Empty and whitespace-only documents leave items nil;
	// they load as a valid empty configuration.
	if items == nil {
		items = map[string]interface{}{}
	}

	if err := lo.Store.SetItems(items); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// InitFromFile reads the template at path and initializes the
// store from its contents. It fails with ErrSourceNotFound if
// path does not exist or is not a regular file.
func (lo *Loader) InitFromFile(
	path string,
	vars map[string]interface{},
) error {
	const errCtx = "initializing config from file"

	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(
			"%s: %w: %s",
			errCtx, ErrSourceNotFound, path,
		)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if !fi.Mode().IsRegular() {
		return fmt.Errorf(
			"%s: %w: %s",
			errCtx, ErrSourceNotFound, path,
		)
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return lo.Init(string(content), vars)
}

// engine returns the configured templating engine, falling
// back to the default tags.
func (lo *Loader) engine() *templating.Engine {
	if lo.Engine != nil {
		return lo.Engine
	}

	return &templating.Engine{}
}
