// Package render writes a [models.BuildConfiguration] in the formats the
// contract toolchain can load.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/deploy-config/models"
)

// Format selects the output encoding.
type Format string

const (
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"

	// FormatYAML is a YAML document with the same keys as FormatJSON.
	FormatYAML Format = "yaml"

	// FormatJS is a CommonJS module exporting the JSON document, usable as a
	// toolchain config file.
	FormatJS Format = "js"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatJS}

const jsonIndent = "  "

// ParseFormat resolves s to a [Format], ignoring case and surrounding spaces.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatYAML, FormatJS:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg models.BuildConfiguration, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, cfg)
	case FormatYAML:
		return encodeYAML(w, cfg)
	case FormatJS:
		return encodeJS(w, cfg)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func encodeJSON(w io.Writer, cfg models.BuildConfiguration) error {
	if err := newJSONEncoder(w).Encode(cfg.Document()); err != nil {
		return fmt.Errorf("error encoding json configuration: %w", err)
	}

	return nil
}

// newJSONEncoder keeps URLs readable: '&', '<' and '>' are written as is.
func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	return enc
}

func encodeYAML(w io.Writer, cfg models.BuildConfiguration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding yaml configuration: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("error flushing yaml configuration: %w", err)
	}

	return nil
}

func encodeJS(w io.Writer, cfg models.BuildConfiguration) error {
	var body bytes.Buffer
	if err := newJSONEncoder(&body).Encode(cfg.Document()); err != nil {
		return fmt.Errorf("error encoding js configuration: %w", err)
	}

	if _, err := fmt.Fprintf(w, "module.exports = %s;\n", bytes.TrimRight(body.Bytes(), "\n")); err != nil {
		return fmt.Errorf("error writing js configuration: %w", err)
	}

	return nil
}
