// Package fixtures holds the bundled reference data (parts, sellers,
// categories) and decodes external fixture files in JSON or YAML.
package fixtures

import (
	"bytes"
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.json
var bundled embed.FS

const (
	PartsFile      = "parts.json"
	SellersFile    = "sellers.json"
	CategoriesFile = "categories.json"
)

// Bundled decodes one of the embedded data files into v.
func Bundled(name string, v interface{}) error {
	raw, err := bundled.ReadFile("data/" + name)
	if err != nil {
		return errors.Wrapf(err, "read bundled fixture %s", name)
	}
	return Decode(name, raw, v)
}

// LoadFile decodes a fixture file from disk into v. The format is chosen
// by extension: .yaml and .yml are YAML, anything else is JSON.
func LoadFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read fixture %s", path)
	}
	return Decode(path, raw, v)
}

// Decode unmarshals raw using the format implied by name.
func Decode(name string, raw []byte, v interface{}) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(bytes.NewReader(raw)).Decode(v); err != nil {
			return errors.Wrapf(err, "decode yaml fixture %s", name)
		}
	default:
		if err := json.Unmarshal(raw, v); err != nil {
			return errors.Wrapf(err, "decode json fixture %s", name)
		}
	}
	return nil
}
