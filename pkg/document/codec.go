package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/logging"
)

// Format is an on-disk encoding of a document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported document extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Encode serializes d.
func Encode(d *Document, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(d); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentSave, "failed to encode TOML")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentSave, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentSave, "failed to encode YAML")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported document format %q", format)
	}
}

// Decode parses data written by Encode.
func Decode(data []byte, format Format) (*Document, error) {
	var d Document
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentLoad, "failed to parse TOML")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentLoad, "failed to parse YAML")
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported document format %q", format)
	}
	return &d, nil
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	logger := logging.GetLogger("document")

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "document not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrDocumentLoad, "failed to read %s", path)
	}

	d, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Str("format", string(format)).Msg("Document loaded")
	return d, nil
}

// Save writes d to path, creating parent directories as needed.
func Save(path string, d *Document) error {
	logger := logging.GetLogger("document")

	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(d, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentSave, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentSave, "failed to write %s", path)
	}
	logger.Debug().Str("path", path).Str("format", string(format)).Msg("Document saved")
	return nil
}
