package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DataFileMode is the permission for JSON data files holding user state.
const DataFileMode = 0o600

// LoadJSON decodes the file at path into target. A missing file surfaces
// as an error wrapping os.ErrNotExist.
func LoadJSON(path string, target interface{}) error {
	return loadJSON(path, target, false)
}

// LoadJSONStrict is LoadJSON but rejects fields target does not declare,
// so a misspelled key in a hand-edited config file is an error.
func LoadJSONStrict(path string, target interface{}) error {
	return loadJSON(path, target, true)
}

func loadJSON(path string, target interface{}, strict bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// SaveJSON writes data as indented JSON. The file is replaced through a
// synced sibling temp file, so readers see either the old or the new
// document and never a torn write.
func SaveJSON(path string, data interface{}) error {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, DataFileMode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
