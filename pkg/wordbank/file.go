package wordbank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// bankFile is the YAML document shape: either a single bank or a list under
// the "banks" key.
type bankFile struct {
	Banks []Bank `yaml:"banks"`
}

// LoadFile reads word bank definitions from a YAML file. The file may hold a
// single bank document or a "banks:" list.
func LoadFile(path string) ([]Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordbank: read %s: %w", path, err)
	}

	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrInvalidBankFile, err)
	}

	banks := file.Banks
	if len(banks) == 0 {
		var single Bank
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, errors.Join(ErrInvalidBankFile, err)
		}
		if single.ID != "" {
			banks = []Bank{single}
		}
	}

	for i := range banks {
		if err := checkBank(banks[i], path); err != nil {
			return nil, err
		}
	}
	return banks, nil
}

// LoadDir loads every .yml/.yaml file in dir (non-recursive) and returns the
// combined banks.
func LoadDir(dir string) ([]Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("wordbank: read dir %s: %w", dir, err)
	}

	var banks []Bank
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		loaded, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		banks = append(banks, loaded...)
	}
	return banks, nil
}

func checkBank(b Bank, path string) error {
	if b.ID == "" {
		return fmt.Errorf("%w: %s: bank is missing an id", ErrInvalidBankFile, path)
	}
	if b.Part != Adjective && b.Part != Noun {
		return fmt.Errorf("%w: %s: bank %q has unknown part of speech %q", ErrInvalidBankFile, path, b.ID, b.Part)
	}
	return nil
}
