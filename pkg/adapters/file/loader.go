// Package file loads form definitions from YAML or JSON files on disk.
//
// Files are decoded loosely: scalar shapes the authoring side is sloppy
// about (numeric options, boolean condition values) are coerced to the
// canonical string forms the engine compares, rather than rejected.
package file

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.FormLoader over a single definition file.
type Loader struct {
	path    string
	version string
}

// NewLoader creates a loader for the given .yaml, .yml or .json file.
// Nothing is read until Load is called.
func NewLoader(path string) *Loader {
	return &Loader{path: path, version: filepath.Base(path)}
}

// formDoc is the loose top-level shape of a definition file.
type formDoc struct {
	Title     string           `yaml:"title" json:"title"`
	Questions []map[string]any `yaml:"questions" json:"questions"`
}

// Load reads and decodes the definition file.
func (l *Loader) Load() ([]domain.Question, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}

	var doc formDoc
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
		}
	default:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
		}
	}

	questions := make([]domain.Question, 0, len(doc.Questions))
	for i, entry := range doc.Questions {
		var q domain.Question
		if err := decodeQuestion(entry, &q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: missing id", i)
		}
		questions = append(questions, q)
	}

	sum := sha256.Sum256(raw)
	l.version = hex.EncodeToString(sum[:8])
	return questions, nil
}

// Version identifies the last loaded revision (a content hash), or the
// file name before the first Load.
func (l *Loader) Version() string { return l.version }

// decodeQuestion maps a loose document entry onto the domain struct.
// mapstructure does the heavy lifting; the hooks fold the tri-state
// next reference and the scalar-or-list condition value in, and weak
// typing coerces stray numbers and booleans to strings.
func decodeQuestion(entry map[string]any, out *domain.Question) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			nextRefHook,
			conditionValueHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(entry)
}

var (
	nextRefType = reflect.TypeOf(domain.NextRef{})
	valueType   = reflect.TypeOf(domain.Value{})
)

func nextRefHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != nextRefType {
		return data, nil
	}
	switch v := data.(type) {
	case nil:
		return domain.NextRef{}, nil
	case string:
		return domain.ParseNext(v), nil
	default:
		return nil, fmt.Errorf("next ref must be a string, got %T", data)
	}
}

func conditionValueHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != valueType {
		return data, nil
	}
	return domain.ValueFromAny(data), nil
}
