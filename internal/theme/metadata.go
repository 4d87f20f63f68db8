package theme

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// MetadataFile is the per-theme metadata file name.
const MetadataFile = "theme.toml"

// Author identifies who maintains a theme.
type Author struct {
	Name     string `toml:"name" validate:"required"`
	Homepage string `toml:"homepage"`
}

// Metadata is the content of a theme's theme.toml. Keys not listed here,
// such as [extra] or [original], are ignored.
type Metadata struct {
	Name        string   `toml:"name" validate:"required"`
	Description string   `toml:"description" validate:"required"`
	Homepage    string   `toml:"homepage"`
	MinVersion  string   `toml:"min_version" validate:"required"`
	License     string   `toml:"license" validate:"required"`
	Tags        []string `toml:"tags"`
	Demo        string   `toml:"demo"`
	Author      Author   `toml:"author"`

	// keys records which keys the file defines, so an explicitly empty
	// value still counts as present.
	keys toml.MetaData
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their theme.toml key rather than the Go field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// LoadMetadata decodes the theme.toml file at path.
func LoadMetadata(path string) (*Metadata, error) {
	var meta Metadata
	keys, err := toml.DecodeFile(path, &meta)
	if err != nil {
		return nil, err
	}
	meta.keys = keys
	return &meta, nil
}

// MissingFields returns the dotted theme.toml keys of every required field
// that is empty and not defined in the file, in declaration order.
func (m *Metadata) MissingFields() ([]string, error) {
	err := validate.Struct(m)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("failed to validate metadata: %w", err)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Namespace is "Metadata.author.name"; drop the type name.
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		if m.keys.IsDefined(strings.Split(key, ".")...) {
			continue
		}
		missing = append(missing, key)
	}
	if len(missing) == 0 {
		return nil, nil
	}
	return missing, nil
}
