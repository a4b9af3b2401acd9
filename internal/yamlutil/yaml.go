// Package yamlutil wraps YAML decoding so callers share one set of limits
// and error formatting. The underlying library is goccy/go-yaml.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// ReadFile reads and strictly decodes the YAML file at path.
// The size limit is checked before the file is read.
func ReadFile(path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > int64(MaxInputSize) {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInputTooLarge, path, info.Size(), MaxInputSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided config path
	if err != nil {
		return err
	}
	return UnmarshalStrict(data, v)
}

// FormatError renders a decoding error with the offending source lines,
// without colors. Errors not produced by the YAML decoder are returned as is.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, true)
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
