// Package convert renders a parsed RAS store in another representation.
// JSON is the only supported target; the encoding itself is left entirely
// to encoding/json.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/raspyfmt/raspy/parser/ras"
)

// ErrUnsupportedFormat reports a conversion target other than "json".
var ErrUnsupportedFormat = errors.New("unsupported format")

// JSON renders the store as an indented JSON object keyed by list name,
// each list an array of arrays of scalars.
func JSON(store ras.Store) ([]byte, error) {
	if store == nil {
		return nil, fmt.Errorf("nil store")
	}
	return json.MarshalIndent(store, "", "    ")
}

// File reads the RAS file at inputPath, converts it to the requested
// format and writes the result to outputPath. The format is matched
// case-insensitively.
func File(inputPath, format, outputPath string) error {
	store, err := ras.Load(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	if strings.ToLower(format) != "json" {
		return fmt.Errorf("convert to %q: %w", format, ErrUnsupportedFormat)
	}

	out, err := JSON(store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
