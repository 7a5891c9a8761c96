package parser

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDataURL is returned for upload contents that are not a base64
// data URL.
var ErrInvalidDataURL = errors.New("invalid data URL")

// DecodeDataURL decodes browser upload contents of the form
// "data:<mime>;base64,<payload>".
func DecodeDataURL(contents string) ([]byte, error) {
	header, payload, ok := strings.Cut(contents, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return data, nil
}
