// Package articleid derives the stable identifier of an article from its URL.
package articleid

import (
	"encoding/base64"
	"errors"
)

// ErrEmptyURL is returned when there is no URL to encode.
var ErrEmptyURL = errors.New("article url is empty")

// Encode returns the standard base64 encoding of the URL bytes. The mapping is
// deterministic and reversible, so distinct URLs never share an id.
func Encode(url string) (string, error) {
	if url == "" {
		return "", ErrEmptyURL
	}
	return base64.StdEncoding.EncodeToString([]byte(url)), nil
}

// Decode reverses Encode.
func Decode(id string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(id)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
