// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textio reads manuscript files into UTF-8 text and writes
// reformatted copies.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for an encoding name Decoder does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

// ErrInvalidText is returned when the input bytes are not valid in the
// requested encoding.
var ErrInvalidText = errors.New("invalid text")

// replacement is U+FFFD, which the decoders substitute for bad bytes.
var replacement = []byte("\uFFFD")

// Encodings lists the accepted encoding names.
var Encodings = []string{"utf-8", "euc-kr", "cp949"}

// Decoder returns a transformer decoding the named encoding into UTF-8. A
// leading byte order mark is honored and stripped in every case.
func Decoder(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "euc-kr", "euckr", "cp949", "uhc":
		return unicode.BOMOverride(korean.EUCKR.NewDecoder()), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEncoding, name, strings.Join(Encodings, ", "))
}

// Decode reads r through the named decoder and returns the text unchanged
// apart from the encoding conversion. Bytes the decoder cannot map fail with
// ErrInvalidText instead of being replaced.
func Decode(r io.Reader, encoding string) (string, error) {
	dec, err := Decoder(encoding)
	if err != nil {
		return "", err
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %s text: %w", encodingLabel(encoding), err)
	}
	data, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s text: %w", encodingLabel(encoding), err)
	}
	// Replacements beyond those already in the input mark bad bytes.
	if bytes.Count(data, replacement) > bytes.Count(raw, replacement) {
		return "", fmt.Errorf("%w: not valid %s", ErrInvalidText, encodingLabel(encoding))
	}
	return string(data), nil
}

// ReadFile opens path, decodes it fully, and closes it.
func ReadFile(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	text, err := Decode(f, encoding)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return text, nil
}

// WriteFile creates path and writes content as UTF-8. It refuses to
// overwrite an existing file.
func WriteFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func encodingLabel(name string) string {
	if name == "" {
		return "utf-8"
	}
	return name
}
