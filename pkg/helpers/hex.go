// Package helpers provides small parsing and formatting utilities shared by
// the command-line tools.
package helpers

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyHex is returned when a hex argument has no digits.
var ErrEmptyHex = errors.New("empty hex string")

// HexToBytes converts a hex string (with or without 0x prefix, surrounding
// whitespace ignored) to bytes.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, ErrEmptyHex
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// BytesToHex converts bytes to a lowercase hex string without prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
