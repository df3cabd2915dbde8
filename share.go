// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package eviltwin

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Share is one twin stream in a form suitable for JSON files and transport.
type Share struct {
	// Twin is 1 or 2. It only labels the file; Combine accepts either order.
	Twin int `json:"twin"`

	// Count is the number of message bytes in the stream
	Count int `json:"count"`

	// Value is the share stream, base64 encoded
	Value string `json:"value"`

	// Metadata contains optional information about the share
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewShare wraps a share stream produced by Split
func NewShare(twin int, stream []byte) *Share {
	return &Share{
		Twin:  twin,
		Count: len(stream) / ShareSize,
		Value: base64.StdEncoding.EncodeToString(stream),
	}
}

// Bytes returns the raw share stream
func (s *Share) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", StatusErrFormat, err)
	}
	if len(b) != s.Count*ShareSize {
		return nil, StatusErrLength
	}
	return b, nil
}

// String returns a string representation of the share (for debugging)
func (s *Share) String() string {
	return fmt.Sprintf("Share{Twin: %d, Count: %d, Value: %s...}",
		s.Twin, s.Count, s.Value[:min(len(s.Value), 16)])
}

// Validate checks if the share has valid parameters
func (s *Share) Validate() error {
	if s.Twin != 1 && s.Twin != 2 {
		return fmt.Errorf("invalid twin: %d (must be 1 or 2)", s.Twin)
	}
	if s.Count < 0 {
		return fmt.Errorf("invalid count: %d", s.Count)
	}
	if s.Count > 0 && s.Value == "" {
		return errors.New("share value is empty")
	}
	return nil
}
