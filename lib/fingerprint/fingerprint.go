// Package fingerprint derives short stable digests from Go values via
// canonical msgpack encoding. The component core uses it to collapse
// structurally equal custom components and stateful nodes into shared
// compiled artifacts.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Hash returns a hex digest of v's msgpack encoding.
//
// Determinism relies on the input shape: structs encode fields in
// declaration order and slices in element order, so callers must hash
// structs and slices, never bare Go maps.
func Hash(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(packed)
	return hex.EncodeToString(sum[:8]), nil
}

// MustHash is Hash but panics on encoding failure. Identity keys are
// plain structs of strings and bools, so failure indicates a programming
// error.
func MustHash(v any) string {
	h, err := Hash(v)
	if err != nil {
		panic(err)
	}
	return h
}
