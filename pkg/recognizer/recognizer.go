package recognizer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TypeKey is the settings key naming the recognizer type for the engine
const TypeKey = "recognizerType"

// Recognizer is a per-document configuration consumed by the engine together
// with the capability to turn the engine's native output into a typed result.
type Recognizer interface {
	// Type returns the engine's name for the recognizer
	Type() string

	// BuildResult converts a native result into the recognizer's result type.
	// It has no side effects and returns a fresh result on every call.
	BuildResult(native json.RawMessage) (Result, error)
}

// DecodeNative decodes a native result payload into its document-specific mirror
func DecodeNative[T any](native json.RawMessage) (*T, error) {
	trimmed := bytes.TrimSpace(native)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNilNativeResult
	}

	var result T
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, fmt.Errorf("failed to decode native result: %w", err)
	}

	return &result, nil
}

// Settings returns the flat option set handed to the engine for r
func Settings(r Recognizer) (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s settings: %w", r.Type(), err)
	}

	settings := map[string]any{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to flatten %s settings: %w", r.Type(), err)
	}

	settings[TypeKey] = r.Type()
	return settings, nil
}

// MarshalSettings encodes the engine settings of r as JSON
func MarshalSettings(r Recognizer) ([]byte, error) {
	settings, err := Settings(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(settings)
}

// Configure overlays option overrides onto r, which must be a pointer.
// Option names are the engine's names; unknown names are rejected.
// r is left in an unspecified state when an error is returned.
func Configure(r Recognizer, overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}

	data, err := json.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("failed to marshal %s overrides: %w", r.Type(), err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(r); err != nil {
		return fmt.Errorf("invalid %s overrides: %w", r.Type(), err)
	}

	return nil
}
