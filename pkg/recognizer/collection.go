package recognizer

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when a collection is created without recognizers
	ErrEmptyCollection = errors.New("collection needs at least one recognizer")

	// ErrResultCountMismatch is returned when the engine returns a different number of results than recognizers
	ErrResultCountMismatch = errors.New("native result count does not match recognizers")
)

// DefaultMillisecondsBeforeTimeout is the engine's default recognition timeout
const DefaultMillisecondsBeforeTimeout = 10000

// Collection is the ordered set of recognizers handed to the engine for one scan
type Collection struct {
	Recognizers []Recognizer

	// AllowMultipleResults lets the engine return results from more than one recognizer
	AllowMultipleResults bool

	// MillisecondsBeforeTimeout is the time after which the engine gives up on a scan
	MillisecondsBeforeTimeout int
}

// NewCollection creates a collection with the engine defaults
func NewCollection(recognizers ...Recognizer) (*Collection, error) {
	if len(recognizers) == 0 {
		return nil, ErrEmptyCollection
	}

	for i, r := range recognizers {
		if r == nil {
			return nil, fmt.Errorf("recognizer %d is nil", i)
		}
	}

	return &Collection{
		Recognizers:               recognizers,
		AllowMultipleResults:      false,
		MillisecondsBeforeTimeout: DefaultMillisecondsBeforeTimeout,
	}, nil
}

type collectionPayload struct {
	RecognizerArray           []map[string]any `json:"recognizerArray"`
	AllowMultipleResults      bool             `json:"allowMultipleResults"`
	MillisecondsBeforeTimeout int              `json:"milisecondsBeforeTimeout"`
}

// MarshalJSON encodes the collection the way the engine expects it
func (c *Collection) MarshalJSON() ([]byte, error) {
	payload := collectionPayload{
		RecognizerArray:           make([]map[string]any, 0, len(c.Recognizers)),
		AllowMultipleResults:      c.AllowMultipleResults,
		MillisecondsBeforeTimeout: c.MillisecondsBeforeTimeout,
	}

	for _, r := range c.Recognizers {
		settings, err := Settings(r)
		if err != nil {
			return nil, err
		}
		payload.RecognizerArray = append(payload.RecognizerArray, settings)
	}

	return json.Marshal(payload)
}

// BuildResults converts native results into typed results. The native results
// are matched to the recognizers by position.
func (c *Collection) BuildResults(native []json.RawMessage) ([]Result, error) {
	if len(native) != len(c.Recognizers) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrResultCountMismatch, len(native), len(c.Recognizers))
	}

	results := make([]Result, 0, len(native))

	for i, r := range c.Recognizers {
		result, err := r.BuildResult(native[i])
		if err != nil {
			return nil, fmt.Errorf("failed to build %s result: %w", r.Type(), err)
		}
		results = append(results, result)
	}

	return results, nil
}

// DecodeResults decodes a JSON array of native results and builds the typed results
func (c *Collection) DecodeResults(data []byte) ([]Result, error) {
	var native []json.RawMessage
	if err := json.Unmarshal(data, &native); err != nil {
		return nil, fmt.Errorf("failed to decode native results: %w", err)
	}

	return c.BuildResults(native)
}
