package recognizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidResultState is returned when a native result carries a missing or unknown state
	ErrInvalidResultState = errors.New("invalid result state")

	// ErrNilNativeResult is returned when a result is built from an absent native result
	ErrNilNativeResult = errors.New("native result is nil")
)

// ResultState describes how far the engine got with a recognizer
type ResultState int

const (
	// ResultStateEmpty means nothing was recognized
	ResultStateEmpty ResultState = iota + 1
	// ResultStateUncertain means some data was recognized but not all of it could be verified
	ResultStateUncertain
	// ResultStateValid means all data was recognized and verified
	ResultStateValid
)

var resultStateNames = map[ResultState]string{
	ResultStateEmpty:     "empty",
	ResultStateUncertain: "uncertain",
	ResultStateValid:     "valid",
}

// engines that report a textual state use "ok" for a verified result
var resultStateAliases = map[string]ResultState{
	"ok": ResultStateValid,
}

// Valid reports whether s is one of the known states
func (s ResultState) Valid() bool {
	_, ok := resultStateNames[s]
	return ok
}

func (s ResultState) String() string {
	if name, ok := resultStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ResultState(%d)", int(s))
}

// UnmarshalJSON accepts the numeric engine value, its name or the "ok" alias
func (s *ResultState) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = ResultState(n)
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResultState, string(data))
	}

	if state, ok := resultStateAliases[strings.ToLower(name)]; ok {
		*s = state
		return nil
	}

	for state, stateName := range resultStateNames {
		if strings.EqualFold(name, stateName) {
			*s = state
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidResultState, name)
}

// Result is the common capability of every recognizer result
type Result interface {
	State() ResultState
}

// RecognizerResult carries the state shared by all recognizer results.
// Document results embed it.
type RecognizerResult struct {
	ResultState ResultState `json:"resultState"`
}

// NewRecognizerResult validates the state reported by the engine
func NewRecognizerResult(state ResultState) (RecognizerResult, error) {
	if !state.Valid() {
		return RecognizerResult{}, fmt.Errorf("%w: %d", ErrInvalidResultState, int(state))
	}
	return RecognizerResult{ResultState: state}, nil
}

// State returns the result state
func (r RecognizerResult) State() ResultState {
	return r.ResultState
}
