// Package scripting exposes recognizer results to JavaScript.
//
// Results appear in the global "results" array as plain objects whose field
// names match the engine's names, e.g. results[0].dateOfBirth.year.
package scripting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dop251/goja"

	"github.com/menta2k/document-recognizer/pkg/recognizer"
)

// Engine evaluates scripts against recognizer results. An Engine is not safe
// for concurrent use.
type Engine struct {
	vm *goja.Runtime
}

// NewEngine creates an engine with an empty results array
func NewEngine() *Engine {
	vm := goja.New()
	vm.Set("results", []any{})
	return &Engine{vm: vm}
}

// RegisterResults replaces the global results array
func (e *Engine) RegisterResults(results []recognizer.Result) error {
	values := make([]any, 0, len(results))

	for i, result := range results {
		value, err := toPlain(result)
		if err != nil {
			return fmt.Errorf("failed to expose result %d: %w", i, err)
		}
		values = append(values, value)
	}

	return e.vm.Set("results", values)
}

// Execute runs a script and returns its exported completion value
func (e *Engine) Execute(ctx context.Context, script string) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)

	// the watcher may interrupt after RunString returns; wait for it so the
	// next Execute does not see a stale interrupt
	close(done)
	<-stopped
	e.vm.ClearInterrupt()

	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}

	return val.Export(), nil
}

// toPlain turns a result into maps and slices using its JSON field names
func toPlain(result recognizer.Result) (any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}

	return value, nil
}
