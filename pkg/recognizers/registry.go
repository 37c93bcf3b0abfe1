// Package recognizers contains the per-document recognizers and their results.
package recognizers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/menta2k/document-recognizer/pkg/recognizer"
)

// DefaultImageDpi is the resolution of returned images unless configured otherwise
const DefaultImageDpi = 250

// ErrUnknownRecognizer is returned for recognizer types not in the registry
var ErrUnknownRecognizer = errors.New("unknown recognizer")

var registry = map[string]func() recognizer.Recognizer{
	AustriaPassportRecognizerType: func() recognizer.Recognizer {
		return NewAustriaPassportRecognizer()
	},
	SwitzerlandIDFrontRecognizerType: func() recognizer.Recognizer {
		return NewSwitzerlandIDFrontRecognizer()
	},
}

// New creates a recognizer with default settings from its engine name
func New(name string) (recognizer.Recognizer, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecognizer, name)
	}
	return factory(), nil
}

// Names returns the registered recognizer names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
