// Package docrecognizer binds a native document-scanning engine to Go.
//
// The engine (OCR, MRZ parsing, face and document detection) is an external
// collaborator. This package describes what the engine should extract through
// per-document recognizers and turns the engine's native output into typed,
// immutable results.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"os"
//
//		docrecognizer "github.com/menta2k/document-recognizer"
//		"github.com/menta2k/document-recognizer/pkg/recognizers"
//	)
//
//	func main() {
//		passport := recognizers.NewAustriaPassportRecognizer()
//		passport.ReturnFaceImage = true
//
//		dr, err := docrecognizer.New(passport)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// settings handed to the engine
//		settings, _ := dr.Settings()
//		fmt.Println(string(settings))
//
//		// native results returned by the engine, one per recognizer
//		data, _ := os.ReadFile("native.json")
//		results, err := dr.DecodeResults(data)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		result := results[0].(*recognizers.AustriaPassportResult)
//		fmt.Println(result.State(), result.GivenName, result.DateOfBirth)
//	}
//
// The package consists of these components:
//
// 1. Types (pkg/types): dates, MRZ results, extension factors and images
// 2. Recognizer (pkg/recognizer): result states, the recognizer contract and collections
// 3. Recognizers (pkg/recognizers): the per-document recognizers and results
// 4. Imagery (pkg/imagery): decoding and exporting result images
// 5. Scripting (pkg/scripting): results as JavaScript objects
package docrecognizer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/menta2k/document-recognizer/pkg/imagery"
	"github.com/menta2k/document-recognizer/pkg/recognizer"
	"github.com/menta2k/document-recognizer/pkg/scripting"
)

// Version of the document recognizer library
const Version = "1.0.0"

// DocRecognizer provides a high-level interface over a recognizer collection
type DocRecognizer struct {
	collection *recognizer.Collection
	exporter   *imagery.Exporter
}

// New creates a DocRecognizer for the given recognizers with default settings
func New(recognizers ...recognizer.Recognizer) (*DocRecognizer, error) {
	collection, err := recognizer.NewCollection(recognizers...)
	if err != nil {
		return nil, err
	}

	return &DocRecognizer{
		collection: collection,
		exporter:   imagery.NewExporter(),
	}, nil
}

// NewWithConfig creates a DocRecognizer from a prepared collection and export configuration
func NewWithConfig(collection *recognizer.Collection, exportConfig imagery.ExportConfig) *DocRecognizer {
	return &DocRecognizer{
		collection: collection,
		exporter:   imagery.NewExporterWithConfig(exportConfig),
	}
}

// Collection returns the underlying recognizer collection
func (dr *DocRecognizer) Collection() *recognizer.Collection {
	return dr.collection
}

// Settings returns the JSON payload describing the recognizers to the engine
func (dr *DocRecognizer) Settings() ([]byte, error) {
	return json.Marshal(dr.collection)
}

// DecodeResults builds typed results from the engine's JSON array of native results
func (dr *DocRecognizer) DecodeResults(data []byte) ([]recognizer.Result, error) {
	return dr.collection.DecodeResults(data)
}

// BuildResults builds typed results from already split native results
func (dr *DocRecognizer) BuildResults(native []json.RawMessage) ([]recognizer.Result, error) {
	return dr.collection.BuildResults(native)
}

// ExportImages writes the images of every result to dir. Files are prefixed
// with the type of the recognizer that produced the result.
func (dr *DocRecognizer) ExportImages(results []recognizer.Result, dir string) ([]string, error) {
	if len(results) != len(dr.collection.Recognizers) {
		return nil, fmt.Errorf("%w: got %d, want %d", recognizer.ErrResultCountMismatch, len(results), len(dr.collection.Recognizers))
	}

	var paths []string

	for i, result := range results {
		provider, ok := result.(imagery.ImageProvider)
		if !ok {
			continue
		}

		written, err := dr.exporter.Export(provider, dir, dr.collection.Recognizers[i].Type())
		paths = append(paths, written...)
		if err != nil {
			return paths, fmt.Errorf("failed to export %s images: %w", dr.collection.Recognizers[i].Type(), err)
		}
	}

	return paths, nil
}

// Evaluate runs a JavaScript snippet with the results exposed as "results"
func (dr *DocRecognizer) Evaluate(ctx context.Context, results []recognizer.Result, script string) (any, error) {
	engine := scripting.NewEngine()

	if err := engine.RegisterResults(results); err != nil {
		return nil, err
	}

	return engine.Execute(ctx, script)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
