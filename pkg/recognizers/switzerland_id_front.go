package recognizers

import (
	"encoding/json"

	"github.com/menta2k/document-recognizer/pkg/recognizer"
	"github.com/menta2k/document-recognizer/pkg/types"
)

// SwitzerlandIDFrontRecognizerType is the engine name of the Swiss ID front side recognizer
const SwitzerlandIDFrontRecognizerType = "SwitzerlandIdFrontRecognizer"

// SwitzerlandIDFrontRecognizer scans the front side of Swiss identity cards
type SwitzerlandIDFrontRecognizer struct {
	DetectGlare bool `json:"detectGlare"`

	ExtractGivenName bool `json:"extractGivenName"`
	ExtractSurname   bool `json:"extractSurname"`

	FaceImageDpi                      int                         `json:"faceImageDpi"`
	FullDocumentImageDpi              int                         `json:"fullDocumentImageDpi"`
	FullDocumentImageExtensionFactors types.ImageExtensionFactors `json:"fullDocumentImageExtensionFactors"`
	SignatureImageDpi                 int                         `json:"signatureImageDpi"`

	ReturnFaceImage         bool `json:"returnFaceImage"`
	ReturnFullDocumentImage bool `json:"returnFullDocumentImage"`
	ReturnSignatureImage    bool `json:"returnSignatureImage"`
}

// NewSwitzerlandIDFrontRecognizer creates a recognizer with the engine defaults
func NewSwitzerlandIDFrontRecognizer() *SwitzerlandIDFrontRecognizer {
	return &SwitzerlandIDFrontRecognizer{
		DetectGlare: true,

		ExtractGivenName: true,
		ExtractSurname:   true,

		FaceImageDpi:         DefaultImageDpi,
		FullDocumentImageDpi: DefaultImageDpi,
		SignatureImageDpi:    DefaultImageDpi,
	}
}

// Type returns the engine name of the recognizer
func (r *SwitzerlandIDFrontRecognizer) Type() string {
	return SwitzerlandIDFrontRecognizerType
}

// BuildResult decodes a native Swiss ID front side result
func (r *SwitzerlandIDFrontRecognizer) BuildResult(native json.RawMessage) (recognizer.Result, error) {
	n, err := recognizer.DecodeNative[NativeSwitzerlandIDFrontResult](native)
	if err != nil {
		return nil, err
	}
	return NewSwitzerlandIDFrontResult(n)
}

// NativeSwitzerlandIDFrontResult mirrors the engine output for the Swiss ID front side
type NativeSwitzerlandIDFrontResult struct {
	ResultState recognizer.ResultState `json:"resultState"`

	DateOfBirth       *types.NativeDate `json:"dateOfBirth"`
	FaceImage         types.Image       `json:"faceImage"`
	FullDocumentImage types.Image       `json:"fullDocumentImage"`
	GivenName         string            `json:"givenName"`
	SignatureImage    types.Image       `json:"signatureImage"`
	Surname           string            `json:"surname"`
}

// SwitzerlandIDFrontResult holds the data read from the front side of a Swiss ID
type SwitzerlandIDFrontResult struct {
	recognizer.RecognizerResult

	DateOfBirth       *types.Date `json:"dateOfBirth"`
	FaceImage         types.Image `json:"faceImage"`
	FullDocumentImage types.Image `json:"fullDocumentImage"`
	GivenName         string      `json:"givenName"`
	SignatureImage    types.Image `json:"signatureImage"`
	Surname           string      `json:"surname"`
}

// NewSwitzerlandIDFrontResult builds a result from the native output
func NewSwitzerlandIDFrontResult(native *NativeSwitzerlandIDFrontResult) (*SwitzerlandIDFrontResult, error) {
	if native == nil {
		return nil, recognizer.ErrNilNativeResult
	}

	base, err := recognizer.NewRecognizerResult(native.ResultState)
	if err != nil {
		return nil, err
	}

	return &SwitzerlandIDFrontResult{
		RecognizerResult: base,

		DateOfBirth:       types.NewDate(native.DateOfBirth),
		FaceImage:         native.FaceImage,
		FullDocumentImage: native.FullDocumentImage,
		GivenName:         native.GivenName,
		SignatureImage:    native.SignatureImage,
		Surname:           native.Surname,
	}, nil
}

// Images returns the images carried by the result, keyed by field name
func (r *SwitzerlandIDFrontResult) Images() map[string]types.Image {
	return map[string]types.Image{
		"faceImage":         r.FaceImage,
		"fullDocumentImage": r.FullDocumentImage,
		"signatureImage":    r.SignatureImage,
	}
}
