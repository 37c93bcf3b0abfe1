package recognizers

import (
	"encoding/json"

	"github.com/menta2k/document-recognizer/pkg/recognizer"
	"github.com/menta2k/document-recognizer/pkg/types"
)

// AustriaPassportRecognizerType is the engine name of the Austrian passport recognizer
const AustriaPassportRecognizerType = "AustriaPassportRecognizer"

// AustriaPassportRecognizer scans Austrian passports
type AustriaPassportRecognizer struct {
	DetectGlare bool `json:"detectGlare"`

	ExtractDateOfBirth      bool `json:"extractDateOfBirth"`
	ExtractDateOfExpiry     bool `json:"extractDateOfExpiry"`
	ExtractDateOfIssue      bool `json:"extractDateOfIssue"`
	ExtractGivenName        bool `json:"extractGivenName"`
	ExtractHeight           bool `json:"extractHeight"`
	ExtractIssuingAuthority bool `json:"extractIssuingAuthority"`
	ExtractNationality      bool `json:"extractNationality"`
	ExtractPassportNumber   bool `json:"extractPassportNumber"`
	ExtractPlaceOfBirth     bool `json:"extractPlaceOfBirth"`
	ExtractSex              bool `json:"extractSex"`
	ExtractSurname          bool `json:"extractSurname"`

	FaceImageDpi                      int                         `json:"faceImageDpi"`
	FullDocumentImageDpi              int                         `json:"fullDocumentImageDpi"`
	FullDocumentImageExtensionFactors types.ImageExtensionFactors `json:"fullDocumentImageExtensionFactors"`
	SignatureImageDpi                 int                         `json:"signatureImageDpi"`

	ReturnFaceImage         bool `json:"returnFaceImage"`
	ReturnFullDocumentImage bool `json:"returnFullDocumentImage"`
	ReturnSignatureImage    bool `json:"returnSignatureImage"`
}

// NewAustriaPassportRecognizer creates a recognizer with the engine defaults.
// Nationality is not extracted by default.
func NewAustriaPassportRecognizer() *AustriaPassportRecognizer {
	return &AustriaPassportRecognizer{
		DetectGlare: true,

		ExtractDateOfBirth:      true,
		ExtractDateOfExpiry:     true,
		ExtractDateOfIssue:      true,
		ExtractGivenName:        true,
		ExtractHeight:           true,
		ExtractIssuingAuthority: true,
		ExtractNationality:      false,
		ExtractPassportNumber:   true,
		ExtractPlaceOfBirth:     true,
		ExtractSex:              true,
		ExtractSurname:          true,

		FaceImageDpi:                      DefaultImageDpi,
		FullDocumentImageDpi:              DefaultImageDpi,
		FullDocumentImageExtensionFactors: types.ImageExtensionFactors{},
		SignatureImageDpi:                 DefaultImageDpi,

		ReturnFaceImage:         false,
		ReturnFullDocumentImage: false,
		ReturnSignatureImage:    false,
	}
}

// Type returns the engine name of the recognizer
func (r *AustriaPassportRecognizer) Type() string {
	return AustriaPassportRecognizerType
}

// BuildResult decodes a native Austrian passport result
func (r *AustriaPassportRecognizer) BuildResult(native json.RawMessage) (recognizer.Result, error) {
	n, err := recognizer.DecodeNative[NativeAustriaPassportResult](native)
	if err != nil {
		return nil, err
	}
	return NewAustriaPassportResult(n)
}

// NativeAustriaPassportResult mirrors the engine output for Austrian passports
type NativeAustriaPassportResult struct {
	ResultState recognizer.ResultState `json:"resultState"`

	DateOfBirth       *types.NativeDate      `json:"dateOfBirth"`
	DateOfExpiry      *types.NativeDate      `json:"dateOfExpiry"`
	DateOfIssue       *types.NativeDate      `json:"dateOfIssue"`
	FaceImage         types.Image            `json:"faceImage"`
	FullDocumentImage types.Image            `json:"fullDocumentImage"`
	GivenName         string                 `json:"givenName"`
	Height            string                 `json:"height"`
	IssuingAuthority  string                 `json:"issuingAuthority"`
	MrzResult         *types.NativeMrzResult `json:"mrzResult"`
	Nationality       string                 `json:"nationality"`
	PassportNumber    string                 `json:"passportNumber"`
	PlaceOfBirth      string                 `json:"placeOfBirth"`
	Sex               string                 `json:"sex"`
	SignatureImage    types.Image            `json:"signatureImage"`
	Surname           string                 `json:"surname"`
}

// AustriaPassportResult holds the data read from an Austrian passport
type AustriaPassportResult struct {
	recognizer.RecognizerResult

	DateOfBirth       *types.Date      `json:"dateOfBirth"`
	DateOfExpiry      *types.Date      `json:"dateOfExpiry"`
	DateOfIssue       *types.Date      `json:"dateOfIssue"`
	FaceImage         types.Image      `json:"faceImage"`
	FullDocumentImage types.Image      `json:"fullDocumentImage"`
	GivenName         string           `json:"givenName"`
	Height            string           `json:"height"` // centimeters
	IssuingAuthority  string           `json:"issuingAuthority"`
	MrzResult         *types.MrzResult `json:"mrzResult"`
	Nationality       string           `json:"nationality"`
	PassportNumber    string           `json:"passportNumber"`
	PlaceOfBirth      string           `json:"placeOfBirth"`
	Sex               string           `json:"sex"`
	SignatureImage    types.Image      `json:"signatureImage"`
	Surname           string           `json:"surname"`
}

// NewAustriaPassportResult builds a result from the native output
func NewAustriaPassportResult(native *NativeAustriaPassportResult) (*AustriaPassportResult, error) {
	if native == nil {
		return nil, recognizer.ErrNilNativeResult
	}

	base, err := recognizer.NewRecognizerResult(native.ResultState)
	if err != nil {
		return nil, err
	}

	return &AustriaPassportResult{
		RecognizerResult: base,

		DateOfBirth:       types.NewDate(native.DateOfBirth),
		DateOfExpiry:      types.NewDate(native.DateOfExpiry),
		DateOfIssue:       types.NewDate(native.DateOfIssue),
		FaceImage:         native.FaceImage,
		FullDocumentImage: native.FullDocumentImage,
		GivenName:         native.GivenName,
		Height:            native.Height,
		IssuingAuthority:  native.IssuingAuthority,
		MrzResult:         types.NewMrzResult(native.MrzResult),
		Nationality:       native.Nationality,
		PassportNumber:    native.PassportNumber,
		PlaceOfBirth:      native.PlaceOfBirth,
		Sex:               native.Sex,
		SignatureImage:    native.SignatureImage,
		Surname:           native.Surname,
	}, nil
}

// Images returns the images carried by the result, keyed by field name
func (r *AustriaPassportResult) Images() map[string]types.Image {
	return map[string]types.Image{
		"faceImage":         r.FaceImage,
		"fullDocumentImage": r.FullDocumentImage,
		"signatureImage":    r.SignatureImage,
	}
}
