package recognizers_test

import (
	"encoding/json"
	"testing"

	"github.com/menta2k/document-recognizer/pkg/recognizer"
	"github.com/menta2k/document-recognizer/pkg/recognizers"
	"github.com/menta2k/document-recognizer/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const austriaNative = `{
	"resultState": 3,
	"dateOfBirth": {"day": 12, "month": 8, "year": 1964},
	"dateOfExpiry": {"day": 1, "month": 2, "year": 2030},
	"dateOfIssue": null,
	"faceImage": "ZmFjZQ==",
	"fullDocumentImage": "",
	"givenName": "ANNA",
	"height": "170",
	"issuingAuthority": "BH WIEN",
	"mrzResult": {
		"documentType": 3,
		"primaryId": "MUSTERFRAU",
		"secondaryId": "ANNA",
		"issuer": "AUT",
		"dateOfBirth": {"day": 12, "month": 8, "year": 1964},
		"dateOfExpiry": null,
		"documentNumber": "P1234567",
		"mrzParsed": true,
		"mrzVerified": true
	},
	"nationality": "AUT",
	"passportNumber": "P1234567",
	"placeOfBirth": "WIEN",
	"sex": "F",
	"signatureImage": "c2ln",
	"surname": "MUSTERFRAU"
}`

func TestAustriaPassportDefaults(t *testing.T) {
	r := recognizers.NewAustriaPassportRecognizer()

	assert.Equal(t, "AustriaPassportRecognizer", r.Type())
	assert.True(t, r.DetectGlare)

	assert.True(t, r.ExtractDateOfBirth)
	assert.True(t, r.ExtractDateOfExpiry)
	assert.True(t, r.ExtractDateOfIssue)
	assert.True(t, r.ExtractGivenName)
	assert.True(t, r.ExtractHeight)
	assert.True(t, r.ExtractIssuingAuthority)
	assert.False(t, r.ExtractNationality)
	assert.True(t, r.ExtractPassportNumber)
	assert.True(t, r.ExtractPlaceOfBirth)
	assert.True(t, r.ExtractSex)
	assert.True(t, r.ExtractSurname)

	assert.Equal(t, 250, r.FaceImageDpi)
	assert.Equal(t, 250, r.FullDocumentImageDpi)
	assert.Equal(t, 250, r.SignatureImageDpi)
	assert.Equal(t, types.ImageExtensionFactors{}, r.FullDocumentImageExtensionFactors)

	assert.False(t, r.ReturnFaceImage)
	assert.False(t, r.ReturnFullDocumentImage)
	assert.False(t, r.ReturnSignatureImage)
}

func TestSwitzerlandIDFrontDefaults(t *testing.T) {
	r := recognizers.NewSwitzerlandIDFrontRecognizer()

	assert.Equal(t, "SwitzerlandIdFrontRecognizer", r.Type())
	assert.True(t, r.DetectGlare)
	assert.True(t, r.ExtractGivenName)
	assert.True(t, r.ExtractSurname)

	assert.Equal(t, 250, r.FaceImageDpi)
	assert.Equal(t, 250, r.FullDocumentImageDpi)
	assert.Equal(t, 250, r.SignatureImageDpi)
	assert.Equal(t, types.ImageExtensionFactors{}, r.FullDocumentImageExtensionFactors)

	assert.False(t, r.ReturnFaceImage)
	assert.False(t, r.ReturnFullDocumentImage)
	assert.False(t, r.ReturnSignatureImage)
}

func TestAustriaPassportSettings(t *testing.T) {
	data, err := recognizer.MarshalSettings(recognizers.NewAustriaPassportRecognizer())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"recognizerType": "AustriaPassportRecognizer",
		"detectGlare": true,
		"extractDateOfBirth": true,
		"extractDateOfExpiry": true,
		"extractDateOfIssue": true,
		"extractGivenName": true,
		"extractHeight": true,
		"extractIssuingAuthority": true,
		"extractNationality": false,
		"extractPassportNumber": true,
		"extractPlaceOfBirth": true,
		"extractSex": true,
		"extractSurname": true,
		"faceImageDpi": 250,
		"fullDocumentImageDpi": 250,
		"fullDocumentImageExtensionFactors": {"upFactor": 0, "downFactor": 0, "leftFactor": 0, "rightFactor": 0},
		"signatureImageDpi": 250,
		"returnFaceImage": false,
		"returnFullDocumentImage": false,
		"returnSignatureImage": false
	}`, string(data))
}

func TestAustriaPassportScenario(t *testing.T) {
	r := recognizers.NewAustriaPassportRecognizer()

	result, err := r.BuildResult(json.RawMessage(`{
		"resultState": "ok",
		"dateOfBirth": {"year": 1990, "month": 1, "day": 1},
		"givenName": "ANNA",
		"mrzResult": null
	}`))
	require.NoError(t, err)

	passport, ok := result.(*recognizers.AustriaPassportResult)
	require.True(t, ok)

	assert.Equal(t, recognizer.ResultStateValid, passport.State())
	assert.Equal(t, &types.Date{Day: 1, Month: 1, Year: 1990}, passport.DateOfBirth)
	assert.Equal(t, "ANNA", passport.GivenName)
	assert.Nil(t, passport.MrzResult)
	assert.Nil(t, passport.DateOfExpiry)
	assert.Nil(t, passport.DateOfIssue)
}

func TestAustriaPassportResult(t *testing.T) {
	n, err := recognizer.DecodeNative[recognizers.NativeAustriaPassportResult](json.RawMessage(austriaNative))
	require.NoError(t, err)

	result, err := recognizers.NewAustriaPassportResult(n)
	require.NoError(t, err)

	assert.Equal(t, &types.Date{Day: 12, Month: 8, Year: 1964}, result.DateOfBirth)
	assert.Equal(t, &types.Date{Day: 1, Month: 2, Year: 2030}, result.DateOfExpiry)
	assert.Nil(t, result.DateOfIssue)

	require.NotNil(t, result.MrzResult)
	assert.Equal(t, types.MrtdDocumentTypePassport, result.MrzResult.DocumentType)
	assert.Equal(t, &types.Date{Day: 12, Month: 8, Year: 1964}, result.MrzResult.DateOfBirth)
	assert.Nil(t, result.MrzResult.DateOfExpiry)
	assert.True(t, result.MrzResult.MrzVerified)

	assert.Equal(t, n.FaceImage, result.FaceImage)
	assert.Equal(t, n.FullDocumentImage, result.FullDocumentImage)
	assert.Equal(t, n.SignatureImage, result.SignatureImage)
	assert.Equal(t, n.GivenName, result.GivenName)
	assert.Equal(t, n.Height, result.Height)
	assert.Equal(t, n.IssuingAuthority, result.IssuingAuthority)
	assert.Equal(t, n.Nationality, result.Nationality)
	assert.Equal(t, n.PassportNumber, result.PassportNumber)
	assert.Equal(t, n.PlaceOfBirth, result.PlaceOfBirth)
	assert.Equal(t, n.Sex, result.Sex)
	assert.Equal(t, n.Surname, result.Surname)

	assert.Equal(t, map[string]types.Image{
		"faceImage":         "ZmFjZQ==",
		"fullDocumentImage": "",
		"signatureImage":    "c2ln",
	}, result.Images())
}

func TestAustriaPassportIdempotent(t *testing.T) {
	r := recognizers.NewAustriaPassportRecognizer()

	first, err := r.BuildResult(json.RawMessage(austriaNative))
	require.NoError(t, err)

	second, err := r.BuildResult(json.RawMessage(austriaNative))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	a := first.(*recognizers.AustriaPassportResult)
	b := second.(*recognizers.AustriaPassportResult)

	assert.NotSame(t, a, b)
	assert.NotSame(t, a.DateOfBirth, b.DateOfBirth)
	assert.NotSame(t, a.MrzResult, b.MrzResult)
	assert.NotSame(t, a.MrzResult.DateOfBirth, b.MrzResult.DateOfBirth)

	a.DateOfBirth.Year = 2001
	assert.Equal(t, 1964, b.DateOfBirth.Year)
}

func TestAustriaPassportInvalidNative(t *testing.T) {
	r := recognizers.NewAustriaPassportRecognizer()

	_, err := r.BuildResult(nil)
	require.ErrorIs(t, err, recognizer.ErrNilNativeResult)

	_, err = r.BuildResult(json.RawMessage(`{"givenName": "ANNA"}`))
	require.ErrorIs(t, err, recognizer.ErrInvalidResultState)

	_, err = r.BuildResult(json.RawMessage(`{"resultState": 7}`))
	require.ErrorIs(t, err, recognizer.ErrInvalidResultState)

	_, err = r.BuildResult(json.RawMessage(`{"resultState": "done"}`))
	require.ErrorIs(t, err, recognizer.ErrInvalidResultState)

	_, err = r.BuildResult(json.RawMessage(`{"resultState": 0}`))
	require.ErrorIs(t, err, recognizer.ErrInvalidResultState)

	_, err = recognizers.NewAustriaPassportResult(nil)
	require.ErrorIs(t, err, recognizer.ErrNilNativeResult)
}

func TestSwitzerlandIDFrontResult(t *testing.T) {
	r := recognizers.NewSwitzerlandIDFrontRecognizer()

	result, err := r.BuildResult(json.RawMessage(`{
		"resultState": 2,
		"dateOfBirth": null,
		"faceImage": "ZmFjZQ==",
		"givenName": "HEIDI",
		"surname": "MUSTER"
	}`))
	require.NoError(t, err)

	id, ok := result.(*recognizers.SwitzerlandIDFrontResult)
	require.True(t, ok)

	assert.Equal(t, recognizer.ResultStateUncertain, id.State())
	assert.Nil(t, id.DateOfBirth)
	assert.Equal(t, types.Image("ZmFjZQ=="), id.FaceImage)
	assert.True(t, id.FullDocumentImage.Empty())
	assert.Equal(t, "HEIDI", id.GivenName)
	assert.Equal(t, "MUSTER", id.Surname)
	assert.Len(t, id.Images(), 3)

	_, err = recognizers.NewSwitzerlandIDFrontResult(nil)
	require.ErrorIs(t, err, recognizer.ErrNilNativeResult)

	_, err = r.BuildResult(json.RawMessage(`{"resultState": 0}`))
	require.ErrorIs(t, err, recognizer.ErrInvalidResultState)
}

func TestResultJSONKeepsAbsence(t *testing.T) {
	r := recognizers.NewSwitzerlandIDFrontRecognizer()

	result, err := r.BuildResult(json.RawMessage(`{"resultState": 1}`))
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"resultState": 1,
		"dateOfBirth": null,
		"faceImage": "",
		"fullDocumentImage": "",
		"givenName": "",
		"signatureImage": "",
		"surname": ""
	}`, string(data))
}

func TestConfigureOverrides(t *testing.T) {
	r := recognizers.NewAustriaPassportRecognizer()

	err := recognizer.Configure(r, map[string]any{
		"extractNationality": true,
		"returnFaceImage":    true,
		"faceImageDpi":       400,
		"fullDocumentImageExtensionFactors": map[string]any{
			"upFactor": 0.1,
		},
	})
	require.NoError(t, err)

	assert.True(t, r.ExtractNationality)
	assert.True(t, r.ReturnFaceImage)
	assert.Equal(t, 400, r.FaceImageDpi)
	assert.Equal(t, 0.1, r.FullDocumentImageExtensionFactors.UpFactor)
	assert.Equal(t, 250, r.SignatureImageDpi)

	require.Error(t, recognizer.Configure(r, map[string]any{"extractMrz": true}))
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"AustriaPassportRecognizer", "SwitzerlandIdFrontRecognizer"}, recognizers.Names())

	for _, name := range recognizers.Names() {
		r, err := recognizers.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.Type())
	}

	first, err := recognizers.New(recognizers.AustriaPassportRecognizerType)
	require.NoError(t, err)
	second, err := recognizers.New(recognizers.AustriaPassportRecognizerType)
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	_, err = recognizers.New("GermanyIdFrontRecognizer")
	require.ErrorIs(t, err, recognizers.ErrUnknownRecognizer)
}

func TestCollectionWithDocuments(t *testing.T) {
	c, err := recognizer.NewCollection(recognizers.NewAustriaPassportRecognizer(), recognizers.NewSwitzerlandIDFrontRecognizer())
	require.NoError(t, err)

	results, err := c.DecodeResults([]byte(`[` + austriaNative + `, {"resultState": 1}]`))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.IsType(t, &recognizers.AustriaPassportResult{}, results[0])
	assert.IsType(t, &recognizers.SwitzerlandIDFrontResult{}, results[1])
	assert.Equal(t, recognizer.ResultStateEmpty, results[1].State())
}
