package types

import "fmt"

// MrtdDocumentType is the document type encoded in a machine readable zone
type MrtdDocumentType int

const (
	MrtdDocumentTypeUnknown MrtdDocumentType = iota + 1
	MrtdDocumentTypeIdentityCard
	MrtdDocumentTypePassport
	MrtdDocumentTypeVisa
	MrtdDocumentTypeGreenCard
	MrtdDocumentTypeMalaysianPassIMM13P
)

var mrtdDocumentTypeNames = map[MrtdDocumentType]string{
	MrtdDocumentTypeUnknown:             "unknown",
	MrtdDocumentTypeIdentityCard:        "identity card",
	MrtdDocumentTypePassport:            "passport",
	MrtdDocumentTypeVisa:                "visa",
	MrtdDocumentTypeGreenCard:           "green card",
	MrtdDocumentTypeMalaysianPassIMM13P: "malaysian pass IMM13P",
}

func (t MrtdDocumentType) String() string {
	if name, ok := mrtdDocumentTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MrtdDocumentType(%d)", int(t))
}

// NativeMrzResult is the engine's machine readable zone record
type NativeMrzResult struct {
	DocumentType             MrtdDocumentType `json:"documentType"`
	PrimaryID                string           `json:"primaryId"`
	SecondaryID              string           `json:"secondaryId"`
	Issuer                   string           `json:"issuer"`
	DateOfBirth              *NativeDate      `json:"dateOfBirth"`
	DocumentNumber           string           `json:"documentNumber"`
	Nationality              string           `json:"nationality"`
	Gender                   string           `json:"gender"`
	DocumentCode             string           `json:"documentCode"`
	DateOfExpiry             *NativeDate      `json:"dateOfExpiry"`
	Opt1                     string           `json:"opt1"`
	Opt2                     string           `json:"opt2"`
	AlienNumber              string           `json:"alienNumber"`
	ApplicationReceiptNumber string           `json:"applicationReceiptNumber"`
	ImmigrantCaseNumber      string           `json:"immigrantCaseNumber"`
	MrzText                  string           `json:"mrzText"`
	MrzParsed                bool             `json:"mrzParsed"`
	MrzVerified              bool             `json:"mrzVerified"`
}

// MrzResult holds the parsed contents of a machine readable zone
type MrzResult struct {
	DocumentType             MrtdDocumentType `json:"documentType"`
	PrimaryID                string           `json:"primaryId"`
	SecondaryID              string           `json:"secondaryId"`
	Issuer                   string           `json:"issuer"`
	DateOfBirth              *Date            `json:"dateOfBirth"`
	DocumentNumber           string           `json:"documentNumber"`
	Nationality              string           `json:"nationality"`
	Gender                   string           `json:"gender"`
	DocumentCode             string           `json:"documentCode"`
	DateOfExpiry             *Date            `json:"dateOfExpiry"`
	Opt1                     string           `json:"opt1"`
	Opt2                     string           `json:"opt2"`
	AlienNumber              string           `json:"alienNumber"`
	ApplicationReceiptNumber string           `json:"applicationReceiptNumber"`
	ImmigrantCaseNumber      string           `json:"immigrantCaseNumber"`
	MrzText                  string           `json:"mrzText"`
	MrzParsed                bool             `json:"mrzParsed"`
	MrzVerified              bool             `json:"mrzVerified"`
}

// NewMrzResult wraps a native MRZ record. A nil record yields a nil result.
func NewMrzResult(native *NativeMrzResult) *MrzResult {
	if native == nil {
		return nil
	}
	return &MrzResult{
		DocumentType:             native.DocumentType,
		PrimaryID:                native.PrimaryID,
		SecondaryID:              native.SecondaryID,
		Issuer:                   native.Issuer,
		DateOfBirth:              NewDate(native.DateOfBirth),
		DocumentNumber:           native.DocumentNumber,
		Nationality:              native.Nationality,
		Gender:                   native.Gender,
		DocumentCode:             native.DocumentCode,
		DateOfExpiry:             NewDate(native.DateOfExpiry),
		Opt1:                     native.Opt1,
		Opt2:                     native.Opt2,
		AlienNumber:              native.AlienNumber,
		ApplicationReceiptNumber: native.ApplicationReceiptNumber,
		ImmigrantCaseNumber:      native.ImmigrantCaseNumber,
		MrzText:                  native.MrzText,
		MrzParsed:                native.MrzParsed,
		MrzVerified:              native.MrzVerified,
	}
}
