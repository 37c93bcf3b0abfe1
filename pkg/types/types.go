package types

import "fmt"

// NativeDate is a date record as delivered by the recognition engine
type NativeDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Date represents a date extracted from a document
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewDate wraps a native date record. A nil record yields a nil date.
func NewDate(native *NativeDate) *Date {
	if native == nil {
		return nil
	}
	return &Date{
		Day:   native.Day,
		Month: native.Month,
		Year:  native.Year,
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ImageExtensionFactors controls how far a returned document image is expanded
// beyond the detected document edges. Factors are relative to the document size.
type ImageExtensionFactors struct {
	UpFactor    float64 `json:"upFactor"`
	DownFactor  float64 `json:"downFactor"`
	LeftFactor  float64 `json:"leftFactor"`
	RightFactor float64 `json:"rightFactor"`
}

// Image is a base64 encoded image buffer produced by the engine.
// An empty Image means the engine did not return one.
type Image string

// Empty reports whether the engine returned no image
func (i Image) Empty() bool {
	return i == ""
}
