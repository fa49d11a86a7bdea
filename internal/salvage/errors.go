package salvage

import (
	"errors"
	"fmt"

	"salvage/internal/asset"
)

var (
	// ErrBadPattern reports a filename pattern that cannot be matched.
	ErrBadPattern = errors.New("invalid asset pattern")

	// Extraction failures. Each one aborts the scan.
	ErrReadFile       = errors.New("cannot read asset file")
	ErrParseDocument  = errors.New("asset file is not valid YAML")
	ErrNoDocuments    = errors.New("asset file contains no YAML documents")
	ErrFieldMissing   = errors.New("required field missing")
	ErrFieldWrongType = errors.New("required field has wrong type")
)

// Field paths that must be present in every asset.
const (
	FieldName           = "MonoBehaviour.m_Name"
	FieldMassBasedValue = "MonoBehaviour.m_Data.m_AwardedCurrencies[0].m_MassBasedValue"
)

// FieldError describes a required field that is absent or of the wrong kind.
// It wraps ErrFieldMissing or ErrFieldWrongType.
type FieldError struct {
	Field string
	Found asset.Kind
	Err   error
}

func newFieldError(field string, v asset.Value) *FieldError {
	err := ErrFieldWrongType
	if v.Kind() == asset.Invalid || v.Kind() == asset.Null {
		err = ErrFieldMissing
	}
	return &FieldError{Field: field, Found: v.Kind(), Err: err}
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrFieldWrongType) {
		return fmt.Sprintf("%s: %v (found %s)", e.Field, e.Err, e.Found)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ExtractError ties an extraction failure to the asset file it came from.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to parse file %s: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }
