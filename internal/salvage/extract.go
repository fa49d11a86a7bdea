package salvage

import (
	"fmt"
	"os"

	"salvage/internal/asset"
	"salvage/internal/logging"

	"go.uber.org/zap"
)

// Extractor turns asset files into reward records.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor returns an Extractor that logs to logger (nil for none).
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// ExtractFile reads and extracts one asset file. Any error is an
// *ExtractError naming path.
func (e *Extractor) ExtractFile(path string) (RewardRecord, error) {
	e.logger.Debug("parsing", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return RewardRecord{}, &ExtractError{Path: path, Err: fmt.Errorf("%w: %w", ErrReadFile, err)}
	}
	rec, err := e.Extract(data)
	if err != nil {
		return RewardRecord{}, &ExtractError{Path: path, Err: err}
	}
	return rec, nil
}

// Extract parses asset text and builds a record from its first document.
// Later documents must still parse but are otherwise ignored.
func (e *Extractor) Extract(data []byte) (RewardRecord, error) {
	docs, err := asset.Parse(data)
	if err != nil {
		return RewardRecord{}, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}
	if len(docs) == 0 {
		return RewardRecord{}, ErrNoDocuments
	}
	if len(docs) > 1 {
		e.logger.Debug("ignoring extra documents", zap.Int("documents", len(docs)))
	}
	return e.FromDocument(docs[0])
}

// FromDocument builds a record from a parsed document.
//
// m_Name must be a string. When m_AwardedCurrencies is missing, not a
// sequence or empty, the values default to 0 / 0 / not mass based.
// Otherwise only its first entry counts: the initial values accept ints or
// floats and fall back to 0 for anything else, while m_MassBasedValue must
// be an integer and means mass based only when it is exactly 1.
func (e *Extractor) FromDocument(doc asset.Value) (RewardRecord, error) {
	mb := doc.Key("MonoBehaviour")

	nameVal := mb.Key("m_Name")
	name, ok := nameVal.Str()
	if !ok {
		return RewardRecord{}, newFieldError(FieldName, nameVal)
	}
	rec := RewardRecord{Name: name}

	currencies := mb.Path("m_Data", "m_AwardedCurrencies")
	if currencies.Len() == 0 {
		e.logger.Debug("no awarded currencies", zap.String("name", name), zap.Stringer("kind", currencies.Kind()))
		return rec, nil
	}
	e.logger.Debug("awarded currencies",
		zap.String("name", name),
		zap.Any("m_AwardedCurrencies", currencies.Interface()),
	)
	if currencies.Len() > 1 {
		e.logger.Debug("using first awarded currency only", zap.String("name", name), zap.Int("entries", currencies.Len()))
	}

	first := currencies.Index(0)
	rec.MinInitialValue = first.Key("m_MinInitialValue").Number()
	rec.MaxInitialValue = first.Key("m_MaxInitialValue").Number()

	massVal := first.Key("m_MassBasedValue")
	mass, ok := massVal.Int()
	if !ok {
		return RewardRecord{}, newFieldError(FieldMassBasedValue, massVal)
	}
	rec.MassBasedValue = mass == 1

	logging.Trace(e.logger, "record extracted",
		zap.String("name", rec.Name),
		zap.Float64("min", rec.MinInitialValue),
		zap.Float64("max", rec.MaxInitialValue),
		zap.Bool("mass_based", rec.MassBasedValue),
	)
	return rec, nil
}
