package salvage

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scanner runs one pass over a salvage directory: every matching file is
// extracted before anything is printed, and the first failure aborts the
// pass with no records.
type Scanner struct {
	discoverer *Discoverer
	extractor  *Extractor
	logger     *zap.Logger
}

// NewScanner wires a Discoverer and an Extractor together.
func NewScanner(d *Discoverer, e *Extractor, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{discoverer: d, extractor: e, logger: logger}
}

// Scan extracts every asset under root in discovery order.
func (s *Scanner) Scan(root string) ([]RewardRecord, error) {
	log := s.logger.With(zap.String("run_id", uuid.NewString()), zap.String("root", root))
	log.Info("scanning", zap.String("pattern", s.discoverer.Pattern()))

	var records []RewardRecord
	for path := range s.discoverer.Discover(root) {
		rec, err := s.extractor.ExtractFile(path)
		if err != nil {
			log.Debug("scan aborted", zap.String("path", path), zap.Int("extracted", len(records)))
			return nil, err
		}
		records = append(records, rec)
	}

	log.Info("scan complete", zap.Int("records", len(records)))
	return records, nil
}

// Print writes one summary line per record.
func (s *Scanner) Print(w io.Writer, records []RewardRecord) error {
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// Run scans root and prints the records to w. Nothing is written when the
// scan fails.
func (s *Scanner) Run(root string, w io.Writer) error {
	records, err := s.Scan(root)
	if err != nil {
		return err
	}
	return s.Print(w, records)
}
