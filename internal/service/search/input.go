package search

import (
	"github.com/ranklens/ranklens-backend/internal/domain"
)

const (
	maxQueryLen  = 500
	maxBulkLines = 50
)

// SearchInput holds parameters for a single search.
type SearchInput struct {
	Query string
	Mode  domain.SearchMode
}

// Validate validates the search input. Query is expected to be normalized.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Query == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	} else if len(i.Query) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "query", Message: "too long"})
	}

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "unknown mode"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkInput holds parameters for a bulk search: one query per line.
type BulkInput struct {
	Raw  string
	Mode domain.SearchMode
}

// Validate validates the bulk input against the extracted lines.
func (i BulkInput) validateLines(lines []string) error {
	var errs []domain.FieldError

	if len(lines) == 0 {
		errs = append(errs, domain.FieldError{Field: "queries", Message: "at least one non-empty line required"})
	} else if len(lines) > maxBulkLines {
		errs = append(errs, domain.FieldError{Field: "queries", Message: "too many lines"})
	}
	for _, line := range lines {
		if len(line) > maxQueryLen {
			errs = append(errs, domain.FieldError{Field: "queries", Message: "line too long"})
			break
		}
	}

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "unknown mode"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
