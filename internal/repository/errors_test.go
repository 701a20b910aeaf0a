package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestMapError(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "unique_entry_per_class_day_session_group"}
	if err := MapError(fmt.Errorf("insert: %w", unique)); !errors.Is(err, ErrUniqueViolation) {
		t.Errorf("MapError(unique) = %v, want ErrUniqueViolation", err)
	}

	foreignKey := &pq.Error{Code: "23503"}
	if err := MapError(foreignKey); errors.Is(err, ErrUniqueViolation) || err != error(foreignKey) {
		t.Errorf("MapError(foreign key) = %v, want original error", err)
	}

	if err := MapError(nil); err != nil {
		t.Errorf("MapError(nil) = %v, want nil", err)
	}
}
