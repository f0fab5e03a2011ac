package rustdoc

import (
	"errors"
	"testing"
)

func TestSchemaVersion_IgnoresUnknownContent(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"format_version": 53, "mystery": {"shape": [1, 2, 3]}, "index": "not even a map"}`)
	got, err := SchemaVersion(raw)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if got != 53 {
		t.Errorf("got %d, want 53", got)
	}
}

func TestSchemaVersion_FieldAbsent(t *testing.T) {
	t.Parallel()

	_, err := SchemaVersion([]byte(`{"root": 0, "index": {}}`))
	var verr *VersionFieldError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *VersionFieldError, got %v", err)
	}
}

func TestSchemaVersion_NotAnInteger(t *testing.T) {
	t.Parallel()

	_, err := SchemaVersion([]byte(`{"format_version": "53"}`))
	var verr *VersionFieldError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *VersionFieldError, got %v", err)
	}
}

func TestSchemaVersion_MalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := SchemaVersion([]byte(`{"format_`))
	var verr *VersionFieldError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *VersionFieldError, got %v", err)
	}
}
