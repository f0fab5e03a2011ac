package rustdoc

import (
	"github.com/buger/jsonparser"
)

// SchemaVersion reads the format_version field from raw rustdoc JSON without
// parsing the rest of the document. It succeeds even when the remainder of
// the document matches no supported schema; version detection depends only on
// this one field being present and integral.
func SchemaVersion(raw []byte) (int, error) {
	v, err := jsonparser.GetInt(raw, "format_version")
	if err != nil {
		return 0, &VersionFieldError{Err: err}
	}
	return int(v), nil
}
