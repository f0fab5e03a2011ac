// Package rustdoc parses docs.rs machine-readable documentation exports and
// renders them as text. Several structurally distinct format versions are
// supported concurrently: a sniffer reads the embedded format version, a
// closed registry maps it to a per-version adapter, and each adapter projects
// its native shape into one shared model that extraction and rendering
// operate on.
//
// Everything here is pure, synchronous computation over the raw bytes of one
// document; nothing is cached or shared between calls.
package rustdoc

// Parse sniffs the format version of raw rustdoc JSON, resolves its adapter
// and projects the document into the intermediate model.
func Parse(raw []byte) (*Crate, error) {
	version, err := SchemaVersion(raw)
	if err != nil {
		return nil, err
	}
	adapter, err := ResolveAdapter(version)
	if err != nil {
		return nil, err
	}
	return adapter.Parse(raw)
}

// SummarizeBytes renders a crate overview straight from raw rustdoc JSON.
func SummarizeBytes(raw []byte) (string, error) {
	c, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Summarize(c)
}

// DescribeBytes resolves one named item in raw rustdoc JSON and renders it in
// full.
func DescribeBytes(raw []byte, itemPath string) (string, error) {
	c, err := Parse(raw)
	if err != nil {
		return "", err
	}
	item, kindOverride, err := FindItem(c, itemPath)
	if err != nil {
		return "", err
	}
	return FormatItem(item, kindOverride), nil
}
