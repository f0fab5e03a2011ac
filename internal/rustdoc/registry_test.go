package rustdoc

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSupportedVersions(t *testing.T) {
	t.Parallel()

	want := []int{46, 48, 49, 50, 51, 52, 53}
	if got := SupportedVersions(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResolveAdapter_EachVersionDistinct(t *testing.T) {
	t.Parallel()

	for _, version := range SupportedVersions() {
		adapter, err := ResolveAdapter(version)
		if err != nil {
			t.Fatalf("version %d: %v", version, err)
		}
		if adapter.Version() != version {
			t.Errorf("version %d resolved to adapter for %d", version, adapter.Version())
		}
	}
}

func TestResolveAdapter_Unsupported(t *testing.T) {
	t.Parallel()

	// 47 sits inside the supported range but was never tested against; it
	// must be rejected like any other unknown version.
	for _, version := range []int{47, 45, 999} {
		_, err := ResolveAdapter(version)
		var uerr *UnsupportedVersionError
		if !errors.As(err, &uerr) {
			t.Fatalf("version %d: expected *UnsupportedVersionError, got %v", version, err)
		}
		if uerr.Version != version {
			t.Errorf("error names version %d, want %d", uerr.Version, version)
		}
		msg := err.Error()
		for _, supported := range []string{"46", "48", "49", "50", "51", "52", "53"} {
			if !strings.Contains(msg, supported) {
				t.Errorf("error message %q missing supported version %s", msg, supported)
			}
		}
	}
}
