package shared

import "testing"

func TestOpenBrowserUnsupportedPlatform(t *testing.T) {
	original := getRuntime
	getRuntime = func() string { return "plan9" }
	defer func() { getRuntime = original }()

	if err := OpenBrowser("http://example.com"); err == nil {
		t.Error("expected an error on an unsupported platform")
	}
}
