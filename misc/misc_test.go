package misc

import "testing"

func TestBuildInfo(t *testing.T) {
	if GetAppName() == "" {
		t.Error("empty application name")
	}
	if GetVersion() == "" || GetGitHash() == "" {
		t.Error("build information is not set")
	}
}
