package version

import (
	"strings"
	"testing"
)

func TestVersionPopulated(t *testing.T) {
	if Version == "" {
		t.Error("Version should never be empty after init")
	}
	if Commit == "" {
		t.Error("Commit should never be empty after init")
	}
}

func TestFull(t *testing.T) {
	got := Full()
	if !strings.HasPrefix(got, Version) {
		t.Errorf("Full() = %q, want prefix %q", got, Version)
	}
	if !strings.Contains(got, "(commit: "+Commit+")") {
		t.Errorf("Full() = %q, missing commit %q", got, Commit)
	}
}

func TestFromBuildInfoKeepsSetValues(t *testing.T) {
	v, c := fromBuildInfo("v1.2.3", "abc1234")
	if v != "v1.2.3" || c != "abc1234" {
		t.Errorf("fromBuildInfo() = %q, %q, want values unchanged", v, c)
	}
}
