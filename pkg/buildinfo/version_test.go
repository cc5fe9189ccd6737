package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplateCarriesBuildInfo(t *testing.T) {
	for _, s := range []string{String(), Template()} {
		for _, part := range []string{Version, Commit, Date} {
			if !strings.Contains(s, part) {
				t.Errorf("%q should contain %q", s, part)
			}
		}
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder first", Template())
	}
}
