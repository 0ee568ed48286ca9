package progress

import (
	"bytes"
	"testing"
)

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}, "Exporting posts").(*CIReporter); !ok {
		t.Error("expected a CIReporter when CI is set")
	}
}

func TestNewReporterInteractive(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter(&bytes.Buffer{}, "Exporting posts").(*TerminalReporter); !ok {
		t.Error("expected a TerminalReporter outside CI")
	}
}

func TestCIReporter(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  string
	}{
		{"known total", 2, "Exporting posts: 2 pages\n[1/2] page 1\n[2/2] page 2\nExporting posts: done\n"},
		{"unknown total", Unknown, "Exporting posts\n[1] page 1\n[2] page 2\nExporting posts: done\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &CIReporter{w: &buf, task: "Exporting posts"}
			r.Start(tt.total)
			r.Update(1, "page 1")
			r.Update(2, "page 2")
			r.Finish()
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTerminalReporterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{w: &buf, task: "Exporting posts"}
	r.Start(3)
	r.Update(1, "page 1")
	r.Finish()
	if buf.Len() == 0 {
		t.Error("expected progress output")
	}
}
