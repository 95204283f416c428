package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/turntable/prefabs"
)

func TestRunDemoLevel(t *testing.T) {
	prev := prefabs.DiskDir
	prefabs.DiskDir = t.TempDir()
	t.Cleanup(func() { prefabs.DiskDir = prev })

	var out bytes.Buffer
	if err := run(&out, "demo", 5, 0.2, 0); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected one line per demo entity, got %d:\n%s", len(lines), out.String())
	}
	// first rotator: default 5 deg/s for one second
	if !strings.Contains(lines[0], "yaw=5.0000") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	// second rotator: yaw 10, -90 deg/s for one second
	if !strings.Contains(lines[1], "yaw=-80.0000") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
	// disabled rotator keeps its yaw
	if !strings.Contains(lines[4], "yaw=0.0000") {
		t.Fatalf("unexpected last line %q", lines[4])
	}
}

func TestRunReportsPeriodically(t *testing.T) {
	prev := prefabs.DiskDir
	prefabs.DiskDir = t.TempDir()
	t.Cleanup(func() { prefabs.DiskDir = prev })

	var out bytes.Buffer
	if err := run(&out, "demo", 4, 0.5, 2); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "tick=2 "); n != 5 {
		t.Fatalf("expected 5 reports at tick 2, got %d", n)
	}
	if n := strings.Count(out.String(), "tick=4 "); n != 5 {
		t.Fatalf("expected 5 reports at tick 4, got %d", n)
	}
}

func TestRunUnknownLevel(t *testing.T) {
	if err := run(&bytes.Buffer{}, "nope", 1, 1, 0); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
