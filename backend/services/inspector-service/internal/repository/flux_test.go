package repository

import (
	"strings"
	"testing"

	"buildsense/backend/services/inspector-service/internal/fault"
)

func TestNormalizeRangeAcceptsDurations(t *testing.T) {
	cases := map[string]string{
		"":       DefaultRange,
		"-1h":    "-1h",
		"-24h":   "-24h",
		"90m":    "-90m",
		"-1d12h": "-1d12h",
		" -15m ": "-15m",
	}
	for raw, want := range cases {
		got, err := NormalizeRange(raw)
		if err != nil {
			t.Fatalf("%q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: got %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeRangeAcceptsRFC3339(t *testing.T) {
	got, err := NormalizeRange("2026-03-01T10:00:00+01:00")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "2026-03-01T09:00:00Z" {
		t.Fatalf("instant not normalized to UTC: %q", got)
	}
}

func TestNormalizeRangeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"yesterday", "-1 hour", `-1h") |> drop()`, "1h; kill"} {
		_, err := NormalizeRange(raw)
		if !fault.IsKind(err, fault.KindInvalidInput) {
			t.Fatalf("%q: expected invalid_input, got %v", raw, err)
		}
	}
}

func TestBuildLatestReadingsQueryBatchesAllSensors(t *testing.T) {
	query, err := BuildLatestReadingsQuery("telemetry", "-1h", []string{"s_001", "s_002", "s_003"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !strings.Contains(query, `/^(s_001|s_002|s_003)$/`) {
		t.Fatalf("alternation missing:\n%s", query)
	}
	// One from() pipeline regardless of sensor count: the batch contract.
	if strings.Count(query, "from(bucket:") != 1 {
		t.Fatalf("expected a single pipeline:\n%s", query)
	}
	if !strings.Contains(query, "range(start: -1h)") {
		t.Fatalf("window missing:\n%s", query)
	}
	if !strings.Contains(query, "last()") {
		t.Fatalf("latest-value selection missing:\n%s", query)
	}
}

func TestBuildLatestReadingsQueryEscapesSensorIDs(t *testing.T) {
	query, err := BuildLatestReadingsQuery("telemetry", "-1h", []string{"s.01+T", "a/b"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(query, `s\.01\+T`) {
		t.Fatalf("metacharacters not escaped:\n%s", query)
	}
	if !strings.Contains(query, `a\/b`) {
		t.Fatalf("regex delimiter not escaped:\n%s", query)
	}
}

func TestBuildLatestReadingsQueryRejectsEmptySet(t *testing.T) {
	_, err := BuildLatestReadingsQuery("telemetry", "-1h", nil)
	if !fault.IsKind(err, fault.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}
