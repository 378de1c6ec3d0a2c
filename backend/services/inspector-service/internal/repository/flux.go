package repository

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"buildsense/backend/services/inspector-service/internal/fault"
	"buildsense/backend/services/inspector-service/internal/sanitize"
)

// DefaultRange is the lookback window used when a query gives none.
const DefaultRange = "-1h"

var fluxDuration = regexp.MustCompile(`^-?(\d+(ns|us|ms|s|m|h|d|w|mo|y))+$`)

// NormalizeRange validates a range start: a duration literal ("-24h", "90m")
// or an RFC3339 instant. Positive durations are negated into lookbacks.
func NormalizeRange(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRange, nil
	}
	if fluxDuration.MatchString(raw) {
		if !strings.HasPrefix(raw, "-") {
			return "-" + raw, nil
		}
		return raw, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	return "", fault.Newf(fault.KindInvalidInput, "invalid time range %q", raw)
}

// BuildLatestReadingsQuery assembles one batched latest-value query covering
// every sensor id. The ids are regex-escaped and matched as one alternation,
// so the fetch is a single round trip regardless of sensor count.
func BuildLatestReadingsQuery(bucket, rangeStart string, sensorIDs []string) (string, error) {
	if len(sensorIDs) == 0 {
		return "", fault.New(fault.KindInvalidInput, "no sensor ids to query")
	}

	bucketLit, err := sanitize.Sanitize(bucket, sanitize.GraphLiteral)
	if err != nil {
		return "", err
	}

	escaped := make([]string, 0, len(sensorIDs))
	for _, id := range sensorIDs {
		frag, err := sanitize.Sanitize(id, sanitize.RegexFragment)
		if err != nil {
			return "", err
		}
		escaped = append(escaped, frag)
	}

	query := fmt.Sprintf(`from(bucket: "%s")
  |> range(start: %s)
  |> filter(fn: (r) => r["sensor_id"] =~ /^(%s)$/)
  |> last()`, bucketLit, rangeStart, strings.Join(escaped, "|"))
	return query, nil
}
