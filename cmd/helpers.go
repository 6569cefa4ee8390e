package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/s0up4200/nomics/filter"
)

// printJSON writes a raw API response indented. A silently failed call prints null.
func printJSON(w io.Writer, raw json.RawMessage) error {
	if len(raw) == 0 {
		_, err := fmt.Fprintln(w, "null")
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return err
}

// parseTime accepts RFC3339 timestamps or plain dates. An empty string is the zero
// time, which leaves the parameter out of the request.
func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", value)
}

// parseRange parses a start and end flag pair
func parseRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseTime(startValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--start: %w", err)
	}
	end, err := parseTime(endValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--end: %w", err)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--end %s is before --start %s", endValue, startValue)
	}
	return start, end, nil
}

// parseQuery turns key=value arguments into query parameters. Repeated keys are
// kept in order.
func parseQuery(args []string) (url.Values, error) {
	params := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", arg)
		}
		params.Add(key, value)
	}
	return params, nil
}

// resolveFilter picks the ad-hoc expression over a named preset. Neither set means
// no filtering.
func resolveFilter(manager *filter.Manager, expression, preset string) (filter.Filter, error) {
	// Priority: command line filter > preset
	if expression != "" {
		return manager.Compile(expression)
	}
	if preset != "" {
		return manager.Preset(preset)
	}
	return nil, nil
}

// encodeJSON writes decoded rows back out as indented JSON
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
