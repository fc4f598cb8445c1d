package result

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses the runner's "HHh:MMm:SSs:fffms" time-spent format.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 4 {
		return 0, fmt.Errorf("invalid duration %q: want HHh:MMm:SSs:fffms", s)
	}
	units := []struct {
		suffix string
		limit  int
		scale  time.Duration
	}{
		{"h", -1, time.Hour},
		{"m", 60, time.Minute},
		{"s", 60, time.Second},
		{"ms", 1000, time.Millisecond},
	}
	var d time.Duration
	for i, u := range units {
		digits, ok := strings.CutSuffix(parts[i], u.suffix)
		if !ok || digits == "" {
			return 0, fmt.Errorf("invalid duration %q: field %d must end in %q", s, i+1, u.suffix)
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 || strings.ContainsAny(digits, "+-") {
			return 0, fmt.Errorf("invalid duration %q: bad number %q", s, digits)
		}
		if u.limit > 0 && n >= u.limit {
			return 0, fmt.Errorf("invalid duration %q: %d%s out of range", s, n, u.suffix)
		}
		d += time.Duration(n) * u.scale
	}
	return d, nil
}

// FormatDuration renders d in the format accepted by ParseDuration,
// truncated to the millisecond.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	sec := d / time.Second
	d -= sec * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02dh:%02dm:%02ds:%03dms", h, m, sec, ms)
}
