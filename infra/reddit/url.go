package reddit

import (
	"fmt"
	"net/url"
	"strings"
)

// AllowedLimits are the listing sizes the orchestrator may request,
// ascending. "Load more" steps through them; MaxLimit is the hard cap
// past which the footer degrades to an outbound link.
var AllowedLimits = []int{50, 100, 200, 300, 400, 500}

const (
	// DefaultLimit is used when no limit was remembered for a thread.
	DefaultLimit = 100

	// DefaultSort is the listing sort used when none was remembered.
	DefaultSort = "best"

	// FetchDepth is the fixed reply recursion depth requested from the
	// listing endpoint and honored by the parser.
	FetchDepth = 10
)

// MaxLimit returns the largest allowed listing size.
func MaxLimit() int {
	return AllowedLimits[len(AllowedLimits)-1]
}

// SnapLimit maps any requested limit onto the nearest allowed value.
// Equidistant requests snap to the lower option.
func SnapLimit(n int) int {
	best := AllowedLimits[0]
	bestDiff := abs(n - best)
	for _, v := range AllowedLimits[1:] {
		if d := abs(n - v); d < bestDiff {
			best = v
			bestDiff = d
		}
	}
	return best
}

// NextLimit returns the allowed value after the given one, clamped at
// the maximum.
func NextLimit(n int) int {
	cur := SnapLimit(n)
	for i, v := range AllowedLimits {
		if v == cur && i+1 < len(AllowedLimits) {
			return AllowedLimits[i+1]
		}
	}
	return MaxLimit()
}

// NormalizePermalink reduces a thread permalink to its canonical path:
// query and fragment stripped, no trailing slash. Absolute URLs lose
// their origin.
func NormalizePermalink(permalink string) string {
	u, err := url.Parse(strings.TrimSpace(permalink))
	if err != nil {
		return strings.TrimRight(strings.TrimSpace(permalink), "/")
	}
	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		path = "/"
	}
	return path
}

// CacheKey builds the normalized (thread, sort, limit) tuple used both
// for the response cache and for coalescing identical in-flight fetches.
func CacheKey(permalink, sort string, limit int) string {
	return fmt.Sprintf("%s|%s|%d", NormalizePermalink(permalink), strings.ToLower(sort), limit)
}

// ListingPath builds the JSON listing request path for a permalink.
func ListingPath(permalink, sort string, limit int) string {
	return fmt.Sprintf("%s.json?raw_json=1&limit=%d&sort=%s&depth=%d",
		NormalizePermalink(permalink), limit, strings.ToLower(sort), FetchDepth)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
