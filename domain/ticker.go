package domain

import (
	"regexp"
	"strings"
)

// tickerPattern matches a run of 1-5 uppercase letters enclosed by
// parentheses, brackets, or preceded by a dollar sign: (AAPL), [MSFT], $NVDA.
var tickerPattern = regexp.MustCompile(`(?:\(|\[|\$)\s*([A-Z]{1,5})\s*(?:\)|\])?`)

// ExtractTicker pulls a ticker symbol out of a headline using a simple
// heuristic. First match wins; "-" when no symbol is found.
func ExtractTicker(headline string) string {
	if strings.TrimSpace(headline) == "" {
		return "-"
	}

	m := tickerPattern.FindStringSubmatch(headline)
	if m == nil {
		return "-"
	}

	return m[1]
}
