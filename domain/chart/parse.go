package chart

import (
	"math"
	"strconv"
	"strings"
)

const (
	valueSeparator = ","
	pairSeparator  = ":"
)

// ParseValues parses a comma-separated list of numbers such as "1,2,3".
// Segments that are empty or not numeric are dropped; order and duplicates
// are preserved. Malformed input yields an empty slice, never an error.
func ParseValues(text string) []float64 {
	values := make([]float64, 0, strings.Count(text, valueSeparator)+1)
	for _, segment := range strings.Split(text, valueSeparator) {
		v, ok := ParseNumber(segment)
		if !ok {
			continue
		}
		values = append(values, v)
	}
	return values
}

// ParsePairs parses a comma-separated list of "x:y" pairs such as "1:2,3:4".
// A segment without ':' is dropped, as is a segment where either half is not
// numeric. Only the first ':' splits the pair, so "1:2:3" reads as (1, 2).
func ParsePairs(text string) []Point {
	points := make([]Point, 0, strings.Count(text, valueSeparator)+1)
	for _, segment := range strings.Split(text, valueSeparator) {
		left, right, found := strings.Cut(segment, pairSeparator)
		if !found {
			continue
		}
		x, ok := ParseNumber(left)
		if !ok {
			continue
		}
		y, ok := ParseNumber(right)
		if !ok {
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// ParseBarData parses bar chart input. The presence of ':' anywhere in the
// text selects the pair form; otherwise values are indexed from zero.
func ParseBarData(text string) []Point {
	if strings.Contains(text, pairSeparator) {
		return ParsePairs(text)
	}
	return Indexed(ParseValues(text))
}

// ParseNumber converts the longest decimal number at the start of token, so
// "3px" reads as 3 and "1e" as 1. Leading whitespace is ignored. Tokens that
// do not start with a number, and values outside the float64 range, are
// rejected so they never reach the scaler.
func ParseNumber(token string) (float64, bool) {
	prefix := numberPrefix(strings.TrimLeft(token, " \t\n\v\f\r"))
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numberPrefix returns the leading [sign] digits [. digits] [e [sign] digits]
// run of s, or "" when s does not start with a number. An exponent marker
// without digits is not part of the number.
func numberPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	i = skipDigits(s, i)
	if i < len(s) && s[i] == '.' {
		i = skipDigits(s, i+1)
	}
	if i-start == 0 || (i-start == 1 && s[start] == '.') {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := skipDigits(s, j); k > j {
			i = k
		}
	}
	return s[:i]
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
