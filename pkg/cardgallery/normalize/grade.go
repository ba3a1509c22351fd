package normalize

import "strings"

// GradeBand is a coarse grade-level grouping.
type GradeBand string

const (
	BandK2    GradeBand = "K-2"
	Band3to5  GradeBand = "3-5"
	Band6to8  GradeBand = "6-8"
	Band9to12 GradeBand = "9-12"
)

// gradeBands maps a normalized grade token to its band.
var gradeBands = map[string]GradeBand{
	"K":  BandK2,
	"1":  BandK2,
	"2":  BandK2,
	"3":  Band3to5,
	"4":  Band3to5,
	"5":  Band3to5,
	"6":  Band6to8,
	"7":  Band6to8,
	"8":  Band6to8,
	"9":  Band9to12,
	"10": Band9to12,
	"11": Band9to12,
	"12": Band9to12,
}

// ClassifyGrade returns the bands a grade token belongs to.
// Tokens are matched case-insensitively after trimming; unknown tokens
// yield an empty result.
func ClassifyGrade(token string) []GradeBand {
	band, ok := gradeBands[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return nil
	}
	return []GradeBand{band}
}

// SplitGrades splits a grade cell such as "K, 1, 2" into trimmed tokens.
// An empty cell yields an empty, non-nil slice.
func SplitGrades(level string) []string {
	if level == "" {
		return []string{}
	}
	parts := strings.Split(level, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// GradeRanges classifies every token and returns the distinct bands in
// the order they first appear.
func GradeRanges(tokens []string) []GradeBand {
	ranges := []GradeBand{}
	seen := make(map[GradeBand]bool)
	for _, tok := range tokens {
		for _, band := range ClassifyGrade(tok) {
			if seen[band] {
				continue
			}
			seen[band] = true
			ranges = append(ranges, band)
		}
	}
	return ranges
}
