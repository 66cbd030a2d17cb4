package similarity

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// MatchScore is the score two keys must reach to be considered the same title.
const MatchScore = 100

// ErrUncomputable reports that a pair of keys could not be scored.
var ErrUncomputable = errors.New("similarity uncomputable")

// Scorer computes a 0-100 similarity score for two keys.
type Scorer interface {
	Score(a, b string) (int, error)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(a, b string) (int, error)

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b string) (int, error) {
	return f(a, b)
}

// Matcher is implemented by scorers that can decide whether two keys reach
// MatchScore without computing the exact score.
type Matcher interface {
	Match(a, b string) (bool, error)
}

// PartialRatio is the default Scorer. It also implements Matcher.
var PartialRatio Scorer = partialRatio{}

type partialRatio struct{}

func (partialRatio) Score(a, b string) (int, error) { return Partial(a, b) }

func (partialRatio) Match(a, b string) (bool, error) { return PartialMatch(a, b) }

// exactWidth is the shortest window at which one mismatched rune still rounds
// to MatchScore: round(100*(w-1)/w) == 100 once w >= 200.
const exactWidth = 200

// PartialMatch reports whether Partial(a, b) == MatchScore. Below exactWidth
// runes a window scores MatchScore only when it equals the shorter key, so the
// answer is plain containment and no windows are scored.
func PartialMatch(a, b string) (bool, error) {
	if !utf8.ValidString(a) || !utf8.ValidString(b) {
		return false, ErrUncomputable
	}
	if a == "" || b == "" {
		return a == b, nil
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true, nil
	}
	if min(utf8.RuneCountInString(a), utf8.RuneCountInString(b)) < exactWidth {
		return false, nil
	}
	score, err := Partial(a, b)
	return score == MatchScore, err
}

// Partial returns the best-alignment ratio of the shorter string against every
// equal-length window of the longer one. Two empty strings score 100; an empty
// string against a non-empty one scores 0. Comparison is case-sensitive.
func Partial(a, b string) (int, error) {
	if !utf8.ValidString(a) || !utf8.ValidString(b) {
		return 0, ErrUncomputable
	}
	if a == "" && b == "" {
		return MatchScore, nil
	}
	if a == "" || b == "" {
		return 0, nil
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return MatchScore, nil
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	return bestWindow(shorter, longer), nil
}

// bestWindow slides short over long. The rune multiset overlap of short and
// the current window bounds their LCS from above, so windows whose bound
// cannot beat the best score so far are never handed to edlib.
func bestWindow(short, long []rune) int {
	width := len(short)
	need := make(map[rune]int, width)
	for _, r := range short {
		need[r]++
	}
	have := make(map[rune]int, width)
	overlap := 0
	for _, r := range long[:width] {
		if have[r] < need[r] {
			overlap++
		}
		have[r]++
	}

	shortStr := string(short)
	best := 0
	for start := 0; ; start++ {
		if ratio(overlap, width) > best {
			window := string(long[start : start+width])
			if score := ratio(edlib.LCS(shortStr, window), width); score > best {
				best = score
			}
		}
		if best == MatchScore || start+width == len(long) {
			return best
		}

		out, in := long[start], long[start+width]
		have[out]--
		if have[out] < need[out] {
			overlap--
		}
		if have[in] < need[in] {
			overlap++
		}
		have[in]++
	}
}

func ratio(common, width int) int {
	return int(math.Round(100 * float64(common) / float64(width)))
}
