package linediff

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Diff struct {
	Type  Operation
	Lines int
}

type Operation int8

const (
	DiffDelete Operation = Operation(diffmatchpatch.DiffDelete)
	DiffInsert Operation = Operation(diffmatchpatch.DiffInsert)
	DiffEqual  Operation = Operation(diffmatchpatch.DiffEqual)
)

const DefaultTimeout = time.Second

// Comparator turns a line into the key used to decide line equality.
type Comparator func(line string) string

// Exact compares lines byte by byte once CRLF endings are turned into LF.
func Exact(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}

// IgnoreWhitespace compares lines ignoring every space, tab and line ending.
func IgnoreWhitespace(line string) string {
	return strings.Join(strings.Fields(line), "")
}

// ExactLimit is the largest product of old and new line counts that is always diffed
// without a timeout.
const ExactLimit = 25_000_000

type Options struct {
	// Timeout bounds the time spent diffing texts above ExactLimit. When it expires the
	// result is still a valid edit list, only less minimal. Zero means DefaultTimeout,
	// negative means no limit.
	Timeout    time.Duration
	Comparator Comparator
}

// EffectiveTimeout returns the timeout used above ExactLimit, or 0 when there is none.
func (o *Options) EffectiveTimeout() time.Duration {
	switch {
	case o.Timeout == 0:
		return DefaultTimeout
	case o.Timeout < 0:
		return 0
	default:
		return o.Timeout
	}
}

// timeout returns 0 for inputs up to ExactLimit. Any positive timeout makes
// diffmatchpatch try its half match shortcut, which is not minimal.
func (o *Options) timeout(srcLines, dstLines int) time.Duration {
	if int64(srcLines)*int64(dstLines) <= ExactLimit {
		return 0
	}
	return o.EffectiveTimeout()
}

func (o *Options) comparator() Comparator {
	if o.Comparator == nil {
		return Exact
	}
	return o.Comparator
}

func mergeOptions(opts []Options) *Options {
	result := &Options{}
	for _, o := range opts {
		if o.Timeout != 0 {
			result.Timeout = o.Timeout
		}
		if o.Comparator != nil {
			result.Comparator = o.Comparator
		}
	}
	return result
}

// Do computes the line diff from src to dst, including the equal spans.
func Do(src, dst string, opts ...Options) []Diff {
	return diffLines(src, dst, mergeOptions(opts), maxLineIndexes)
}

func diffLines(src, dst string, o *Options, maxLines int) []Diff {
	wSrc, wDst, ok := textsToLineIndexes(src, dst, o.comparator(), maxLines)
	if !ok {
		return replaceAll(len(wSrc), len(wDst))
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = o.timeout(len(wSrc), len(wDst))

	dmpd := dmp.DiffMainRunes(wSrc, wDst, false)
	return lineIndexesToDiff(dmpd)
}

// replaceAll is the diff that deletes every old line and inserts every new one.
func replaceAll(srcLines, dstLines int) []Diff {
	var result []Diff
	if srcLines > 0 {
		result = append(result, Diff{Type: DiffDelete, Lines: srcLines})
	}
	if dstLines > 0 {
		result = append(result, Diff{Type: DiffInsert, Lines: dstLines})
	}
	return result
}

func lineIndexesToDiff(diffs []diffmatchpatch.Diff) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		lines := utf8.RuneCountInString(aDiff.Text)
		if lines == 0 {
			continue
		}

		hydrated = append(hydrated, Diff{
			Type:  Operation(aDiff.Type),
			Lines: lines,
		})
	}
	return hydrated
}

// textsToLineIndexes maps each distinct line to a rune. It returns false when there are
// more than maxLines distinct lines.
func textsToLineIndexes(text1, text2 string, comparator Comparator, maxLines int) ([]rune, []rune, bool) {
	lineToIndex := make(map[string]int)
	indexes1 := textToLineIndexes(text1, lineToIndex, comparator)
	indexes2 := textToLineIndexes(text2, lineToIndex, comparator)
	return indexes1, indexes2, len(lineToIndex) <= maxLines
}

func textToLineIndexes(text string, lineToIndex map[string]int, comparator Comparator) []rune {
	lines := SplitLines(text)

	result := make([]rune, len(lines))
	for i, line := range lines {
		key := comparator(line)

		lineValue, ok := lineToIndex[key]
		if !ok {
			lineValue = len(lineToIndex)
			lineToIndex[key] = lineValue
		}

		result[i] = indexToRune(lineValue)
	}
	return result
}

// indexToRune keeps line indexes out of the surrogate range, which would not survive
// the string conversions done inside diffmatchpatch.
func indexToRune(index int) rune {
	if index >= surrogateMin {
		index += surrogateMax - surrogateMin + 1
	}
	return rune(index)
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// maxLineIndexes is the number of valid runes outside the surrogate range.
	maxLineIndexes = utf8.MaxRune + 1 - (surrogateMax - surrogateMin + 1)
)

// SplitLines splits text keeping the line terminators. A final terminator does not
// start a new empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func CountLines(text string) int {
	if text == "" {
		return 0
	}

	result := strings.Count(text, "\n")
	if text[len(text)-1] != '\n' {
		result++
	}
	return result
}
