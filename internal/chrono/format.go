package chrono

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/tartampluch/go-chrono/internal/config"
)

// nanosVerb renders the nine-digit fraction of a second.
const nanosVerb = 'f'

// nanosLayout is the Go reference layout for ".%f".
const nanosLayout = ".000000000"

// layoutTokens maps every supported strftime verb to the Go reference layout
// that parses it. Rendering and parsing both reject verbs missing from here,
// so a pattern that formats is always a pattern that parses.
var layoutTokens = map[byte]string{
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'd': "02",
	'e': "_2",
	'D': "01/02/06",
	'F': "2006-01-02",
	'H': "15",
	'I': "03",
	'j': "002",
	'm': "01",
	'M': "04",
	'p': "PM",
	'r': "03:04:05 PM",
	'R': "15:04",
	'S': "05",
	'T': "15:04:05",
	'y': "06",
	'Y': "2006",
	'z': "-0700",
	'Z': "MST",
	'n': "\n",
	't': "\t",
	'%': "%",
}

// referenceWords are substrings time.Parse reads as fields even inside literals.
var referenceWords = []string{"Jan", "Mon", "MST", "PM", "pm"}

var (
	errUnsupportedToken = errors.New(config.ErrUnsupportedToken)
	errDanglingPercent  = errors.New(config.ErrDanglingPercent)
	errNanosNoDot       = errors.New(config.ErrNanosNoDot)
	errLiteralAmbiguous = errors.New(config.ErrLiteralAmbiguous)
)

// formatters caches compiled patterns; keys are pattern strings.
var formatters sync.Map

// layoutFor translates a strftime pattern into a Go reference layout.
func layoutFor(pattern string) (string, error) {
	var out, lit strings.Builder

	flush := func() error {
		if err := checkLiteral(lit.String()); err != nil {
			return err
		}
		out.WriteString(lit.String())
		lit.Reset()
		return nil
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		i++
		if i == len(pattern) {
			return "", errDanglingPercent
		}

		verb := pattern[i]
		if verb == nanosVerb {
			pending := lit.String()
			if !strings.HasSuffix(pending, ".") {
				return "", errNanosNoDot
			}
			lit.Reset()
			lit.WriteString(strings.TrimSuffix(pending, "."))
			if err := flush(); err != nil {
				return "", err
			}
			out.WriteString(nanosLayout)
			continue
		}

		layout, ok := layoutTokens[verb]
		if !ok {
			return "", fmt.Errorf("%w: %%%c", errUnsupportedToken, verb)
		}
		if err := flush(); err != nil {
			return "", err
		}
		out.WriteString(layout)
	}

	if err := flush(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// checkLiteral rejects literal text that time.Parse would not match verbatim.
func checkLiteral(s string) error {
	if strings.ContainsAny(s, "0123456789") {
		return fmt.Errorf("%w: %q", errLiteralAmbiguous, s)
	}
	for _, w := range referenceWords {
		if strings.Contains(s, w) {
			return fmt.Errorf("%w: %q", errLiteralAmbiguous, s)
		}
	}
	return nil
}

// compile validates pattern against layoutTokens and returns a cached renderer.
func compile(pattern string) (*strftime.Strftime, error) {
	if f, ok := formatters.Load(pattern); ok {
		return f.(*strftime.Strftime), nil
	}

	if _, err := layoutFor(pattern); err != nil {
		return nil, err
	}

	f, err := strftime.New(pattern, strftime.WithSpecification(nanosVerb, nanosAppender{}))
	if err != nil {
		return nil, err
	}
	formatters.Store(pattern, f)
	return f, nil
}

// ValidatePattern reports whether pattern is accepted by both Format and Parse.
func ValidatePattern(pattern string) error {
	if _, err := compile(pattern); err != nil {
		return newError(ErrInvalidTimeFormat, "", pattern, err)
	}
	return nil
}

// nanosAppender renders %f as zero-padded nanoseconds.
type nanosAppender struct{}

func (nanosAppender) Append(b []byte, t time.Time) []byte {
	ns := strconv.Itoa(t.Nanosecond())
	for i := len(ns); i < config.NanosDigits; i++ {
		b = append(b, '0')
	}
	return append(b, ns...)
}
