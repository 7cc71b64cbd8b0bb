package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxDecimals is the largest supported number of decimal places.
const MaxDecimals = 5

var (
	// ErrSyntax is returned by Parse for text it cannot read.
	ErrSyntax = errors.New("path syntax error")
	// ErrMalformed marks a point skipped during serialization.
	ErrMalformed = errors.New("malformed point")
)

// Warning describes a point whose geometry was left out of the serialized
// text.
type Warning struct {
	Index  int
	Reason string
}

func (w Warning) Error() string {
	return fmt.Sprintf("point %d: %s: %s", w.Index, ErrMalformed, w.Reason)
}

func (w Warning) Unwrap() error { return ErrMalformed }

// ClampDecimals limits d to [0, MaxDecimals].
func ClampDecimals(d int) int {
	return max(0, min(d, MaxDecimals))
}

// Serialize writes the sequence as path command text with the given number
// of decimal places. Malformed points still emit their command token, but
// their coordinates are left out and reported as warnings.
func (s Sequence) Serialize(decimals int) (string, []Warning) {
	decimals = ClampDecimals(decimals)
	var (
		b        strings.Builder
		warnings []Warning
	)
	emit := func(tok string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	coords := func(vs ...Vec) {
		for _, v := range vs {
			emit(formatNumber(v.X, decimals))
			emit(formatNumber(v.Y, decimals))
		}
	}

	for i, p := range s {
		if p == nil {
			warnings = append(warnings, Warning{Index: i, Reason: "nil point"})
			continue
		}
		if reason := malformed(p); reason != "" {
			warnings = append(warnings, Warning{Index: i, Reason: reason})
			emit(p.Kind().Command())
			continue
		}
		switch p := p.(type) {
		case *Close:
			emit(KindClose.Command())
		case *MoveTo:
			emit(KindMoveTo.Command())
			coords(p.At)
		case *Single:
			emit(p.Type.Command())
			coords(p.At)
		case *Double:
			if !p.Curved {
				emit(KindLineTo.Command())
				coords(p.At)
				continue
			}
			emit(p.Type.Command())
			coords(p.Ctrl, p.At)
		case *Triple:
			if !p.Curved {
				emit(KindLineTo.Command())
				coords(p.At)
				continue
			}
			emit(KindCubic.Command())
			coords(p.Ctrl, p.Ctrl2, p.At)
		}
	}
	return b.String(), warnings
}

// String serializes with no decimal places and drops warnings.
func (s Sequence) String() string {
	text, _ := s.Serialize(0)
	return text
}

func malformed(p Point) string {
	switch p := p.(type) {
	case *Single:
		if p.Type != KindLineTo && p.Type != KindSmoothEndpoint {
			return fmt.Sprintf("single point with kind %s", p.Type)
		}
	case *Double:
		if p.Type != KindQuadratic && p.Type != KindSmoothQuadratic {
			return fmt.Sprintf("double point with kind %s", p.Type)
		}
	}
	for _, v := range Coords(p) {
		if !v.finite() {
			return "non-finite coordinate"
		}
	}
	return ""
}

func formatNumber(f float64, decimals int) string {
	out := strconv.FormatFloat(f, 'f', decimals, 64)
	// -0.00 prints as 0.00
	if strings.TrimLeft(out, "-0.") == "" {
		out = strings.TrimPrefix(out, "-")
	}
	return out
}
