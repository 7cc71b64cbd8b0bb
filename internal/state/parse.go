package state

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads absolute path command text of the form produced by Serialize.
// Every command must carry its own letter; the shorthand of repeating
// coordinates after one letter is not accepted. Points read from Q, S and C
// commands are curved.
func Parse(text string) (Sequence, error) {
	toks := tokenize(text)
	var seq Sequence
	open := false
	for i := 0; i < len(toks); {
		cmd := toks[i]
		k, err := ParseKind(cmd)
		if err != nil || len(cmd) != 1 {
			return nil, fmt.Errorf("token %d %q is not a command: %w", i, cmd, ErrSyntax)
		}
		if unicode.IsLower(rune(cmd[0])) {
			return nil, fmt.Errorf("relative command %q: %w", cmd, ErrSyntax)
		}
		i++
		n := 2 * (k.Handles() + 1)
		if k == KindClose {
			n = 0
		}
		if i+n > len(toks) {
			return nil, fmt.Errorf("command %s needs %d numbers: %w", cmd, n, ErrSyntax)
		}
		nums := make([]float64, n)
		for j := range nums {
			v, err := strconv.ParseFloat(toks[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("command %s: %v: %w", cmd, err, ErrSyntax)
			}
			nums[j] = v
		}
		i += n

		switch k {
		case KindMoveTo:
			seq = append(seq, NewMoveTo(V(nums[0], nums[1])))
			open = true
			continue
		case KindClose:
			if !open {
				return nil, fmt.Errorf("close without a subpath: %w", ErrSyntax)
			}
			seq = append(seq, NewClose())
			open = false
			continue
		}
		if !open {
			return nil, fmt.Errorf("command %s before M: %w", cmd, ErrSyntax)
		}
		seq = append(seq, pointFromNumbers(k, nums))
	}
	return seq, nil
}

// MustParse is like Parse but panics on error. It is meant for fixtures.
func MustParse(text string) Sequence {
	seq, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return seq
}

func pointFromNumbers(k Kind, nums []float64) Point {
	at := V(nums[len(nums)-2], nums[len(nums)-1])
	p := NewPoint(k, at)
	switch p := p.(type) {
	case *Double:
		p.Ctrl = V(nums[0], nums[1])
		p.Curved = true
	case *Triple:
		p.Ctrl = V(nums[0], nums[1])
		p.Ctrl2 = V(nums[2], nums[3])
		p.Curved = true
	}
	return p
}

// tokenize splits on whitespace and commas and separates command letters
// from numbers written against them ("M10,20L5" -> "M", "10", "20", "L", "5").
func tokenize(text string) []string {
	var (
		toks []string
		cur  strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r) || r == ',':
			flush()
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			flush()
			toks = append(toks, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
