// Package ansi decodes ANSI SGR color escape sequences embedded in log
// text into discrete styled runs. It is not a terminal emulator: only
// color attributes are interpreted, and every other escape sequence is
// stripped without effect.
package ansi

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// StyledRun is a maximal contiguous fragment of text sharing one
// resolved foreground color.
type StyledRun struct {
	Text  string
	Color tcell.Color
}

const esc = '\x1b'

// scanState tracks the decoder position within an escape sequence.
type scanState int

const (
	stateGround scanState = iota // accumulating printable text
	stateEscape                  // saw ESC, expecting '['
	stateParams                  // inside a CSI sequence, reading parameter bytes
)

// Decode converts a single record's text into an ordered sequence of
// styled runs. The color register starts at base; SGR foreground codes
// override it until the next reset (which returns to base) or the end
// of the input. A newline terminates the pending run and resets the
// register to base, so color never leaks across physical lines.
// Malformed or unsupported sequences are dropped without affecting the
// surrounding text. Decode is a pure function: it touches no shared
// state and the same input always yields the same runs.
func Decode(text string, base tcell.Color) []StyledRun {
	var runs []StyledRun
	var pending strings.Builder
	var params strings.Builder
	current := base
	state := stateGround

	flush := func(color tcell.Color) {
		if pending.Len() == 0 {
			return
		}
		runs = append(runs, StyledRun{Text: pending.String(), Color: color})
		pending.Reset()
	}

	for _, r := range text {
		switch state {
		case stateGround:
			switch r {
			case esc:
				state = stateEscape
			case '\n':
				pending.WriteRune('\n')
				flush(current)
				current = base
			default:
				pending.WriteRune(r)
			}
		case stateEscape:
			switch r {
			case '[':
				params.Reset()
				state = stateParams
			case esc:
				// Stay put; the previous ESC introduced nothing.
			default:
				// Not a CSI sequence. Drop the ESC and treat the
				// character as ordinary text.
				state = stateGround
				pending.WriteRune(r)
			}
		case stateParams:
			switch {
			case (r >= '0' && r <= '9') || r == ';':
				params.WriteRune(r)
			case r == 'm':
				flush(current)
				current = applySGR(params.String(), current, base)
				state = stateGround
			default:
				// Non-SGR final byte (cursor movement, erase, ...) or
				// a byte that cannot appear in an SGR sequence. Strip
				// the whole sequence and keep scanning.
				state = stateGround
			}
		}
	}
	// An unterminated escape sequence at end of input is discarded;
	// whatever text preceded it is still emitted.
	flush(current)
	return runs
}

// applySGR resolves a raw SGR parameter string against the current
// color register. Unrecognized codes have no effect.
func applySGR(raw string, current, base tcell.Color) tcell.Color {
	if raw == "" {
		// "ESC[m" is shorthand for a full reset.
		return base
	}
	color := current
	parts := strings.Split(raw, ";")
	for i := 0; i < len(parts); i++ {
		code := 0
		if parts[i] != "" {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				continue
			}
			code = n
		}
		switch {
		case code == 0 || code == 39:
			color = base
		case code >= 30 && code <= 37:
			color = tcell.PaletteColor(code - 30)
		case code >= 90 && code <= 97:
			color = tcell.PaletteColor(code - 90 + 8)
		case code == 38 || code == 48:
			// Extended color. Consume its arguments even for the
			// background form so they are not misread as separate
			// codes; only the foreground form changes the register.
			value, consumed := extendedColor(parts[i+1:])
			if consumed == 0 {
				// Malformed extended sequence; nothing sensible
				// follows, so stop interpreting this sequence.
				return color
			}
			if code == 38 {
				color = value
			}
			i += consumed
		}
	}
	return color
}

// extendedColor parses the arguments of an SGR 38/48 extended color
// specification ("5;n" or "2;r;g;b"). It returns the resolved color and
// the number of parameters consumed, or zero if the arguments are
// malformed.
func extendedColor(args []string) (tcell.Color, int) {
	if len(args) == 0 {
		return tcell.ColorDefault, 0
	}
	switch args[0] {
	case "5":
		if len(args) < 2 {
			return tcell.ColorDefault, 0
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 || n > 255 {
			return tcell.ColorDefault, 0
		}
		return tcell.PaletteColor(n), 2
	case "2":
		if len(args) < 4 {
			return tcell.ColorDefault, 0
		}
		rgb := make([]int32, 3)
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(args[1+i])
			if err != nil || n < 0 || n > 255 {
				return tcell.ColorDefault, 0
			}
			rgb[i] = int32(n)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), 4
	}
	return tcell.ColorDefault, 0
}
