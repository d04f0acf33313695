// Package batchio implements the line-oriented text protocol: the
// game-setup line shared by both modes, and the batch command loop
// that drives the engine from stdin and reports on stdout/stderr.
package batchio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/vovakirdan/gamma/internal/engine"
)

// Header is the parsed game-setup line: the mode selector followed by
// the four game parameters.
type Header struct {
	Mode     byte // 'B' for batch, 'I' for interactive
	Width    uint32
	Height   uint32
	Players  uint32
	MaxAreas uint32
}

// parseUint32 parses a token as a decimal uint32. Unlike
// strconv.ParseUint it rejects signs, leading plus, and any
// non-digit, so "-1", "+2" and "2x" are all invalid.
func parseUint32(tok string) (uint32, bool) {
	if tok == "" {
		return 0, false
	}
	var n uint64
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
		if n > math.MaxUint32 {
			return 0, false
		}
	}
	return uint32(n), true
}

// ignored reports whether a line carries no command: blank, or a
// comment whose first non-whitespace character is '#'.
func ignored(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || trimmed[0] == '#'
}

// ReadHeader consumes lines from sc until one parses as a valid
// game-setup line, reporting "ERROR <line>" on errw for every line
// that does not. It returns false when the input ends first. The line
// counter keeps counting across ignored and invalid lines so later
// error reports stay aligned with the input.
func ReadHeader(sc *bufio.Scanner, line *uint64, errw io.Writer) (Header, bool) {
	for sc.Scan() {
		*line++
		text := sc.Text()
		if ignored(text) {
			continue
		}

		h, ok := parseHeader(strings.Fields(text))
		if !ok {
			fmt.Fprintf(errw, "ERROR %d\n", *line)
			continue
		}
		return h, true
	}
	return Header{}, false
}

func parseHeader(fields []string) (Header, bool) {
	if len(fields) != 5 || len(fields[0]) != 1 {
		return Header{}, false
	}
	mode := fields[0][0]
	if mode != 'B' && mode != 'I' {
		return Header{}, false
	}

	var args [4]uint32
	for i, tok := range fields[1:] {
		n, ok := parseUint32(tok)
		if !ok || n == 0 {
			return Header{}, false
		}
		args[i] = n
	}

	return Header{
		Mode:     mode,
		Width:    args[0],
		Height:   args[1],
		Players:  args[2],
		MaxAreas: args[3],
	}, true
}

// Run executes the batch command loop: it acknowledges the setup line
// with "OK <line>" on out, then reads one command per line until the
// input is exhausted. Malformed lines produce "ERROR <line>" on errw;
// a well-formed move the engine rejects produces no output at all.
func Run(g *engine.Game, sc *bufio.Scanner, line *uint64, out, errw io.Writer) {
	fmt.Fprintf(out, "OK %d\n", *line)

	for sc.Scan() {
		*line++
		text := sc.Text()
		if ignored(text) {
			continue
		}
		if !runCommand(g, strings.Fields(text), out) {
			fmt.Fprintf(errw, "ERROR %d\n", *line)
		}
	}
}

// runCommand dispatches one tokenised command line. It returns false
// for commands that are malformed: unknown verb, wrong argument
// count, or arguments that do not parse. Engine-level rejections of
// well-formed moves are not reported.
func runCommand(g *engine.Game, fields []string, out io.Writer) bool {
	if len(fields) == 0 || len(fields[0]) != 1 {
		return false
	}

	switch fields[0][0] {
	case 'm', 'g':
		if len(fields) != 4 {
			return false
		}
		var args [3]uint32
		for i, tok := range fields[1:] {
			n, ok := parseUint32(tok)
			if !ok {
				return false
			}
			args[i] = n
		}
		if fields[0][0] == 'm' {
			g.Move(args[0], args[1], args[2])
		} else {
			g.GoldenMove(args[0], args[1], args[2])
		}
		return true

	case 'b', 'f', 'q':
		if len(fields) != 2 {
			return false
		}
		p, ok := parseUint32(fields[1])
		if !ok || p == 0 || p > g.PlayersNumber() {
			return false
		}
		switch fields[0][0] {
		case 'b':
			fmt.Fprintf(out, "%d\n", g.BusyFields(p))
		case 'f':
			fmt.Fprintf(out, "%d\n", g.FreeFields(p))
		default:
			result := 0
			if g.GoldenPossible(p) {
				result = 1
			}
			fmt.Fprintf(out, "%d\n", result)
		}
		return true

	case 'p':
		if len(fields) != 1 {
			return false
		}
		fmt.Fprint(out, g.Board())
		return true

	default:
		return false
	}
}
