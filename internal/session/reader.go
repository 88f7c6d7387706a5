package session

import (
	"fmt"
	"strconv"
)

// readOperand reads the next token and parses it as a signed decimal
// 64-bit integer. Whatever else remains on the line is discarded, so each
// operand read consumes at most one input line. Parse failures,
// out-of-range values, and end-of-input all surface as errors; the caller
// treats them uniformly as validation failures.
func (c *Controller) readOperand() (int64, error) {
	tok, atEOL, err := c.readToken()
	if !atEOL {
		c.discardLine()
	}
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseInt(tok, 10, 64)
	if perr != nil {
		return 0, fmt.Errorf("not a valid integer: %q", tok)
	}
	return v, nil
}

// readToken consumes one token from the input. Leading spaces and tabs
// are skipped; a bare newline yields an empty token. atEOL reports whether
// the terminator was a newline or end-of-input, meaning the line has
// already been fully consumed.
func (c *Controller) readToken() (tok string, atEOL bool, err error) {
	var buf []byte
	for {
		r, _, rerr := c.in.ReadRune()
		if rerr != nil {
			if len(buf) > 0 {
				return string(buf), true, nil
			}
			return "", true, rerr
		}
		switch r {
		case ' ', '\t', '\r':
			if len(buf) > 0 {
				return string(buf), false, nil
			}
			// still skipping leading whitespace
		case '\n':
			return string(buf), true, nil
		default:
			buf = append(buf, string(r)...)
		}
	}
}

// discardLine drains buffered input character by character up to and
// including the next line terminator or end-of-input.
func (c *Controller) discardLine() {
	for {
		r, _, err := c.in.ReadRune()
		if err != nil || r == '\n' {
			return
		}
	}
}
