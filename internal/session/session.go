package session

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vk/sumloop/internal/adder"
	"github.com/vk/sumloop/internal/ctxlog"
)

// Console literals. The transcript on the output writer consists of
// exactly these strings; tests assert on them verbatim.
const (
	roundBannerFormat = "Rounds remaining: %d\n"
	runningSumFormat  = "Running sum: %d\n"
	finalSumFormat    = "Final sum: %d\n"
	invalidInputText  = "Invalid input, expected an integer.\n"
	skipRoundText     = "Too many invalid attempts, skipping this round.\n"
	overflowText      = "overflow detected, substituting 0\n"
)

// state enumerates the controller's per-round phases.
type state int

const (
	awaitFirstOperand state = iota
	awaitSecondOperand
	computeAndAccumulate
	skipRound
	roundDone
	sessionDone
)

// Config holds the resolved parameters for one session.
type Config struct {
	// Iterations is the number of rounds to run.
	Iterations int
	// Attempts is the validation retry budget for each input slot.
	Attempts int
	// Prompt is printed before each operand read, without a trailing
	// newline.
	Prompt string
}

// Controller runs one addition session. It exclusively owns all mutable
// session state; it is not safe for concurrent use and never needs to be:
// the session is strictly sequential, and the blocking operand read is its
// only suspension point.
type Controller struct {
	cfg  Config
	in   *bufio.Reader
	out  io.Writer
	diag io.Writer

	sum       int64
	remaining int
	budget    int
	first     int64
	second    int64
	state     state
}

// New creates a Controller reading operands from in, writing the console
// transcript to out, and writing diagnostics (such as overflow notices)
// to diag.
func New(cfg Config, in io.Reader, out, diag io.Writer) *Controller {
	return &Controller{
		cfg:  cfg,
		in:   bufio.NewReader(in),
		out:  out,
		diag: diag,
	}
}

// Run executes the session to completion and returns the final sum. The
// only termination path is finishing all rounds: validation failures,
// exhausted budgets, and arithmetic overflow all degrade to
// zero-contribution outcomes.
func (c *Controller) Run(ctx context.Context) (int64, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Session started.",
		"iterations", c.cfg.Iterations,
		"attempts", c.cfg.Attempts,
	)

	c.sum = 0
	c.remaining = c.cfg.Iterations
	c.beginRound()

	for c.state != sessionDone {
		switch c.state {
		case awaitFirstOperand:
			if v, ok := c.acquireOperand(); ok {
				c.first = v
				// The second slot gets a full budget of its own.
				c.budget = c.cfg.Attempts
				c.state = awaitSecondOperand
			}

		case awaitSecondOperand:
			if v, ok := c.acquireOperand(); ok {
				c.second = v
				c.state = computeAndAccumulate
			}

		case computeAndAccumulate:
			result, err := adder.Add(c.first, c.second)
			if err != nil {
				// Report, then fall back to the safe sentinel 0. The
				// running sum keeps its prior value.
				fmt.Fprint(c.diag, overflowText)
				logger.Warn("Operand sum overflowed, substituting 0.",
					"first", c.first,
					"second", c.second,
				)
				result = 0
			}
			c.sum += result
			fmt.Fprintf(c.out, runningSumFormat, c.sum)
			c.state = roundDone

		case skipRound:
			fmt.Fprint(c.out, skipRoundText)
			fmt.Fprintf(c.out, runningSumFormat, c.sum)
			logger.Warn("Round skipped after exhausted attempt budget.",
				"rounds_remaining", c.remaining,
			)
			c.state = roundDone

		case roundDone:
			c.remaining--
			c.beginRound()
		}
	}

	fmt.Fprintf(c.out, finalSumFormat, c.sum)
	logger.Debug("Session finished.", "final_sum", c.sum)
	return c.sum, nil
}

// beginRound announces the next round and resets the first slot's attempt
// budget, or ends the session when no rounds remain.
func (c *Controller) beginRound() {
	if c.remaining <= 0 {
		c.state = sessionDone
		return
	}
	fmt.Fprintf(c.out, roundBannerFormat, c.remaining)
	c.budget = c.cfg.Attempts
	c.state = awaitFirstOperand
}

// acquireOperand attempts one validated read for the current slot. It
// returns (value, true) on success. On a validation failure it reports,
// spends one attempt, and returns false with the state unchanged so the
// slot is retried; when the budget is exhausted it moves to skipRound.
func (c *Controller) acquireOperand() (int64, bool) {
	if c.budget <= 0 {
		c.state = skipRound
		return 0, false
	}
	fmt.Fprint(c.out, c.cfg.Prompt)
	v, err := c.readOperand()
	if err != nil {
		// End-of-input and malformed tokens are the same recoverable
		// validation failure; the budget bounds both.
		fmt.Fprint(c.out, invalidInputText)
		c.budget--
		if c.budget <= 0 {
			c.state = skipRound
		}
		return 0, false
	}
	return v, true
}
