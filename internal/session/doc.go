// Package session implements the interactive addition session: a
// fixed-length loop that reads two validated operands per round, adds them
// with overflow checking, and accumulates a running sum.
//
// The Controller owns all mutable session state exclusively and drives an
// explicit state machine. Malformed input is retried against a per-slot
// attempt budget; exhausting a budget skips the round rather than aborting
// the session, so no input can be fatal.
package session
