// Package drill implements the quiz that tests recall of the saved ranges.
//
// # States
//
// An Engine starts Idle. Start moves it to InProgress and deals the first
// hand; each Answer scores the current hand against the live ranges and deals
// the next one until the target length is reached, when the engine becomes
// Complete. Score and results stay available until the next Start or Reset.
//
// Hands are sampled uniformly: a position, then a row and a column of its
// matrix. Repeats within a session are allowed.
package drill
