// Package application coordinates the trainer's components on behalf of a
// user interface.
//
// A Trainer is either editing ranges or running a drill. While drilling,
// range and preset edits are rejected so that the ground truth cannot change
// under the quiz.
package application
