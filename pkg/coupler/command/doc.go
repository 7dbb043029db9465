// Package command defines the unit-of-work contract for chain steps and
// the shared execution protocol that routes each step's outcome.
//
// A command declares an Input and an Output type, performs its work in Main
// (synchronously or on another goroutine) and reports through a completion
// callback that must be invoked exactly once. Key pieces:
// - Command/Tail: the capability contract, including the set-once
//   continuation slot every command carries
// - Slot: the embeddable continuation holder for named command types
// - Execute/Launch: run one command, routing success to its continuation
//   and failure to the execution's single error handler
// - NewFunc/NewTry/NewProc/NewAsync: adapt plain functions into commands
// - WithLogger/WithExecutionID: context-scoped execution options
// - Scenario: a When/Then harness for testing command implementations
//
// Composition lives in the chain package; this package only defines what a
// single step is and how one step hands off to the next.
package command
