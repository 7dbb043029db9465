// Package chain composes commands into typed pipelines.
//
// A chain pairs the first command to execute with the last command
// appended, so a pipeline keeps growing at the tail while staying
// executable from the head. Appending checks at compile time that the next
// command's input type equals the current tail's output type. Key pieces:
// - New: start a chain at a head command
// - Append and AppendFunc/AppendTry/AppendProc: extend the tail, returning
//   a new chain value typed by the new output
// - Execute/Run: start the pipeline with an error handler for the first
//   failure, without waiting for asynchronous steps
// - Await: start the pipeline and block for the terminal output or the
//   first failure
//
// Chain values are handles over shared command state: appending consumes
// the current tail's continuation slot, so each chain value can be
// extended once, and extending composes before executing, never during.
package chain
