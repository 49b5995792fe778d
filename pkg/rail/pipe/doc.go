// Package pipe lifts the deferred operators over channels for processing
// many independent inputs on a fixed number of worker lines. Every input
// yields its own result; nothing is merged across inputs.
//
// Common usage:
// - ToChanResults/Collect: feed values in, drain values out
// - Run/Turnout: fan an Engine over an input channel with worker lines
// - LiftMap/LiftThen/LiftTry/LiftValidate: build Engines from step functions
// - Finalize: map Result[In] to Out on completion
package pipe
