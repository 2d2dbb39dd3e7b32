// File: entrypoint.go
// Role: Entrypoint — the Go rendering of the original's `@entrypoint`
// decorator: create a fresh Step, run the wrapped function with that Step
// bound, and package the function's Operation and the Step it populated
// into a Result once the function returns.
//
// AI-Hints (file):
//   - The original's entrypoint asserts the wrapped function returns no
//     value (all output flows through step.result(...)); the Go rendering
//     keeps that shape for the Step side (fn returns only an error) while
//     letting the caller supply allowedKeys to validate what the function
//     was permitted to derive.
package ledger

// Func is the shape of an entrypoint-wrapped function: it receives the
// fresh Step bound for this call and records its log entries, assumptions,
// and derived results on it, returning only an error (mirroring the
// original's "must return no value" contract — every actual output is
// recorded via step.Derive).
type Func func(step *Step) error

// Entrypoint runs fn under a fresh Step named stepName, then packages the
// given Operation and the populated Step into a Result whose derived keys
// are checked against allowedKeys (nil means unrestricted). If fn returns
// an error, Entrypoint still returns the partially-populated Step's Result
// where possible, paired with fn's error, so partial provenance survives a
// failed call; if key validation itself fails, that error takes precedence.
func Entrypoint(stepName string, op Operation, allowedKeys []string, fn Func) (*Result, error) {
	step := NewStep(stepName)
	fnErr := fn(step)
	if fnErr != nil {
		step.Write("Failed: " + fnErr.Error())
	}

	result, resErr := NewResult(step, op, allowedKeys)
	if resErr != nil {
		return nil, resErr
	}

	return result, fnErr
}
