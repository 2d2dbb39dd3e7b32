// File: operation.go
// Role: Operation — the computer-replicability half of provenance: a
// record of (function identifier, positional args, named args) that
// produced a Result. Arguments that are themselves *Result values are what
// forms the dependency DAG (see result.go).
package ledger

// Operation captures how a Result was produced: which function ran, and
// with which arguments. FuncID is a stable string name chosen at the
// entrypoint call site (e.g. "identify.ID", "estimate.Estimate") rather
// than a reflected function value, since Go has no portable runtime
// function identity suitable for replay or display.
type Operation struct {
	FuncID string
	Args   []interface{}
	Kwargs map[string]interface{}
}

// NewOperation builds an Operation record. args and kwargs are copied
// defensively.
func NewOperation(funcID string, args []interface{}, kwargs map[string]interface{}) Operation {
	argsCopy := append([]interface{}(nil), args...)
	kwargsCopy := make(map[string]interface{}, len(kwargs))
	for k, v := range kwargs {
		kwargsCopy[k] = v
	}

	return Operation{FuncID: funcID, Args: argsCopy, Kwargs: kwargsCopy}
}
