// Package errors defines the error taxonomy surfaced at the A-Tree API
// boundary (spec §7).
package errors

import (
	"fmt"
)

// ErrorType enumerates the closed set of A-Tree error kinds. The API
// boundary kinds come from spec §7; the rest are internal-consistency
// kinds that indicate an engine bug rather than bad input.
type ErrorType int

const (
	// DuplicateAttribute: schema construction registered the same
	// attribute name twice.
	DuplicateAttribute ErrorType = iota
	// UnknownAttribute: predicate construction referenced a name the
	// schema never registered.
	UnknownAttribute
	// SchemaMismatch: a PredicateKind variant was built against an
	// attribute of the wrong AttributeKind.
	SchemaMismatch
	// InvalidExpression: add_rule received a nil or structurally
	// degenerate expression tree.
	InvalidExpression

	// ExecutionError: an internal inconsistency surfaced during
	// matching (stale index, unreachable variant). Always a bug.
	ExecutionError
	// CorruptDag: a DAG invariant from spec §3 was violated
	// (expression_id_to_index collision, dangling parent index, ...).
	CorruptDag
	// IO/YAML: ambient fixture-loading errors (schema loaded from a
	// YAML file in tests/examples), not part of the core contract.
	IOError
	YAMLError
)

func (t ErrorType) String() string {
	switch t {
	case DuplicateAttribute:
		return "DUPLICATE_ATTRIBUTE"
	case UnknownAttribute:
		return "UNKNOWN_ATTRIBUTE"
	case SchemaMismatch:
		return "SCHEMA_MISMATCH"
	case InvalidExpression:
		return "INVALID_EXPRESSION"
	case ExecutionError:
		return "EXECUTION_ERROR"
	case CorruptDag:
		return "CORRUPT_DAG"
	case IOError:
		return "IO_ERROR"
	case YAMLError:
		return "YAML_ERROR"
	default:
		return "UNKNOWN"
	}
}

// AtreeError is the single concrete error type returned at the API
// boundary. Attribute/ExpectedKind/ActualKind are populated for
// SchemaMismatch so callers can build their own diagnostics without
// string-parsing Error().
type AtreeError struct {
	Type         ErrorType
	Message      string
	Attribute    string
	ExpectedKind string
	ActualKind   string
	Cause        error
}

func (e *AtreeError) Error() string {
	switch e.Type {
	case DuplicateAttribute:
		return fmt.Sprintf("duplicate attribute: %s", e.Attribute)
	case UnknownAttribute:
		return fmt.Sprintf("unknown attribute: %s", e.Attribute)
	case SchemaMismatch:
		return fmt.Sprintf("schema mismatch on %s: expected %s, got predicate for %s",
			e.Attribute, e.ExpectedKind, e.ActualKind)
	case InvalidExpression:
		return fmt.Sprintf("invalid expression: %s", e.Message)
	case ExecutionError:
		return fmt.Sprintf("execution error: %s", e.Message)
	case CorruptDag:
		return fmt.Sprintf("corrupt dag: %s", e.Message)
	case IOError:
		return fmt.Sprintf("io error: %s", e.Message)
	case YAMLError:
		return fmt.Sprintf("yaml error: %s", e.Message)
	default:
		return fmt.Sprintf("unknown error: %s", e.Message)
	}
}

func (e *AtreeError) Unwrap() error {
	return e.Cause
}

func (e *AtreeError) Is(target error) bool {
	other, ok := target.(*AtreeError)
	if !ok {
		return false
	}
	return e.Type == other.Type
}

func NewDuplicateAttribute(name string) *AtreeError {
	return &AtreeError{Type: DuplicateAttribute, Attribute: name}
}

func NewUnknownAttribute(name string) *AtreeError {
	return &AtreeError{Type: UnknownAttribute, Attribute: name}
}

func NewSchemaMismatch(attribute, expectedKind, actualKind string) *AtreeError {
	return &AtreeError{Type: SchemaMismatch, Attribute: attribute, ExpectedKind: expectedKind, ActualKind: actualKind}
}

func NewInvalidExpression(message string) *AtreeError {
	return &AtreeError{Type: InvalidExpression, Message: message}
}

func NewExecutionError(message string) *AtreeError {
	return &AtreeError{Type: ExecutionError, Message: message}
}

func NewCorruptDag(message string) *AtreeError {
	return &AtreeError{Type: CorruptDag, Message: message}
}

func WrapIOError(err error) *AtreeError {
	if err == nil {
		return nil
	}
	return &AtreeError{Type: IOError, Message: err.Error(), Cause: err}
}

func WrapYAMLError(err error) *AtreeError {
	if err == nil {
		return nil
	}
	return &AtreeError{Type: YAMLError, Message: err.Error(), Cause: err}
}
