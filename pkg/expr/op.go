package expr

import (
	"errors"
	"fmt"
)

// Op identifies one of the five binary connectives.
type Op uint8

const (
	OpAnd Op = iota
	OpOr
	OpXor
	OpImpl
	OpLeq
)

// Parse errors. InvalidCharacterError carries the offending byte; the
// other two are sentinel values.
var (
	ErrMissingOperand       = errors.New("missing operand")
	ErrUnbalancedExpression = errors.New("unbalanced expression")
)

// InvalidCharacterError reports a token outside the accepted alphabet.
type InvalidCharacterError struct {
	Char byte
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character: %q", e.Char)
}

func opFromByte(c byte) (Op, error) {
	switch c {
	case '&':
		return OpAnd, nil
	case '|':
		return OpOr, nil
	case '^':
		return OpXor, nil
	case '>':
		return OpImpl, nil
	case '=':
		return OpLeq, nil
	default:
		return 0, InvalidCharacterError{Char: c}
	}
}

// Byte returns the wire character of the operator.
func (op Op) Byte() byte {
	switch op {
	case OpAnd:
		return '&'
	case OpOr:
		return '|'
	case OpXor:
		return '^'
	case OpImpl:
		return '>'
	case OpLeq:
		return '='
	default:
		panic(fmt.Sprintf("unknown operator %d", op))
	}
}

func (op Op) String() string {
	return string(op.Byte())
}

// commutative reports whether operand order is semantically irrelevant.
func (op Op) commutative() bool {
	return op != OpImpl
}

func (op Op) apply(a, b bool) bool {
	switch op {
	case OpAnd:
		return a && b
	case OpOr:
		return a || b
	case OpXor:
		return a != b
	case OpImpl:
		return !a || b
	case OpLeq:
		return a == b
	default:
		panic(fmt.Sprintf("unknown operator %d", op))
	}
}
