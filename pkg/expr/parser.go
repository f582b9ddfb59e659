package expr

// Parse reads an RPN formula in a single left-to-right pass over an
// auxiliary stack of nodes. '!' increments the negation count of the
// top of stack; a binary operator pops the right operand first, then
// the left (the order is observable for '>').
func Parse(s string) (*Tree, error) {
	stack := make([]Node, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '0' || c == '1':
			stack = append(stack, NewConst(c == '1'))
		case c >= 'A' && c <= 'Z':
			stack = append(stack, NewVar(c))
		case c == '!':
			if len(stack) == 0 {
				return nil, ErrMissingOperand
			}
			stack[len(stack)-1].Not++
		default:
			op, err := opFromByte(c)
			if err != nil {
				return nil, err
			}
			if len(stack) < 2 {
				return nil, ErrMissingOperand
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, NewBinary(op, left, right))
		}
	}
	if len(stack) != 1 {
		return nil, ErrUnbalancedExpression
	}
	return New(stack[0]), nil
}
