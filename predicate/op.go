package predicate

// Op represents the comparison operation type for conditions.
type Op int

const (
	// OpEqual represents equality comparison.
	OpEqual Op = iota
	// OpNotEqual represents inequality comparison.
	OpNotEqual
	// OpLess represents less than comparison.
	OpLess
	// OpLessOrEqual represents less than or equal comparison.
	OpLessOrEqual
	// OpGreater represents greater than comparison.
	OpGreater
	// OpGreaterOrEqual represents greater than or equal comparison.
	OpGreaterOrEqual
	// OpBetween represents an inclusive range check with low and high bounds.
	OpBetween
	// OpIn represents membership in a set of values.
	OpIn
)

const (
	singleArity  = 1
	betweenArity = 2
)

//nolint: gochecknoglobals
var (
	opNames = map[Op]string{
		OpEqual:          "Equal",
		OpNotEqual:       "NotEqual",
		OpLess:           "Less",
		OpLessOrEqual:    "LessOrEqual",
		OpGreater:        "Greater",
		OpGreaterOrEqual: "GreaterOrEqual",
		OpBetween:        "Between",
		OpIn:             "In",
	}

	opCodes = map[Op]string{
		OpEqual:          "EQ",
		OpNotEqual:       "NOT_EQ",
		OpLess:           "LT",
		OpLessOrEqual:    "LT_EQ",
		OpGreater:        "GT",
		OpGreaterOrEqual: "GT_EQ",
		OpBetween:        "BETWEEN",
		OpIn:             "IN",
	}

	opTokens = map[Op]string{
		OpEqual:          "=",
		OpNotEqual:       "<>",
		OpLess:           "<",
		OpLessOrEqual:    "<=",
		OpGreater:        ">",
		OpGreaterOrEqual: ">=",
		OpBetween:        "between",
		OpIn:             "in",
	}
)

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}

	return "Unknown"
}

// Code returns the wire code of the operation, as sent in the "x" slot of a
// condition. Unknown operations return an empty string.
func (op Op) Code() string {
	return opCodes[op]
}

// Token returns the text-query token of the operation.
func (op Op) Token() string {
	return opTokens[op]
}

// Valid reports whether op is one of the declared operations.
func (op Op) Valid() bool {
	_, ok := opCodes[op]
	return ok
}

// CheckArity reports whether n operands satisfy the operation.
// Comparisons take exactly one operand, Between exactly two (low, high)
// and In at least one.
func (op Op) CheckArity(n int) bool {
	switch op {
	case OpEqual, OpNotEqual, OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual:
		return n == singleArity
	case OpBetween:
		return n == betweenArity
	case OpIn:
		return n >= singleArity
	default:
		return false
	}
}

// arity describes the expected operand count for error messages.
func (op Op) arity() string {
	switch op {
	case OpBetween:
		return "exactly 2 operands"
	case OpIn:
		return "at least 1 operand"
	default:
		return "exactly 1 operand"
	}
}

// ParseOp returns the operation for a wire code.
func ParseOp(code string) (Op, error) {
	for op, c := range opCodes {
		if c == code {
			return op, nil
		}
	}

	return 0, errUnknownOperator(code)
}
