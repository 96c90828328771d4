package predicate

// Connective joins a predicate with the next linked predicate.
// Chains are evaluated strictly left to right, there is no precedence
// between And and Or.
type Connective int

const (
	// And requires both sides to hold.
	And Connective = iota
	// Or requires at least one side to hold.
	Or
)

func (c Connective) String() string {
	switch c {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "Unknown"
	}
}

// Code returns the wire code of the connective.
func (c Connective) Code() string {
	return c.String()
}

// ParseConnective returns the connective for a wire code.
func ParseConnective(code string) (Connective, error) {
	switch code {
	case "AND":
		return And, nil
	case "OR":
		return Or, nil
	default:
		return 0, errUnknownConnective(code)
	}
}
