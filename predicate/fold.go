package predicate

// Step is a condition of a flattened chain together with the connective
// joining it to everything before it.
type Step struct {
	Connective Connective
	Condition  *Condition
}

// Flatten returns the conditions of the chain in text order. The head step
// carries And, which has no meaning for it.
func (p *Predicate) Flatten() ([]Step, error) {
	if p.empty() {
		return nil, errEmptyPredicate()
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p.flatten(And, nil), nil
}

func (p *Predicate) flatten(connective Connective, out []Step) []Step {
	out = append(out, Step{Connective: connective, Condition: p.head.clone()})

	for _, l := range p.links {
		out = l.Predicate.flatten(l.Connective, out)
	}

	return out
}

// Fold reduces the chain strictly left to right, the way its text form reads:
// `a AND b OR c` is folded as `(a AND b) OR c`.
func Fold[T any](
	p *Predicate,
	leaf func(*Condition) (T, error),
	join func(Connective, T, T) T,
) (T, error) {
	var acc T

	steps, err := p.Flatten()
	if err != nil {
		return acc, err
	}

	for i, step := range steps {
		value, err := leaf(step.Condition)
		if err != nil {
			return acc, err
		}

		if i == 0 {
			acc = value
			continue
		}

		acc = join(step.Connective, acc, value)
	}

	return acc, nil
}
