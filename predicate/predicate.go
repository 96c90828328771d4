// Package predicate provides the filter predicates sent with search requests.
// A Predicate is a head Condition followed by linked predicates joined with
// And/Or, rendered either to the wire form consumed by the store or to a
// text-query form.
package predicate

import (
	"errors"
	"strings"
)

// ErrNilPredicate is returned when a nil predicate was linked into a chain.
var ErrNilPredicate = errors.New("nil linked predicate")

// Link is a connective together with the predicate it links.
type Link struct {
	Connective Connective
	Predicate  *Predicate
}

// Predicate is a chain of conditions joined left to right by connectives.
// Like Condition, it is mutated by its builder methods; linked predicates
// are copied on attach, so a predicate may be reused after linking it.
type Predicate struct {
	head  *Condition
	links []Link
}

// New creates a predicate whose head is a new condition on field.
func New(field string) *Predicate {
	return &Predicate{
		head:  NewCondition(field),
		links: nil,
	}
}

// Where creates a predicate whose head is a copy of the given condition.
func Where(condition *Condition) *Predicate {
	if condition == nil {
		condition = NewCondition("")
	}

	return &Predicate{
		head:  condition.clone(),
		links: nil,
	}
}

// Equal sets the head condition to field = value.
func (p *Predicate) Equal(value any) *Predicate {
	p.head.Equal(value)
	return p
}

// NotEqual sets the head condition to field <> value.
func (p *Predicate) NotEqual(value any) *Predicate {
	p.head.NotEqual(value)
	return p
}

// Less sets the head condition to field < value.
func (p *Predicate) Less(value any) *Predicate {
	p.head.Less(value)
	return p
}

// LessOrEqual sets the head condition to field <= value.
func (p *Predicate) LessOrEqual(value any) *Predicate {
	p.head.LessOrEqual(value)
	return p
}

// Greater sets the head condition to field > value.
func (p *Predicate) Greater(value any) *Predicate {
	p.head.Greater(value)
	return p
}

// GreaterOrEqual sets the head condition to field >= value.
func (p *Predicate) GreaterOrEqual(value any) *Predicate {
	p.head.GreaterOrEqual(value)
	return p
}

// Between sets the head condition to an inclusive range.
func (p *Predicate) Between(low, high any) *Predicate {
	p.head.Between(low, high)
	return p
}

// In sets the head condition to membership in values.
func (p *Predicate) In(values ...any) *Predicate {
	p.head.In(values...)
	return p
}

// And links other with the And connective.
func (p *Predicate) And(other *Predicate) *Predicate {
	return p.link(And, other)
}

// Or links other with the Or connective.
func (p *Predicate) Or(other *Predicate) *Predicate {
	return p.link(Or, other)
}

func (p *Predicate) link(connective Connective, other *Predicate) *Predicate {
	p.links = append(p.links, Link{
		Connective: connective,
		Predicate:  other.clone(),
	})

	return p
}

// Head returns a copy of the head condition.
func (p *Predicate) Head() *Condition {
	return p.head.clone()
}

// Links returns copies of the linked predicates in chain order.
func (p *Predicate) Links() []Link {
	out := make([]Link, 0, len(p.links))
	for _, l := range p.links {
		out = append(out, Link{Connective: l.Connective, Predicate: l.Predicate.clone()})
	}

	return out
}

// IsLeaf reports whether the predicate has no links.
func (p *Predicate) IsLeaf() bool {
	return len(p.links) == 0
}

func (p *Predicate) clone() *Predicate {
	if p == nil {
		return nil
	}

	links := make([]Link, 0, len(p.links))
	for _, l := range p.links {
		links = append(links, Link{Connective: l.Connective, Predicate: l.Predicate.clone()})
	}

	return &Predicate{
		head:  p.head.clone(),
		links: links,
	}
}

// empty reports a nil or zero-value predicate, which has no head condition.
func (p *Predicate) empty() bool {
	return p == nil || p.head == nil
}

func errEmptyPredicate() error {
	return errMalformed("", "none", "", ErrMissingOperator)
}

// Validate checks every condition of the chain.
func (p *Predicate) Validate() error {
	_, err := p.Wire()
	return err
}

// Wire returns the wire form: the head condition followed by alternating
// connective codes and linked predicate wire forms.
func (p *Predicate) Wire() ([]any, error) {
	if p.empty() {
		return nil, errEmptyPredicate()
	}

	head, err := p.head.Wire()
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, 1+2*len(p.links))
	out = append(out, head)

	for _, l := range p.links {
		if l.Predicate == nil {
			return nil, errMalformed(p.head.field, l.Connective.String(), "", ErrNilPredicate)
		}

		sub, err := l.Predicate.Wire()
		if err != nil {
			return nil, err
		}

		out = append(out, l.Connective.Code(), sub)
	}

	return out, nil
}

// Text returns the flat text-query form. Linked predicates are appended as
// " AND <text>" / " OR <text>" without parentheses, so mixed chains are read
// with the consumer's own precedence.
func (p *Predicate) Text() (string, error) {
	if p.empty() {
		return "", errEmptyPredicate()
	}

	head, err := p.head.Text()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(head)

	for _, l := range p.links {
		if l.Predicate == nil {
			return "", errMalformed(p.head.field, l.Connective.String(), "", ErrNilPredicate)
		}

		sub, err := l.Predicate.Text()
		if err != nil {
			return "", err
		}

		sb.WriteString(" ")
		sb.WriteString(l.Connective.String())
		sb.WriteString(" ")
		sb.WriteString(sub)
	}

	return sb.String(), nil
}
