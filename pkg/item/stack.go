package item

import "fmt"

// MaxStackSize is the largest amount a single slot holds.
const MaxStackSize = 64

// Stack is an amount of a single material. The zero value is an empty stack.
type Stack struct {
	Material Material
	Amount   int
}

// Of returns a stack of amount items of m.
func Of(m Material, amount int) Stack {
	return Stack{Material: m, Amount: amount}
}

// Empty returns an empty stack.
func Empty() Stack { return Stack{Material: Air} }

// IsEmpty reports whether the stack holds nothing.
func (s Stack) IsEmpty() bool {
	return s.Amount <= 0 || s.Material == Air
}

// WithAmount returns a copy of s holding n items.
func (s Stack) WithAmount(n int) Stack {
	s.Amount = n
	return s
}

// Similar reports whether both stacks hold the same material.
func (s Stack) Similar(o Stack) bool {
	return s.Material == o.Material
}

// Space returns how many more items fit on top of s.
func (s Stack) Space() int {
	if s.IsEmpty() {
		return MaxStackSize
	}
	return max(MaxStackSize-s.Amount, 0)
}

// Normalize collapses any empty stack to Empty().
func (s Stack) Normalize() Stack {
	if s.IsEmpty() {
		return Empty()
	}
	return s
}

func (s Stack) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s x%d", s.Material, s.Amount)
}
