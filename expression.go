package arith

import (
	"fmt"
	"math"
	"strconv"
)

// An Operator is applied by a Unary or a Binary node.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpNegate
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub, OpNegate:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// A Node is a node of a compiled expression. The set of nodes is
// closed: a Node is always a *Number, a *Unary or a *Binary.
//
// String renders the node fully parenthesised.
type Node interface {
	fmt.Stringer
	node()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Unary applies Op to a single operand. OpNegate is the only unary
// operator.
type Unary struct {
	Op      Operator
	Operand Node
}

// Binary applies Op to Left and Right.
type Binary struct {
	Op          Operator
	Left, Right Node
}

func (*Number) node() {}
func (*Unary) node()  {}
func (*Binary) node() {}

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Unary) String() string {
	return fmt.Sprintf("(%s%s)", n.Op, n.Operand)
}

func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

// Eval reduces a compiled expression to its value. It has no side
// effect, so a tree can be evaluated any number of times. Division
// by zero follows IEEE-754 and is not an error.
func Eval(n Node) float64 {
	switch n := n.(type) {
	case *Number:
		return n.Value
	case *Unary:
		return applyUnary(n.Op, Eval(n.Operand))
	case *Binary:
		left := Eval(n.Left)
		right := Eval(n.Right)
		return applyBinary(n.Op, left, right)
	}
	panic(fmt.Sprintf("arith: unknown node %T", n))
}

func applyUnary(op Operator, a float64) float64 {
	if op != OpNegate {
		panic(fmt.Sprintf("arith: %s is not a unary operator", op))
	}
	return -a
}

func applyBinary(op Operator, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	}
	panic(fmt.Sprintf("arith: Operator(%d) is not a binary operator", int(op)))
}

// Evaluate compiles and evaluates input. On error it returns NaN and
// the first error met, see Compile.
func Evaluate(input string) (float64, error) {
	n, err := Compile(input)
	if err != nil {
		return math.NaN(), err
	}
	return Eval(n), nil
}
