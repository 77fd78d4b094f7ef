package arith

// Compile parses input into an expression tree. The grammar is
//
//	expression     := additive EOF
//	additive       := multiplicative ( ('+'|'-') multiplicative )*
//	multiplicative := unary ( ('*'|'/') unary )*
//	unary          := '+' unary | '-' unary | leaf
//	leaf           := number | '(' additive ')'
//
// Binary operators associate to the left. A unary '+' produces no
// node. Parsing stops at the first error, which is a *LexError, an
// *UnexpectedTokenError, an *UnclosedParenthesisError or a
// *TrailingInputError, and no tree is returned.
func Compile(input string) (Node, error) {
	l, err := NewLexer(input)
	if err != nil {
		return nil, err
	}
	p := parser{l: l}
	return p.parseExpression()
}

type parser struct {
	l *Lexer
}

var additiveOperators = map[TokenType]Operator{
	TokPlus:  OpAdd,
	TokMinus: OpSub,
}

var multiplicativeOperators = map[TokenType]Operator{
	TokMult:   OpMul,
	TokDivide: OpDiv,
}

func (p *parser) parseExpression() (Node, error) {
	n, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if t := p.l.Token(); t.Type != TokEnd {
		return nil, &TrailingInputError{Token: t}
	}
	return n, nil
}

func (p *parser) parseAdditive() (Node, error) {
	return p.parseLeftFold(additiveOperators, p.parseMultiplicative)
}

func (p *parser) parseMultiplicative() (Node, error) {
	return p.parseLeftFold(multiplicativeOperators, p.parseUnary)
}

// parseLeftFold parses operand ( op operand )* for the operators in
// ops, folding each new operator onto the tree built so far.
func (p *parser) parseLeftFold(ops map[TokenType]Operator, operand func() (Node, error)) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.l.Token().Type]
		if ok == false {
			return left, nil
		}
		if err := p.l.Next(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	switch p.l.Token().Type {
	case TokPlus:
		if err := p.l.Next(); err != nil {
			return nil, err
		}
		return p.parseUnary()
	case TokMinus:
		if err := p.l.Next(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: OpNegate, Operand: operand}, nil
	}
	return p.parseLeaf()
}

func (p *parser) parseLeaf() (Node, error) {
	t := p.l.Token()
	switch t.Type {
	case TokNumber:
		if err := p.l.Next(); err != nil {
			return nil, err
		}
		return &Number{Value: t.Value}, nil
	case TokOParen:
		if err := p.l.Next(); err != nil {
			return nil, err
		}
		n, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if closing := p.l.Token(); closing.Type != TokCParen {
			return nil, &UnclosedParenthesisError{Open: t, Found: closing}
		}
		if err := p.l.Next(); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, &UnexpectedTokenError{Token: t}
}
