package parser

import (
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// Expression parses a single expression that must span the whole input.
func (p *Parser) Expression() ast.Expr {
	x := p.expression()
	if !p.check(token.EOF) {
		p.errorf("expected end of input, found %s", p.peek())
	}
	return x
}

// expression is a comma-separated list of assignment expressions.
func (p *Parser) expression() ast.Expr {
	return rule(p, "expression", func() ast.Expr {
		x := p.assignment()
		if !p.check(token.Comma) {
			return x
		}
		list := &ast.CommaExpr{List: []ast.Expr{x}}
		for p.check(token.Comma) {
			p.advance()
			list.List = append(list.List, p.assignment())
		}
		return list
	})
}

// assignment parses "conditional (assignop conditional)*", grouping to the
// right. Any conditional expression is accepted as the target.
func (p *Parser) assignment() ast.Expr {
	return rule(p, "assignmentExpression", func() ast.Expr {
		start := p.pos
		first := p.conditional()
		if !p.peek().Kind.IsAssign() {
			return first
		}
		operands := []ast.Expr{first}
		starts := []int{start}
		var ops []token.Token
		for p.peek().Kind.IsAssign() {
			ops = append(ops, p.advance())
			starts = append(starts, p.pos)
			operands = append(operands, p.conditional())
		}
		x := operands[len(operands)-1]
		for i := len(ops) - 1; i >= 0; i-- {
			x = stamp(p, &ast.AssignExpr{LHS: operands[i], Op: ops[i], RHS: x}, starts[i])
		}
		return x
	})
}

func (p *Parser) conditional() ast.Expr {
	return rule(p, "conditionalExpression", func() ast.Expr {
		cond := p.logicalOr()
		if !p.check(token.Question) {
			return cond
		}
		p.advance()
		then := p.expression()
		p.expect(token.Colon)
		return &ast.CondExpr{Cond: cond, Then: then, Else: p.assignment()}
	})
}

// binary parses a left-associative chain of operand separated by ops.
func (p *Parser) binary(name string, operand func() ast.Expr, ops ...token.Kind) ast.Expr {
	return rule(p, name, func() ast.Expr {
		start := p.pos
		x := operand()
		for p.match(ops...) {
			op := p.advance()
			y := operand()
			x = stamp(p, &ast.BinaryExpr{X: x, Op: op, Y: y}, start)
		}
		return x
	})
}

func (p *Parser) logicalOr() ast.Expr {
	return p.binary("logicalOrExpression", p.logicalXor, token.Or)
}

func (p *Parser) logicalXor() ast.Expr {
	return p.binary("logicalXorExpression", p.logicalAnd, token.Xor)
}

func (p *Parser) logicalAnd() ast.Expr {
	return p.binary("logicalAndExpression", p.bitOr, token.And)
}

func (p *Parser) bitOr() ast.Expr {
	return p.binary("inclusiveOrExpression", p.bitXor, token.BitOr)
}

func (p *Parser) bitXor() ast.Expr {
	return p.binary("exclusiveOrExpression", p.bitAnd, token.BitXor)
}

func (p *Parser) bitAnd() ast.Expr {
	return p.binary("andExpression", p.equality, token.BitAnd)
}

func (p *Parser) equality() ast.Expr {
	return p.binary("equalityExpression", p.relational, token.EQ, token.NE)
}

func (p *Parser) relational() ast.Expr {
	return p.binary("relationalExpression", p.shift, token.LT, token.GT, token.LE, token.GE)
}

func (p *Parser) shift() ast.Expr {
	return p.binary("shiftExpression", p.additive, token.Shl, token.Shr)
}

func (p *Parser) additive() ast.Expr {
	return p.binary("additiveExpression", p.multiplicative, token.Plus, token.Minus)
}

func (p *Parser) multiplicative() ast.Expr {
	return p.binary("multiplicativeExpression", p.unary, token.Star, token.Slash, token.Percent)
}

func (p *Parser) unary() ast.Expr {
	return rule(p, "unaryExpression", func() ast.Expr {
		switch p.peek().Kind {
		case token.Inc, token.Dec, token.Plus, token.Minus, token.Bang, token.Tilde:
			op := p.advance()
			return &ast.UnaryExpr{Op: op, X: p.unary()}
		}
		return p.postfix()
	})
}

func (p *Parser) postfix() ast.Expr {
	return rule(p, "postfixExpression", func() ast.Expr {
		start := p.pos
		var x ast.Expr
		if p.match(token.BasicType, token.Ident) && p.callAhead() && !p.noCall[start] {
			if callee, ok := attempt(p, "function call", p.functionCallHeader); ok {
				x = p.functionCallRest(callee, start)
			} else {
				p.noCall[start] = true
			}
		}
		if x == nil {
			x = p.primary()
		}
		if x == nil {
			return nil
		}
		for {
			switch p.peek().Kind {
			case token.LBracket:
				p.advance()
				index := p.expression()
				p.expect(token.RBracket)
				x = stamp(p, &ast.IndexExpr{X: x, Index: index}, start)
			case token.Dot:
				p.advance()
				name, ok := p.expect(token.Ident)
				if !ok {
					return x
				}
				if p.check(token.LParen) {
					p.advance()
					args, _ := p.arguments()
					x = stamp(p, &ast.MethodCallExpr{X: x, Method: name, Args: args}, start)
				} else {
					x = stamp(p, &ast.FieldExpr{X: x, Field: name}, start)
				}
			case token.Inc, token.Dec:
				x = stamp(p, &ast.PostfixExpr{X: x, Op: p.advance()}, start)
			default:
				return x
			}
		}
	})
}

// callAhead reports whether the tokens after the current type name have
// the shape of a call header: any number of bracketed sizes, then '('.
func (p *Parser) callAhead() bool {
	i := p.skipBrackets(p.pos + 1)
	return i < len(p.tokens) && p.tokens[i].Kind == token.LParen
}

// skipBrackets returns the index after the balanced [...] groups starting at
// token index i. Brackets are counted, not parsed.
func (p *Parser) skipBrackets(i int) int {
	for i < len(p.tokens) && p.tokens[i].Kind == token.LBracket {
		depth := 0
		for ; i < len(p.tokens); i++ {
			switch p.tokens[i].Kind {
			case token.LBracket:
				depth++
			case token.RBracket:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		i++
	}
	return i
}

// functionCallHeader parses "typeSpecifier (". It is only tried
// speculatively, ahead of a primary expression.
func (p *Parser) functionCallHeader() *ast.TypeSpecifier {
	if p.peek().Kind.IsPrecision() {
		p.errorf("expected function name, found %s", p.peek())
		return nil
	}
	callee := p.typeSpecifier()
	if _, ok := p.expect(token.LParen); !ok {
		return nil
	}
	return callee
}

// functionCallRest parses the arguments and closing parenthesis of a call
// whose header has been consumed.
func (p *Parser) functionCallRest(callee *ast.TypeSpecifier, start int) ast.Expr {
	args, void := p.arguments()
	return stamp(p, &ast.CallExpr{Callee: callee, Args: args, Void: void}, start)
}

// arguments parses a call argument list after its '(' up to and including
// the ')'. A lone "void" is an empty list.
func (p *Parser) arguments() (args []ast.Expr, void bool) {
	if p.check(token.BasicType) && p.peek().Literal == "void" && p.peekN(1).Kind == token.RParen {
		p.advance()
		void = true
	} else if !p.check(token.RParen) {
		for {
			progress := p.mustProgress()
			args = append(args, p.assignment())
			if !p.check(token.Comma) {
				break
			}
			p.advance()
			if !progress() {
				break
			}
		}
	}
	p.expect(token.RParen)
	return args, void
}

func (p *Parser) primary() ast.Expr {
	return rule(p, "primaryExpression", func() ast.Expr {
		tok := p.peek()
		switch tok.Kind {
		case token.Ident:
			p.advance()
			return &ast.Ident{Name: tok}
		case token.IntLit, token.UintLit, token.FloatLit, token.BoolLit:
			p.advance()
			return &ast.Literal{Value: tok}
		case token.LParen:
			p.advance()
			x := p.expression()
			p.expect(token.RParen)
			return &ast.ParenExpr{X: x}
		case token.Reserved:
			p.errorf("%s is a reserved word", tok)
			return nil
		}
		p.errorf("expected expression, found %s", tok)
		return nil
	})
}
