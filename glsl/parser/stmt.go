package parser

import (
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

func (p *Parser) statement() ast.Stmt {
	return rule(p, "statement", func() ast.Stmt {
		switch p.peek().Kind {
		case token.LBrace:
			return p.compoundStatement()
		case token.If:
			return p.ifStatement()
		case token.Switch:
			return p.switchStatement()
		case token.Case, token.Default:
			return p.caseLabel()
		case token.While:
			return p.whileStatement()
		case token.Do:
			return p.doWhileStatement()
		case token.For:
			return p.forStatement()
		case token.Return, token.Break, token.Continue, token.Discard:
			return p.jumpStatement()
		case token.Semicolon:
			p.advance()
			return &ast.ExprStmt{}
		case token.Precision:
			return p.declarationStatement()
		}
		return p.simpleStatement()
	})
}

// simpleStatement parses a declaration or an expression statement. A
// statement that cannot be an expression is parsed as a declaration right
// away. Otherwise the declaration is tried first; if that fails but the
// input starts like one ("type name"), the declaration is parsed again for
// real so the error is reported where the declaration went wrong.
func (p *Parser) simpleStatement() ast.Stmt {
	if p.startsDeclaration() {
		if !p.mayStartExpression() {
			return p.declarationStatement()
		}
		if s, ok := attempt(p, "declaration", p.declarationStatement); ok {
			return s
		}
		if p.lookahead(func() {
			p.fullySpecifiedType()
			p.expect(token.Ident)
		}) {
			return p.declarationStatement()
		}
	}
	return p.expressionStatement()
}

// startsDeclaration reports whether the current token can begin a
// declaration statement.
func (p *Parser) startsDeclaration() bool {
	tok := p.peek()
	switch {
	case tok.Kind == token.Ident:
		i := p.skipBrackets(p.pos + 1)
		return i < len(p.tokens) && p.tokens[i].Kind == token.Ident
	case tok.Kind == token.BasicType, tok.Kind == token.Struct, tok.Kind == token.Precision:
		return true
	case tok.Kind.IsPrecision():
		return true
	}
	return p.startsQualifier()
}

// mayStartExpression reports whether a statement that starts like a
// declaration could still be an expression statement: a name, or a
// constructor call such as "vec3(" or "float[2](".
func (p *Parser) mayStartExpression() bool {
	switch p.peek().Kind {
	case token.Ident:
		return true
	case token.BasicType:
		next := p.peekN(1).Kind
		return next == token.LParen || next == token.LBracket
	}
	return false
}

func (p *Parser) declarationStatement() ast.Stmt {
	return rule(p, "declarationStatement", func() ast.Stmt {
		d := p.declaration(false)
		if d == nil {
			return nil
		}
		return &ast.DeclStmt{Decl: d}
	})
}

func (p *Parser) expressionStatement() ast.Stmt {
	return rule(p, "expressionStatement", func() ast.Stmt {
		x := p.expression()
		if x == nil {
			return nil
		}
		p.expect(token.Semicolon)
		return &ast.ExprStmt{X: x}
	})
}

func (p *Parser) compoundStatement() *ast.CompoundStmt {
	return rule(p, "compoundStatement", func() *ast.CompoundStmt {
		block := &ast.CompoundStmt{}
		p.expect(token.LBrace)
		block.List = p.statementList()
		p.expect(token.RBrace)
		return block
	})
}

// statementList parses statements up to a closing brace, resynchronizing
// after each statement that ended in an error.
func (p *Parser) statementList() []ast.Stmt {
	var list []ast.Stmt
	for !p.match(token.RBrace, token.EOF) {
		progress := p.mustProgress()
		if s := p.statement(); !ast.IsNil(s) {
			list = append(list, s)
		}
		if p.recovering {
			p.synchronize()
		}
		progress()
	}
	return list
}

func (p *Parser) ifStatement() ast.Stmt {
	return rule(p, "selectionStatement", func() ast.Stmt {
		s := &ast.IfStmt{}
		p.expect(token.If)
		p.expect(token.LParen)
		s.Cond = p.expression()
		p.expect(token.RParen)
		s.Then = p.statement()
		if p.check(token.Else) {
			p.advance()
			s.Else = p.statement()
		}
		return s
	})
}

func (p *Parser) switchStatement() ast.Stmt {
	return rule(p, "switchStatement", func() ast.Stmt {
		s := &ast.SwitchStmt{}
		p.expect(token.Switch)
		p.expect(token.LParen)
		s.Tag = p.expression()
		p.expect(token.RParen)
		p.expect(token.LBrace)
		s.Body = p.statementList()
		p.expect(token.RBrace)
		return s
	})
}

func (p *Parser) caseLabel() ast.Stmt {
	return rule(p, "caseLabel", func() ast.Stmt {
		label := &ast.CaseLabel{}
		if p.advance().Kind == token.Case {
			label.Value = p.expression()
		}
		p.expect(token.Colon)
		return label
	})
}

func (p *Parser) whileStatement() ast.Stmt {
	return rule(p, "iterationStatement", func() ast.Stmt {
		s := &ast.WhileStmt{}
		p.expect(token.While)
		p.expect(token.LParen)
		s.Cond = p.condition()
		p.expect(token.RParen)
		s.Body = p.statement()
		return s
	})
}

func (p *Parser) doWhileStatement() ast.Stmt {
	return rule(p, "iterationStatement", func() ast.Stmt {
		s := &ast.DoWhileStmt{}
		p.expect(token.Do)
		s.Body = p.statement()
		p.expect(token.While)
		p.expect(token.LParen)
		s.Cond = p.expression()
		p.expect(token.RParen)
		p.expect(token.Semicolon)
		return s
	})
}

func (p *Parser) forStatement() ast.Stmt {
	return rule(p, "iterationStatement", func() ast.Stmt {
		s := &ast.ForStmt{}
		p.expect(token.For)
		p.expect(token.LParen)
		if p.check(token.Semicolon) {
			start := p.pos
			p.advance()
			s.Init = stamp(p, &ast.ExprStmt{}, start)
		} else {
			s.Init = p.simpleStatement()
		}
		if !p.check(token.Semicolon) {
			s.Cond = p.condition()
		}
		p.expect(token.Semicolon)
		if !p.check(token.RParen) {
			s.Post = p.expression()
		}
		p.expect(token.RParen)
		s.Body = p.statement()
		return s
	})
}

// condition is the controlling clause of a while or for loop: an
// expression, or a variable declared with an initializer.
func (p *Parser) condition() ast.Condition {
	return rule(p, "condition", func() ast.Condition {
		if p.startsDeclaration() {
			if c, ok := attempt(p, "condition declaration", p.conditionDeclaration); ok {
				return c
			}
			if p.lookahead(func() {
				p.fullySpecifiedType()
				p.expect(token.Ident)
				p.expect(token.Assign)
			}) {
				return p.conditionDeclaration()
			}
		}
		return p.expression()
	})
}

func (p *Parser) conditionDeclaration() *ast.CondDecl {
	return rule(p, "conditionDeclaration", func() *ast.CondDecl {
		c := &ast.CondDecl{Type: p.fullySpecifiedType()}
		c.Name, _ = p.expect(token.Ident)
		p.expect(token.Assign)
		c.Init = p.assignment()
		return c
	})
}

func (p *Parser) jumpStatement() ast.Stmt {
	return rule(p, "jumpStatement", func() ast.Stmt {
		s := &ast.JumpStmt{Keyword: p.advance()}
		if s.Keyword.Kind == token.Return && !p.check(token.Semicolon) {
			s.Result = p.expression()
		}
		p.expect(token.Semicolon)
		return s
	})
}
