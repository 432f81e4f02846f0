package parser

import (
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// TranslationUnit parses the whole token sequence as one or more external
// declarations. Stray semicolons between declarations are skipped.
func (p *Parser) TranslationUnit() *ast.TranslationUnit {
	return rule(p, "translationUnit", func() *ast.TranslationUnit {
		unit := &ast.TranslationUnit{}
		for !p.check(token.EOF) {
			if p.check(token.Semicolon) {
				p.advance()
				continue
			}
			progress := p.mustProgress()
			if d := p.externalDeclaration(); !ast.IsNil(d) {
				unit.Decls = append(unit.Decls, d)
			}
			if p.recovering {
				p.synchronize()
			}
			progress()
		}
		if len(unit.Decls) == 0 && len(p.errors) == 0 {
			p.errorf("expected declaration, found %s", p.peek())
		}
		return unit
	})
}

func (p *Parser) externalDeclaration() ast.Decl {
	return rule(p, "externalDeclaration", func() ast.Decl {
		return p.declaration(true)
	})
}

// declaration parses any declaration. Function definitions are only
// accepted when topLevel is set.
func (p *Parser) declaration(topLevel bool) ast.Decl {
	return rule(p, "declaration", func() ast.Decl {
		switch {
		case p.check(token.Precision):
			return p.precisionDeclaration()
		case p.check(token.Invariant) && p.peekN(1).Kind == token.Ident &&
			(p.peekN(2).Kind == token.Comma || p.peekN(2).Kind == token.Semicolon):
			return p.invariantDeclaration()
		}

		start := p.pos
		var qual *ast.TypeQualifier
		if p.startsQualifier() {
			qual = p.typeQualifier()
			if p.check(token.Ident) && p.peekN(1).Kind == token.LBrace {
				return p.blockRest(qual)
			}
		}
		typ := p.typeSpecifier()
		if typ == nil {
			return nil
		}
		fst := stamp(p, &ast.FullySpecifiedType{Qualifier: qual, Type: typ}, start)

		if p.check(token.Semicolon) {
			// A type on its own only makes sense for a struct definition;
			// inside a function "x;" is an expression.
			if !topLevel && typ.Struct == nil && typ.Name.Kind != token.BasicType {
				p.errorf("expected identifier, found %s", p.peek())
				return nil
			}
			p.advance()
			return &ast.InitDeclaratorList{Type: fst}
		}

		nameIndex := p.pos
		name, ok := p.expect(token.Ident)
		if !ok {
			return nil
		}
		if p.check(token.LParen) {
			return p.functionRest(fst, name, start, topLevel)
		}
		return p.initDeclaratorListRest(fst, name, nameIndex)
	})
}

// functionRest parses a function prototype or definition after its name.
func (p *Parser) functionRest(ret *ast.FullySpecifiedType, name token.Token, start int, topLevel bool) ast.Decl {
	proto := &ast.FunctionPrototype{ReturnType: ret, Name: name}
	p.expect(token.LParen)
	proto.Params = p.parameters()
	p.expect(token.RParen)
	stamp(p, proto, start)

	if p.check(token.LBrace) {
		if !topLevel {
			p.errorf("function definition is only allowed at global scope")
			return nil
		}
		return &ast.FunctionDefinition{Prototype: proto, Body: p.compoundStatement()}
	}
	p.expect(token.Semicolon)
	return proto
}

func (p *Parser) parameters() []*ast.ParamDecl {
	var params []*ast.ParamDecl
	if p.check(token.RParen) {
		return nil
	}
	for {
		progress := p.mustProgress()
		if param := p.parameterDeclaration(); param != nil {
			params = append(params, param)
		}
		if !p.check(token.Comma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}
	return params
}

func (p *Parser) parameterDeclaration() *ast.ParamDecl {
	return rule(p, "parameterDeclaration", func() *ast.ParamDecl {
		param := &ast.ParamDecl{}
		if p.check(token.Const) {
			param.Const = p.storageQualifier()
		}
		if p.match(token.In, token.Out, token.Inout) {
			param.Direction = p.storageQualifier()
		}
		param.Type = p.typeSpecifier()
		if param.Type == nil {
			return nil
		}
		if p.check(token.Ident) {
			name := p.advance()
			param.Name = &name
			if p.check(token.LBracket) {
				param.Array = p.arraySpecifier()
			}
		}
		return param
	})
}

func (p *Parser) initDeclaratorListRest(typ *ast.FullySpecifiedType, name token.Token, nameIndex int) ast.Decl {
	list := &ast.InitDeclaratorList{Type: typ}
	list.Declarators = append(list.Declarators, p.declaratorRest(name, nameIndex))
	for p.check(token.Comma) {
		p.advance()
		index := p.pos
		name, ok := p.expect(token.Ident)
		if !ok {
			break
		}
		list.Declarators = append(list.Declarators, p.declaratorRest(name, index))
	}
	p.expect(token.Semicolon)
	return list
}

// declaratorRest parses the optional array size and initializer following
// a declared name. first is the index of the name token.
func (p *Parser) declaratorRest(name token.Token, first int) *ast.Declarator {
	d := &ast.Declarator{Name: name}
	if p.check(token.LBracket) {
		d.Array = p.arraySpecifier()
	}
	if p.check(token.Assign) {
		p.advance()
		d.Init = p.assignment()
	}
	return stamp(p, d, first)
}

func (p *Parser) precisionDeclaration() ast.Decl {
	return rule(p, "precisionDeclaration", func() ast.Decl {
		p.expect(token.Precision)
		if !p.peek().Kind.IsPrecision() {
			p.errorf("expected precision qualifier, found %s", p.peek())
			return nil
		}
		d := &ast.PrecisionDecl{Precision: p.precisionQualifier()}
		d.Type = p.typeSpecifier()
		p.expect(token.Semicolon)
		return d
	})
}

func (p *Parser) invariantDeclaration() ast.Decl {
	return rule(p, "invariantDeclaration", func() ast.Decl {
		d := &ast.InvariantDecl{}
		p.expect(token.Invariant)
		for {
			name, ok := p.expect(token.Ident)
			if !ok {
				break
			}
			d.Names = append(d.Names, name)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
		p.expect(token.Semicolon)
		return d
	})
}

// blockRest parses an interface block after its qualifier.
func (p *Parser) blockRest(qual *ast.TypeQualifier) ast.Decl {
	b := &ast.BlockDecl{Qualifier: qual, Name: p.advance()}
	p.expect(token.LBrace)
	b.Members = p.structMembers()
	p.expect(token.RBrace)
	if p.check(token.Ident) {
		first := p.pos
		b.Instance = p.declaratorRest(p.advance(), first)
	}
	p.expect(token.Semicolon)
	return b
}

func (p *Parser) fullySpecifiedType() *ast.FullySpecifiedType {
	return rule(p, "fullySpecifiedType", func() *ast.FullySpecifiedType {
		t := &ast.FullySpecifiedType{}
		if p.startsQualifier() {
			t.Qualifier = p.typeQualifier()
		}
		t.Type = p.typeSpecifier()
		return t
	})
}

func (p *Parser) startsQualifier() bool {
	switch p.peek().Kind {
	case token.Const, token.In, token.Out, token.Inout, token.Uniform,
		token.Centroid, token.Attribute, token.Varying,
		token.Layout, token.Flat, token.Smooth, token.Invariant:
		return true
	}
	return false
}

func (p *Parser) typeQualifier() *ast.TypeQualifier {
	return rule(p, "typeQualifier", func() *ast.TypeQualifier {
		q := &ast.TypeQualifier{}
		for p.startsQualifier() {
			q.List = append(q.List, p.singleQualifier())
		}
		return q
	})
}

func (p *Parser) singleQualifier() ast.Qualifier {
	return rule(p, "singleTypeQualifier", func() ast.Qualifier {
		switch p.peek().Kind {
		case token.Layout:
			return p.layoutQualifier()
		case token.Flat, token.Smooth:
			return &ast.InterpolationQualifier{Keyword: p.advance()}
		case token.Invariant:
			return &ast.InvariantQualifier{Keyword: p.advance()}
		}
		return p.storageQualifier()
	})
}

func (p *Parser) storageQualifier() *ast.StorageQualifier {
	return rule(p, "storageQualifier", func() *ast.StorageQualifier {
		return &ast.StorageQualifier{Keyword: p.advance()}
	})
}

func (p *Parser) precisionQualifier() *ast.PrecisionQualifier {
	return rule(p, "precisionQualifier", func() *ast.PrecisionQualifier {
		return &ast.PrecisionQualifier{Keyword: p.advance()}
	})
}

func (p *Parser) layoutQualifier() *ast.LayoutQualifier {
	return rule(p, "layoutQualifier", func() *ast.LayoutQualifier {
		q := &ast.LayoutQualifier{}
		p.expect(token.Layout)
		p.expect(token.LParen)
		for {
			progress := p.mustProgress()
			first := p.pos
			name, ok := p.expect(token.Ident)
			if !ok {
				break
			}
			id := &ast.LayoutID{Name: name}
			if p.check(token.Assign) {
				p.advance()
				if !p.match(token.IntLit, token.UintLit) {
					p.errorf("expected integer constant, found %s", p.peek())
					break
				}
				value := p.advance()
				id.Value = &value
			}
			q.IDs = append(q.IDs, stamp(p, id, first))
			if !p.check(token.Comma) {
				break
			}
			p.advance()
			if !progress() {
				break
			}
		}
		p.expect(token.RParen)
		return q
	})
}

// typeSpecifier parses "[precision] (basic type | type name | struct) [array]".
func (p *Parser) typeSpecifier() *ast.TypeSpecifier {
	return rule(p, "typeSpecifier", func() *ast.TypeSpecifier {
		t := &ast.TypeSpecifier{}
		if p.peek().Kind.IsPrecision() {
			t.Precision = p.precisionQualifier()
		}
		switch p.peek().Kind {
		case token.BasicType, token.Ident:
			t.Name = p.advance()
		case token.Struct:
			t.Struct = p.structSpecifier()
		default:
			p.errorf("expected type, found %s", p.peek())
			return nil
		}
		if p.check(token.LBracket) {
			t.Array = p.arraySpecifier()
		}
		return t
	})
}

func (p *Parser) arraySpecifier() *ast.ArraySpecifier {
	return rule(p, "arraySpecifier", func() *ast.ArraySpecifier {
		a := &ast.ArraySpecifier{}
		p.expect(token.LBracket)
		if !p.check(token.RBracket) {
			a.Size = p.conditional()
		}
		p.expect(token.RBracket)
		return a
	})
}

func (p *Parser) structSpecifier() *ast.StructSpecifier {
	return rule(p, "structSpecifier", func() *ast.StructSpecifier {
		s := &ast.StructSpecifier{}
		p.expect(token.Struct)
		if p.check(token.Ident) {
			name := p.advance()
			s.Name = &name
		}
		p.expect(token.LBrace)
		s.Members = p.structMembers()
		p.expect(token.RBrace)
		return s
	})
}

// structMembers parses one or more member declarations up to a closing
// brace.
func (p *Parser) structMembers() []*ast.StructMember {
	if p.check(token.RBrace) {
		p.errorf("expected member declaration, found %s", p.peek())
		return nil
	}
	var members []*ast.StructMember
	for !p.match(token.RBrace, token.EOF) {
		progress := p.mustProgress()
		if m := p.structMember(); m != nil {
			members = append(members, m)
		}
		if p.recovering {
			p.synchronize()
		}
		progress()
	}
	return members
}

func (p *Parser) structMember() *ast.StructMember {
	return rule(p, "structDeclaration", func() *ast.StructMember {
		m := &ast.StructMember{}
		if p.startsQualifier() {
			m.Qualifier = p.typeQualifier()
		}
		m.Type = p.typeSpecifier()
		if m.Type == nil {
			return nil
		}
		for {
			first := p.pos
			name, ok := p.expect(token.Ident)
			if !ok {
				break
			}
			d := &ast.Declarator{Name: name}
			if p.check(token.LBracket) {
				d.Array = p.arraySpecifier()
			}
			m.Declarators = append(m.Declarators, stamp(p, d, first))
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
		p.expect(token.Semicolon)
		return m
	})
}
