package parser

type scope struct {
	outer *scope

	// allowIn is false while parsing the NoIn variants of the grammar used
	// in the head of a for statement.
	allowIn bool
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer:   p.scope,
		allowIn: true,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}
