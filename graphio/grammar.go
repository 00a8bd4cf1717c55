package graphio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type fileExpr struct {
	Header *headerExpr `parser:"@@?"`
	Runs   []*runExpr  `parser:"(@@ (\",\" | \";\")?)*"`
}

type headerExpr struct {
	Pos   lexer.Position
	Order int `parser:"\"vertices\" @Int"`
}

type runExpr struct {
	Pos   lexer.Position
	Start int   `parser:"@Int"`
	Next  []int `parser:"(\"-\" @Int)*"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Keyword", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseEdgeList = participle.MustBuild[fileExpr](
	participle.Lexer(edgeListLexer),
	participle.Elide("Comment", "Whitespace"),
)
