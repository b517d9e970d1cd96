package script

import "github.com/alecthomas/participle/v2/lexer"

// scriptLexer tokenises gesture scripts. Keywords are matched as literal
// identifiers by the grammar.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
})
