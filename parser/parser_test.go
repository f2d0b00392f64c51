package parser_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
	"go.creack.net/arith/parser"
)

func tokenize(t *testing.T, input string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	return tokens
}

func requireTree(t *testing.T, want, got ast.Expr) {
	t.Helper()
	if !ast.Equal(want, got) {
		t.Fatalf("tree mismatch (want -> got):\n%s", strings.Join(pretty.Diff(want, got), "\n"))
	}
}

var (
	num  = ast.Num
	vr   = ast.Var
	sum  = ast.Sum
	prod = ast.Product
)

func TestParseInfix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Expr
	}{
		{name: "number", input: "42", want: num(42)},
		{name: "variable", input: "x", want: vr('x')},
		{name: "product binds tighter left", input: "2*3+4", want: sum(prod(num(2), num(3)), num(4))},
		{name: "product binds tighter right", input: "2+3*4", want: sum(num(2), prod(num(3), num(4)))},
		{name: "sum right associative", input: "1+2+3", want: sum(num(1), sum(num(2), num(3)))},
		{name: "product right associative", input: "2*3*4", want: prod(num(2), prod(num(3), num(4)))},
		{name: "parenthesized sum", input: "(2+3)*4", want: prod(sum(num(2), num(3)), num(4))},
		{name: "nested parens", input: "((x))", want: vr('x')},
		{name: "variables", input: "a * (b + 2)", want: prod(vr('a'), sum(vr('b'), num(2)))},
		{name: "long chain", input: "1+2*3+4*5", want: sum(num(1), sum(prod(num(2), num(3)), prod(num(4), num(5))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseInfix(tokenize(t, tt.input))
			require.NoError(t, err)
			requireTree(t, tt.want, got)
		})
	}
}

func TestParseInfixErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lexer.TokenType
		got      lexer.TokenType
		message  string
	}{
		{
			name:     "missing closing paren",
			input:    "(2+3",
			expected: []lexer.TokenType{lexer.TokParenRight},
			got:      lexer.TokEOF,
			message:  `expected ")" but got end of input at column 5`,
		},
		{
			name:     "empty",
			input:    "",
			expected: []lexer.TokenType{lexer.TokNumber, lexer.TokVariable, lexer.TokParenLeft},
			got:      lexer.TokEOF,
			message:  `expected number or variable or "(" but got end of input at column 1`,
		},
		{
			name:     "dangling operator",
			input:    "2 +",
			expected: []lexer.TokenType{lexer.TokNumber, lexer.TokVariable, lexer.TokParenLeft},
			got:      lexer.TokEOF,
		},
		{
			name:     "leading operator",
			input:    "*3",
			expected: []lexer.TokenType{lexer.TokNumber, lexer.TokVariable, lexer.TokParenLeft},
			got:      lexer.TokProduct,
			message:  `expected number or variable or "(" but got "*" at column 1`,
		},
		{
			name:     "empty parens",
			input:    "()",
			expected: []lexer.TokenType{lexer.TokNumber, lexer.TokVariable, lexer.TokParenLeft},
			got:      lexer.TokParenRight,
		},
		{
			name:     "unclosed nested",
			input:    "((1)",
			expected: []lexer.TokenType{lexer.TokParenRight},
			got:      lexer.TokEOF,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseInfix(tokenize(t, tt.input))
			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.expected, parseErr.Expected)
			assert.Equal(t, tt.got, parseErr.Got.Type)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

// Trailing tokens after the first complete expression are accepted and ignored.
func TestParseInfixIgnoresTrailingTokens(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Expr
	}{
		{input: "2+3)", want: sum(num(2), num(3))},
		{input: "1 2", want: num(1)},
		{input: "x y + 3", want: vr('x')},
		{input: "(1) (2)", want: num(1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseInfix(tokenize(t, tt.input))
			require.NoError(t, err)
			requireTree(t, tt.want, got)
		})
	}
}

func TestParseInfixWithoutEOF(t *testing.T) {
	// Running off the end of a sequence behaves like EOF.
	tokens := []lexer.Token{lexer.Number(1), lexer.Symbol(lexer.TokSum)}
	_, err := parser.ParseInfix(tokens)
	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, lexer.TokEOF, parseErr.Got.Type)

	got, err := parser.ParseInfix(tokens[:1])
	require.NoError(t, err)
	requireTree(t, num(1), got)
}

func TestParsePostfix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Expr
	}{
		{name: "number", input: "7", want: num(7)},
		{name: "variable", input: "z", want: vr('z')},
		{name: "operand order", input: "1 2 +", want: sum(num(1), num(2))},
		{name: "nested right", input: "2 3 4 * +", want: sum(num(2), prod(num(3), num(4)))},
		{name: "nested left", input: "2 3 * 4 +", want: sum(prod(num(2), num(3)), num(4))},
		{name: "variables", input: "x y * 2 +", want: sum(prod(vr('x'), vr('y')), num(2))},
		{name: "both nested", input: "1 2 + 3 4 + *", want: prod(sum(num(1), num(2)), sum(num(3), num(4)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParsePostfix(tokenize(t, tt.input))
			require.NoError(t, err)
			requireTree(t, tt.want, got)
		})
	}
}

func TestParsePostfixRejectsParens(t *testing.T) {
	for _, input := range []string{"(1 2 +)", "1 2 + )", "(", "1 (2) +"} {
		t.Run(input, func(t *testing.T) {
			_, err := parser.ParsePostfix(tokenize(t, input))
			require.ErrorIs(t, err, parser.ErrPostfixParen)
			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.True(t, parseErr.Got.Type.IsOneOf(lexer.TokParenLeft, lexer.TokParenRight))
		})
	}
}

func TestParsePostfixErrors(t *testing.T) {
	t.Run("missing operand", func(t *testing.T) {
		_, err := parser.ParsePostfix(tokenize(t, "1 +"))
		var parseErr *parser.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, lexer.TokEOF, parseErr.Got.Type)
	})
	t.Run("empty input", func(t *testing.T) {
		_, err := parser.ParsePostfix(tokenize(t, ""))
		var parseErr *parser.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, lexer.TokEOF, parseErr.Got.Type)
	})
	t.Run("no tokens", func(t *testing.T) {
		_, err := parser.ParsePostfix(nil)
		require.ErrorIs(t, err, parser.ErrNoTokens)
	})
	t.Run("missing EOF", func(t *testing.T) {
		tokens := []lexer.Token{lexer.Number(1), lexer.Number(2), lexer.Symbol(lexer.TokSum)}
		_, err := parser.ParsePostfix(tokens)
		var parseErr *parser.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, []lexer.TokenType{lexer.TokEOF}, parseErr.Expected)
		assert.Equal(t, lexer.TokSum, parseErr.Got.Type)
	})
	t.Run("EOF in the middle", func(t *testing.T) {
		tokens := []lexer.Token{lexer.Number(1), lexer.Symbol(lexer.TokEOF), lexer.Symbol(lexer.TokSum), lexer.Symbol(lexer.TokEOF)}
		_, err := parser.ParsePostfix(tokens)
		var parseErr *parser.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, lexer.TokEOF, parseErr.Got.Type)
	})
}

func TestParsePostfixIgnoresLeadingLeftovers(t *testing.T) {
	got, err := parser.ParsePostfix(tokenize(t, "1 2"))
	require.NoError(t, err)
	requireTree(t, num(2), got)

	got, err = parser.ParsePostfix(tokenize(t, "9 1 2 +"))
	require.NoError(t, err)
	requireTree(t, sum(num(1), num(2)), got)
}

func TestParsersDoNotModifyTokens(t *testing.T) {
	for _, p := range []parser.Parser{parser.Infix, parser.Postfix} {
		tokens := tokenize(t, "1 2 + 3 *")
		orig := slices.Clone(tokens)
		_, _ = p.Parse(tokens)
		require.Equal(t, orig, tokens, "%v modified its input", p)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"1",
		"x",
		"2*3+4",
		"2+3*4",
		"1+2+3",
		"(1+2)+3",
		"(2+3)*4",
		"a*(b+c*(d+1))*2",
		"((1*2)*3)*4",
	} {
		t.Run(input, func(t *testing.T) {
			tree, err := parser.ParseString(input, parser.Infix)
			require.NoError(t, err)

			infix, err := parser.ParseString(tree.Dump(), parser.Infix)
			require.NoError(t, err, "reparse %q", tree.Dump())
			requireTree(t, tree, infix)

			postfix, err := parser.ParseString(ast.DumpPostfix(tree), parser.Postfix)
			require.NoError(t, err, "reparse %q", ast.DumpPostfix(tree))
			requireTree(t, tree, postfix)
		})
	}
}

func TestDump(t *testing.T) {
	tree := sum(prod(num(2), num(3)), sum(vr('x'), num(4)))
	assert.Equal(t, "(2 * 3) + (x + 4)", tree.Dump())
	assert.Equal(t, "2 3 * x 4 + +", ast.DumpPostfix(tree))
}

func TestParseString(t *testing.T) {
	_, err := parser.ParseString("1 + $", parser.Infix)
	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "$", lexErr.Text)
}

func TestModes(t *testing.T) {
	for _, m := range []parser.Mode{parser.ModeInfix, parser.ModePostfix} {
		got, err := parser.ParseMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := parser.ParseMode("prefix")
	require.Error(t, err)

	assert.Equal(t, parser.Infix, parser.ForMode(parser.ModeInfix))
	assert.Equal(t, parser.Postfix, parser.ForMode(parser.ModePostfix))

	// Same tokens, different strategy.
	tokens := tokenize(t, "3 4 +")
	_, err = parser.ForMode(parser.ModePostfix).Parse(tokens)
	require.NoError(t, err)
	got, err := parser.ForMode(parser.ModeInfix).Parse(tokens)
	require.NoError(t, err)
	requireTree(t, num(3), got)
}

func TestParseErrorPos(t *testing.T) {
	_, err := parser.ParseString("1 + (2 * )", parser.Infix)
	var inputErr lexer.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, 10, inputErr.Pos())
}
