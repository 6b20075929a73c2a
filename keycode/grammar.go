package keycode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	keycodeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Hex", Pattern: `0[xX][0-9A-Fa-f]+`},
		{Name: "Number", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[(),]`},
	})

	exprParser = participle.MustBuild[Expr](
		participle.Lexer(keycodeLexer),
		participle.Elide("Whitespace"),
	)
)

// Expr is a parsed key code such as KC_A, MO(1) or LT(2, KC_SPC).
type Expr struct {
	Name string   `parser:"@(Ident | Hex | Number)"`
	Call *ArgList `parser:"@@?"`
}

type ArgList struct {
	Args []*Arg `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

// Arg keeps numbers as text so that out of range values still parse.
type Arg struct {
	Number *string `parser:"  @Number"`
	Expr   *Expr   `parser:"| @@"`
}

// Parse parses a single key code expression.
func Parse(s string) (*Expr, error) {
	expr, err := exprParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("could not parse key code %q: %w", s, err)
	}

	return expr, nil
}

func (e *Expr) IsCall() bool {
	return e.Call != nil
}

func (e *Expr) Args() []*Arg {
	if e.Call == nil {
		return nil
	}

	return e.Call.Args
}

// IntArg returns the i-th argument when it is a plain number that fits an int.
func (e *Expr) IntArg(i int) (int, bool) {
	args := e.Args()
	if i >= len(args) || args[i].Number == nil {
		return 0, false
	}

	n, err := strconv.Atoi(*args[i].Number)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ExprArg returns the i-th argument when it is a nested expression.
func (e *Expr) ExprArg(i int) (*Expr, bool) {
	args := e.Args()
	if i >= len(args) || args[i].Expr == nil {
		return nil, false
	}

	return args[i].Expr, true
}

func (e *Expr) String() string {
	if e.Call == nil {
		return e.Name
	}

	parts := make([]string, 0, len(e.Call.Args))
	for _, a := range e.Call.Args {
		parts = append(parts, a.String())
	}

	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (a *Arg) String() string {
	if a.Number != nil {
		return *a.Number
	}

	if a.Expr != nil {
		return a.Expr.String()
	}

	return ""
}

// InvalidTapDance is the index TapDanceIndex reports for a TD reference whose
// argument is missing, not a number or out of int range.
const InvalidTapDance = -1

// TapDanceIndex reports whether token is a TD(n) reference and its index.
func TapDanceIndex(token string) (int, bool) {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, "TD") {
		return 0, false
	}

	expr, err := Parse(token)
	if err != nil {
		if strings.HasPrefix(token, "TD(") {
			return InvalidTapDance, true
		}

		return 0, false
	}

	if expr.Name != "TD" || !expr.IsCall() {
		return 0, false
	}

	idx, ok := expr.IntArg(0)
	if !ok || len(expr.Args()) != 1 {
		return InvalidTapDance, true
	}

	return idx, true
}
