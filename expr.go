package imgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileError reports a malformed or unresolvable expression. Compile
// failures are non-fatal: the affected registry entry simply produces no
// geometry until its source text changes.
type CompileError struct {
	Source string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Source, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Var is a typed handle to one mutable numeric slot bound at compile time.
// Write the slot with Set, then call Program.Eval. Not safe for concurrent
// use; the write-then-evaluate pair must run on the single sampling pass
// that owns the program.
type Var struct {
	env  map[string]any
	name string
}

// Set writes the slot's current value. The next Eval reads it.
func (v *Var) Set(x float64) {
	v.env[v.name] = x
}

// Program is a compiled scalar expression bound to a fixed set of named
// variable slots plus the standard constant and function set.
type Program struct {
	source  string
	program *vm.Program
	env     map[string]any
	vars    map[string]*Var
}

// baseEnv returns the constant and scalar function set every program sees.
// abs, ceil, floor, round, min and max come from the evaluator's builtins
// and are deliberately not redefined here.
func baseEnv() map[string]any {
	return map[string]any{
		"pi":  math.Pi,
		"e":   math.E,
		"tau": 2 * math.Pi,
		"inf": math.Inf(1),

		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"atan2": math.Atan2,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"exp":   math.Exp,
		"log":   math.Log,
		"ln":    math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"pow":   math.Pow,
		"hypot": math.Hypot,
		"mod":   math.Mod,
		"sign": func(x float64) float64 {
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			}
			return 0
		},
	}
}

// Compile parses source and binds one mutable slot per name in varNames.
// Malformed syntax and unknown symbols yield a *CompileError.
func Compile(source string, varNames ...string) (*Program, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &CompileError{Source: source, Err: fmt.Errorf("empty expression")}
	}

	env := baseEnv()
	vars := make(map[string]*Var, len(varNames))
	for _, name := range varNames {
		env[name] = 0.0
		vars[name] = &Var{env: env, name: name}
	}

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, &CompileError{Source: source, Err: err}
	}

	return &Program{
		source:  source,
		program: program,
		env:     env,
		vars:    vars,
	}, nil
}

// Var returns the handle for a bound variable slot, or nil if the name was
// not part of the compile.
func (p *Program) Var(name string) *Var {
	return p.vars[name]
}

// Source returns the expression text the program was compiled from.
func (p *Program) Source() string {
	return p.source
}

// Eval evaluates the expression against the current slot values. Boolean
// results map to 1.0 (true) and 0.0 (false) so relational expressions can
// be sampled like any scalar. Evaluation errors and non-numeric results
// yield NaN, which samplers drop.
func (p *Program) Eval() float64 {
	out, err := vm.Run(p.program, p.env)
	if err != nil {
		return math.NaN()
	}
	switch n := out.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	}
	return math.NaN()
}
