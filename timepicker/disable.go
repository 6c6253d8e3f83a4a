package timepicker

import (
	"fmt"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/andareed/siftly-timepick/logging"
)

// DisableTime reports whether a candidate time must not be offered.
// The picker only forwards it to the panel.
type DisableTime func(t time.Time) bool

// Disabled is nil-safe.
func (d DisableTime) Disabled(t time.Time) bool {
	return d != nil && d(t)
}

// CompileDisableExpr builds a DisableTime from a CEL boolean expression over
// the integer variables hour, minute and second, e.g. "hour < 9 || hour >= 18".
func CompileDisableExpr(expr string) (DisableTime, error) {
	env, err := cel.NewEnv(
		cel.Variable("hour", cel.IntType),
		cel.Variable("minute", cel.IntType),
		cel.Variable("second", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("disable-time environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile disable-time %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("disable-time %q must be boolean, got %s", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program disable-time %q: %w", expr, err)
	}
	return func(t time.Time) bool {
		out, _, err := prg.Eval(map[string]any{
			"hour":   int64(t.Hour()),
			"minute": int64(t.Minute()),
			"second": int64(t.Second()),
		})
		if err != nil {
			logging.Warnf("timepicker: eval disable-time %q at %s: %v", expr, t.Format(time.TimeOnly), err)
			return false
		}
		disabled, ok := out.Value().(bool)
		return ok && disabled
	}, nil
}
