package exprvm

import "fmt"

// Env resolves the free variables a watch expression can reference against
// live engine state: bare identifiers (`windy`), indexed lookups
// (`flag[1234]`), and calls with any number of arguments (`npc_count(267)`).
type Env interface {
	Ident(name string) (float64, error)
	Index(name string, idx float64) (float64, error)
	Call(name string, args []float64) (float64, error)
}

// EvalError wraps a runtime evaluation failure (unknown identifier, bad
// call) with the offending name so the debugger can report it without the
// watch crashing anything.
type EvalError struct {
	What string
}

func (e *EvalError) Error() string { return "expression: " + e.What }

// Eval walks the AST and produces a float64 result (booleans are 0/1, the
// same convention the debugger's watch command uses for "truthy").
func Eval(n Node, env Env) (float64, error) {
	switch v := n.(type) {
	case NumberNode:
		return v.Value, nil
	case UnaryNode:
		inner, err := Eval(v.Expr, env)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case Negate:
			return -inner, nil
		case Not:
			return boolToFloat(inner == 0), nil
		}
		return 0, &EvalError{What: "unknown unary op"}
	case BinaryNode:
		return evalBinary(v, env)
	case IdentNode:
		if env == nil {
			return 0, &EvalError{What: "no environment bound for identifier " + v.Name}
		}
		return env.Ident(v.Name)
	case IndexNode:
		if env == nil {
			return 0, &EvalError{What: "no environment bound for index " + v.Name}
		}
		idx, err := Eval(v.Index, env)
		if err != nil {
			return 0, err
		}
		return env.Index(v.Name, idx)
	case CallNode:
		if env == nil {
			return 0, &EvalError{What: "no environment bound for call " + v.Name}
		}
		args := make([]float64, len(v.Args))
		for i, a := range v.Args {
			val, err := Eval(a, env)
			if err != nil {
				return 0, err
			}
			args[i] = val
		}
		return env.Call(v.Name, args)
	default:
		return 0, &EvalError{What: fmt.Sprintf("unhandled node type %T", n)}
	}
}

func evalBinary(v BinaryNode, env Env) (float64, error) {
	// Short-circuit logical operators before evaluating the right side.
	if v.Op == LogicalAnd {
		l, err := Eval(v.Left, env)
		if err != nil {
			return 0, err
		}
		if l == 0 {
			return 0, nil
		}
		r, err := Eval(v.Right, env)
		if err != nil {
			return 0, err
		}
		return boolToFloat(r != 0), nil
	}
	if v.Op == LogicalOr {
		l, err := Eval(v.Left, env)
		if err != nil {
			return 0, err
		}
		if l != 0 {
			return 1, nil
		}
		r, err := Eval(v.Right, env)
		if err != nil {
			return 0, err
		}
		return boolToFloat(r != 0), nil
	}

	l, err := Eval(v.Left, env)
	if err != nil {
		return 0, err
	}
	r, err := Eval(v.Right, env)
	if err != nil {
		return 0, err
	}
	switch v.Op {
	case Add:
		return l + r, nil
	case Subtract:
		return l - r, nil
	case Multiply:
		return l * r, nil
	case Divide:
		if r == 0 {
			return 0, &EvalError{What: "division by zero"}
		}
		return l / r, nil
	case Modulus:
		if r == 0 {
			return 0, &EvalError{What: "modulus by zero"}
		}
		li, ri := int64(l), int64(r)
		return float64(li % ri), nil
	case Equal:
		return boolToFloat(l == r), nil
	case NotEqual:
		return boolToFloat(l != r), nil
	case LessThan:
		return boolToFloat(l < r), nil
	case GreaterThan:
		return boolToFloat(l > r), nil
	case LessOrEqual:
		return boolToFloat(l <= r), nil
	case GreaterOrEqual:
		return boolToFloat(l >= r), nil
	default:
		return 0, &EvalError{What: "unknown binary op"}
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// EvalString parses and evaluates input in one call, the shape the
// debugger's watch command uses.
func EvalString(input string, env Env) (float64, error) {
	node, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Eval(node, env)
}
