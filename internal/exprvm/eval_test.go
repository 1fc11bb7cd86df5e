package exprvm

import "testing"

type mapEnv map[string]float64

func (e mapEnv) Ident(name string) (float64, error) { return e[name], nil }
func (e mapEnv) Index(name string, idx float64) (float64, error) {
	return e[name] + idx, nil
}
func (e mapEnv) Call(name string, args []float64) (float64, error) {
	sum := 0.0
	for _, a := range args {
		sum += a
	}
	return sum, nil
}

func TestArithmeticPrecedence(t *testing.T) {
	v, err := EvalString("1 + 2 * 3", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Fatalf("got %v, want 7", v)
	}
}

func TestParensAndUnary(t *testing.T) {
	v, err := EvalString("-4 + (2 * 3) % 5 + (2 + 2) * 2", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := -4.0 + float64(int64(2*3)%5) + (2+2)*2
	if v != want {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	v, err := EvalString("0 && (1/0)", nil)
	if err != nil {
		t.Fatalf("short-circuit should avoid division by zero: %v", err)
	}
	if v != 0 {
		t.Fatalf("got %v, want 0", v)
	}

	v, err = EvalString("1 || (1/0)", nil)
	if err != nil {
		t.Fatalf("short-circuit should avoid division by zero: %v", err)
	}
	if v != 1 {
		t.Fatalf("got %v, want 1", v)
	}
}

func TestIdentIndexCall(t *testing.T) {
	env := mapEnv{"flag": 10, "windy": 1}
	v, err := EvalString("flag[5] == 15 && windy", env)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("got %v, want 1", v)
	}

	v, err = EvalString("npc_count(1, 2, 3)", env)
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Fatalf("got %v, want 6", v)
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := EvalString("1 / 0", nil); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestMalformedExpressionDoesNotPanic(t *testing.T) {
	bad := []string{"1 +", "((1)", "1 2 3", "1 %% 2", "$"}
	for _, b := range bad {
		if _, err := EvalString(b, nil); err == nil {
			t.Fatalf("expected error for %q", b)
		}
	}
}
