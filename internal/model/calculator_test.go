package model

import (
	"errors"
	"math"
	"testing"
)

func TestAddIntegers(t *testing.T) {
	if got := Add(2, 3); got != 5 {
		t.Errorf("expected 5, got %g", got)
	}
}

func TestSubtractIntegers(t *testing.T) {
	if got := Subtract(10, 4); got != 6 {
		t.Errorf("expected 6, got %g", got)
	}
}

func TestMultiplyIntegers(t *testing.T) {
	if got := Multiply(6, 7); got != 42 {
		t.Errorf("expected 42, got %g", got)
	}
}

func TestDivideIntegers(t *testing.T) {
	got, err := Divide(8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %g", got)
	}
}

func TestDivideByZero(t *testing.T) {
	for _, b := range []float64{0, math.Copysign(0, -1)} {
		_, err := Divide(10, b)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(10, %g): expected ErrDivisionByZero, got %v", b, err)
		}
	}
}

func TestNegativeNumbers(t *testing.T) {
	if got := Add(-5, -3); got != -8 {
		t.Errorf("expected -8, got %g", got)
	}
	if got := Subtract(-5, 3); got != -8 {
		t.Errorf("expected -8, got %g", got)
	}
}

func TestDecimalNumbers(t *testing.T) {
	if got := Multiply(0.5, 0.2); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected ~0.1, got %g", got)
	}
	got, err := Divide(1.0, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.25 {
		t.Errorf("expected 0.25, got %g", got)
	}
}

func TestVeryLargeNumbers(t *testing.T) {
	big := 1e18
	if got := Add(big, big); got != 2*big {
		t.Errorf("expected %g, got %g", 2*big, got)
	}
}

func TestArithmeticLaws(t *testing.T) {
	pairs := [][2]float64{
		{0, 0}, {1, 2}, {-3.5, 7.25}, {1e-9, 1e9}, {0.1, 0.2}, {-42, -0.001},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if Add(a, b) != Add(b, a) {
			t.Errorf("Add(%g, %g) not commutative", a, b)
		}
		if Subtract(a, b) != -Subtract(b, a) {
			t.Errorf("Subtract(%g, %g) != -Subtract(%g, %g)", a, b, b, a)
		}
		if b != 0 {
			got, err := Divide(a, b)
			if err != nil {
				t.Errorf("Divide(%g, %g): unexpected error %v", a, b, err)
			}
			if got != a/b {
				t.Errorf("Divide(%g, %g) = %g, want %g", a, b, got, a/b)
			}
		}
	}
}
