package vector_test

import (
	"math"
	"testing"

	"github.com/gballistics/engine/bmath/vector"
)

func TestVectorCreation(t *testing.T) {
	var v, c vector.Vector

	v = vector.Create(1, 2, 3)
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Error("Creation failed")
	}

	c = v.Copy()

	if c.X != 1 || c.Y != 2 || c.Z != 3 {
		t.Error("Copy failed")
	}
}

func TestUnary(t *testing.T) {
	var v1, v2 vector.Vector

	v1 = vector.Create(1, 2, 3)
	if math.Abs(v1.Magnitude()-3.74165738677) > 1e-7 {
		t.Error("Magnitude failed")
	}

	v2 = v1.Negate()
	if v2.X != -1 || v2.Y != -2 || v2.Z != -3 {
		t.Error("Negate failed")
	}

	v2 = v1.Normalize()
	if v2.X > 1 || v2.Y > 1 || v2.Z > 1 {
		t.Error("Normalize failed")
	}

	v1 = vector.Create(0, 0, 0)
	v2 = v1.Normalize()
	if v2.X != 0 || v2.Y != 0 || v2.Z != 0 {
		t.Error("Normalize failed")
	}
}

func TestBinary(t *testing.T) {
	var v1, v2 vector.Vector
	v1 = vector.Create(1, 2, 3)
	v2 = v1.Add(v1.Copy())
	if v2.X != 2 || v2.Y != 4 || v2.Z != 6 {
		t.Error("Add failed")
	}

	v2 = v1.Subtract(v2)
	if v2.X != -1 || v2.Y != -2 || v2.Z != -3 {
		t.Error("Subtract failed")
	}

	if v1.MultiplyByVector(v1.Copy()) != (1 + 4 + 9) {
		t.Error("MultiplyByVector failed")
	}

	v2 = v1.MultiplyByConst(3)
	if v2.X != 3 || v2.Y != 6 || v2.Z != 9 {
		t.Error("MultiplyByConst failed")
	}
}

func TestMultiplyByVectorIsADotProduct(t *testing.T) {
	// A dot product against an orthogonal vector must be zero. A formula
	// that squares Y against itself instead of multiplying against b.Y
	// still gives zero here; it is the general case below that fails
	// under it.
	v1 := vector.Create(1, 0, 0)
	v2 := vector.Create(0, 1, 0)
	if v1.MultiplyByVector(v2) != 0 {
		t.Error("MultiplyByVector is not a correct dot product")
	}

	v3 := vector.Create(2, 3, 4)
	v4 := vector.Create(5, 6, 7)
	want := float64(2*5 + 3*6 + 4*7)
	if v3.MultiplyByVector(v4) != want {
		t.Errorf("MultiplyByVector = %f, want %f", v3.MultiplyByVector(v4), want)
	}
}

func TestEqual(t *testing.T) {
	v1 := vector.Create(1, 2, 3)
	v2 := vector.Create(1.0000001, 2.0000002, 2.9999999)
	if !v1.Equal(v2) {
		t.Error("vectors within tolerance should compare equal")
	}

	v3 := vector.Create(1, 2, 4)
	if v1.Equal(v3) {
		t.Error("vectors outside tolerance should not compare equal")
	}
}
