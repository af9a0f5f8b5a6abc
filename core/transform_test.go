package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	assertNear(t, name+".X", got.X, want.X)
	assertNear(t, name+".Y", got.Y, want.Y)
}

// --- ComposeSRT ---

func TestComposeSRTIdentity(t *testing.T) {
	got := ComposeSRT(Vec2{}, 0, Vec2{1, 1})
	assertMatrix(t, "identity", got, IdentityMatrix)
}

func TestComposeSRTTranslation(t *testing.T) {
	got := ComposeSRT(Vec2{10, 20}, 0, Vec2{1, 1})
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestComposeSRTScale(t *testing.T) {
	got := ComposeSRT(Vec2{}, 0, Vec2{2, 3})
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestComposeSRTRotation90(t *testing.T) {
	got := ComposeSRT(Vec2{}, math.Pi/2, Vec2{1, 1})
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestComposeSRTCombined(t *testing.T) {
	got := ComposeSRT(Vec2{50, 100}, math.Pi/2, Vec2{2, 2})
	// Scale(2,2) then Rotate(90°): a=0, b=2, c=-2, d=0, tx=50, ty=100
	assertMatrix(t, "combined", got, [6]float64{0, 2, -2, 0, 50, 100})
}

// --- MultiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", MultiplyAffine(IdentityMatrix, m), m)
	assertMatrix(t, "m*id", MultiplyAffine(m, IdentityMatrix), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", MultiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 23})
}

// --- InvertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv, ok := InvertAffine(m)
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}
	assertMatrix(t, "m*inv=id", MultiplyAffine(m, inv), IdentityMatrix)
}

func TestInvertAffineComplex(t *testing.T) {
	m := ComposeSRT(Vec2{30, -7}, math.Pi/3, Vec2{2, 1})
	inv, ok := InvertAffine(m)
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}
	assertMatrix(t, "m*inv=id", MultiplyAffine(m, inv), IdentityMatrix)
}

func TestInvertAffineSingular(t *testing.T) {
	m := ComposeSRT(Vec2{10, 20}, 0.5, Vec2{0, 1})
	if _, ok := InvertAffine(m); ok {
		t.Error("zero-scale matrix reported invertible")
	}
	m = [6]float64{0, 0, 0, 0, 50, 100}
	if _, ok := InvertAffine(m); ok {
		t.Error("fully degenerate matrix reported invertible")
	}
}

// --- TransformPoint ---

func TestTransformPointRoundtrip(t *testing.T) {
	m := ComposeSRT(Vec2{100, 50}, math.Pi/6, Vec2{2, 3})
	inv, ok := InvertAffine(m)
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}
	p := Vec2{150, 80}
	back := TransformPoint(inv, TransformPoint(m, p))
	assertVec(t, "roundtrip", back, p)
}

// --- ClampTrans ---

func TestClampTransInRange(t *testing.T) {
	p := Vec2{123, -456}
	assertVec(t, "in-range", ClampTrans(p), p)
}

func TestClampTransOutOfRange(t *testing.T) {
	got := ClampTrans(Vec2{TransMax + 1, TransMin - 1})
	assertVec(t, "clamped", got, Vec2{TransMax, TransMin})
}

func TestClampTransIdempotent(t *testing.T) {
	for _, p := range []Vec2{
		{0, 0},
		{TransMax + 99999, TransMin - 99999},
		{TransMin, TransMax},
		{-3.5, 12345678},
	} {
		once := ClampTrans(p)
		twice := ClampTrans(once)
		assertVec(t, "idempotent", twice, once)
	}
}

// --- Benchmarks ---

func BenchmarkComposeSRT(b *testing.B) {
	v := SRTValue{Pos: Vec2{100, 200}, Rotate: 0.5, Scale: Vec2{2, 3}}
	b.ReportAllocs()
	for b.Loop() {
		_ = ComposeSRT(v.Pos, v.Rotate, v.Scale)
	}
}
