package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func approxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

func TestExpFactorGuards(t *testing.T) {
	for _, dt := range []float32{0, -1, math32.NaN(), math32.Inf(1)} {
		if f := ExpFactor(5, dt); f != 0 {
			t.Fatalf("expected zero factor for dt=%v, got %v", dt, f)
		}
	}
	if f := ExpFactor(5, 0.1); f <= 0 || f >= 1 {
		t.Fatalf("expected factor in (0, 1), got %v", f)
	}
}

func TestWrapYaw(t *testing.T) {
	cases := map[float32]float32{0: 0, 190: -170, -190: 170, 540: -180, 179: 179}
	for in, want := range cases {
		if got := WrapYaw(in); !approxEq(got, want) {
			t.Fatalf("WrapYaw(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFlatAxesAreOrthogonal(t *testing.T) {
	for _, yaw := range []float32{0, 33, 90, -145} {
		fwd, right := FlatAxes(yaw)
		if !approxEq(fwd.Dot(right), 0) {
			t.Fatalf("axes not orthogonal at yaw %v", yaw)
		}
		if !approxEq(Up.Cross(fwd).Dot(right), 1) {
			t.Fatalf("right axis is not up x forward at yaw %v", yaw)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	if a := AngleBetween(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}); !approxEq(Round32(a, 3), 45) {
		t.Fatalf("expected 45 degrees, got %v", a)
	}
	if a := AngleBetween(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}); a != 0 {
		t.Fatalf("expected zero-length vectors to be aligned, got %v", a)
	}
}

func TestProjectOnPlane(t *testing.T) {
	v := ProjectOnPlane(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0})
	if v != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("unexpected projection %v", v)
	}
}

func TestClampMagnitude2(t *testing.T) {
	v := ClampMagnitude2(mgl32.Vec2{3, 4}, 1)
	if !approxEq(v.Len(), 1) {
		t.Fatalf("expected unit length, got %v", v.Len())
	}
	if v := ClampMagnitude2(mgl32.Vec2{0.2, 0}, 1); v != (mgl32.Vec2{0.2, 0}) {
		t.Fatalf("short vectors must be untouched, got %v", v)
	}
}

func TestPercentile(t *testing.T) {
	data := []float64{5, 1, 3, 2, 4}
	if p := Percentile(data, 50); p != 3 {
		t.Fatalf("expected median 3, got %v", p)
	}
	if data[0] != 5 {
		t.Fatal("percentile must not reorder its input")
	}
}
