package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// ExpFactor returns the fraction of the remaining distance covered by an exponential
// approach with the given rate over dt. It is always within [0, 1] and is zero for a
// non-positive or non-finite dt, so it can never produce NaN state.
func ExpFactor(rate, dt float32) float32 {
	if !(dt > 0) || !(rate > 0) || math32.IsInf(dt, 0) {
		return 0
	}
	return ClampFloat(1-math32.Exp(-rate*dt), 0, 1)
}

// SanitiseDelta returns dt, or zero if dt is negative, NaN or infinite.
func SanitiseDelta(dt float32) float32 {
	if !(dt > 0) || math32.IsInf(dt, 0) {
		return 0
	}
	return dt
}

// WrapYaw wraps the given yaw in degrees into [-180, 180).
func WrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw+180, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw - 180
}

// DirectionVector returns a direction vector from the given yaw and pitch values in degrees.
// A yaw of zero faces +Z, a positive yaw turns towards +X and a positive pitch looks up.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Sin(yawRad),
		math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// FlatAxes returns the horizontal forward and right axes for the given yaw in degrees.
func FlatAxes(yaw float32) (forward, right mgl32.Vec3) {
	yawRad := mgl32.DegToRad(yaw)
	s, c := math32.Sin(yawRad), math32.Cos(yawRad)
	return mgl32.Vec3{s, 0, c}, mgl32.Vec3{c, 0, -s}
}

// ClampMagnitude2 returns v scaled down so that its length does not exceed max.
func ClampMagnitude2(v mgl32.Vec2, max float32) mgl32.Vec2 {
	if math32.IsNaN(v.X()) || math32.IsNaN(v.Y()) {
		return mgl32.Vec2{}
	}
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Normalize returns the unit vector of v, or false if v is too short to have a direction.
func Normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l < 1e-6 || math32.IsNaN(l) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// Horizontal returns v with its vertical component removed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// ProjectOnPlane removes the component of v along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	n, ok := Normalize(n)
	if !ok {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n)))
}

// AngleBetween returns the angle in degrees between a and b. Zero-length vectors
// are treated as aligned.
func AngleBetween(a, b mgl32.Vec3) float32 {
	an, ok := Normalize(a)
	if !ok {
		return 0
	}
	bn, ok := Normalize(b)
	if !ok {
		return 0
	}
	return mgl32.RadToDeg(math32.Acos(ClampFloat(an.Dot(bn), -1, 1)))
}
