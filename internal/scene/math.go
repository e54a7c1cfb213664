package scene

import "math"

// Vec3 is a position or direction in world space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Ray is a half-line in world space. Dir is expected to be unit length.
type Ray struct {
	Origin Vec3 `json:"origin"`
	Dir    Vec3 `json:"dir"`
}

// DistSqToPoint returns the squared distance from p to the ray. Points
// behind the ray origin measure to the origin itself.
func (r Ray) DistSqToPoint(p Vec3) float64 {
	toPoint := p.Sub(r.Origin)
	t := toPoint.Dot(r.Dir)
	if t < 0 {
		t = 0
	}
	closest := r.Origin.Add(r.Dir.Scale(t))
	d := p.Sub(closest)
	return d.Dot(d)
}

// Projector converts a normalized screen position into a world-space ray.
// Implementations mirror whatever camera the presentation layer renders
// with, so picked rays line up with what the user sees.
type Projector interface {
	ScreenRay(x, y float64) Ray
}

// PerspectiveProjector unprojects screen points through a standard
// perspective camera defined by position, look-at target, vertical field
// of view, and aspect ratio.
type PerspectiveProjector struct {
	Position Vec3
	Target   Vec3
	FOV      float64 // vertical field of view, degrees
	Aspect   float64 // width / height
}

// ScreenRay returns the ray from the camera through the normalized screen
// point (x, y), where (0, 0) is the top-left corner and (1, 1) the
// bottom-right.
func (c PerspectiveProjector) ScreenRay(x, y float64) Ray {
	forward := c.Target.Sub(c.Position).Normalized()
	right := forward.Cross(Vec3{Y: 1}).Normalized()
	up := right.Cross(forward)

	// Normalized device coordinates: screen y grows downward.
	ndcX := 2*x - 1
	ndcY := 1 - 2*y

	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * c.Aspect)).
		Add(up.Scale(ndcY * tanHalf)).
		Normalized()

	return Ray{Origin: c.Position, Dir: dir}
}
