package trainer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type (
	// Ray is a pointer ray in instrument-local space. Dir does not need to be
	// normalized, but hit distances are measured in units of its length.
	Ray struct {
		Origin, Dir mgl32.Vec3
	}

	// Shape is one piece of hit-testable geometry, an axis aligned box in
	// instrument-local space. Parent links child geometry (e.g. a knob cap) to
	// the node that carries the control anchor.
	Shape struct {
		ID, Parent string
		Min, Max   mgl32.Vec3
	}

	// Scene is implemented by the rendering collaborator; it exposes the
	// current geometry of the instrument.
	Scene interface {
		Shapes() []Shape
	}

	// Shapes is a static Scene.
	Shapes []Shape

	// Router resolves pointer rays against the scene and attributes hits to
	// registered controls. It holds no mutable state.
	Router struct {
		registry *Registry
	}
)

func (s Shapes) Shapes() []Shape { return s }

// PointerRay returns the ray from one point towards another, as delivered by
// a spatial pointer.
func PointerRay(from, to mgl32.Vec3) Ray {
	return Ray{Origin: from, Dir: to.Sub(from).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// IntersectBox returns the distance to the nearest intersection of the ray
// with the box, using the slab method. Boxes behind the origin are not hit;
// an origin inside the box hits at t = 0.
func (r Ray) IntersectBox(lo, hi mgl32.Vec3) (t float32, ok bool) {
	tmin, tmax := float32(0), float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		if mgl32.Abs(r.Dir[i]) < 1e-9 {
			if r.Origin[i] < lo[i] || r.Origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t1 := (lo[i] - r.Origin[i]) * inv
		t2 := (hi[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// IntersectPlaneZ intersects the ray with the plane z = const.
func (r Ray) IntersectPlaneZ(z float32) (mgl32.Vec3, bool) {
	if mgl32.Abs(r.Dir[2]) < 1e-9 {
		return mgl32.Vec3{}, false
	}
	t := (z - r.Origin[2]) / r.Dir[2]
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.At(t), true
}

func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Resolve returns the control hit by the ray. The nearest intersected shape
// wins; if it is not a registered anchor itself, the hit is attributed to the
// nearest ancestor that is.
func (r *Router) Resolve(scene Scene, ray Ray) (Descriptor, bool) {
	shapes := scene.Shapes()
	best := -1
	var bestT float32
	for i, s := range shapes {
		t, ok := ray.IntersectBox(s.Min, s.Max)
		if ok && (best < 0 || t < bestT) {
			best, bestT = i, t
		}
	}
	if best < 0 {
		return Descriptor{}, false
	}
	return r.attribute(shapes, shapes[best].ID)
}

// Hover is the per-frame query used for highlight feedback. It is the same
// query as Resolve and never changes anything.
func (r *Router) Hover(scene Scene, ray Ray) (Descriptor, bool) {
	return r.Resolve(scene, ray)
}

func (r *Router) attribute(shapes []Shape, id string) (Descriptor, bool) {
	parents := make(map[string]string, len(shapes))
	for _, s := range shapes {
		parents[s.ID] = s.Parent
	}
	for hops := 0; id != "" && hops <= len(shapes); hops++ {
		if d, ok := r.registry.Lookup(id); ok {
			return d, true
		}
		id = parents[id]
	}
	return Descriptor{}, false
}
