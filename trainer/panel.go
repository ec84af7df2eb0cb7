package trainer

import "github.com/go-gl/mathgl/mgl32"

// Front panel geometry, in instrument-local units. The face of the
// instrument is the plane z = 0 and spans FaceMin..FaceMax; controls stick
// out towards +z.
var (
	FaceMin = mgl32.Vec2{-0.5, -0.3}
	FaceMax = mgl32.Vec2{0.5, 0.3}

	// FacePlaneZ is the plane in front of the face on which a grabbed probe
	// is dragged.
	FacePlaneZ float32 = 0.05

	Ch1PortPosition = mgl32.Vec3{0.36, -0.22, 0.05}
	RestingPosition = mgl32.Vec3{0.62, -0.25, 0.05}

	// ScreenMin and ScreenMax bound the display area on the face.
	ScreenMin = mgl32.Vec2{-0.46, -0.06}
	ScreenMax = mgl32.Vec2{0.04, 0.26}
)

var probeHalfSize = mgl32.Vec3{0.02, 0.02, 0.015}

func box(id, parent string, cx, cy, hx, hy, z0, z1 float32) Shape {
	return Shape{
		ID:     id,
		Parent: parent,
		Min:    mgl32.Vec3{cx - hx, cy - hy, z0},
		Max:    mgl32.Vec3{cx + hx, cy + hy, z1},
	}
}

func button(id string, cx, cy float32) []Shape {
	return []Shape{
		box(id, "housing", cx, cy, 0.045, 0.02, 0, 0.015),
		box(id+".label", id, cx, cy, 0.03, 0.01, 0.015, 0.017),
	}
}

func knob(id string, cx, cy float32) []Shape {
	return []Shape{
		box(id, "housing", cx, cy, 0.035, 0.035, 0, 0.025),
		box(id+".cap", id, cx, cy, 0.02, 0.02, 0.025, 0.04),
	}
}

// PanelScene returns the static geometry of the standard front panel. The
// anchors match the ones of DefaultRegistry.
func PanelScene() Shapes {
	s := Shapes{
		{ID: "housing", Min: mgl32.Vec3{FaceMin[0], FaceMin[1], -0.3}, Max: mgl32.Vec3{FaceMax[0], FaceMax[1], 0}},
		{ID: "screen", Parent: "housing", Min: ScreenMin.Vec3(0), Max: ScreenMax.Vec3(0.002)},
		box("power", "housing", -0.40, -0.22, 0.035, 0.025, 0, 0.02),
		box("ch1", "housing", Ch1PortPosition[0], Ch1PortPosition[1], 0.025, 0.025, 0, 0.03),
		box("ch1.ring", "ch1", Ch1PortPosition[0], Ch1PortPosition[1], 0.015, 0.015, 0.03, 0.035),
	}
	s = append(s, button("wave.sine", 0.12, 0.21)...)
	s = append(s, button("wave.square", 0.24, 0.21)...)
	s = append(s, button("wave.triangle", 0.36, 0.21)...)
	s = append(s, knob("knob.timebase", 0.12, 0.07)...)
	s = append(s, knob("knob.vdiv", 0.24, 0.07)...)
	s = append(s, knob("knob.trigger", 0.36, 0.07)...)
	s = append(s, button("runstop", 0.12, -0.08)...)
	s = append(s, button("auto", 0.24, -0.08)...)
	return s
}

// ProbeShapes returns the geometry of the probe at the given position.
func ProbeShapes(pos mgl32.Vec3) Shapes {
	return Shapes{
		{ID: "probe", Min: pos.Sub(probeHalfSize), Max: pos.Add(probeHalfSize)},
		{ID: "probe.tip", Parent: "probe",
			Min: pos.Sub(mgl32.Vec3{0.005, 0.005, -probeHalfSize[2]}),
			Max: pos.Add(mgl32.Vec3{0.005, 0.005, probeHalfSize[2] + 0.01})},
	}
}

// Find returns the shape with the given ID.
func (s Shapes) Find(id string) (Shape, bool) {
	for _, sh := range s {
		if sh.ID == id {
			return sh, true
		}
	}
	return Shape{}, false
}

// Center returns the center point of a shape.
func (sh Shape) Center() mgl32.Vec3 {
	return sh.Min.Add(sh.Max).Mul(0.5)
}
