package trainer_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vsariola/scopetrainer/trainer"
)

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := trainer.NewRegistry(
		trainer.Descriptor{Kind: trainer.Power, Anchor: "a"},
		trainer.Descriptor{Kind: trainer.Auto, Anchor: "a"},
	)
	if err == nil {
		t.Error("expected duplicate anchor error")
	}
	if _, err := trainer.NewRegistry(trainer.Descriptor{Kind: trainer.Power}); err == nil {
		t.Error("expected missing anchor error")
	}
	if _, err := trainer.NewRegistry(trainer.Descriptor{Kind: trainer.NoControl, Anchor: "x"}); err == nil {
		t.Error("expected invalid kind error")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := trainer.DefaultRegistry()
	if r.Len() != 11 {
		t.Errorf("expected 11 controls, got %d", r.Len())
	}
	scene := trainer.PanelScene()
	scene = append(scene, trainer.ProbeShapes(trainer.RestingPosition)...)
	seen := map[string]bool{}
	for _, d := range r.Descriptors {
		if seen[d.Anchor] {
			t.Errorf("anchor %q registered twice", d.Anchor)
		}
		seen[d.Anchor] = true
		if _, ok := scene.Find(d.Anchor); !ok {
			t.Errorf("anchor %q has no geometry in the panel", d.Anchor)
		}
	}
	for k := trainer.Power; k < trainer.NumControlKinds; k++ {
		if _, ok := r.ByKind(k); !ok {
			t.Errorf("no control of kind %v", k)
		}
	}
}

func TestControlKindText(t *testing.T) {
	for k := trainer.NoControl; k < trainer.NumControlKinds; k++ {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back trainer.ControlKind
		if err := back.UnmarshalText(text); err != nil || back != k {
			t.Errorf("%v did not survive text encoding: %v %v", k, back, err)
		}
	}
	if _, err := trainer.ParseControlKind("volume"); err == nil {
		t.Error("expected error for unknown control")
	}
}

func TestIntersectBox(t *testing.T) {
	lo, hi := mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}
	tests := []struct {
		name string
		ray  trainer.Ray
		hit  bool
		t    float32
	}{
		{"front", trainer.Ray{Origin: mgl32.Vec3{0, 0, 5}, Dir: mgl32.Vec3{0, 0, -1}}, true, 4},
		{"away", trainer.Ray{Origin: mgl32.Vec3{0, 0, 5}, Dir: mgl32.Vec3{0, 0, 1}}, false, 0},
		{"beside", trainer.Ray{Origin: mgl32.Vec3{2, 0, 5}, Dir: mgl32.Vec3{0, 0, -1}}, false, 0},
		{"inside", trainer.Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectBox(lo, hi)
			if ok != tt.hit || (ok && got != tt.t) {
				t.Errorf("got %v %v, want %v %v", got, ok, tt.t, tt.hit)
			}
		})
	}
}

func TestResolveNearestAndParent(t *testing.T) {
	r := trainer.NewRouter(trainer.DefaultRegistry())
	scene := trainer.PanelScene()
	down := mgl32.Vec3{0, 0, -1}
	for id, want := range map[string]trainer.ControlKind{
		"knob.timebase.cap": trainer.Timebase,
		"knob.trigger":      trainer.Trigger,
		"ch1.ring":          trainer.Ch1Port,
		"runstop.label":     trainer.RunStop,
		"auto":              trainer.Auto,
	} {
		sh, ok := scene.Find(id)
		if !ok {
			t.Fatalf("no shape %q", id)
		}
		c := sh.Center()
		d, ok := r.Resolve(scene, trainer.Ray{Origin: mgl32.Vec3{c[0], c[1], 1}, Dir: down})
		if !ok || d.Kind != want {
			t.Errorf("%s: expected %v, got %v (%v)", id, want, d.Kind, ok)
		}
	}
	screen, _ := scene.Find("screen")
	c := screen.Center()
	if d, ok := r.Resolve(scene, trainer.Ray{Origin: mgl32.Vec3{c[0], c[1], 1}, Dir: down}); ok {
		t.Errorf("screen should not resolve to a control, got %v", d)
	}
	if _, ok := r.Resolve(scene, trainer.Ray{Origin: mgl32.Vec3{3, 3, 1}, Dir: down}); ok {
		t.Error("empty space should not resolve")
	}
}

func TestCameraRayRoundTrip(t *testing.T) {
	c := trainer.DefaultCamera
	const w, h = 800, 600
	for _, p := range []mgl32.Vec3{{0, 0, 0}, {0.3, -0.2, 0.05}, trainer.Ch1PortPosition} {
		x, y := c.Project(p, w, h)
		ray, err := c.Ray(x, y, w, h)
		if err != nil {
			t.Fatal(err)
		}
		hit, ok := ray.IntersectPlaneZ(p[2])
		if !ok {
			t.Fatalf("ray through %v misses its plane", p)
		}
		if hit.Sub(p).Len() > 1e-3 {
			t.Errorf("projected %v to (%v, %v), ray came back at %v", p, x, y, hit)
		}
	}
	x, y := c.Project(mgl32.Vec3{0, 0.2, 0}, w, h)
	if mgl32.Abs(x-w/2) > 0.5 || y >= h/2 {
		t.Errorf("a point above center should project above the middle, got (%v, %v)", x, y)
	}
	if _, err := c.Ray(0, 0, 0, 0); err == nil {
		t.Error("expected error for empty viewport")
	}
}

func TestCameraRayHitsPower(t *testing.T) {
	c := trainer.DefaultCamera
	const w, h = 1024, 768
	power, _ := trainer.PanelScene().Find("power")
	x, y := c.Project(power.Center(), w, h)
	ray, err := c.Ray(x, y, w, h)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := trainer.NewRouter(trainer.DefaultRegistry()).Hover(trainer.PanelScene(), ray)
	if !ok || d.Kind != trainer.Power {
		t.Errorf("expected power under the cursor, got %v", d)
	}
}
