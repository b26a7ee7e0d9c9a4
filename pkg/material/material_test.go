package material

import (
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// fixedSampler replays a fixed list of values, wrapping around
type fixedSampler struct {
	values []float64
	next   int
}

func (s *fixedSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.Get1D(), s.Get1D())
}

func (s *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestMaterial_Kinds(t *testing.T) {
	tests := []struct {
		name            string
		material        Material
		kind            Kind
		albedo          core.Vec3
		refractionIndex float64
	}{
		{"diffuse", NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)), Diffuse, core.NewVec3(0.5, 0.5, 0.5), 0},
		{"reflective", NewReflective(core.NewVec3(0.7, 0.6, 0.5), 0.1), Reflective, core.NewVec3(0.7, 0.6, 0.5), 0},
		{"refractive", NewRefractive(1.5), Refractive, core.Vec3{}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.material.Kind() != tt.kind {
				t.Errorf("Expected kind %v, got %v", tt.kind, tt.material.Kind())
			}
			if !tt.material.IsValid() {
				t.Error("Expected constructed material to be valid")
			}
			if tt.material.Kind().String() != tt.name {
				t.Errorf("Expected kind name %q, got %q", tt.name, tt.material.Kind().String())
			}
			if tt.material.Albedo() != tt.albedo {
				t.Errorf("Expected albedo %v, got %v", tt.albedo, tt.material.Albedo())
			}
			if tt.material.RefractionIndex() != tt.refractionIndex {
				t.Errorf("Expected refraction index %f, got %f", tt.refractionIndex, tt.material.RefractionIndex())
			}
		})
	}
}

func TestMaterial_ZeroValuePanics(t *testing.T) {
	var zero Material
	if zero.IsValid() {
		t.Fatal("Zero material should not be valid")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Scatter on zero material to panic")
		}
	}()
	zero.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), HitRecord{}, core.NewSeededSampler(1))
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"ray against outward normal", core.NewVec3(0, 0, -1), true, outward},
		{"ray along outward normal", core.NewVec3(0, 0, 1), false, core.NewVec3(0, 0, -1)},
		{"grazing ray counts as back face", core.NewVec3(1, 0, 0), false, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec HitRecord
			rec.SetFaceNormal(core.NewRay(core.Vec3{}, tt.direction), outward)

			if rec.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, rec.FrontFace)
			}
			if rec.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, rec.Normal)
			}
			if rec.Normal.Dot(tt.direction) > 0 {
				t.Errorf("Normal %v should oppose the ray direction %v", rec.Normal, tt.direction)
			}
		})
	}
}
