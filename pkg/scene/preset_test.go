package scene

import (
	"errors"
	"sort"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-box", "Cornell Box"},
		{"sphere_grid", "Sphere Grid"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtinScenes) {
		t.Fatalf("ListScenes() returned %d scenes, want %d", len(scenes), len(builtinScenes))
	}

	if !sort.SliceIsSorted(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID }) {
		t.Error("ListScenes() should be sorted by ID")
	}

	for _, s := range scenes {
		if s.Name == "" || s.Description == "" {
			t.Errorf("Scene %q is missing metadata: %+v", s.ID, s)
		}
	}
}

func TestNewScene_AllBuiltins(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			preset, err := NewScene(info.ID)
			if err != nil {
				t.Fatalf("NewScene(%q) error: %v", info.ID, err)
			}
			if len(preset.World.Shapes) == 0 {
				t.Error("Expected shapes")
			}
			if len(preset.World.Lights) == 0 {
				t.Error("Expected at least one light")
			}
			if err := preset.World.Validate(); err != nil {
				t.Errorf("Invalid world: %v", err)
			}
			if preset.View.FieldOfView <= 0 || preset.View.From.Equals(preset.View.To) {
				t.Errorf("Unusable view %+v", preset.View)
			}
		})
	}
}

func TestNewScene_Unknown(t *testing.T) {
	_, err := NewScene("no-such-scene")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNewSphereGridScene(t *testing.T) {
	if _, err := NewSphereGridScene(0); err == nil {
		t.Error("Expected error for an empty grid")
	}

	preset, err := NewSphereGridScene(4)
	if err != nil {
		t.Fatalf("NewSphereGridScene error: %v", err)
	}

	// Floor plus one divided group
	if len(preset.World.Shapes) != 2 {
		t.Fatalf("Expected 2 top-level shapes, got %d", len(preset.World.Shapes))
	}
	grid, ok := preset.World.Shapes[1].(*geometry.Group)
	if !ok {
		t.Fatalf("Expected the grid to be a group, got %T", preset.World.Shapes[1])
	}
	if n := len(primitives(grid)); n != 16 {
		t.Errorf("Expected 16 spheres, got %d", n)
	}
	// 16 spheres above the threshold are split into two subgroups
	if len(grid.Children()) != 2 {
		t.Errorf("Expected the grid to be divided into 2 subgroups, got %d children", len(grid.Children()))
	}
}

func TestConeSegment(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		top    float64
		height float64
		valid  bool
	}{
		{"pointed", 0.5, 0, 2, true},
		{"frustum", 0.8, 0.5, 0.6, true},
		{"inverted", 0.5, 0.8, 1, false},
		{"flat", 0.5, 0, 0, false},
		{"negative top", 0.5, -0.1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cone, shape, err := coneSegment(tt.base, tt.top, tt.height, true)
			if !tt.valid {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("coneSegment error: %v", err)
			}
			if err := cone.SetTransform(shape); err != nil {
				t.Fatal(err)
			}

			bounds := geometry.ParentSpaceBounds(cone)
			if !core.ApproxEqual(bounds.Min.Y, 0) || !core.ApproxEqual(bounds.Max.Y, tt.height) {
				t.Errorf("Expected y range [0, %v], got [%v, %v]", tt.height, bounds.Min.Y, bounds.Max.Y)
			}
			if !core.ApproxEqual(bounds.Max.X, tt.base) {
				t.Errorf("Expected radius %v at the base, got %v", tt.base, bounds.Max.X)
			}
		})
	}
}

func TestCreateIcosphereMesh(t *testing.T) {
	mesh, err := createIcosphereMesh(1, matte(core.NewColor(0.5, 0.5, 0.5)))
	if err != nil {
		t.Fatalf("createIcosphereMesh error: %v", err)
	}

	// One subdivision turns 20 faces into 80
	if n := len(primitives(mesh)); n != 80 {
		t.Errorf("Expected 80 triangles, got %d", n)
	}

	bounds := mesh.LocalBounds()
	if !core.ApproxEqual(bounds.Min.X, -1) || !core.ApproxEqual(bounds.Max.Y, 1) {
		t.Errorf("Expected the mesh to fit the unit sphere, got %v", bounds)
	}
}
