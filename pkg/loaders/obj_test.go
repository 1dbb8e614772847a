package loaders

import (
	"strings"
	"testing"

	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/texture"
)

func TestParseOBJTriangleWithNormalsAndUVs(t *testing.T) {
	src := `
# a single triangle with explicit normals and UVs
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`
	data, err := parseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ returned error: %v", err)
	}
	if len(data.Vertices) != 3 || len(data.Normals) != 1 || len(data.UVs) != 3 {
		t.Fatalf("unexpected counts: %+v", data)
	}
	if len(data.Faces) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(data.Faces))
	}
	f := data.Faces[0]
	if f.V != [3]int{0, 1, 2} {
		t.Errorf("expected vertex indices {0,1,2}, got %v", f.V)
	}
	if f.N != [3]int{0, 0, 0} {
		t.Errorf("expected shared normal index {0,0,0}, got %v", f.N)
	}
	if f.UV != [3]int{0, 1, 2} {
		t.Errorf("expected UV indices {0,1,2}, got %v", f.UV)
	}
}

func TestParseOBJFaceWithoutNormalsOrUVs(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	data, err := parseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ returned error: %v", err)
	}
	f := data.Faces[0]
	if f.N != [3]int{-1, -1, -1} {
		t.Errorf("expected omitted normals to be -1, got %v", f.N)
	}
	if f.UV != [3]int{-1, -1, -1} {
		t.Errorf("expected omitted UVs to be -1, got %v", f.UV)
	}
}

func TestParseOBJQuadTriangulatesAsFan(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	data, err := parseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ returned error: %v", err)
	}
	if len(data.Faces) != 2 {
		t.Fatalf("expected a quad to triangulate into 2 triangles, got %d", len(data.Faces))
	}
	if data.Faces[0].V != [3]int{0, 1, 2} || data.Faces[1].V != [3]int{0, 2, 3} {
		t.Errorf("unexpected fan triangulation: %+v", data.Faces)
	}
}

func TestParseOBJNegativeIndicesAreRelativeToEnd(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	data, err := parseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ returned error: %v", err)
	}
	if data.Faces[0].V != [3]int{0, 1, 2} {
		t.Errorf("expected negative indices to resolve to {0,1,2}, got %v", data.Faces[0].V)
	}
}

func TestBuildTrianglesSubstitutesFaceNormalAndZeroUV(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	data, err := parseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseOBJ returned error: %v", err)
	}
	tex := texture.NewConstant(color.RGB{R: 1, G: 1, B: 1})
	triangles := BuildTriangles(data, tex)
	if len(triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(triangles))
	}
	tri := triangles[0]
	if tri.N0.Z <= 0 {
		t.Errorf("expected substituted face normal to point toward +Z, got %v", tri.N0)
	}
	if tri.UV0.X != 0 || tri.UV0.Y != 0 {
		t.Errorf("expected substituted UV (0,0), got %v", tri.UV0)
	}
}

func TestParseOBJMalformedFloatReturnsError(t *testing.T) {
	src := "v not-a-number 0 0\n"
	if _, err := parseOBJ(strings.NewReader(src)); err == nil {
		t.Error("expected an error for a malformed vertex line")
	}
}
