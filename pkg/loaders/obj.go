package loaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/primitive"
)

// MeshData is a parsed Wavefront OBJ mesh: one triangle per three
// consecutive indices into Vertices/Normals/UVs, already triangulated
// from the file's (possibly n-gon) faces via a fan.
type MeshData struct {
	Vertices []geometry.Vec3
	Normals  []geometry.Vec3
	UVs      []geometry.Vec2
	// Faces holds, per triangle, the vertex/normal/UV index triples.
	// A negative Normal or UV index means the file supplied none for
	// that vertex and the caller should substitute one.
	Faces []Face
}

// Face is one triangle's three vertex indices plus the matching normal
// and UV indices (-1 when absent in the source file).
type Face struct {
	V  [3]int
	N  [3]int
	UV [3]int
}

// LoadOBJ parses a Wavefront OBJ file's v/vn/vt/f records. Faces with
// more than three vertices are triangulated as a fan from the first
// vertex, matching how NewPolygon fans a coplanar ring. Per-vertex
// normals and UVs are optional in the format; callers needing a value
// for a vertex missing one should derive the face normal from
// (v1-v0)x(v2-v0) and use UV (0,0), same as NewPolygon's convention.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening OBJ file")
	}
	defer file.Close()

	data, err := parseOBJ(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing OBJ file %q", filename)
	}
	return data, nil
}

func parseOBJ(r io.Reader) (*MeshData, error) {
	data := &MeshData{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		keyword := fields[0]
		args := fields[1:]

		var err error
		switch keyword {
		case "v":
			err = parseVec3(args, &data.Vertices)
		case "vn":
			err = parseVec3(args, &data.Normals)
		case "vt":
			err = parseVec2(args, &data.UVs)
		case "f":
			err = parseFace(args, len(data.Vertices), len(data.Normals), len(data.UVs), &data.Faces)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading OBJ file")
	}
	return data, nil
}

func parseVec3(args []string, out *[]geometry.Vec3) error {
	if len(args) < 3 {
		return errors.New("expected 3 components")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.Wrap(err, "parsing x component")
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.Wrap(err, "parsing y component")
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return errors.Wrap(err, "parsing z component")
	}
	*out = append(*out, geometry.NewVec3(x, y, z))
	return nil
}

func parseVec2(args []string, out *[]geometry.Vec2) error {
	if len(args) < 2 {
		return errors.New("expected 2 components")
	}
	u, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.Wrap(err, "parsing u component")
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.Wrap(err, "parsing v component")
	}
	*out = append(*out, geometry.NewVec2(u, v))
	return nil
}

// parseFace triangulates an n-gon face record as a fan from its first
// vertex and appends the resulting triangles to out.
func parseFace(args []string, vertexCount, normalCount, uvCount int, out *[]Face) error {
	if len(args) < 3 {
		return errors.New("face needs at least 3 vertices")
	}
	corners := make([][3]int, len(args))
	for i, arg := range args {
		v, uv, n, err := parseFaceVertex(arg, vertexCount, normalCount, uvCount)
		if err != nil {
			return err
		}
		corners[i] = [3]int{v, uv, n}
	}
	for i := 1; i < len(corners)-1; i++ {
		a, b, c := corners[0], corners[i], corners[i+1]
		*out = append(*out, Face{
			V:  [3]int{a[0], b[0], c[0]},
			UV: [3]int{a[1], b[1], c[1]},
			N:  [3]int{a[2], b[2], c[2]},
		})
	}
	return nil
}

// parseFaceVertex parses one "v/vt/vn" face corner, where vt and vn
// are optional and indices may be negative (relative to the end of the
// vertex list so far). Returns 0-based indices, with -1 standing in
// for an omitted vt/vn.
func parseFaceVertex(s string, vertexCount, normalCount, uvCount int) (v, uv, n int, err error) {
	parts := strings.Split(s, "/")
	v, err = resolveIndex(parts[0], vertexCount)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "parsing vertex index")
	}
	uv = -1
	n = -1
	if len(parts) > 1 && parts[1] != "" {
		uv, err = resolveIndex(parts[1], uvCount)
		if err != nil {
			return 0, 0, 0, errors.Wrap(err, "parsing UV index")
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err = resolveIndex(parts[2], normalCount)
		if err != nil {
			return 0, 0, 0, errors.Wrap(err, "parsing normal index")
		}
	}
	return v, uv, n, nil
}

// resolveIndex converts OBJ's 1-based (or negative, relative-to-end)
// index into a 0-based index against a list of the given length.
func resolveIndex(s string, length int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return length + i, nil
	}
	return i - 1, nil
}

// BuildTriangles converts parsed mesh data into renderer triangles,
// substituting the flat face normal (v1-v0)x(v2-v0) and UV (0,0) for
// any vertex whose source face omitted them, matching NewPolygon's
// convention for untextured, unshaded geometry.
func BuildTriangles(data *MeshData, tex geometry.Texture) []*primitive.Triangle {
	triangles := make([]*primitive.Triangle, 0, len(data.Faces))
	for _, f := range data.Faces {
		v0, v1, v2 := data.Vertices[f.V[0]], data.Vertices[f.V[1]], data.Vertices[f.V[2]]
		faceNormal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()

		normals := [3]geometry.Vec3{faceNormal, faceNormal, faceNormal}
		for i, idx := range f.N {
			if idx >= 0 {
				normals[i] = data.Normals[idx]
			}
		}

		zeroUV := geometry.NewVec2(0, 0)
		uvs := [3]geometry.Vec2{zeroUV, zeroUV, zeroUV}
		for i, idx := range f.UV {
			if idx >= 0 {
				uvs[i] = data.UVs[idx]
			}
		}

		triangles = append(triangles, primitive.NewTriangle(
			v0, v1, v2,
			normals[0], normals[1], normals[2],
			uvs[0], uvs[1], uvs[2],
			tex,
		))
	}
	return triangles
}
