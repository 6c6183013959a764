package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// bvhNode is a node in the bounding volume hierarchy
type bvhNode struct {
	bounds    AABB
	left      *bvhNode
	right     *bvhNode
	triangles []int // indices into the triangle array (only for leaf nodes)
}

// StaticMesh answers world collision queries against static level triangles.
// Geometry may be registered at any time; a mesh with no triangles reports
// no contact for every query.
type StaticMesh struct {
	triangles []Triangle
	root      *bvhNode
}

// NewStaticMesh creates an empty mesh.
func NewStaticMesh() *StaticMesh {
	return &StaticMesh{}
}

// AddTriangles registers more static geometry and rebuilds the hierarchy.
// Degenerate triangles are skipped. Returns how many were kept.
func (m *StaticMesh) AddTriangles(tris ...Triangle) int {
	added := 0
	for _, t := range tris {
		if t.Degenerate() {
			continue
		}
		m.triangles = append(m.triangles, t)
		added++
	}
	if added > 0 {
		m.buildBVH()
	}
	return added
}

// AddFloor registers a size x size quad at y=0 centred on the origin, but
// only while the mesh has no geometry. Reports whether it did.
func (m *StaticMesh) AddFloor(size float64) bool {
	if len(m.triangles) > 0 {
		return false
	}
	h := size / 2
	return m.AddTriangles(
		NewTriangle(mgl64.Vec3{-h, 0, -h}, mgl64.Vec3{-h, 0, h}, mgl64.Vec3{h, 0, h}),
		NewTriangle(mgl64.Vec3{-h, 0, -h}, mgl64.Vec3{h, 0, h}, mgl64.Vec3{h, 0, -h}),
	) > 0
}

// TriangleCount returns the number of triangles registered
func (m *StaticMesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.triangles)
}

// Bounds returns the AABB of all registered geometry
func (m *StaticMesh) Bounds() AABB {
	if m == nil || m.root == nil {
		return AABB{}
	}
	return m.root.bounds
}

// SphereIntersect pushes a copy of the sphere out of every touched triangle
// in turn and reports the accumulated displacement as a single contact.
func (m *StaticMesh) SphereIntersect(s Sphere) (Contact, bool) {
	if m == nil || m.root == nil {
		return Contact{}, false
	}

	moved := s
	hit := false
	for _, idx := range m.query(m.root, s.Bounds(), nil) {
		if c, ok := sphereTriangleIntersect(moved.Center, moved.Radius, &m.triangles[idx]); ok {
			hit = true
			moved.Center = AddScaled(moved.Center, c.Normal, c.Depth)
		}
	}
	if !hit {
		return Contact{}, false
	}
	return contactFromDisplacement(moved.Center.Sub(s.Center)), true
}

// CapsuleIntersect is SphereIntersect for capsules; the displacement is
// measured between the segment midpoints.
func (m *StaticMesh) CapsuleIntersect(c Capsule) (Contact, bool) {
	if m == nil || m.root == nil {
		return Contact{}, false
	}

	moved := c
	hit := false
	for _, idx := range m.query(m.root, c.Bounds(), nil) {
		if contact, ok := capsuleTriangleIntersect(&moved, &m.triangles[idx]); ok {
			hit = true
			moved.Translate(contact.Normal.Mul(contact.Depth))
		}
	}
	if !hit {
		return Contact{}, false
	}
	return contactFromDisplacement(moved.Center().Sub(c.Center())), true
}

func contactFromDisplacement(d mgl64.Vec3) Contact {
	return Contact{Normal: Normalize(d), Depth: d.Len()}
}

// buildBVH constructs a bounding volume hierarchy for fast queries
func (m *StaticMesh) buildBVH() {
	if len(m.triangles) == 0 {
		m.root = nil
		return
	}

	indices := make([]int, len(m.triangles))
	for i := range indices {
		indices[i] = i
	}
	m.root = m.buildBVHNode(indices, 0)
}

func (m *StaticMesh) buildBVHNode(indices []int, depth int) *bvhNode {
	node := &bvhNode{bounds: m.computeBounds(indices)}

	// If few triangles or max depth, make leaf
	if len(indices) <= 4 || depth > 20 {
		node.triangles = indices
		return node
	}

	// Find longest axis
	size := node.bounds.Size()
	axis := 0
	if size[1] > size[axis] {
		axis = 1
	}
	if size[2] > size[axis] {
		axis = 2
	}

	mid := m.partitionTriangles(indices, axis)
	if mid == 0 || mid == len(indices) {
		// Couldn't split, make leaf
		node.triangles = indices
		return node
	}

	node.left = m.buildBVHNode(indices[:mid], depth+1)
	node.right = m.buildBVHNode(indices[mid:], depth+1)
	return node
}

func (m *StaticMesh) computeBounds(indices []int) AABB {
	bounds := AABB{
		Min: mgl64.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: mgl64.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
	for _, idx := range indices {
		bounds = bounds.Union(m.triangles[idx].bounds())
	}
	return bounds
}

// partitionTriangles splits around the mean centroid on the given axis
func (m *StaticMesh) partitionTriangles(indices []int, axis int) int {
	center := 0.0
	for _, idx := range indices {
		center += m.triangles[idx].centroid()[axis]
	}
	center /= float64(len(indices))

	left := 0
	right := len(indices) - 1
	for left <= right {
		if m.triangles[indices[left]].centroid()[axis] < center {
			left++
		} else {
			indices[left], indices[right] = indices[right], indices[left]
			right--
		}
	}
	return left
}

func (m *StaticMesh) query(node *bvhNode, box AABB, out []int) []int {
	if node == nil || !node.bounds.Intersects(box) {
		return out
	}
	if node.triangles != nil {
		return append(out, node.triangles...)
	}
	out = m.query(node.left, box, out)
	return m.query(node.right, box, out)
}
