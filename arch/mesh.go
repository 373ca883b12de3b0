package arch

// NewMeshXD creates a d-dimensional mesh architecture with the given
// per-dimension extents. Panics if dims is empty or any extent <= 0.
// Complexity: O(d).
func NewMeshXD(dims []int32) *Arch {
	return newMeshOrTorus(dims, false)
}

// NewTorusXD creates a d-dimensional torus architecture (edges wrap
// around each dimension) with the given per-dimension extents.
// Complexity: O(d).
func NewTorusXD(dims []int32) *Arch {
	return newMeshOrTorus(dims, true)
}

func newMeshOrTorus(dims []int32, wrap bool) *Arch {
	if len(dims) == 0 {
		panic("arch: NewMeshXD/NewTorusXD(no dimensions)")
	}
	for _, d := range dims {
		if d <= 0 {
			panic("arch: NewMeshXD/NewTorusXD(non-positive extent)")
		}
	}
	return &Arch{kind: KindMesh, dims: append([]int32(nil), dims...), wrap: wrap}
}

// meshDistance computes the L1 distance between representative
// coordinates loA/loB (spec.md S2: "domain_distance = |Δx|+|Δy|"), using
// the toroidal wrap-around minimum per axis when the architecture is a
// torus.
func (a *Arch) meshDistance(loA, loB []int32) int64 {
	var dist int64
	for i, extent := range a.dims {
		d := loA[i] - loB[i]
		if d < 0 {
			d = -d
		}
		if a.wrap {
			wrapped := extent - d
			if wrapped < d {
				d = wrapped
			}
		}
		dist += int64(d)
	}
	return dist
}
