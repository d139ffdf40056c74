package tensor

import (
	"github.com/quiltlabs/quilt/pkg/tensor/status"
)

// Patch is a dense block of values over an explicit label subset per
// axis. Once built and committed a patch is never modified; Apply is
// only used on result patches while a fetch assembles its output.
type Patch struct {
	axes    []Axis
	shape   []int
	strides []int
	data    []float64
}

// NewPatch validates and builds a patch from per-axis label subsets and
// row-major dense content. Every subset must be strictly ascending and
// unique, and len(content) must equal the product of the subset
// lengths. Zero-length subsets are legal and keep their dimension.
func NewPatch(axes []Axis, content []float64) (*Patch, error) {
	if len(axes) == 0 {
		return nil, status.ErrDimensionMismatch.WrapMessage("a patch needs at least one axis")
	}
	own := make([]Axis, len(axes))
	shape := make([]int, len(axes))
	size := 1
	for i, ax := range axes {
		sub, err := NewSubset(ax.Name, ax.Labels)
		if err != nil {
			return nil, err
		}
		own[i] = sub
		shape[i] = sub.Len()
		size *= shape[i]
	}
	if len(content) != size {
		return nil, status.ErrShapeMismatch.WrapMessage("got %d values for shape %v (want %d)", len(content), shape, size)
	}
	return &Patch{
		axes:    own,
		shape:   shape,
		strides: rowMajorStrides(shape),
		data:    append([]float64(nil), content...),
	}, nil
}

// NewEmptyPatch builds a zero-filled patch over the given axes
func NewEmptyPatch(axes []Axis) (*Patch, error) {
	size := 1
	for _, ax := range axes {
		size *= ax.Len()
	}
	return NewPatch(axes, make([]float64, size))
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// NDim is the number of dimensions
func (p *Patch) NDim() int {
	return len(p.axes)
}

// Shape returns a copy of the per-dimension sizes
func (p *Patch) Shape() []int {
	return append([]int(nil), p.shape...)
}

// Size is the total number of cells
func (p *Patch) Size() int {
	return len(p.data)
}

// Axes returns a deep copy of the axis subsets
func (p *Patch) Axes() []Axis {
	out := make([]Axis, len(p.axes))
	for i, ax := range p.axes {
		out[i] = ax.Clone()
	}
	return out
}

// AxisNames returns the axis names in dimension order
func (p *Patch) AxisNames() []string {
	out := make([]string, len(p.axes))
	for i, ax := range p.axes {
		out[i] = ax.Name
	}
	return out
}

// Content returns a copy of the row-major dense values
func (p *Patch) Content() []float64 {
	return append([]float64(nil), p.data...)
}

// Export returns copies of the axis subsets and the content, never
// aliases into the patch.
func (p *Patch) Export() ([]Axis, []float64) {
	return p.Axes(), p.Content()
}

// At reads one cell by per-dimension positions
func (p *Patch) At(coords ...int) float64 {
	return p.data[p.offset(coords)]
}

func (p *Patch) offset(coords []int) int {
	if len(coords) != len(p.shape) {
		panic("tensor: coordinate rank does not match patch rank")
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= p.shape[i] {
			panic("tensor: coordinate out of range")
		}
		off += c * p.strides[i]
	}
	return off
}

// Apply overlays src onto p: wherever a label coordinate exists in
// both, the value from src overwrites the value in p. Axis names must
// match in order. Only the cross-product of the per-dimension sorted
// intersections is touched, so the cost is linear in label counts plus
// the overlapping volume.
func (p *Patch) Apply(src *Patch) error {
	if len(src.axes) != len(p.axes) {
		return status.ErrDimensionMismatch.WrapMessage("got %d dimensions, want %d", len(src.axes), len(p.axes))
	}
	dstIdx := make([][]int, len(p.axes))
	srcIdx := make([][]int, len(p.axes))
	for d := range p.axes {
		if src.axes[d].Name != p.axes[d].Name {
			return status.ErrAxisNameMismatch.WrapMessage("dimension %d: got %q, want %q", d, src.axes[d].Name, p.axes[d].Name)
		}
		dstIdx[d], srcIdx[d] = IntersectSorted(p.axes[d].Labels, src.axes[d].Labels)
		if len(dstIdx[d]) == 0 {
			return nil
		}
	}
	p.copyOverlap(src, dstIdx, srcIdx, 0, 0, 0)
	return nil
}

func (p *Patch) copyOverlap(src *Patch, dstIdx, srcIdx [][]int, dim, dstOff, srcOff int) {
	if dim == len(p.axes)-1 {
		for k := range dstIdx[dim] {
			p.data[dstOff+dstIdx[dim][k]*p.strides[dim]] = src.data[srcOff+srcIdx[dim][k]*src.strides[dim]]
		}
		return
	}
	for k := range dstIdx[dim] {
		p.copyOverlap(src, dstIdx, srcIdx, dim+1,
			dstOff+dstIdx[dim][k]*p.strides[dim],
			srcOff+srcIdx[dim][k]*src.strides[dim])
	}
}
