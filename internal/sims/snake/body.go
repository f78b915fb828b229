package snake

import "gridsnake/internal/core"

// Segment is one trailing body part.
type Segment struct {
	Pos core.Point
	// ID is assigned in growth order and stays with the segment for its
	// lifetime. Renderers may use it to keep per-segment visuals stable.
	ID int
}

// Body is the ordered chain of segments following the head.
//
// Segments live in a ring. The front of the ring is the segment that moves
// next: Propagate lifts it to the cell the head just left and re-queues it at
// the back, so the chain advances without touching any other segment.
type Body struct {
	ring   []Segment
	start  int
	n      int
	nextID int
}

// Len returns the number of segments.
func (b *Body) Len() int { return b.n }

// At returns the i-th segment counted from the front of the ring.
func (b *Body) At(i int) Segment { return b.ring[(b.start+i)%len(b.ring)] }

// Grow inserts a new segment at the front positioned at p.
func (b *Body) Grow(p core.Point) {
	if b.n == len(b.ring) {
		b.resize()
	}
	b.start = (b.start - 1 + len(b.ring)) % len(b.ring)
	b.ring[b.start] = Segment{Pos: p, ID: b.nextID}
	b.nextID++
	b.n++
}

// Propagate moves the front segment to prev and re-queues it at the back.
func (b *Body) Propagate(prev core.Point) {
	if b.n == 0 {
		return
	}
	seg := b.ring[b.start]
	seg.Pos = prev
	b.start = (b.start + 1) % len(b.ring)
	b.ring[(b.start+b.n-1)%len(b.ring)] = seg
}

// Occupies reports whether any segment sits on p.
func (b *Body) Occupies(p core.Point) bool {
	for i := 0; i < b.n; i++ {
		if b.At(i).Pos == p {
			return true
		}
	}
	return false
}

// Positions appends every segment position to dst in ring order.
func (b *Body) Positions(dst []core.Point) []core.Point {
	for i := 0; i < b.n; i++ {
		dst = append(dst, b.At(i).Pos)
	}
	return dst
}

// Visible appends the positions that should be drawn while the head is at
// head. A segment sharing the head's cell is skipped; right after growth the
// new segment sits under the head for one tick.
func (b *Body) Visible(head core.Point, dst []core.Point) []core.Point {
	for i := 0; i < b.n; i++ {
		if p := b.At(i).Pos; p != head {
			dst = append(dst, p)
		}
	}
	return dst
}

// Clear removes every segment.
func (b *Body) Clear() {
	b.start = 0
	b.n = 0
	b.nextID = 0
}

func (b *Body) resize() {
	size := 2 * len(b.ring)
	if size < 8 {
		size = 8
	}
	ring := make([]Segment, size)
	for i := 0; i < b.n; i++ {
		ring[i] = b.At(i)
	}
	b.ring = ring
	b.start = 0
}
