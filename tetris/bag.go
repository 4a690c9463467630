package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Source hands out the pieces a game spawns.
type Source interface {
	Next() Piece
}

// Bag is a 7-bag randomizer: it deals a shuffled permutation of all shapes
// and reshuffles once the permutation is used up, so every aligned run of
// seven draws holds each shape exactly once.
type Bag struct {
	rng   *rand.Rand
	order [ShapeCount]Shape
	next  int
}

// NewBag creates a bag drawing from rng. A nil rng gets a private generator
// seeded from the runtime.
func NewBag(rng *rand.Rand) *Bag {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Bag{rng: rng, next: ShapeCount}
	for i := range b.order {
		b.order[i] = Shape(i)
	}
	return b
}

// Next deals the next shape of the current permutation.
func (b *Bag) Next() Piece {
	if b.next >= ShapeCount {
		b.rng.Shuffle(len(b.order), func(i, j int) {
			b.order[i], b.order[j] = b.order[j], b.order[i]
		})
		b.next = 0
	}
	shape := b.order[b.next]
	b.next++
	return NewPiece(shape)
}

// Remaining returns how many shapes are left before the next reshuffle.
func (b *Bag) Remaining() int {
	return ShapeCount - b.next
}

// Sequence cycles through a fixed list of shapes. Useful for replays and tests.
type Sequence struct {
	shapes []Shape
	next   int
}

// NewSequence creates a source repeating shapes in order.
func NewSequence(shapes ...Shape) *Sequence {
	if len(shapes) == 0 {
		panic("tetris: empty shape sequence")
	}
	for _, s := range shapes {
		if !s.Valid() {
			panic(fmt.Sprintf("tetris: invalid shape %d in sequence", int(s)))
		}
	}
	return &Sequence{shapes: append([]Shape(nil), shapes...)}
}

func (s *Sequence) Next() Piece {
	shape := s.shapes[s.next]
	s.next = (s.next + 1) % len(s.shapes)
	return NewPiece(shape)
}
