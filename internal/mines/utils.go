package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

/*
celltodo is a FIFO of cell indices threaded through a `next' array, so a
cascade over a large board needs no recursion and no per-step allocation.
An index is accepted at most once for the lifetime of the list.
*/
type celltodo struct {
	next       []int
	seen       []bool
	head, tail int
}

func newCellTodo(n int) *celltodo {
	return &celltodo{
		next: make([]int, n),
		seen: make([]bool, n),
		head: -1, tail: -1,
	}
}

func (std *celltodo) add(i int) {
	if std.seen[i] {
		return /* already on it */
	}
	std.seen[i] = true
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return -1, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}
