package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCoordinateBijection(t *testing.T) {
	for _, p := range []BoardParams{
		{Height: 1, Width: 1},
		{Height: 1, Width: 7},
		{Height: 7, Width: 1},
		{Height: 3, Width: 5},
		{Height: 16, Width: 30},
	} {
		seen := make(map[int]bool)
		for y := range p.Height {
			for x := range p.Width {
				i := p.Index(Coordinate{x, y})
				require.True(t, p.ValidIndex(i), "%s (%d,%d) -> %d", p.Seed(), x, y, i)
				require.False(t, seen[i], "%s index %d produced twice", p.Seed(), i)
				seen[i] = true
				assert.Equal(t, Coordinate{x, y}, p.Coordinate(i))
			}
		}
		assert.Len(t, seen, p.Cells())
	}
}

func TestNeighbors(t *testing.T) {
	p := BoardParams{Height: 4, Width: 5}

	tests := []struct {
		name string
		at   Coordinate
		want []int
	}{
		{"top left corner", Coordinate{0, 0}, []int{1, 5, 6}},
		{"bottom right corner", Coordinate{4, 3}, []int{13, 14, 18}},
		{"top edge", Coordinate{2, 0}, []int{1, 3, 6, 7, 8}},
		{"left edge", Coordinate{0, 2}, []int{5, 6, 11, 15, 16}},
		{"interior", Coordinate{2, 2}, []int{6, 7, 8, 11, 13, 16, 17, 18}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := p.Neighbors(p.Index(test.at))
			assert.ElementsMatch(t, test.want, got)
			assert.NotContains(t, got, p.Index(test.at))
		})
	}
}

func TestNeighborsDegenerate(t *testing.T) {
	assert.Empty(t, BoardParams{Height: 1, Width: 1}.Neighbors(0))
	assert.ElementsMatch(t, []int{0, 2}, BoardParams{Height: 1, Width: 3}.Neighbors(1))
}

func TestInBounds(t *testing.T) {
	p := BoardParams{Height: 2, Width: 3}
	assert.True(t, p.InBounds(0, 0))
	assert.True(t, p.InBounds(2, 1))
	assert.False(t, p.InBounds(3, 0))
	assert.False(t, p.InBounds(0, 2))
	assert.False(t, p.InBounds(-1, 0))
	assert.False(t, p.ValidIndex(6))
	assert.False(t, p.ValidIndex(-1))
}

func TestCellTodo(t *testing.T) {
	todo := newCellTodo(5)
	todo.add(3)
	todo.add(1)
	todo.add(3)
	todo.add(4)

	var got []int
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		got = append(got, i)
	}
	assert.Equal(t, []int{3, 1, 4}, got)

	todo.add(3)
	todo.add(0)
	i, ok := todo.pop()
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	_, ok = todo.pop()
	assert.False(t, ok)
}
