package mines

type Coordinate struct {
	X, Y int
}

var neighborOffsets = [8]Coordinate{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (p BoardParams) Index(c Coordinate) int {
	return c.Y*p.Width + c.X
}

func (p BoardParams) Coordinate(i int) Coordinate {
	return Coordinate{X: i % p.Width, Y: i / p.Width}
}

func (p BoardParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p BoardParams) ValidIndex(i int) bool {
	return 0 <= i && i < p.Cells()
}

// Neighbors lists the indices of the up to 8 cells surrounding i. Corner
// cells have 3, edge cells 5.
func (p BoardParams) Neighbors(i int) []int {
	c := p.Coordinate(i)
	res := make([]int, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		x, y := c.X+d.X, c.Y+d.Y
		if p.InBounds(x, y) {
			res = append(res, p.Index(Coordinate{x, y}))
		}
	}
	return res
}
