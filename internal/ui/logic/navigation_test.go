package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListMove(t *testing.T) {
	n := NewNavigator(5, 1, 2)

	assert.Equal(t, 1, n.Move(0, Down))
	assert.Equal(t, 0, n.Move(0, Up))
	assert.Equal(t, 4, n.Move(4, Down))
	assert.Equal(t, 2, n.Move(0, PageDown))
	assert.Equal(t, 4, n.Move(3, PageDown))
	assert.Equal(t, 0, n.Move(1, PageUp))
	assert.Equal(t, 4, n.Move(0, End))
	assert.Equal(t, 0, n.Move(3, Home))
	assert.Equal(t, 2, n.Move(2, Left), "left is a no-op in a list")
	assert.Equal(t, 2, n.Move(2, Right))
}

func TestGridMove(t *testing.T) {
	// 0 1 2
	// 3 4 5
	// 6 7
	n := NewNavigator(8, 3, 1)

	assert.Equal(t, 4, n.Move(1, Down))
	assert.Equal(t, 7, n.Move(4, Down))
	assert.Equal(t, 5, n.Move(5, Down), "no item below stays in column")
	assert.Equal(t, 2, n.Move(2, Up))
	assert.Equal(t, 1, n.Move(4, Up))
	assert.Equal(t, 3, n.Move(4, Left))
	assert.Equal(t, 3, n.Move(3, Left), "left edge")
	assert.Equal(t, 5, n.Move(4, Right))
	assert.Equal(t, 5, n.Move(5, Right), "right edge")
	assert.Equal(t, 7, n.Move(7, Right), "last item")
	assert.Equal(t, 3, n.Rows())
}

func TestMoveEmpty(t *testing.T) {
	n := NewNavigator(0, 3, 5)
	assert.Equal(t, 0, n.Move(0, Down))
	assert.Equal(t, 0, n.Rows())
}

func TestViewport(t *testing.T) {
	n := NewNavigator(10, 1, 3)

	assert.Equal(t, 0, n.Viewport(2, 0, 3))
	assert.Equal(t, 1, n.Viewport(3, 0, 3))
	assert.Equal(t, 7, n.Viewport(9, 0, 3))
	assert.Equal(t, 4, n.Viewport(4, 6, 3))
	assert.Equal(t, 0, n.Viewport(5, 0, 20), "everything fits")

	grid := NewNavigator(10, 4, 1)
	assert.Equal(t, 1, grid.Viewport(9, 0, 2))
}
