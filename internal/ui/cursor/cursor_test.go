package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lagu-player/lagu/internal/keymap"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		delta      int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down one", 0, 1, 10, 5, 1, 0},
		{"up clamps at top", 0, -1, 10, 5, 0, 0},
		{"down clamps at end", 9, 1, 10, 5, 9, 5},
		{"scrolls with margin", 3, 1, 20, 5, 4, 1},
		{"list shorter than view", 2, 5, 4, 10, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			c.Jump(tt.start, tt.listLen, tt.height)
			c.Move(tt.delta, tt.listLen, tt.height)
			assert.Equal(t, tt.wantPos, c.Pos())
			assert.Equal(t, tt.wantOffset, c.Offset())
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(1)
	c.Move(3, 0, 5)
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
}

func TestJump_ScrollsBackUp(t *testing.T) {
	c := New(2)
	c.Jump(19, 20, 5)
	assert.Equal(t, 15, c.Offset())

	c.Jump(10, 20, 5)
	assert.Equal(t, 8, c.Offset())
	assert.Equal(t, 10, c.Pos())
}

func TestApply(t *testing.T) {
	c := New(0)

	assert.True(t, c.Apply(keymap.ActionMoveDown, 5, 3))
	assert.Equal(t, 1, c.Pos())

	assert.True(t, c.Apply(keymap.ActionJumpEnd, 5, 3))
	assert.Equal(t, 4, c.Pos())
	assert.Equal(t, 2, c.Offset())

	assert.True(t, c.Apply(keymap.ActionMoveUp, 5, 3))
	assert.Equal(t, 3, c.Pos())

	assert.True(t, c.Apply(keymap.ActionJumpStart, 5, 3))
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())

	assert.False(t, c.Apply(keymap.ActionPlay, 5, 3))
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	start, end := c.VisibleRange(3, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	c.Jump(9, 20, 4)
	start, end = c.VisibleRange(20, 4)
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)

	start, end = c.VisibleRange(0, 4)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestFit_AfterResize(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 2)
	assert.Equal(t, 8, c.Offset())

	c.Fit(10, 20)
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, 9, c.Pos())
}
