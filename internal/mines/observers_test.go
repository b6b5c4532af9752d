package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCellListenerReplaces(t *testing.T) {
	g := newLaidGame(t, sampleBoard...)
	var first, second int
	require.NoError(t, g.SetCellListener(0, 0, func(CellView) { first++ }))
	require.NoError(t, g.SetCellListener(0, 0, func(CellView) { second++ }))

	require.NoError(t, g.ToggleFlag(0, 0))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	require.NoError(t, g.SetCellListener(0, 0, nil))
	require.NoError(t, g.ToggleFlag(0, 0))
	assert.Equal(t, 1, second)

	assert.ErrorIs(t, g.SetCellListener(-1, 0, func(CellView) {}), ErrInvalidArgument)
}

func TestSubscribeCellCoexists(t *testing.T) {
	g := newLaidGame(t, sampleBoard...)
	var calls []string
	require.NoError(t, g.SetCellListener(2, 1, func(CellView) { calls = append(calls, "primary") }))
	a, err := g.SubscribeCell(2, 1, func(CellView) { calls = append(calls, "a") })
	require.NoError(t, err)
	_, err = g.SubscribeCell(2, 1, func(CellView) { calls = append(calls, "b") })
	require.NoError(t, err)

	require.NoError(t, g.ToggleFlag(2, 1))
	assert.Equal(t, []string{"primary", "a", "b"}, calls)

	g.UnsubscribeCell(a)
	g.UnsubscribeCell(a)
	g.UnsubscribeCell(12345)
	calls = nil
	require.NoError(t, g.ToggleFlag(2, 1))
	assert.Equal(t, []string{"primary", "b"}, calls)
}

func TestSubscribeCellInvalid(t *testing.T) {
	g := newLaidGame(t, sampleBoard...)
	_, err := g.SubscribeCell(0, 9, func(CellView) {})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = g.SubscribeCell(0, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStateListeners(t *testing.T) {
	g := newLaidGame(t, sampleBoard...)
	var calls []string
	g.AddStateListener(func(s State) { calls = append(calls, "first "+s.String()) })
	second := g.AddStateListener(func(s State) { calls = append(calls, "second "+s.String()) })
	g.AddStateListener(func(s State) { calls = append(calls, "third "+s.String()) })

	g.RemoveStateListener(second)
	g.RemoveStateListener(second)
	g.RemoveStateListener(999)

	require.NoError(t, g.Reveal(1, 7, nil))
	assert.Equal(t, []string{"first lose", "third lose"}, calls)
}

func TestStateListenerSeesSettledBoard(t *testing.T) {
	g := newLaidGame(t,
		"....",
		"....",
		"....",
		"...*",
	)
	var safeLeft, hidden int
	g.AddStateListener(func(s State) {
		safeLeft = g.SafeLeft()
		for _, row := range g.Snapshot() {
			for _, v := range row {
				if !v.IsRevealed {
					hidden++
				}
			}
		}
	})

	require.NoError(t, g.Reveal(0, 0, nil))
	assert.Equal(t, 0, safeLeft)
	assert.Equal(t, 1, hidden)
}

func TestListenerRemovingItselfDuringNotify(t *testing.T) {
	g := newLaidGame(t, sampleBoard...)
	var id ListenerID
	calls := 0
	id = g.AddStateListener(func(State) {
		calls++
		g.RemoveStateListener(id)
	})
	g.AddStateListener(func(State) { calls++ })

	require.NoError(t, g.Reveal(1, 7, nil))
	assert.Equal(t, 2, calls)
}

func TestAddNilStateListener(t *testing.T) {
	g := newLaidGame(t, sampleBoard...)
	assert.Equal(t, ListenerID(0), g.AddStateListener(nil))
	require.NoError(t, g.Reveal(1, 7, nil))
	assert.Equal(t, Lose, g.State())
}
