package mines

import "slices"

type (
	CellListener  func(CellView)
	StateListener func(State)
)

// ListenerID identifies a registration so it can be removed later without
// disturbing any other listener.
type ListenerID uint64

type cellSub struct {
	id ListenerID
	fn CellListener
}

type stateSub struct {
	id ListenerID
	fn StateListener
}

type registry struct {
	lastID ListenerID

	// primary holds the single-slot listener per cell used by renderers.
	primary  [][]CellListener
	cellSubs map[point][]cellSub
	cellOf   map[ListenerID]point
	states   []stateSub
}

func newRegistry(rows, cols int) registry {
	primary := make([][]CellListener, rows)
	for i := range primary {
		primary[i] = make([]CellListener, cols)
	}
	return registry{
		primary:  primary,
		cellSubs: make(map[point][]cellSub),
		cellOf:   make(map[ListenerID]point),
	}
}

func (r *registry) newID() ListenerID {
	r.lastID++
	return r.lastID
}

func (r *registry) notifyCell(row, col int, view CellView) {
	if fn := r.primary[row][col]; fn != nil {
		fn(view)
	}
	for _, sub := range slices.Clone(r.cellSubs[point{row, col}]) {
		sub.fn(view)
	}
}

func (r *registry) notifyState(s State) {
	for _, sub := range slices.Clone(r.states) {
		sub.fn(s)
	}
}

// SetCellListener installs fn as the listener of (row, col), replacing the
// previous one. A nil fn clears the slot.
func (g *Game) SetCellListener(row, col int, fn CellListener) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	g.observers.primary[row][col] = fn
	return nil
}

// SubscribeCell adds fn next to any other listener of (row, col).
func (g *Game) SubscribeCell(row, col int, fn CellListener) (ListenerID, error) {
	if err := g.validate(row, col); err != nil {
		return 0, err
	}
	if fn == nil {
		return 0, invalidArgument("nil cell listener")
	}
	r := &g.observers
	id := r.newID()
	p := point{row, col}
	r.cellSubs[p] = append(r.cellSubs[p], cellSub{id, fn})
	r.cellOf[id] = p
	return id, nil
}

// UnsubscribeCell removes a listener added by SubscribeCell. Unknown ids
// are ignored.
func (g *Game) UnsubscribeCell(id ListenerID) {
	r := &g.observers
	p, ok := r.cellOf[id]
	if !ok {
		return
	}
	delete(r.cellOf, id)
	r.cellSubs[p] = slices.DeleteFunc(r.cellSubs[p], func(s cellSub) bool {
		return s.id == id
	})
	if len(r.cellSubs[p]) == 0 {
		delete(r.cellSubs, p)
	}
}

// AddStateListener registers fn for game state transitions. Listeners are
// called in registration order.
func (g *Game) AddStateListener(fn StateListener) ListenerID {
	if fn == nil {
		return 0
	}
	r := &g.observers
	id := r.newID()
	r.states = append(r.states, stateSub{id, fn})
	return id
}

// RemoveStateListener drops exactly the listener registered under id.
func (g *Game) RemoveStateListener(id ListenerID) {
	r := &g.observers
	r.states = slices.DeleteFunc(r.states, func(s stateSub) bool {
		return s.id == id
	})
}
