package engine

import "github.com/yoh91asakura/memes-wars-sub001/internal/game"

// EventListener receives combat events of the kind it was registered for.
// Listeners run synchronously inside the tick that produced the event and
// must not call back into the controller.
type EventListener func(game.CombatEvent)

// AddEventListener registers fn for events of the given kind and returns a
// handle usable with RemoveEventListener.
func (m *MatchController) AddEventListener(kind game.EventKind, fn EventListener) int {
	if m.listeners == nil {
		m.listeners = make(map[game.EventKind]map[int]EventListener)
	}
	if m.listeners[kind] == nil {
		m.listeners[kind] = make(map[int]EventListener)
	}
	m.nextListenerID++
	m.listeners[kind][m.nextListenerID] = fn
	return m.nextListenerID
}

// RemoveEventListener unregisters a listener handle. Unknown handles are a
// no-op.
func (m *MatchController) RemoveEventListener(kind game.EventKind, id int) {
	if reg, ok := m.listeners[kind]; ok {
		delete(reg, id)
	}
}

// DrainEvents returns all events appended since the previous drain and
// clears the internal log. Hosts that archive matches use this instead of
// per-kind listeners.
func (m *MatchController) DrainEvents() []game.CombatEvent {
	out := m.log
	m.log = nil
	return out
}

func (m *MatchController) emit(kind game.EventKind, payload game.EventPayload) {
	ev := game.CombatEvent{Kind: kind, Timestamp: m.now, Payload: payload}
	m.log = append(m.log, ev)
	for _, fn := range m.listeners[kind] {
		fn(ev)
	}
}
