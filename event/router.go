package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit on the loop goroutine
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a closure into a Handler for the given types
type HandlerFunc struct {
	Fn    func(ev GameEvent)
	Types []EventType
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType  { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Synchronous dispatch: Emit returns after every handler ran
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Single-threaded; owned by the game loop
type Router struct {
	handlers map[EventType][]Handler
	frame    int64
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Subscribe registers fn for the given types
func (r *Router) Subscribe(fn func(ev GameEvent), types ...EventType) {
	r.Register(HandlerFunc{Fn: fn, Types: types})
}

// SetFrame stamps subsequent events with the frame number
func (r *Router) SetFrame(frame int64) {
	r.frame = frame
}

// Emit delivers an event to every handler of its type before returning
func (r *Router) Emit(t EventType, payload any) {
	ev := GameEvent{Type: t, Payload: payload, Frame: r.frame}
	for _, h := range r.handlers[t] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
