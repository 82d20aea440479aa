package event

import (
	"testing"

	"github.com/lixenwraith/dispenser/flavor"
)

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatchOrder(t *testing.T) {
	r := NewRouter()
	var log []string

	r.Register(&recordingHandler{name: "a", types: []EventType{EventStickActivate, EventSpawnPiece}, log: &log})
	r.Register(&recordingHandler{name: "b", types: []EventType{EventStickActivate}, log: &log})

	r.Emit(EventStickActivate, &StickPayload{Flavor: flavor.Chocolate})
	r.Emit(EventSpawnPiece, &SpawnPayload{})
	r.Emit(EventConeFilled, nil)

	want := []string{
		"a:EventStickActivate",
		"b:EventStickActivate",
		"a:EventSpawnPiece",
	}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestRouterSubscribeAndFrame(t *testing.T) {
	r := NewRouter()
	var got GameEvent
	r.Subscribe(func(ev GameEvent) { got = ev }, EventConeFilled)

	r.SetFrame(42)
	r.Emit(EventConeFilled, &SessionPayload{Completed: true})

	if got.Frame != 42 {
		t.Errorf("frame = %d, want 42", got.Frame)
	}
	p, ok := got.Payload.(*SessionPayload)
	if !ok || !p.Completed {
		t.Errorf("payload = %#v", got.Payload)
	}
	if r.HandlerCount(EventConeFilled) != 1 || r.HandlerCount(EventSpawnPiece) != 0 {
		t.Error("unexpected handler registration")
	}
}

func TestEventNames(t *testing.T) {
	if EventSpawnPiece.String() != "EventSpawnPiece" {
		t.Errorf("got %q", EventSpawnPiece.String())
	}
	if EventType(999).String() != "EventUnknown" {
		t.Errorf("got %q", EventType(999).String())
	}
}
