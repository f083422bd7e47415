package events

import (
	"testing"

	"github.com/nathoo/pokesave/types"
)

func TestDispatch_MatchesEventType(t *testing.T) {
	var got []string
	handlers := []Handler{
		{EventType: Replaced, Fn: func(e types.Event) { got = append(got, "replaced:"+e.Type) }},
		{EventType: Decoded, Fn: func(e types.Event) { got = append(got, "decoded:"+e.Type) }},
	}

	n := Dispatch([]types.Event{{Type: Replaced}}, handlers)
	if n != 1 {
		t.Fatalf("expected 1 call, got %d", n)
	}
	if len(got) != 1 || got[0] != "replaced:replaced" {
		t.Errorf("got %v", got)
	}
}

func TestDispatch_WildcardSeesEverything(t *testing.T) {
	var seen []string
	handlers := []Handler{{Fn: func(e types.Event) { seen = append(seen, e.Type) }}}

	Dispatch([]types.Event{{Type: Decoded}, {Type: "edited"}, {Type: Encoded}}, handlers)
	if len(seen) != 3 || seen[0] != Decoded || seen[1] != "edited" || seen[2] != Encoded {
		t.Errorf("seen = %v", seen)
	}
}

func TestDispatch_Order(t *testing.T) {
	var order []int
	handlers := []Handler{
		{Fn: func(types.Event) { order = append(order, 1) }},
		{EventType: Replaced, Fn: func(types.Event) { order = append(order, 2) }},
	}
	Dispatch([]types.Event{{Type: Replaced}, {Type: Replaced}}, handlers)
	want := []int{1, 2, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestDispatch_NoHandlers(t *testing.T) {
	if n := Dispatch([]types.Event{{Type: Decoded}}, nil); n != 0 {
		t.Errorf("expected 0 calls, got %d", n)
	}
	if n := Dispatch(nil, []Handler{{Fn: func(types.Event) {}}}); n != 0 {
		t.Errorf("expected 0 calls for no events, got %d", n)
	}
}

func TestDispatch_NilFnSkipped(t *testing.T) {
	if n := Dispatch([]types.Event{{Type: Decoded}}, []Handler{{EventType: Decoded}}); n != 0 {
		t.Errorf("expected 0 calls, got %d", n)
	}
}
