package page

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/portfolio/internal/content"
)

func TestNew_UnknownPage(t *testing.T) {
	store, err := content.Bundled()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New("nope", Deps{Store: store}); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("New(nope) error = %v, want ErrUnknownPage", err)
	}
	if _, err := New(Home, Deps{}); err == nil {
		t.Error("New() without a store should fail")
	}
}

func TestNames(t *testing.T) {
	want := []string{Creator, Explorer, Home, Producer, Review}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if !Known(Review) || Known("admin") {
		t.Error("Known() disagrees with Names()")
	}
}

func TestHandle_UnknownEventIsRecoverable(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			h := mount(t, name)
			if name == Review {
				h.send(t, Event{Type: "passcode-submit", Value: "4242"})
			}
			c, err := h.page.Handle(context.Background(), Event{Type: "explode"})
			if !errors.Is(err, ErrUnknownEvent) {
				t.Errorf("Handle(explode) error = %v, want ErrUnknownEvent", err)
			}
			if c != None {
				t.Errorf("Handle(explode) change = %v, want none", c)
			}
			if h.page.View() == nil {
				t.Error("View() = nil after a bad event")
			}
		})
	}
}

func TestHome_LinkedHighlight(t *testing.T) {
	h := mount(t, Home)

	if c := h.send(t, Event{Type: "hover", Target: "producer-label"}); !c.Render() {
		t.Error("hover should re-render")
	}
	lit := map[string]bool{}
	for _, e := range h.page.View().(HomeView).Elements {
		if e.Highlighted {
			lit[e.ID] = true
		}
	}
	if diff := cmp.Diff(map[string]bool{"producer-label": true, "producer-box": true}, lit); diff != "" {
		t.Errorf("highlighted mismatch (-want +got):\n%s", diff)
	}

	h.send(t, Event{Type: "leave"})
	for _, e := range h.page.View().(HomeView).Elements {
		if e.Highlighted {
			t.Errorf("%s still highlighted after leave", e.ID)
		}
	}

	h.send(t, Event{Type: "portrait", Value: "enter"})
	if !h.page.View().(HomeView).PortraitHovered {
		t.Error("portrait hover not recorded")
	}

	if _, err := h.page.Handle(context.Background(), Event{Type: "hover", Target: "ghost"}); !errors.Is(err, ErrUnknownRecord) {
		t.Errorf("hover(ghost) error = %v", err)
	}
}
