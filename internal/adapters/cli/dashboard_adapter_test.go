package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/dayboard/internal/ports/primary"
)

func TestDashboardAdapter_Focus(t *testing.T) {
	svc := &mockDashboardService{focus: &primary.FocusTasks{
		Work:       []*primary.InboxItem{},
		SideHustle: []*primary.InboxItem{},
		Personal:   []*primary.InboxItem{{ID: 1, Content: "buy milk"}},
	}}
	out := &bytes.Buffer{}
	adapter := NewDashboardAdapter(svc, out)

	focus, err := adapter.Focus(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(focus.Personal) != 1 {
		t.Errorf("expected 1 personal item, got %d", len(focus.Personal))
	}

	output := out.String()
	for _, want := range []string{"Work (0)", "Side Hustle (0)", "Personal (1)", "#1 buy milk", "nothing open"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %q", want, output)
		}
	}
}

func TestDashboardAdapter_Focus_Error(t *testing.T) {
	adapter := NewDashboardAdapter(&mockDashboardService{err: errBoom}, &bytes.Buffer{})

	if _, err := adapter.Focus(context.Background(), "user-123"); !errors.Is(err, errBoom) {
		t.Errorf("expected errBoom, got %v", err)
	}
}
