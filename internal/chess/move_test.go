package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMove_String(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"quiet", Move{From: Pos(4, 1), To: Pos(4, 3), Kind: DoublePawnAdvance}, "e2e4"},
		{"castle", Move{From: Pos(4, 0), To: Pos(6, 0), Kind: CastleKingside}, "e1g1"},
		{"queen promotion", Move{From: Pos(4, 6), To: Pos(4, 7), Promotion: Queen}, "e7e8q"},
		{"knight promotion", Move{From: Pos(0, 1), To: Pos(1, 0), Kind: Capture, Promotion: Knight}, "a2b1n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveKind(t *testing.T) {
	tests := []struct {
		kind    MoveKind
		name    string
		capture bool
		castle  bool
	}{
		{Normal, "Normal", false, false},
		{Capture, "Capture", true, false},
		{EnPassantCapture, "EnPassantCapture", true, false},
		{CastleKingside, "CastleKingside", false, true},
		{CastleQueenside, "CastleQueenside", false, true},
		{DoublePawnAdvance, "DoublePawnAdvance", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.String() != tt.name {
				t.Errorf("String() = %q; want %q", tt.kind.String(), tt.name)
			}
			if got := (Move{Kind: tt.kind}).IsCapture(); got != tt.capture {
				t.Errorf("IsCapture() = %v; want %v", got, tt.capture)
			}
			if tt.kind.IsCastle() != tt.castle {
				t.Errorf("IsCastle() = %v; want %v", tt.kind.IsCastle(), tt.castle)
			}
		})
	}
	if MoveKind(99).String() != "Unknown" {
		t.Errorf("MoveKind(99).String() = %q", MoveKind(99).String())
	}
}

func TestMoveList(t *testing.T) {
	from := Pos(6, 0)
	list := MoveList{
		{From: from, To: Pos(5, 2)},
		{From: from, To: Pos(7, 2)},
	}

	if m, ok := list.Find(Pos(7, 2)); !ok || m.To != Pos(7, 2) {
		t.Errorf("Find(h3) = %+v, %v", m, ok)
	}
	if list.Contains(Pos(6, 2)) {
		t.Error("Contains(g3) = true; want false")
	}
	if diff := cmp.Diff([]Position{Pos(5, 2), Pos(7, 2)}, list.Destinations()); diff != "" {
		t.Errorf("Destinations() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"g1f3", "g1h3"}, list.Strings()); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}

	var empty MoveList
	if _, ok := empty.Find(Pos(0, 0)); ok {
		t.Error("Find on empty list succeeded")
	}
	if len(empty.Destinations()) != 0 || len(empty.Strings()) != 0 {
		t.Error("empty list produced entries")
	}
}
