package scroller

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestGrid() *CellGrid {
	g := &CellGrid{}
	g.Setup(100, 100, 300, 300, 50, 50)
	return g
}

func TestCellGridAligned(t *testing.T) {
	got := newTestGrid().Visible(0, 0, 1)
	want := []Cell{
		{Row: 0, Col: 0, Left: 0, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 0, Col: 1, Left: 50, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 0, Left: 0, Top: 50, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 1, Left: 50, Top: 50, Width: 50, Height: 50, Zoom: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible(0, 0, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestCellGridPartialColumn(t *testing.T) {
	got := newTestGrid().Visible(25, 0, 1)
	want := []Cell{
		{Row: 0, Col: 0, Left: -25, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 0, Col: 1, Left: 25, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 0, Col: 2, Left: 75, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 0, Left: -25, Top: 50, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 1, Left: 25, Top: 50, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 2, Left: 75, Top: 50, Width: 50, Height: 50, Zoom: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible(25, 0, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestCellGridOverScrolled(t *testing.T) {
	got := newTestGrid().Visible(-20, 0, 1)
	want := []Cell{
		{Row: 0, Col: 0, Left: 20, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 0, Col: 1, Left: 70, Top: 0, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 0, Left: 20, Top: 50, Width: 50, Height: 50, Zoom: 1},
		{Row: 1, Col: 1, Left: 70, Top: 50, Width: 50, Height: 50, Zoom: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible(-20, 0, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestCellGridLimitedByContent(t *testing.T) {
	got := newTestGrid().Visible(250, 250, 1)
	want := []Cell{
		{Row: 5, Col: 5, Left: 0, Top: 0, Width: 50, Height: 50, Zoom: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible(250, 250, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestCellGridZoomed(t *testing.T) {
	got := newTestGrid().Visible(100, 0, 2)
	want := []Cell{
		{Row: 0, Col: 1, Left: 0, Top: 0, Width: 100, Height: 100, Zoom: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible(100, 0, 2) mismatch (-want +got):\n%s", diff)
	}
}

func TestCellGridWithoutCells(t *testing.T) {
	var g CellGrid
	if cells := g.Visible(0, 0, 1); len(cells) != 0 {
		t.Errorf("unconfigured grid painted %d cells", len(cells))
	}
}
