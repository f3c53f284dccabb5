package pagination

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func TestSectionedBuildRequiredFields(t *testing.T) {
	layout := NewLayout(Dimension{Columns: 9, Rows: 3}).Build()
	platform := testPlatform(newGridSurface())

	tests := []struct {
		name    string
		builder *SectionedBuilder
		want    error
	}{
		{"no platform", NewSectionedPagination(nil).Viewer(testViewer).Layout(layout), ErrMissingPlatform},
		{"no key", NewSectionedPagination(&Platform{Surfaces: &gridProvider{}}).Viewer(testViewer).Layout(layout), ErrMissingPlatform},
		{"no provider", NewSectionedPagination(&Platform{Key: "test"}).Viewer(testViewer).Layout(layout), ErrMissingProvider},
		{"no viewer", NewSectionedPagination(platform).Layout(layout), ErrMissingViewer},
		{"no layout", NewSectionedPagination(platform).Viewer(testViewer), ErrMissingLayout},
		{"ok", NewSectionedPagination(platform).Viewer(testViewer).Layout(layout), nil},
	}
	for _, tt := range tests {
		_, err := tt.builder.Build()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Build() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestSectionedAt(t *testing.T) {
	a, _ := NewSection().Zone(2, 2).Build()
	b, _ := NewSection().Zone(2, 2).Offset(5, 0).Build()
	p, err := NewSectionedPagination(testPlatform(newGridSurface())).
		Viewer(testViewer).
		Layout(NewLayout(Dimension{Columns: 9, Rows: 3}).Build()).
		Section(a, b).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if got, err := p.At(1); err != nil || got != b || got.Index() != 1 {
		t.Errorf("At(1) = (%p, %v), want section b", got, err)
	}
	for _, idx := range []int{-1, 2} {
		if _, err := p.At(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
	if p.Sections() != 2 {
		t.Errorf("Sections() = %d, want 2", p.Sections())
	}
}

func TestLocatorPrecedence(t *testing.T) {
	surface := newGridSurface()
	section, _ := NewSection().Zone(3, 2).Offset(1, 1).Contents(textIcons(6)...).Build()
	background := NewIcon(Text("pane"))
	p, err := NewSectionedPagination(testPlatform(surface)).
		Viewer(testViewer).
		Layout(NewLayout(Dimension{Columns: 9, Rows: 3}).Slot(background, 10).Build()).
		Section(section).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	_ = p.Open()

	override := NewIcon(Text("patch"))
	if err := p.Override(10, override); err != nil {
		t.Fatal(err)
	}
	if got := p.Locate(10); got != override {
		t.Errorf("Locate(10) = %q, want override", got.Label())
	}
	if surface.label(10) != "patch" {
		t.Errorf("surface slot 10 = %q, want patch", surface.label(10))
	}

	_ = p.ClearOverride(10)
	if got := p.Locate(10); got != background {
		t.Errorf("Locate(10) = %q, want layout element", got.Label())
	}

	// without override and layout the section's current page answers
	loc := NewLocator(NewLayout(Dimension{Columns: 9, Rows: 3}).Build(), section)
	if got := loc.Locate(10); got.Label() != "item-00" {
		t.Errorf("Locate(10) = %q, want item-00", got.Label())
	}
	if loc.Owner(10) != section {
		t.Error("Owner(10) is not the section")
	}
	if got := loc.Locate(0); got != nil {
		t.Errorf("Locate(0) = %q, want nil", got.Label())
	}
}

func TestLocatorOverlapFirstWins(t *testing.T) {
	var buf bytes.Buffer
	platform := testPlatform(newGridSurface())
	platform.Logger = log.New(&buf, "", 0)

	first, _ := NewSection().Zone(3, 1).Offset(0, 0).Contents(NewIcon(Text("first"))).Build()
	second, _ := NewSection().Zone(3, 1).Offset(0, 0).Contents(NewIcon(Text("second"))).Build()
	p, err := NewSectionedPagination(platform).
		Viewer(testViewer).
		Layout(NewLayout(Dimension{Columns: 9, Rows: 2}).Build()).
		Section(first, second).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	if got := p.Locate(0).Label(); got != "first" {
		t.Errorf("Locate(0) = %q, want first", got)
	}
	if !strings.Contains(buf.String(), "overlap") {
		t.Errorf("expected overlap warning, log = %q", buf.String())
	}
}

func TestSectionAttachedTwicePanics(t *testing.T) {
	s, _ := NewSection().Zone(1, 1).Build()
	build := func() {
		_, _ = NewSectionedPagination(testPlatform(newGridSurface())).
			Viewer(testViewer).
			Layout(NewLayout(Dimension{Columns: 9, Rows: 1}).Build()).
			Section(s).
			Build()
	}
	build()

	defer func() {
		if recover() == nil {
			t.Error("attaching a section twice did not panic")
		}
	}()
	build()
}

func TestSectionedOpenClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layout := NewLayout(Dimension{Columns: 9, Rows: 1}).Slot(NewIcon(Text("pane")), 4).Build()
	surface := NewMockSurface(ctrl)
	provider := NewMockSurfaceProvider(ctrl)

	provider.EXPECT().Open(testViewer, "Shop", Dimension{Columns: 9, Rows: 1}).Return(surface, nil)
	surface.EXPECT().Set(gomock.Any(), gomock.Nil()).Times(8)
	surface.EXPECT().Set(4, gomock.Not(gomock.Nil())).Times(1)
	surface.EXPECT().Close().Return(nil)

	p, err := NewSectionedPagination(&Platform{Key: "mock", Surfaces: provider}).
		Viewer(testViewer).
		Title("Shop").
		Layout(layout).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Open(); err != nil {
		t.Fatal(err)
	}
	if err := p.Open(); err != nil {
		t.Errorf("second Open() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	if err := p.Open(); !errors.Is(err, ErrClosed) {
		t.Errorf("Open() after Close() error = %v, want ErrClosed", err)
	}
	if _, err := p.Click(0, ClickLeft); !errors.Is(err, ErrClosed) {
		t.Errorf("Click() after Close() error = %v, want ErrClosed", err)
	}
	if err := p.Override(0, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Override() after Close() error = %v, want ErrClosed", err)
	}
}

func TestSectionedOpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockSurfaceProvider(ctrl)
	provider.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("viewer offline"))

	p, _ := NewSectionedPagination(&Platform{Key: "mock", Surfaces: provider}).
		Viewer(uuid.New()).
		Layout(NewLayout(Dimension{Columns: 9, Rows: 1}).Build()).
		Build()
	if err := p.Open(); err == nil || !strings.Contains(err.Error(), "viewer offline") {
		t.Errorf("Open() error = %v, want viewer offline", err)
	}
}

func TestClickReadonly(t *testing.T) {
	var clicked []int
	icon := NewIcon(Text("button"), func(ctx *ClickContext) {
		clicked = append(clicked, ctx.Slot)
		if ctx.Viewer != testViewer {
			t.Errorf("ctx.Viewer = %s, want %s", ctx.Viewer, testViewer)
		}
	})
	layout := NewLayout(Dimension{Columns: 9, Rows: 1}).Slot(icon, 3).Build()

	for _, readonly := range []bool{true, false} {
		p, _ := NewSectionedPagination(testPlatform(newGridSurface())).
			Viewer(testViewer).
			Readonly(readonly).
			Layout(layout).
			Build()
		cancelled, err := p.Click(3, ClickRight)
		if err != nil || cancelled != readonly {
			t.Errorf("readonly=%v: Click(3) = (%v, %v)", readonly, cancelled, err)
		}
		if cancelled, _ := p.Click(5, ClickLeft); cancelled != readonly {
			t.Errorf("readonly=%v: Click on empty slot cancelled = %v", readonly, cancelled)
		}
	}
	if len(clicked) != 2 {
		t.Errorf("listener ran %d times, want 2", len(clicked))
	}
}
