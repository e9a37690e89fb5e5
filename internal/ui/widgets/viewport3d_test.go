package widgets

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/scene"
	"github.com/surmesure/configurator/internal/viewport"
)

func newTestViewport(t *testing.T) *Viewport3D {
	t.Helper()
	test.NewApp()

	arena := scene.NewArena()
	scene.Build(catalog.Default(), config.DefaultMeuble(), arena)
	ctrl := viewport.NewController(arena)
	ctrl.Camera.Frame(arena)
	return NewViewport3D(ctrl)
}

func TestViewportRunsFrameLoop(t *testing.T) {
	vp := newTestViewport(t)
	r := test.WidgetRenderer(vp).(*viewportRenderer)

	if r.anim == nil {
		t.Fatal("renderer must own a frame animation")
	}
	if r.anim.RepeatCount != fyne.AnimationRepeatForever {
		t.Fatalf("frame animation RepeatCount = %d, want forever", r.anim.RepeatCount)
	}

	// A tick rebuilds the object list from the controller's projections,
	// independent of any interaction.
	r.Layout(fyne.NewSize(640, 480))
	before := len(r.Objects())
	if before < 2 { // background plus at least one projection
		t.Fatalf("expected projected objects after layout, got %d", before)
	}
	r.anim.Tick(0)
	if got := len(r.Objects()); got != before {
		t.Fatalf("tick rebuilt %d objects, want %d", got, before)
	}
	r.Destroy()
}

func TestViewportStopsFrameLoopOnDestroy(t *testing.T) {
	vp := newTestViewport(t)
	r := test.WidgetRenderer(vp).(*viewportRenderer)
	r.Destroy() // must not panic and must detach the animation
}
