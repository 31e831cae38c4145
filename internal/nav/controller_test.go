package nav_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/nav"
	"github.com/san-kum/mandelscope/internal/view"
)

var _ = Describe("Controller", func() {
	var (
		eng    *fractal.Engine
		ctl    *nav.Controller
		events []nav.Event
	)

	drain := func() {
		for ctl.State() == nav.Scanning {
			ctl.Step()
		}
	}

	kinds := func() []nav.Kind {
		ks := make([]nav.Kind, len(events))
		for i, ev := range events {
			ks[i] = ev.Kind
		}
		return ks
	}

	BeforeEach(func() {
		eng = fractal.NewEngine(8, 8)
		eng.Budget = 0 // one row per step, so specs can interleave actions
		ctl = nav.NewController(eng, view.Home(1), "checkered")
		events = nil
		record := func(ev nav.Event) { events = append(events, ev) }
		ctl.Notifier().OnScanStarted(record)
		ctl.Notifier().OnScanEnded(record)
	})

	It("starts idle at the home view", func() {
		Expect(ctl.State()).To(Equal(nav.Idle))
		Expect(ctl.Viewport()).To(Equal(view.Home(1)))
		Expect(ctl.Depth()).To(Equal(1))
		Expect(ctl.Scan()).To(BeNil())
	})

	Describe("zooming in", func() {
		It("halves the view about its center and pushes the history", func() {
			ctl.ZoomIn()

			vp := ctl.Viewport()
			Expect(vp.Width).To(Equal(2.0))
			Expect(vp.Height).To(Equal(2.0))
			Expect(vp.CenterRe).To(BeZero())
			Expect(vp.CenterIm).To(BeZero())
			Expect(ctl.Depth()).To(Equal(2))
		})

		It("scans to completion through Step", func() {
			ctl.ZoomIn()
			Expect(ctl.State()).To(Equal(nav.Scanning))

			drain()

			Expect(ctl.State()).To(Equal(nav.Idle))
			Expect(ctl.Scan().Outcome()).To(Equal(fractal.Completed))
			for _, n := range eng.Grid().Iters {
				Expect(n).NotTo(BeZero())
			}
		})

		It("notifies start and completion in order", func() {
			ctl.ZoomIn()
			drain()

			Expect(kinds()).To(Equal([]nav.Kind{nav.ScanStarted, nav.ScanEnded}))
			Expect(events[0].Success).To(BeTrue())
			Expect(events[0].Scheme).To(Equal("checkered"))
			Expect(events[0].At.IsZero()).To(BeFalse())
			Expect(events[1].Success).To(BeTrue())
			Expect(events[1].Outcome).To(Equal(fractal.Completed))
		})
	})

	Describe("zooming out", func() {
		It("is a proper undo of zooming in", func() {
			start := ctl.Viewport()
			for i := 0; i < 3; i++ {
				ctl.ZoomIn()
			}
			for i := 0; i < 3; i++ {
				ctl.ZoomOut()
			}
			drain()

			Expect(ctl.Viewport()).To(Equal(start))
			Expect(ctl.Depth()).To(Equal(1))
		})

		It("does nothing at the root", func() {
			ctl.ZoomOut()

			Expect(ctl.State()).To(Equal(nav.Idle))
			Expect(ctl.Depth()).To(Equal(1))
			Expect(events).To(BeEmpty())
		})
	})

	Describe("interrupting an active scan", func() {
		It("cancels and drains the old scan before committing the new view", func() {
			ctl.ZoomIn()
			ctl.Step() // one row of the first scan
			ctl.ZoomIn()

			Expect(kinds()).To(Equal([]nav.Kind{nav.ScanStarted, nav.ScanEnded, nav.ScanStarted}))
			Expect(events[1].Outcome).To(Equal(fractal.Cancelled))
			Expect(events[1].Viewport).To(Equal(events[0].Viewport))
			Expect(events[2].Viewport).To(Equal(ctl.Viewport()))
		})

		It("hands the new scan a zeroed grid", func() {
			ctl.ZoomIn()
			ctl.Step()
			ctl.ZoomIn()

			for _, n := range eng.Grid().Iters {
				Expect(n).To(BeZero())
			}
		})
	})

	Describe("cancelling", func() {
		It("keeps the committed viewport and the partial rows", func() {
			ctl.Repaint()
			ctl.Step()
			before := ctl.Viewport()

			ctl.Cancel()

			Expect(ctl.State()).To(Equal(nav.Idle))
			Expect(ctl.Scan().Outcome()).To(Equal(fractal.Cancelled))
			Expect(ctl.Viewport()).To(Equal(before))

			g := eng.Grid()
			for j := 0; j < g.Cols; j++ {
				Expect(g.Iters[j]).NotTo(BeZero())
			}
			Expect(g.Iters[g.Len()-1]).To(BeZero())
		})

		It("is a no-op while idle", func() {
			ctl.Cancel()

			Expect(ctl.State()).To(Equal(nav.Idle))
			Expect(events).To(BeEmpty())
		})

		It("leaves a fully zeroed grid to the next repaint", func() {
			ctl.Repaint()
			ctl.Step()
			ctl.Cancel()

			ctl.Repaint()

			for _, n := range eng.Grid().Iters {
				Expect(n).To(BeZero())
			}
		})
	})

	Describe("committing a dragged region", func() {
		It("maps the rectangle into the committed view and pushes it", func() {
			err := ctl.CommitRegion(view.Rect{X0: 0, Y0: 0, X1: 4, Y1: 4}, 8, 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(ctl.Depth()).To(Equal(2))

			vp := ctl.Viewport()
			Expect(vp.CenterRe).To(Equal(-1.0))
			Expect(vp.CenterIm).To(Equal(1.0))
			Expect(vp.Width).To(Equal(2.0))
			Expect(vp.Height).To(Equal(2.0))
		})

		It("rejects a click-sized rectangle without disturbing the scan", func() {
			ctl.Repaint()
			ctl.Step()

			err := ctl.CommitRegion(view.Rect{X0: 3, Y0: 3, X1: 3, Y1: 3}, 8, 8)

			Expect(err).To(MatchError(nav.ErrInvalidRegion))
			Expect(ctl.State()).To(Equal(nav.Scanning))
			Expect(ctl.Depth()).To(Equal(1))

			last := events[len(events)-1]
			Expect(last.Kind).To(Equal(nav.ScanStarted))
			Expect(last.Success).To(BeFalse())
		})
	})

	Describe("repainting", func() {
		It("rescans the same geometry", func() {
			ctl.ZoomIn()
			drain()
			vp := ctl.Viewport()
			depth := ctl.Depth()

			ctl.Repaint()

			Expect(ctl.State()).To(Equal(nav.Scanning))
			Expect(ctl.Viewport()).To(Equal(vp))
			Expect(ctl.Depth()).To(Equal(depth))
		})

		It("carries a scheme change on its events", func() {
			ctl.SetScheme("grayscale")
			ctl.Repaint()

			Expect(events[0].Scheme).To(Equal("grayscale"))
		})
	})

	Describe("resetting", func() {
		It("returns to the root view from any depth", func() {
			for i := 0; i < 4; i++ {
				ctl.ZoomIn()
			}

			ctl.Reset()
			drain()

			Expect(ctl.Viewport()).To(Equal(view.Home(1)))
			Expect(ctl.Depth()).To(Equal(1))
		})
	})

	Describe("iteration limit override", func() {
		It("wins over the size policy", func() {
			ctl.Limit = 42
			ctl.Repaint()

			Expect(ctl.Scan().MaxIters()).To(Equal(uint32(42)))
		})
	})
})
