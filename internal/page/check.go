package page

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/soorajms0707/soorajms/internal/motion"
)

// Report summarizes a Check run.
type Report struct {
	Sections   []string
	NavLinks   int
	Revealed   int
	Frames     int
	FinalScale float64
}

// Check parses a rendered page, verifies its anchors and replays a
// top-to-bottom scroll through the reveal and progress models.
func Check(r io.Reader) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse page: %w", err)
	}
	report := Report{NavLinks: doc.Find("a[data-nav]").Length()}
	doc.Find("section[data-section]").Each(func(_ int, s *goquery.Selection) {
		report.Sections = append(report.Sections, s.AttrOr("id", ""))
	})

	anchorErr := verifyAnchors(doc)
	sim, simErr := simulate(report.Sections, 900, 700)
	report.Revealed, report.Frames, report.FinalScale = sim.Revealed, sim.Frames, sim.FinalScale
	return report, errors.Join(anchorErr, simErr)
}

// VerifyAnchors checks that every nav link targets exactly one rendered
// section and every smooth-scroll target exists exactly once.
func VerifyAnchors(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}
	return verifyAnchors(doc)
}

func verifyAnchors(doc *goquery.Document) error {
	sections := map[string]int{}
	doc.Find("section[data-section]").Each(func(_ int, s *goquery.Selection) {
		sections[s.AttrOr("id", "")]++
	})
	ids := map[string]int{}
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		ids[s.AttrOr("id", "")]++
	})

	var errs []error
	doc.Find("a[data-nav]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if len(href) < 2 || href[0] != '#' {
			errs = append(errs, fmt.Errorf("nav link %q is not an in-page anchor", href))
			return
		}
		if n := sections[href[1:]]; n != 1 {
			errs = append(errs, fmt.Errorf("nav link %q matches %d sections", href, n))
		}
	})
	doc.Find("[data-scroll-to]").Each(func(_ int, s *goquery.Selection) {
		target := s.AttrOr("data-scroll-to", "")
		if n := ids[target]; n != 1 {
			errs = append(errs, fmt.Errorf("scroll target %q matches %d elements", target, n))
		}
	})
	return errors.Join(errs...)
}

type simulation struct {
	Revealed   int
	Frames     int
	FinalScale float64
}

// simulate stacks the sections below a viewport-tall hero and scrolls to the
// bottom a quarter viewport at a time, four frames per scroll event.
func simulate(sections []string, viewport, sectionHeight float64) (simulation, error) {
	const frame = 16 * time.Millisecond

	document := viewport + float64(len(sections))*sectionHeight
	vp := motion.NewViewport(viewport)
	mounted := make([]*motion.Mounted, len(sections))
	for i := range sections {
		top := viewport + float64(i)*sectionHeight
		mounted[i] = motion.Mount(vp, motion.Bounds{Top: top, Bottom: top + sectionHeight})
	}
	defer func() {
		for _, m := range mounted {
			m.Unmount()
		}
	}()

	var (
		sim  simulation
		errs []error
	)
	ind := motion.NewIndicator(motion.HeaderSpring, viewport, document)
	prev := ind.Scale()
	step := func() {
		scale := ind.Frame(frame)
		sim.Frames++
		if scale < 0 || scale > 1 {
			errs = append(errs, fmt.Errorf("frame %d: scale %v out of [0,1]", sim.Frames, scale))
		}
		if scale < prev-1e-9 {
			errs = append(errs, fmt.Errorf("frame %d: scale went backwards %v -> %v", sim.Frames, prev, scale))
		}
		prev = scale
	}

	for offset := 0.0; offset <= document; offset += viewport / 4 {
		vp.ScrollTo(offset)
		ind.Scroll(offset)
		for i := 0; i < 4; i++ {
			step()
		}
	}
	for i := 0; i < 1000 && !ind.Settled(); i++ {
		step()
	}
	// Scroll back up: nothing may re-animate.
	vp.ScrollTo(0)
	vp.ScrollTo(document)

	for i, m := range mounted {
		switch {
		case m.Reveal.State() != motion.Revealed:
			errs = append(errs, fmt.Errorf("section %q never revealed", sections[i]))
		case m.Fired() != 1:
			errs = append(errs, fmt.Errorf("section %q revealed %d times", sections[i], m.Fired()))
		default:
			sim.Revealed++
		}
	}
	if n := vp.Observed(); n != 0 {
		errs = append(errs, fmt.Errorf("%d observations still registered after reveal", n))
	}
	sim.FinalScale = ind.Scale()
	if len(sections) > 0 && sim.FinalScale != 1 {
		errs = append(errs, fmt.Errorf("indicator settled at %v, want 1", sim.FinalScale))
	}
	return sim, errors.Join(errs...)
}
