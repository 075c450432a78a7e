package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/content"
)

// TimelineItem renders a work or education entry on a vertical rail.
func TimelineItem(e content.TimelineEntry) g.Node {
	meta := e.Organization
	if e.Location != "" {
		meta += ", " + e.Location
	}
	if e.Period != "" {
		meta += " • " + e.Period
	}
	return h.Div(
		h.Class("relative pl-8 pb-10 border-l border-slate-800"),
		g.Attr("data-timeline-item"),
		h.Span(h.Class("absolute -left-[9px] top-1.5 h-4 w-4 rounded-full bg-cyan-500 shadow shadow-cyan-500/40")),
		h.H4(h.Class("font-bold"), g.Text(e.Role)),
		h.P(h.Class("text-slate-400 text-sm"), g.Text(meta)),
		g.If(len(e.Points) > 0,
			h.Ul(
				h.Class("mt-2 list-disc pl-4 text-slate-300 space-y-1"),
				g.Map(e.Points, func(p string) g.Node { return h.Li(g.Text(p)) }),
			),
		),
	)
}
