package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/motion"
)

type HeaderProps struct {
	Brand     string
	Nav       []content.NavItem
	ResumeURL string
}

// Header is the sticky top bar: the spring-driven scroll-progress bar, the
// brand link and the in-page navigation.
func Header(props HeaderProps) g.Node {
	return h.Header(
		h.Class("sticky top-0 z-40 backdrop-blur supports-[backdrop-filter]:bg-slate-950/60 bg-transparent/40 border-b border-slate-800"),
		ProgressBar(motion.HeaderSpring),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 py-3 flex items-center justify-between"),
			h.A(
				h.Href("#"+content.HomeID),
				g.Attr("data-scroll-to", content.HomeID),
				h.Class("font-extrabold tracking-tight text-xl flex items-center gap-2"),
				Icon("sparkles", "h-5 w-5 text-cyan-400"),
				g.Text(props.Brand),
				h.Span(h.Class("text-slate-400"), g.Text("/ Portfolio")),
			),
			h.Nav(
				h.Class("hidden md:flex items-center gap-4 text-sm"),
				g.Map(props.Nav, NavLink),
				g.If(props.ResumeURL != "",
					Button(
						ButtonProps{Action: Navigate{Href: props.ResumeURL, Download: true}},
						Icon("file-text", "h-4 w-4"),
						g.Text("Resume"),
					),
				),
			),
		),
	)
}

// NavLink smooth-scrolls to the section with the item's anchor.
func NavLink(item content.NavItem) g.Node {
	return h.A(
		h.Href("#"+item.Anchor),
		g.Attr("data-scroll-to", item.Anchor),
		g.Attr("data-nav"),
		h.Class("px-3 py-1 rounded-md hover:bg-slate-800/60"),
		g.Text(item.Label),
	)
}

// ProgressBar is scaled horizontally by the browser runtime from 0 to 1 as
// the page scrolls, following a spring with the given constants.
func ProgressBar(cfg motion.SpringConfig) g.Node {
	return h.Div(
		h.Class("h-1 bg-gradient-to-r from-cyan-400 via-sky-500 to-fuchsia-500 origin-left"),
		h.Style("transform: scaleX(0)"),
		g.Attr("data-scroll-progress"),
		g.Attr("data-spring-stiffness", formatFloat(cfg.Stiffness)),
		g.Attr("data-spring-damping", formatFloat(cfg.Damping)),
		g.Attr("data-spring-mass", formatFloat(cfg.Mass)),
		g.Attr("data-spring-rest-delta", formatFloat(cfg.RestDelta)),
		g.Attr("data-spring-rest-speed", formatFloat(cfg.RestSpeed)),
	)
}
