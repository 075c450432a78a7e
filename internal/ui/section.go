package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/motion"
)

type SectionProps struct {
	ID       string
	Title    string
	Subtitle string
}

// Section is an anchorable page region. Title and subtitle are omitted when
// empty; both reveal once when first scrolled into view.
func Section(props SectionProps, children ...g.Node) g.Node {
	hasHeading := props.Title != "" || props.Subtitle != ""
	return h.Section(
		h.ID(props.ID),
		h.Class("scroll-mt-24 py-16 md:py-24"),
		g.Attr("data-section"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4"),
			g.If(hasHeading,
				h.Div(
					h.Class("mb-8"),
					g.If(props.Title != "",
						h.H2(
							h.Class("text-2xl md:text-4xl font-extrabold tracking-tight"),
							Reveal(motion.HeadingEntrance),
							g.Text(props.Title),
						),
					),
					g.If(props.Subtitle != "",
						h.P(
							h.Class("text-slate-400 mt-2 max-w-2xl"),
							g.Attr("data-subtitle"),
							Reveal(motion.SubtitleEntrance),
							g.Text(props.Subtitle),
						),
					),
				),
			),
			g.Group(children),
		),
	)
}
