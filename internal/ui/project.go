package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/motion"
)

// ProjectCard renders one project. The links row only exists when the
// project has links.
func ProjectCard(p content.Project) g.Node {
	return h.Div(
		g.Attr("data-project"),
		Reveal(motion.CardEntrance),
		Card("hover:border-slate-700 transition-colors",
			CardContent("",
				h.H3(h.Class("text-xl font-bold"), g.Text(p.Title)),
				h.P(h.Class("text-slate-400 mt-2"), g.Text(p.Description)),
				h.Div(
					h.Class("mt-4"),
					g.Map(p.Tags, Badge),
				),
				g.If(len(p.Links) > 0,
					h.Div(
						h.Class("mt-4 flex flex-wrap gap-3"),
						g.Attr("data-links"),
						g.Map(p.Links, projectLink),
					),
				),
			),
		),
	)
}

func projectLink(l content.Link) g.Node {
	return Button(
		ButtonProps{
			Variant: Secondary,
			Size:    SizeSmall,
			Action:  Navigate{Href: l.URL, External: true},
		},
		Icon("external-link", "h-4 w-4"),
		g.Text(l.Label),
	)
}
