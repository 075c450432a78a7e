package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/content"
)

// SkillGroups renders one labelled cluster of tags per group, in order.
func SkillGroups(groups []content.SkillGroup) g.Node {
	return h.Div(
		h.Class("space-y-6"),
		g.Map(groups, func(sg content.SkillGroup) g.Node {
			return h.Div(
				g.Attr("data-skill-group"),
				h.H3(h.Class("text-slate-200 font-semibold mb-2"), g.Text(sg.Name)),
				h.Div(
					h.Class("flex flex-wrap"),
					g.Map(sg.Tags, Badge),
				),
			)
		}),
	)
}
