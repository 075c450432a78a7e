package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Badge(label string) g.Node {
	return h.Span(
		h.Class("inline-flex items-center rounded-full border border-slate-700/60 bg-slate-900/40 px-3 py-1 text-xs font-semibold text-slate-200 mr-2 mb-2"),
		g.Attr("data-badge"),
		g.Text(label),
	)
}
