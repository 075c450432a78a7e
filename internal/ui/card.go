package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Card(class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class(classes("rounded-2xl border border-slate-800 bg-slate-900/50", class)),
		g.Group(children),
	)
}

func CardContent(class string, children ...g.Node) g.Node {
	return h.Div(
		h.Class(classes("p-6", class)),
		g.Group(children),
	)
}
