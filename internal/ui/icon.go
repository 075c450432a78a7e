package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon renders a lucide icon through iconify, e.g. Icon("download", "h-4 w-4").
func Icon(name, class string) g.Node {
	return h.Span(
		h.Class(classes("iconify inline-block", class)),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}
