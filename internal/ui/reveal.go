package ui

import (
	"strconv"

	g "maragu.dev/gomponents"

	"github.com/soorajms0707/soorajms/internal/motion"
)

// Reveal marks an element for the browser runtime's one-shot entrance
// animation. Without the script the element simply renders in place.
func Reveal(e motion.Entrance) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", "once"),
		g.Attr("data-reveal-y", formatFloat(e.OffsetY)),
		g.Attr("data-reveal-scale", formatFloat(e.Scale)),
		g.Attr("data-reveal-duration", strconv.FormatInt(e.Duration.Milliseconds(), 10)),
		g.Attr("data-reveal-delay", strconv.FormatInt(e.Delay.Milliseconds(), 10)),
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
