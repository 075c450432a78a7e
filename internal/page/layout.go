package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type layoutConfig struct {
	Title       string
	Description string
	BasePath    string
	OGImage     string
}

func layout(cfg layoutConfig, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cfg.Title)),
				Meta(Name("description"), Content(cfg.Description)),

				Meta(g.Attr("property", "og:title"), Content(cfg.Title)),
				Meta(g.Attr("property", "og:description"), Content(cfg.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(cfg.OGImage != "", Meta(g.Attr("property", "og:image"), Content(cfg.OGImage))),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href(cfg.BasePath+"static/css/portfolio.css")),
			),
			Body(
				Class("min-h-screen bg-slate-950 text-slate-100"),
				g.Group(content),
				Script(Src(cfg.BasePath+"static/js/portfolio.js"), g.Attr("defer")),
			),
		),
	})
}
