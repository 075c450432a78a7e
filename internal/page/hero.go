package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/motion"
	"github.com/soorajms0707/soorajms/internal/ui"
)

func hero(p *content.Portfolio, opts Options) g.Node {
	owner := p.Owner
	_, hasProjects := p.Section("projects")
	return Section(
		ID(content.HomeID),
		Class("relative overflow-hidden"),
		Div(Class("absolute inset-0 pointer-events-none z-0 bg-[radial-gradient(ellipse_at_top_right,rgba(14,165,233,0.2),transparent_50%),radial-gradient(ellipse_at_bottom_left,rgba(217,70,239,0.18),transparent_50%)]")),
		Div(
			Class("max-w-6xl mx-auto px-4 pt-16 md:pt-24 pb-20"),
			Div(
				Class("grid md:grid-cols-2 gap-10 items-center"),
				Div(
					H1(
						Class("text-4xl md:text-6xl font-extrabold tracking-tight"),
						ui.Reveal(motion.HeroEntrance),
						g.Text(p.Hero.Headline),
						g.If(p.Hero.Accent != "", g.Group([]g.Node{
							g.Text(" "),
							Span(Class("text-sky-400"), g.Text(p.Hero.Accent)),
							g.Text(" "),
						})),
						g.Text(p.Hero.Tail),
					),
					g.If(p.Hero.Tagline != "",
						P(
							Class("mt-4 text-slate-300 text-lg"),
							ui.Reveal(motion.Entrance{Scale: 1, Delay: motion.HeroEntrance.Duration / 3, Duration: motion.HeroEntrance.Duration}),
							g.Text(p.Hero.Tagline),
						),
					),
					Div(
						Class("mt-6 flex flex-wrap gap-3"),
						g.Iff(hasProjects, func() g.Node {
							return ui.Button(
								ui.ButtonProps{Action: ui.Navigate{
									Href:  "#projects",
									Attrs: []g.Node{g.Attr("data-scroll-to", "projects")},
								}},
								ui.Icon("arrow-right", "h-4 w-4"),
								g.Text("Explore Projects"),
							)
						}),
						g.If(opts.ResumeURL != "",
							ui.Button(
								ui.ButtonProps{Action: ui.Navigate{Href: opts.ResumeURL, Download: true}},
								ui.Icon("download", "h-4 w-4"),
								g.Text("Download Resume"),
							),
						),
					),
					Div(
						Class("mt-6 flex flex-wrap gap-4 text-sm text-slate-400"),
						g.If(owner.Phone != "",
							Div(Class("flex items-center gap-2"), ui.Icon("phone", "h-4 w-4"), g.Text(owner.Phone)),
						),
						g.If(owner.Email != "",
							A(Class("flex items-center gap-2 hover:text-slate-200"), Href("mailto:"+owner.Email), ui.Icon("mail", "h-4 w-4"), g.Text(owner.Email)),
						),
						g.If(owner.Location != "",
							Div(Class("flex items-center gap-2"), ui.Icon("map-pin", "h-4 w-4"), g.Text(owner.Location)),
						),
					),
					Div(
						Class("mt-6 flex items-center gap-3"),
						socialButton(owner.GitHubURL, "GitHub", "github"),
						socialButton(owner.LinkedInURL, "LinkedIn", "linkedin"),
					),
				),
				Div(
					Class("relative z-10"),
					ui.Reveal(motion.PortraitEntrance),
					Div(
						Class("aspect-[4/5] rounded-2xl bg-slate-900/60 border border-slate-800 overflow-hidden shadow-2xl"),
						Img(Src(opts.ProfileImageURL), Alt(owner.Brand), Class("w-full h-full object-cover")),
					),
				),
			),
			Div(
				Class("mt-10 flex items-center gap-2 text-slate-400 text-sm"),
				ui.Icon("arrow-down", "h-4 w-4"),
				g.Text("Scroll to explore"),
			),
		),
	)
}

func socialButton(href, label, icon string) g.Node {
	if href == "" {
		return nil
	}
	return ui.Button(
		ui.ButtonProps{
			Variant: ui.Secondary,
			Size:    ui.SizeIcon,
			Action:  ui.Navigate{Href: href, External: true, Label: label},
		},
		ui.Icon(icon, "h-4 w-4"),
	)
}
