// Package page composes the portfolio from content and ui components.
package page

import (
	"fmt"
	"io"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/config"
	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/motion"
	"github.com/soorajms0707/soorajms/internal/ui"
)

// Options carry everything the page needs besides content.
type Options struct {
	BasePath        string
	ProfileImageURL string
	ResumeURL       string
	Now             time.Time
}

// OptionsFrom resolves asset URLs from cfg at time now.
func OptionsFrom(cfg config.Config, now time.Time) Options {
	return Options{
		BasePath:        config.NormalizeBasePath(cfg.BasePath),
		ProfileImageURL: cfg.ProfileImageURL(),
		ResumeURL:       cfg.ResumeURL(),
		Now:             now,
	}
}

// Portfolio is the full page.
func Portfolio(p *content.Portfolio, opts Options) g.Node {
	return layout(
		layoutConfig{
			Title:       p.Owner.Name + " · Portfolio",
			Description: p.Hero.Tagline,
			BasePath:    opts.BasePath,
			OGImage:     opts.ProfileImageURL,
		},
		ui.Header(ui.HeaderProps{
			Brand:     p.Owner.Brand,
			Nav:       p.Nav,
			ResumeURL: opts.ResumeURL,
		}),
		hero(p, opts),
		g.Map(p.Sections, func(s content.Section) g.Node {
			return ui.Section(
				ui.SectionProps{ID: s.ID, Title: s.Title, Subtitle: s.Subtitle},
				sectionBody(p, s),
			)
		}),
		footer(p.Owner, opts.Now),
	)
}

// Render writes the page as HTML.
func Render(w io.Writer, p *content.Portfolio, opts Options) error {
	return Portfolio(p, opts).Render(w)
}

func sectionBody(p *content.Portfolio, s content.Section) g.Node {
	switch s.Kind {
	case content.KindCards:
		return grid(s.Columns, g.Map(s.Cards, infoCard))
	case content.KindProjects:
		return grid(s.Columns, g.Map(s.Projects, ui.ProjectCard))
	case content.KindTimeline:
		return Div(g.Map(s.Timeline, ui.TimelineItem))
	case content.KindSkills:
		return ui.SkillGroups(s.Skills)
	case content.KindList:
		return ui.Card("", ui.CardContent("",
			Ul(
				Class("text-slate-300 list-disc pl-6 space-y-2"),
				g.Map(s.Items, func(item string) g.Node { return Li(g.Text(item)) }),
			),
		))
	case content.KindContact:
		return contactCard(p.Owner)
	}
	return nil
}

var gridCols = map[int]string{
	2: "md:grid-cols-2",
	3: "md:grid-cols-3",
	4: "md:grid-cols-4",
}

func grid(columns int, children ...g.Node) g.Node {
	cols, ok := gridCols[columns]
	if !ok {
		cols = "md:grid-cols-1"
	}
	return Div(Class(fmt.Sprintf("grid %s gap-6", cols)), g.Group(children))
}

func infoCard(c content.Card) g.Node {
	body := content.Markdown(c.Body)
	return Div(
		ui.Reveal(motion.CardEntrance),
		ui.Card("",
			ui.CardContent("",
				H3(Class("text-xl font-semibold text-slate-100"), g.Text(c.Heading)),
				g.If(body != "", Div(Class("text-slate-300 mt-2 space-y-2"), g.Raw(body))),
				g.If(len(c.Points) > 0,
					Ul(
						Class("mt-3 text-slate-300 list-disc pl-6 space-y-2"),
						g.Map(c.Points, func(pt string) g.Node { return Li(g.Text(pt)) }),
					),
				),
			),
		),
	)
}

func contactCard(o content.Owner) g.Node {
	return ui.Card("",
		ui.CardContent("",
			Div(
				Class("grid md:grid-cols-3 gap-6"),
				contactItem("Email", "mailto:"+o.Email, o.Email, false),
				contactItem("GitHub", o.GitHubURL, o.GitHubLabel, true),
				contactItem("LinkedIn", o.LinkedInURL, o.LinkedInLabel, true),
			),
		),
	)
}

func contactItem(kind, href, label string, external bool) g.Node {
	if label == "" {
		return nil
	}
	return Div(
		Div(Class("text-sm uppercase tracking-wide text-slate-400"), g.Text(kind)),
		A(
			Class("font-semibold hover:underline"),
			Href(href),
			g.If(external, g.Group([]g.Node{Target("_blank"), Rel("noreferrer")})),
			g.Text(label),
		),
	)
}
