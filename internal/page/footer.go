package page

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/soorajms0707/soorajms/internal/content"
	"github.com/soorajms0707/soorajms/internal/ui"
)

// Copyright is evaluated per render; nothing about the year is stored.
func Copyright(now time.Time, owner string) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), owner)
}

func footer(o content.Owner, now time.Time) g.Node {
	return Footer(
		Class("border-t border-slate-800 py-8 mt-8"),
		Div(
			Class("max-w-6xl mx-auto px-4 text-sm text-slate-400 flex flex-col md:flex-row items-center justify-between gap-3"),
			Div(g.Attr("data-copyright"), g.Text(Copyright(now, o.Name))),
			Div(
				Class("flex items-center gap-4"),
				footerLink(o.GitHubURL, "github", "GitHub", true),
				footerLink(o.LinkedInURL, "linkedin", "LinkedIn", true),
				g.If(o.Email != "", footerLink("mailto:"+o.Email, "mail", "Email", false)),
			),
		),
	)
}

func footerLink(href, icon, label string, external bool) g.Node {
	if href == "" {
		return nil
	}
	return A(
		Class("hover:text-slate-200"),
		Href(href),
		g.If(external, g.Group([]g.Node{Target("_blank"), Rel("noreferrer")})),
		ui.Icon(icon, "h-4 w-4 mr-1"),
		g.Text(label),
	)
}
