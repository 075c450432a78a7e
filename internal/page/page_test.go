package page

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soorajms0707/soorajms/internal/config"
	"github.com/soorajms0707/soorajms/internal/content"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func renderPage(t *testing.T, p *content.Portfolio, opts Options) (string, *goquery.Document) {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Render(&b, p, opts))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return b.String(), doc
}

func defaultPage(t *testing.T) (string, *goquery.Document) {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	return renderPage(t, p, OptionsFrom(config.Defaults(), testNow))
}

func TestPortfolioSectionsInOrder(t *testing.T) {
	html, doc := defaultPage(t)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))

	ids := doc.Find("section[data-section]").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("id", "")
	})
	assert.Equal(t, []string{
		"about", "projects", "experience", "education",
		"achievements", "skills", "interests", "contact",
	}, ids)
	assert.Equal(t, 1, doc.Find("section#home").Length())
}

func TestPortfolioNavIntegrity(t *testing.T) {
	html, doc := defaultPage(t)
	require.NoError(t, VerifyAnchors(strings.NewReader(html)))

	doc.Find("a[data-nav]").Each(func(_ int, s *goquery.Selection) {
		id := strings.TrimPrefix(s.AttrOr("href", ""), "#")
		assert.Equal(t, 1, doc.Find("section[data-section]#"+id).Length(), "anchor %q", id)
	})
}

func TestPortfolioAssetsUnderBasePath(t *testing.T) {
	_, doc := defaultPage(t)
	assert.Equal(t, "/soorajms/profile.jpg", doc.Find("#home img").AttrOr("src", ""))
	doc.Find("a[download]").Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, "/soorajms/resume.pdf", s.AttrOr("href", ""))
	})
	assert.Equal(t, "/soorajms/static/js/portfolio.js", doc.Find("script[defer]").AttrOr("src", ""))
}

func TestPortfolioProjects(t *testing.T) {
	_, doc := defaultPage(t)
	cards := doc.Find("section#projects [data-project]")
	require.Equal(t, 4, cards.Length())

	var linkCounts []int
	cards.Each(func(_ int, s *goquery.Selection) {
		linkCounts = append(linkCounts, s.Find("[data-links] a").Length())
	})
	assert.Equal(t, []int{2, 0, 1, 0}, linkCounts)
	assert.Equal(t, 0, cards.Eq(1).Find("[data-links]").Length())
}

func TestProjectsScenario(t *testing.T) {
	p := &content.Portfolio{
		Sections: []content.Section{{
			ID:    "projects",
			Title: "Projects",
			Kind:  content.KindProjects,
			Projects: []content.Project{
				{Title: "First", Description: "one", Tags: []string{"a", "b"}, Links: []content.Link{{Label: "Code", URL: "https://c"}}},
				{Title: "Second", Description: "two", Tags: []string{"c"}},
			},
		}},
	}
	_, doc := renderPage(t, p, Options{BasePath: "/", Now: testNow})

	cards := doc.Find("section#projects [data-project]")
	require.Equal(t, 2, cards.Length())

	first, second := cards.Eq(0), cards.Eq(1)
	assert.Equal(t, "First", first.Find("h3").Text())
	assert.Equal(t, "one", first.Find("p").Text())
	assert.Equal(t, []string{"a", "b"}, first.Find("[data-badge]").Map(func(_ int, s *goquery.Selection) string { return s.Text() }))
	assert.Equal(t, 1, first.Find("[data-links] a").Length())

	assert.Equal(t, "Second", second.Find("h3").Text())
	assert.Equal(t, "two", second.Find("p").Text())
	assert.Equal(t, 0, second.Find("a").Length())

	// The hero offers the projects shortcut only when the section exists.
	assert.Equal(t, 1, doc.Find(`#home [data-scroll-to="projects"]`).Length())
}

func TestHeroWithoutProjects(t *testing.T) {
	p := &content.Portfolio{Sections: []content.Section{{ID: "about", Kind: content.KindList}}}
	html, doc := renderPage(t, p, Options{BasePath: "/", Now: testNow})
	assert.Equal(t, 0, doc.Find(`[data-scroll-to="projects"]`).Length())
	assert.NoError(t, VerifyAnchors(strings.NewReader(html)))
}

func TestHeroResumeButton(t *testing.T) {
	p := &content.Portfolio{Sections: []content.Section{{ID: "about", Kind: content.KindList}}}

	_, doc := renderPage(t, p, Options{BasePath: "/", Now: testNow})
	assert.Equal(t, 0, doc.Find("a[download]").Length())

	_, doc = renderPage(t, p, Options{BasePath: "/", ResumeURL: "/cv.pdf", Now: testNow})
	assert.Equal(t, 1, doc.Find("#home a[download]").Length())
	assert.Equal(t, 1, doc.Find("header a[download]").Length())
}

func TestSkillsSection(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)
	skills, _ := p.Section("skills")

	_, doc := renderPage(t, p, OptionsFrom(config.Defaults(), testNow))
	groups := doc.Find("section#skills [data-skill-group]")
	require.Equal(t, len(skills.Skills), groups.Length())
	groups.Each(func(i int, s *goquery.Selection) {
		got := s.Find("[data-badge]").Map(func(_ int, b *goquery.Selection) string { return b.Text() })
		assert.Equal(t, skills.Skills[i].Tags, got)
	})
}

func TestCardsRenderMarkdown(t *testing.T) {
	p := &content.Portfolio{Sections: []content.Section{{
		ID:   "about",
		Kind: content.KindCards,
		Cards: []content.Card{
			{Heading: "What", Body: "Pipelines with **care**."},
			{Heading: "Certs", Points: []string{"A", "B"}},
		},
	}}}
	_, doc := renderPage(t, p, Options{BasePath: "/", Now: testNow})
	assert.Equal(t, "care", doc.Find("section#about strong").Text())
	assert.Equal(t, 2, doc.Find("section#about li").Length())
}

func TestCopyright(t *testing.T) {
	assert.Equal(t, "© 2026 Sooraj M S. All rights reserved.", Copyright(testNow, "Sooraj M S"))
	assert.Equal(t, "© 2031 X. All rights reserved.", Copyright(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC), "X"))

	_, doc := defaultPage(t)
	assert.Equal(t, "© 2026 Sooraj M S. All rights reserved.", doc.Find("[data-copyright]").Text())
}

func TestVerifyAnchorsReportsViolations(t *testing.T) {
	html := `<html><body>
<a data-nav href="#about">About</a>
<a data-nav href="#blog">Blog</a>
<a data-nav href="/elsewhere">Away</a>
<a data-scroll-to="missing" href="#missing">x</a>
<section data-section id="about"></section>
<section data-section id="twice"></section>
<section data-section id="twice"></section>
<a data-nav href="#twice">Twice</a>
</body></html>`
	err := VerifyAnchors(strings.NewReader(html))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `"#blog" matches 0 sections`)
	assert.Contains(t, msg, `"/elsewhere" is not an in-page anchor`)
	assert.Contains(t, msg, `"missing" matches 0 elements`)
	assert.Contains(t, msg, `"#twice" matches 2 sections`)
	assert.NotContains(t, msg, `"#about"`)
}

func TestCheckDefaultPage(t *testing.T) {
	html, _ := defaultPage(t)
	report, err := Check(strings.NewReader(html))
	require.NoError(t, err)
	assert.Len(t, report.Sections, 8)
	assert.Equal(t, 5, report.NavLinks)
	assert.Equal(t, 8, report.Revealed)
	assert.Equal(t, 1.0, report.FinalScale)
	assert.Greater(t, report.Frames, 0)
}

func TestSimulateEmpty(t *testing.T) {
	sim, err := simulate(nil, 900, 700)
	require.NoError(t, err)
	assert.Equal(t, 0, sim.Revealed)
}
