package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type Variant int

const (
	Primary Variant = iota
	Secondary
)

type Size int

const (
	SizeDefault Size = iota
	SizeSmall
	SizeIcon
)

// Action decides what a Button renders as. Navigate renders a link, Press
// renders a native button.
type Action interface {
	render(class string, children []g.Node) g.Node
}

// Navigate is a link affordance.
type Navigate struct {
	Href     string
	External bool
	Download bool
	Label    string // accessible name for icon-only buttons
	Attrs    []g.Node
}

func (n Navigate) render(class string, children []g.Node) g.Node {
	return h.A(
		h.Class(class),
		h.Href(n.Href),
		g.If(n.External, g.Group([]g.Node{h.Target("_blank"), h.Rel("noreferrer")})),
		g.If(n.Download, g.Attr("download")),
		g.If(n.Label != "", g.Attr("aria-label", n.Label)),
		g.Group(n.Attrs),
		g.Group(children),
	)
}

// Press is a native control. Behaviour is injected through Attrs.
type Press struct {
	Type  string
	Attrs []g.Node
}

func (p Press) render(class string, children []g.Node) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "button"
	}
	return h.Button(
		h.Class(class),
		h.Type(typ),
		g.Group(p.Attrs),
		g.Group(children),
	)
}

type ButtonProps struct {
	Variant Variant
	Size    Size
	Class   string
	Action  Action
}

// Button renders a styled control. A nil Action renders a plain native button.
func Button(props ButtonProps, children ...g.Node) g.Node {
	action := props.Action
	if action == nil {
		action = Press{}
	}
	return action.render(buttonClass(props), children)
}

func buttonClass(props ButtonProps) string {
	var variant, size string
	switch props.Variant {
	case Secondary:
		variant = "bg-slate-800 text-slate-200 hover:bg-slate-700"
	default:
		variant = "bg-sky-500 text-white hover:bg-sky-400"
	}
	switch props.Size {
	case SizeSmall:
		size = "h-8 px-3 text-sm"
	case SizeIcon:
		size = "h-9 w-9"
	default:
		size = "h-10 px-4"
	}
	return classes(
		"inline-flex items-center justify-center gap-2 font-medium rounded-2xl transition cursor-pointer",
		variant,
		size,
		props.Class,
	)
}
