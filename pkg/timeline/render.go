package timeline

import (
	"strconv"

	"github.com/gosimple/slug"

	"github.com/Zachkp/portfolio/pkg/content"
	"github.com/Zachkp/portfolio/pkg/layout"
)

// Breakpoint is the widest viewport, in CSS pixels, that uses the fixed
// logo-first order.
const Breakpoint = 991

// Animation classes understood by the scroll orchestrator.
const (
	classAuto    = "site-ani-auto"
	classGroup   = "site-ani-group"
	classSlideUp = "site-ani__slide-up"
)

// LabelSeparator follows a clause label inside its emphasised span.
const LabelSeparator = ":"

// Orientation is the order of a row's two columns.
type Orientation int

const (
	LogoFirst Orientation = iota
	ContentFirst
)

func (o Orientation) String() string {
	if o == ContentFirst {
		return "content-first"
	}
	return "logo-first"
}

// OrientationFor alternates by row parity. A known viewport at or below
// Breakpoint always gets LogoFirst; zero means unknown and keeps alternation.
func OrientationFor(index, viewportWidth int) Orientation {
	if viewportWidth > 0 && viewportWidth <= Breakpoint {
		return LogoFirst
	}
	if index%2 == 1 {
		return ContentFirst
	}
	return LogoFirst
}

// Options tunes rendering; ViewportWidth is zero when unknown.
type Options struct {
	ViewportWidth int
}

// Render emits the whole journey list.
func Render(entries []content.Entry, opts Options) *layout.Node {
	list := layout.El("div", layout.Class("journey-list", classGroup))
	for i := range entries {
		list.Append(Row(entries, i, opts))
	}
	return list
}

// Row emits the row at index: a logo column, with a connector line unless it
// is the last row, and a content column holding the entry's cards.
func Row(entries []content.Entry, index int, opts Options) *layout.Node {
	e := entries[index]
	orientation := OrientationFor(index, opts.ViewportWidth)

	row := layout.El("div",
		layout.Class("journey-row", "journey-row--"+orientation.String(), classGroup, classAuto, classSlideUp),
		layout.A("id", "journey-"+slug.Make(e.Title)),
		layout.A("data-index", strconv.Itoa(index)),
	)

	logo := logoColumn(e, index < len(entries)-1)
	body := contentColumn(e)
	if orientation == LogoFirst {
		return row.Append(logo, body)
	}
	return row.Append(body, logo)
}

func logoColumn(e content.Entry, connector bool) *layout.Node {
	col := layout.El("div", layout.Class("journey-logo", classAuto, classSlideUp))
	img := layout.El("img", layout.Class("journey-logo__img"), layout.A("alt", e.Title), layout.A("src", e.Logo))
	if e.URL != "" {
		col.Append(layout.El("a",
			layout.Class("journey-logo__link"),
			layout.A("href", e.URL),
			layout.A("rel", "noreferrer"),
			layout.A("target", "_blank"),
		).Append(img))
	} else {
		col.Append(img)
	}
	if connector {
		col.Append(layout.El("div", layout.Class("journey-line")))
	}
	return col
}

func contentColumn(e content.Entry) *layout.Node {
	col := layout.El("div", layout.Class("journey-content"))
	for _, c := range Cards(e) {
		col.Append(CardNode(c))
	}
	return col
}

// CardNode emits a single entry card.
func CardNode(c Card) *layout.Node {
	card := layout.El("div", layout.Class("journey-card", classAuto, classSlideUp)).Append(
		layout.El("span", layout.Class("journey-card__type")).Append(layout.Text(c.Category)),
		layout.El("span", layout.Class("journey-card__title")).Append(layout.Text(c.Title)),
		layout.El("span", layout.Class("journey-card__time")).Append(layout.Text(c.Time)),
	)
	list := layout.El("ul", layout.Class("journey-card__description"))
	for _, cl := range c.Description {
		li := layout.El("li")
		if cl.Labeled {
			li.Append(layout.El("span", layout.Class("journey-card__label")).Append(layout.Text(cl.Label+LabelSeparator)))
		}
		list.Append(li.Append(layout.Text(cl.Value)))
	}
	return card.Append(list)
}
