// Package pages assembles whole pages as layout trees with their head metadata.
package pages

import (
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/pkg/animation"
	"github.com/Zachkp/portfolio/pkg/content"
	"github.com/Zachkp/portfolio/pkg/layout"
	"github.com/Zachkp/portfolio/pkg/timeline"
)

// ScrollContainer selects the element the animation orchestrator observes.
const ScrollContainer = ".scroll-container"

// Head is the page's title, description, icon and preload hints.
type Head struct {
	Title       string
	Description string
	Icon        string
	Preloads    []string
}

// Page is a rendered page with the nav item it belongs to.
type Page struct {
	Name      string
	Head      Head
	Body      *layout.Node
	Animation []*animation.Target
}

type Options struct {
	// ViewportWidth is the client's width in CSS pixels, zero when unknown.
	ViewportWidth int
	Stagger       time.Duration
	// Threshold is the visible fraction that activates a target, zero for
	// animation.DefaultThreshold.
	Threshold float64
}

func title(page, owner string) string {
	if page == "" {
		return owner
	}
	return page + " | " + owner
}

// finish discovers and annotates the page's animation targets.
func finish(p Page, opts Options) (Page, error) {
	stagger := opts.Stagger
	if stagger == 0 {
		stagger = animation.DefaultStagger
	}
	targets, err := animation.Discover(p.Body, ScrollContainer, stagger)
	if err != nil {
		return Page{}, fmt.Errorf("%s page: %w", p.Name, err)
	}
	animation.Annotate(targets)
	animation.AnnotateContainer(layout.Find(p.Body, ScrollContainer), opts.Threshold)
	p.Animation = targets
	return p, nil
}

func container() *layout.Node {
	return layout.El("main", layout.Class("main-content", "scroll-container"))
}

func fadeIn(tag string, classes ...string) *layout.Node {
	return layout.El(tag, layout.Class(append(classes, animation.AutoClass, animation.KindPrefix+string(animation.FadeIn))...))
}

func group(tag string, classes ...string) *layout.Node {
	return layout.El(tag, layout.Class(append(classes, animation.GroupClass)...))
}

func heading(tag, class, text string) *layout.Node {
	return fadeIn(tag, class).Append(layout.El("span").Append(layout.Text(text)))
}

func paragraph(segments []Segment) *layout.Node {
	p := layout.El("p")
	for _, s := range segments {
		p.Append(segment(s))
	}
	return p
}

func segment(s Segment) *layout.Node {
	if !s.Highlight {
		return layout.Text(s.Text)
	}
	mark := layout.El("span", layout.Class("highlight"))
	if s.URL == "" {
		return mark.Append(layout.Text(s.Text))
	}
	return mark.Append(externalLink(s.URL, s.Text))
}

func externalLink(url, text string) *layout.Node {
	return layout.El("a", layout.A("href", url), layout.A("rel", "noreferrer"), layout.A("target", "_blank")).Append(
		layout.Text(text),
		layout.El("span", layout.Class("icon", "icon--external"), layout.A("data-icon", "la:external-link-alt"), layout.A("aria-hidden", "true")),
	)
}

func icon(l content.Link) *layout.Node {
	return layout.El("a", layout.Class("icon-link"), layout.A("href", l.URL), layout.A("title", l.Name), layout.A("rel", "noreferrer"), layout.A("target", "_blank")).Append(
		layout.El("span", layout.Class("icon"), layout.A("data-icon", l.Icon), layout.A("aria-hidden", "true")),
		layout.El("span", layout.Class("icon-link__label")).Append(layout.Text(l.Name)),
	)
}

// About is the about page: intro, tech stack, family photo, journey and gallery.
func About(site *content.Site, opts Options) (Page, error) {
	intro := group("div", "content__text").Append(
		heading("h2", "title", AboutTitle),
		fadeIn("div", "description"),
	)
	for _, p := range AboutIntro {
		intro.Children[1].Append(paragraph(p))
	}

	links := fadeIn("div", "links")
	for _, l := range site.TechStack {
		links.Append(icon(l))
	}

	body := container().Append(
		layout.El("section", layout.Class("content")).Append(
			layout.El("div", layout.Class("content__media")).Append(
				layout.El("div", layout.Class("cover", animation.AutoClass, animation.KindPrefix+string(animation.ShrinkLeft))),
				layout.El("img", layout.Class("parallax-image--large"), layout.A("alt", "Me"), layout.A("src", site.Portrait)),
			),
			intro,
		),
		layout.El("section", layout.Class("tech-stack")).Append(
			group("div").Append(
				heading("h2", "section-title", StackTitle),
				links,
				fadeIn("p").Append(paragraph(StackExtras).Children...),
				fadeIn("div", "view-more").Append(
					layout.El("a", layout.Class("view-more__button"), layout.A("href", "/projects"), layout.A("role", "button")).Append(
						layout.Text(ViewProjects+" "),
						layout.El("span", layout.Class("icon"), layout.A("data-icon", "ant-design:swap-right-outlined"), layout.A("aria-hidden", "true")),
					),
				),
			),
		),
		layout.El("section", layout.Class("family")).Append(
			layout.El("img", layout.Class(animation.RevealClass), layout.A("alt", "Me"), layout.A("src", site.Family)),
		),
		layout.El("section", layout.Class("journey")).Append(
			heading("h2", "section-title", JourneyTitle),
			timeline.Render(site.Journey, timeline.Options{ViewportWidth: opts.ViewportWidth}),
		),
		gallery(site.Gallery),
	)

	return finish(Page{
		Name: "about",
		Head: Head{
			Title:       title("About", site.Owner),
			Description: "About me",
			Icon:        "/favicon.ico",
			Preloads:    []string{site.Portrait, site.Family},
		},
		Body: body,
	}, opts)
}

func gallery(photos []content.Photo) *layout.Node {
	grid := layout.El("div", layout.Class("gallery__grid"))
	for _, p := range photos {
		classes := []string{"gallery__item", "size-sm"}
		if p.Width != "" {
			classes = append(classes, "w-"+p.Width)
		}
		img := fadeIn("img", classes...)
		img.SetAttr("alt", p.Alt)
		img.SetAttr("src", p.Src)
		if p.Position != "" {
			img.SetAttr("style", "object-position: "+p.Position)
		}
		grid.Append(img)
	}
	return group("section", "gallery").Append(grid)
}

// Projects lists the project cards.
func Projects(site *content.Site, opts Options) (Page, error) {
	list := group("div", "projects__list")
	for _, p := range site.Projects {
		card := fadeIn("article", "project-card").Append(
			layout.El("h3", layout.Class("project-card__title")).Append(layout.Text(p.Title)),
			layout.El("p", layout.Class("project-card__description")).Append(layout.Text(p.Description)),
		)
		if len(p.TechStack) > 0 {
			stack := layout.El("ul", layout.Class("project-card__stack"))
			for _, s := range p.TechStack {
				stack.Append(layout.El("li").Append(layout.Text(s)))
			}
			card.Append(stack)
		}
		if p.URL != "" {
			card.Append(externalLink(p.URL, "Visit"))
		}
		list.Append(card)
	}
	body := container().Append(
		layout.El("section", layout.Class("projects")).Append(
			heading("h2", "title", "Projects"),
			fadeIn("p", "description").Append(layout.Text(ProjectsIntro)),
			list,
		),
	)
	return finish(Page{
		Name: "projects",
		Head: Head{Title: title("Projects", site.Owner), Description: "My projects", Icon: "/favicon.ico"},
		Body: body,
	}, opts)
}

// Contact lists the contact links.
func Contact(site *content.Site, opts Options) (Page, error) {
	links := group("div", "contact__links")
	for _, l := range site.Contact {
		links.Append(fadeIn("div", "contact__item").Append(icon(l)))
	}
	body := container().Append(
		layout.El("section", layout.Class("contact")).Append(
			heading("h2", "title", "Contact"),
			fadeIn("p", "description").Append(layout.Text(ContactIntro)),
			links,
		),
	)
	return finish(Page{
		Name: "contact",
		Head: Head{Title: title("Contact", site.Owner), Description: "Get in touch", Icon: "/favicon.ico"},
		Body: body,
	}, opts)
}

// Home is the landing page.
func Home(site *content.Site, opts Options) (Page, error) {
	body := container().Append(
		group("section", "hero").Append(
			heading("h1", "hero__title", site.Owner),
			fadeIn("p", "hero__tagline").Append(layout.Text(site.Tagline)),
			fadeIn("div", "view-more").Append(
				layout.El("a", layout.Class("view-more__button"), layout.A("href", "/about")).Append(layout.Text("More about me")),
			),
		),
	)
	return finish(Page{
		Name: "home",
		Head: Head{Title: title("", site.Owner), Description: site.Tagline, Icon: "/favicon.ico", Preloads: []string{site.Portrait}},
		Body: body,
	}, opts)
}
