package pages

import (
	"strings"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/pkg/animation"
	"github.com/Zachkp/portfolio/pkg/content"
	"github.com/Zachkp/portfolio/pkg/layout"
)

func site(t *testing.T) *content.Site {
	t.Helper()
	s, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	return s
}

func TestAboutHead(t *testing.T) {
	page, err := About(site(t), Options{})
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}
	if page.Head.Title != "About | Nam Nguyen" {
		t.Fatalf("Title = %q", page.Head.Title)
	}
	if page.Head.Description != "About me" {
		t.Fatalf("Description = %q", page.Head.Description)
	}
	want := []string{"/image/me-dalat.jpg", "/image/family.jpg"}
	if len(page.Head.Preloads) != 2 || page.Head.Preloads[0] != want[0] || page.Head.Preloads[1] != want[1] {
		t.Fatalf("Preloads = %v, want %v", page.Head.Preloads, want)
	}
}

func TestAboutBody(t *testing.T) {
	page, err := About(site(t), Options{Stagger: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}
	if layout.Find(page.Body, ScrollContainer) == nil {
		t.Fatal("missing scroll container")
	}
	if got := len(layout.FindAll(page.Body, ".journey-row")); got != 4 {
		t.Fatalf("journey rows = %d, want 4", got)
	}
	if got := len(layout.FindAll(page.Body, ".journey-card")); got != 5 {
		t.Fatalf("journey cards = %d, want 5", got)
	}
	if got := len(layout.FindAll(page.Body, ".journey-line")); got != 3 {
		t.Fatalf("connector lines = %d, want 3", got)
	}
	if layout.Find(page.Body, "a.view-more__button") == nil {
		t.Fatal("missing projects button")
	}
	if href, _ := layout.Find(page.Body, "a.view-more__button").Attr("href"); href != "/projects" {
		t.Fatalf("projects button href = %q", href)
	}
}

func TestAboutAnimationPlan(t *testing.T) {
	page, err := About(site(t), Options{Stagger: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}
	var reveal, shrink, gallery int
	for _, target := range page.Animation {
		switch {
		case target.Kind == animation.Reveal:
			reveal++
		case target.Kind == animation.ShrinkLeft:
			shrink++
		case target.Node.HasClass("gallery__item"):
			gallery++
			if want := time.Duration(target.Position) * 50 * time.Millisecond; target.Delay != want {
				t.Fatalf("gallery item %d delay = %v, want %v", target.Position, target.Delay, want)
			}
		}
	}
	if reveal != 1 || shrink != 1 || gallery != 6 {
		t.Fatalf("reveal=%d shrink=%d gallery=%d, want 1/1/6", reveal, shrink, gallery)
	}
	if v, ok := layout.Find(page.Body, "img.revealing-image").Attr("data-ani-repeat"); !ok || v != "true" {
		t.Fatal("reveal image should be annotated as repeatable")
	}
}

func TestAboutRendersHighlights(t *testing.T) {
	page, err := About(site(t), Options{})
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}
	var b strings.Builder
	if err := layout.Render(&b, page.Body); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	for _, want := range []string{
		`<span class="highlight">Frontend Development</span>`,
		`href="https://tailwindcss.com/"`,
		`Few things about me`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("about markup missing %q", want)
		}
	}
}

func TestOtherPages(t *testing.T) {
	s := site(t)
	builders := map[string]func(*content.Site, Options) (Page, error){
		"Nam Nguyen":            Home,
		"Projects | Nam Nguyen": Projects,
		"Contact | Nam Nguyen":  Contact,
	}
	for want, build := range builders {
		page, err := build(s, Options{})
		if err != nil {
			t.Fatalf("%s: error = %v", want, err)
		}
		if page.Head.Title != want {
			t.Fatalf("Title = %q, want %q", page.Head.Title, want)
		}
		if len(page.Animation) == 0 {
			t.Fatalf("%s: no animation targets", want)
		}
	}
}

func TestContainerCarriesThreshold(t *testing.T) {
	for _, tc := range []struct {
		opts Options
		want string
	}{
		{Options{}, "0.15"},
		{Options{Threshold: 0.3}, "0.3"},
	} {
		page, err := About(site(t), tc.opts)
		if err != nil {
			t.Fatalf("About() error = %v", err)
		}
		if v, _ := layout.Find(page.Body, ScrollContainer).Attr(animation.ThresholdAttr); v != tc.want {
			t.Fatalf("threshold attr = %q, want %q", v, tc.want)
		}
	}
}

// Stagger delays grow by one step per group member with no gaps or reorders.
func TestGroupDelaysAreMonotonic(t *testing.T) {
	page, err := About(site(t), Options{})
	if err != nil {
		t.Fatalf("About() error = %v", err)
	}
	last := map[int]time.Duration{}
	for _, target := range page.Animation {
		if target.Group < 0 || target.Kind == animation.Reveal {
			continue
		}
		if want := time.Duration(target.Position) * animation.DefaultStagger; target.Delay != want {
			t.Fatalf("target %d delay = %v, want %v", target.Index, target.Delay, want)
		}
		if prev, ok := last[target.Group]; ok && target.Delay != prev+animation.DefaultStagger {
			t.Fatalf("group %d delay jumped from %v to %v", target.Group, prev, target.Delay)
		}
		last[target.Group] = target.Delay
	}
}
