package main

import (
	"context"
	"html/template"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/pkg/animation"
	"github.com/Zachkp/portfolio/pkg/config"
	"github.com/Zachkp/portfolio/pkg/content"
	"github.com/Zachkp/portfolio/pkg/layout"
	"github.com/Zachkp/portfolio/pkg/legacy"
	"github.com/Zachkp/portfolio/pkg/pages"
	"github.com/Zachkp/portfolio/pkg/timeline"
)

type pageBuilder func(*content.Site, pages.Options) (pages.Page, error)

var builders = map[string]pageBuilder{
	"home":     pages.Home,
	"about":    pages.About,
	"projects": pages.Projects,
	"contact":  pages.Contact,
}

// Page names to the nav item that is highlighted while they are shown.
var pageNav = map[string]legacy.NavItem{
	"home":     legacy.Home,
	"about":    legacy.About,
	"projects": legacy.Projects,
	"contact":  legacy.Contact,
}

var navPaths = map[legacy.NavItem]string{
	legacy.Home:     "/",
	legacy.Projects: "/projects",
	legacy.About:    "/about",
	legacy.Contact:  "/contact",
}

var navLabels = map[legacy.NavItem]string{
	legacy.Home:     "Home",
	legacy.Projects: "Projects",
	legacy.About:    "About",
	legacy.Contact:  "Contact",
}

type navLink struct {
	ID    string
	Label string
	Href  string
	Class string
}

func navLinks(state legacy.NavState) []navLink {
	classes := legacy.Classes(state)
	links := make([]navLink, 0, len(legacy.NavItems))
	for _, item := range legacy.NavItems {
		links = append(links, navLink{
			ID:    item.ID(),
			Label: navLabels[item],
			Href:  navPaths[item],
			Class: classes[item],
		})
	}
	return links
}

type server struct {
	cfg  config.Config
	site *content.Site
	log  *zap.Logger
	salt string
}

func newRouter(cfg config.Config, site *content.Site, log *zap.Logger) (*gin.Engine, error) {
	salt := cfg.HashSalt
	if salt == "" {
		var err error
		if salt, err = newSalt(); err != nil {
			return nil, err
		}
	}
	s := &server{cfg: cfg, site: site, log: log, salt: salt}

	r := gin.New()
	r.Use(requestLogger(log, salt), gin.Recovery())
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	r.Static("/image", cfg.ImageDir)
	r.Static("/static", cfg.StaticDir)

	r.GET("/", s.page("home"))
	r.GET("/about", s.page("about"))
	r.GET("/projects", s.page("projects"))
	r.GET("/contact", s.page("contact"))

	// HTMX fragment with just the journey list
	r.GET("/journey-content", s.journeyFragment)

	api := r.Group("/api")
	{
		api.GET("/journey", s.journeyJSON)
		api.GET("/animation", s.animationPlan)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.LegacyEnabled {
		r.GET("/legacy", s.legacyPage)
		log.Info("Legacy page enabled", zap.String("path", "/legacy"))
	}
	return r, nil
}

// options reads the viewport width client hint when the browser sends one.
func (s *server) options(c *gin.Context) pages.Options {
	opts := pages.Options{Stagger: s.cfg.AnimationStagger, Threshold: s.cfg.AnimationThreshold}
	for _, h := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		if v, err := strconv.Atoi(c.GetHeader(h)); err == nil && v > 0 {
			opts.ViewportWidth = v
			break
		}
	}
	return opts
}

func (s *server) fail(c *gin.Context, msg string, err error) {
	s.log.Error(msg, zap.String("path", c.Request.URL.Path), zap.Error(err))
	_ = c.Error(err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"head":  pages.Head{Title: "Something went wrong | " + s.site.Owner},
		"error": "Sorry, this page could not be rendered. Please try again later.",
	})
}

func (s *server) page(name string) gin.HandlerFunc {
	build := builders[name]
	return func(c *gin.Context) {
		c.Header("Accept-CH", "Sec-CH-Viewport-Width")
		page, err := build(s.site, s.options(c))
		if err != nil {
			s.fail(c, "Failed to build page", err)
			return
		}
		body, err := layout.HTML(page.Body)
		if err != nil {
			s.fail(c, "Failed to render page", err)
			return
		}
		c.HTML(http.StatusOK, "page.html", gin.H{
			"head": page.Head,
			"nav":  navLinks(legacy.NavState{}.Set(pageNav[name])),
			"body": body,
		})
	}
}

// templRender lets gin write a templ component.
type templRender struct {
	ctx       context.Context
	component templ.Component
}

func (r templRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.component.Render(r.ctx, w)
}

func (templRender) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func (s *server) journeyFragment(c *gin.Context) {
	list := timeline.Render(s.site.Journey, timeline.Options{ViewportWidth: s.options(c).ViewportWidth})
	c.Render(http.StatusOK, templRender{ctx: c.Request.Context(), component: layout.Component(list)})
}

type journeyItem struct {
	content.Entry
	Cards []timeline.Card `json:"cards"`
}

func (s *server) journeyJSON(c *gin.Context) {
	items := make([]journeyItem, 0, len(s.site.Journey))
	for _, e := range s.site.Journey {
		items = append(items, journeyItem{Entry: e, Cards: timeline.Cards(e)})
	}
	c.JSON(http.StatusOK, items)
}

func (s *server) animationPlan(c *gin.Context) {
	name := c.DefaultQuery("page", "about")
	build, ok := builders[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page"})
		return
	}
	page, err := build(s.site, s.options(c))
	if err != nil {
		s.log.Error("Failed to build animation plan", zap.String("page", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build animation plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":      name,
		"container": pages.ScrollContainer,
		"threshold": s.cfg.AnimationThreshold,
		"targets":   animation.Plan(page.Animation),
	})
}

// legacyPage is the old single shell page: the nav highlight comes from
// ?page= (home when unknown) and #main holds an iframe of the matching page.
// legacy.js swaps #main in place on nav clicks using the rendered timing.
func (s *server) legacyPage(c *gin.Context) {
	state := legacy.NavState{}.SetID(c.DefaultQuery("page", legacy.Home.ID()))
	cur, ok := state.Current()
	if !ok {
		cur = legacy.Home
		state = state.Set(cur)
	}
	c.HTML(http.StatusOK, "legacy.html", gin.H{
		"head":   pages.Head{Title: s.site.Owner, Icon: "/favicon.ico"},
		"nav":    navLinks(state),
		"main":   template.HTML(legacy.IframeMarkup(navPaths[cur])),
		"timing": legacy.DefaultTiming(),
	})
}
