// Package router mounts the storefront handlers on a gin engine
package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// MountedRoute describes one route after Setup
type MountedRoute struct {
	Group  string
	Method string
	Path   string
}

// Router mounts DomainGroups under a versioned API prefix
type Router struct {
	engine     *gin.Engine
	apiVersion string
	groups     []*DomainGroup
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithAPIVersion sets the API version segment of the prefix (e.g., "v1")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a Router on engine. The default prefix is /api/v1.
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prefix returns the versioned API prefix
func (r *Router) Prefix() string {
	return "/api/" + r.apiVersion
}

// Register queues groups for Setup
func (r *Router) Register(groups ...*DomainGroup) *Router {
	r.groups = append(r.groups, groups...)
	return r
}

// Setup mounts every registered group and returns the resulting route table
// in registration order.
func (r *Router) Setup() []MountedRoute {
	api := r.engine.Group(r.Prefix())

	var mounted []MountedRoute
	for _, g := range r.groups {
		g.mount(api)
		for _, rt := range g.routes {
			mounted = append(mounted, MountedRoute{
				Group:  g.name,
				Method: rt.method,
				Path:   joinPath(r.Prefix(), g.prefix, rt.path),
			})
		}
	}
	return mounted
}

// DomainGroup is the set of routes serving one storefront contract
type DomainGroup struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	routes     []route
}

type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates a group mounted at prefix
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Name returns the group name
func (g *DomainGroup) Name() string { return g.name }

// Use adds middleware that runs before every route of the group
func (g *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	g.middleware = append(g.middleware, middleware...)
	return g
}

// GET adds a GET route
func (g *DomainGroup) GET(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return g.handle(http.MethodGet, relativePath, handlers)
}

// POST adds a POST route
func (g *DomainGroup) POST(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return g.handle(http.MethodPost, relativePath, handlers)
}

func (g *DomainGroup) handle(method, relativePath string, handlers []gin.HandlerFunc) *DomainGroup {
	g.routes = append(g.routes, route{method: method, path: relativePath, handlers: handlers})
	return g
}

func (g *DomainGroup) mount(rg *gin.RouterGroup) {
	group := rg.Group(g.prefix, g.middleware...)
	for _, rt := range g.routes {
		group.Handle(rt.method, rt.path, rt.handlers...)
	}
}

// joinPath joins route segments the way gin does, keeping no trailing slash
// for empty relative paths.
func joinPath(segments ...string) string {
	joined := path.Join(segments...)
	if joined == "" || joined == "." {
		return "/"
	}
	return joined
}
