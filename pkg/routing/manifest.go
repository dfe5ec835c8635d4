package routing

// Manifest is the JSON form of a Router consumed by the client bundle.
type Manifest struct {
	History History         `json:"history"`
	Base    string          `json:"base"`
	Routes  []ManifestRoute `json:"routes"`
}

// ManifestRoute describes a single route entry.
type ManifestRoute struct {
	Path  string `json:"path"`
	Name  string `json:"name,omitempty"`
	Href  string `json:"href"`
	Title string `json:"title,omitempty"`
}

// Manifest describes the route table in declaration order.
func (r *Router) Manifest() Manifest {
	routes := make([]ManifestRoute, 0, len(r.routes))
	for _, route := range r.routes {
		routes = append(routes, r.Describe(route))
	}
	return Manifest{
		History: r.history,
		Base:    r.base,
		Routes:  routes,
	}
}

// Describe returns the manifest entry for route.
func (r *Router) Describe(route Route) ManifestRoute {
	return ManifestRoute{
		Path:  route.Path,
		Name:  route.Name,
		Href:  r.HrefPath(route.Path),
		Title: route.View.Title,
	}
}
