package routing_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/student-portal/pkg/routing"
	"github.com/JaimeStill/student-portal/pkg/web"
)

var (
	homeView  = web.ViewDef{Template: "home.html", Title: "Home"}
	aboutView = web.ViewDef{Template: "about.html", Title: "About"}
	adminView = web.ViewDef{Template: "admin.html", Title: "Admin"}
)

func testRoutes() []routing.Route {
	return []routing.Route{
		{Path: "/about", View: aboutView},
		{Path: "/", View: homeView},
		{Path: "/admin", Name: "admin", View: adminView},
	}
}

func newRouter(t *testing.T, history routing.History, base string) *routing.Router {
	t.Helper()
	r, err := routing.New(routing.Config{History: history, Base: base, Routes: testRoutes()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNew(t *testing.T) {
	r := newRouter(t, routing.HistoryWeb, "")

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.History() != routing.HistoryWeb {
		t.Errorf("History() = %q, want %q", r.History(), routing.HistoryWeb)
	}

	routes := r.Routes()
	for i, want := range testRoutes() {
		if routes[i] != want {
			t.Errorf("Routes()[%d] = %+v, want %+v", i, routes[i], want)
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     routing.Config
		wantErr error
	}{
		{
			"invalid history",
			routing.Config{History: "memory", Routes: testRoutes()},
			routing.ErrInvalidHistory,
		},
		{
			"empty history",
			routing.Config{Routes: testRoutes()},
			routing.ErrInvalidHistory,
		},
		{
			"relative path",
			routing.Config{History: routing.HistoryWeb, Routes: []routing.Route{{Path: "students", View: homeView}}},
			routing.ErrInvalidPath,
		},
		{
			"empty path",
			routing.Config{History: routing.HistoryWeb, Routes: []routing.Route{{View: homeView}}},
			routing.ErrInvalidPath,
		},
		{
			"missing view",
			routing.Config{History: routing.HistoryWeb, Routes: []routing.Route{{Path: "/"}}},
			routing.ErrMissingView,
		},
		{
			"duplicate path",
			routing.Config{History: routing.HistoryWeb, Routes: []routing.Route{
				{Path: "/a", View: homeView},
				{Path: "/a", View: aboutView},
			}},
			routing.ErrDuplicatePath,
		},
		{
			"duplicate path with trailing slash",
			routing.Config{History: routing.HistoryWeb, Routes: []routing.Route{
				{Path: "/a", View: homeView},
				{Path: "/a/", View: aboutView},
			}},
			routing.ErrDuplicatePath,
		},
		{
			"duplicate name",
			routing.Config{History: routing.HistoryHash, Routes: []routing.Route{
				{Path: "/a", Name: "x", View: homeView},
				{Path: "/b", Name: "x", View: aboutView},
			}},
			routing.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := routing.New(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCopiesRoutes(t *testing.T) {
	routes := testRoutes()
	r, err := routing.New(routing.Config{History: routing.HistoryWeb, Routes: routes})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	routes[0].Path = "/changed"
	if _, err := r.Resolve("/about"); err != nil {
		t.Errorf("Resolve(/about) after caller mutation error = %v", err)
	}

	got := r.Routes()
	got[1].View = adminView
	if route, _ := r.Resolve("/"); route.View != homeView {
		t.Error("Routes() exposed internal state")
	}
}

func TestResolveWeb(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		location string
		want     web.ViewDef
	}{
		{"root", "", "/", homeView},
		{"empty", "", "", homeView},
		{"path", "", "/about", aboutView},
		{"trailing slash", "", "/about/", aboutView},
		{"query", "", "/admin?tab=users", adminView},
		{"full url", "", "https://portal.example.com/admin#top", adminView},
		{"base root", "/app", "/app", homeView},
		{"base root slash", "/app", "/app/", homeView},
		{"base path", "/app", "/app/about", aboutView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, routing.HistoryWeb, tt.base)
			route, err := r.Resolve(tt.location)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.location, err)
			}
			if route.View != tt.want {
				t.Errorf("Resolve(%q) view = %+v, want %+v", tt.location, route.View, tt.want)
			}
		})
	}
}

func TestResolveHash(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     web.ViewDef
	}{
		{"no fragment", "/", homeView},
		{"empty fragment", "/#", homeView},
		{"fragment root", "/#/", homeView},
		{"fragment path", "/#/about", aboutView},
		{"fragment only", "#/admin", adminView},
		{"fragment query", "/#/admin?tab=users", adminView},
		{"path ignored", "/about", homeView},
	}

	r := newRouter(t, routing.HistoryHash, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := r.Resolve(tt.location)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.location, err)
			}
			if route.View != tt.want {
				t.Errorf("Resolve(%q) view = %+v, want %+v", tt.location, route.View, tt.want)
			}
		})
	}
}

func TestResolveHashBase(t *testing.T) {
	r := newRouter(t, routing.HistoryHash, "/app")

	for _, location := range []string{"/app/#/admin", "/app#/admin", "#/admin", "https://x.example/app/#/admin"} {
		t.Run(location, func(t *testing.T) {
			route, err := r.Resolve(location)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", location, err)
			}
			if route.View != adminView {
				t.Errorf("Resolve(%q) view = %+v, want %+v", location, route.View, adminView)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	tests := []struct {
		name     string
		history  routing.History
		base     string
		location string
	}{
		{"unknown path", routing.HistoryWeb, "", "/unknown"},
		{"nested path", routing.HistoryWeb, "", "/admin/users"},
		{"outside base", routing.HistoryWeb, "/app", "/about"},
		{"base prefix only", routing.HistoryWeb, "/app", "/application"},
		{"unknown fragment", routing.HistoryHash, "", "/#/unknown"},
		{"hash outside base", routing.HistoryHash, "/app", "/other/#/admin"},
		{"hash full url outside base", routing.HistoryHash, "/app", "https://x.example/elsewhere#/about"},
		{"hash base prefix only", routing.HistoryHash, "/app", "/application#/admin"},
		{"invalid url", routing.HistoryWeb, "", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, tt.history, tt.base)
			_, err := r.Resolve(tt.location)
			if !errors.Is(err, routing.ErrNoMatch) {
				t.Errorf("Resolve(%q) error = %v, want ErrNoMatch", tt.location, err)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	r := newRouter(t, routing.HistoryWeb, "")

	route, err := r.Named("admin")
	if err != nil {
		t.Fatalf("Named(admin) error = %v", err)
	}
	if route.Path != "/admin" || route.View != adminView {
		t.Errorf("Named(admin) = %+v", route)
	}

	if _, err := r.Named(""); !errors.Is(err, routing.ErrUnknownName) {
		t.Errorf("Named(\"\") error = %v, want ErrUnknownName", err)
	}
	if _, err := r.Named("students"); !errors.Is(err, routing.ErrUnknownName) {
		t.Errorf("Named(students) error = %v, want ErrUnknownName", err)
	}
}

func TestHref(t *testing.T) {
	tests := []struct {
		name    string
		history routing.History
		base    string
		want    string
	}{
		{"web root", routing.HistoryWeb, "", "/admin"},
		{"web base", routing.HistoryWeb, "/app", "/app/admin"},
		{"web base normalized", routing.HistoryWeb, "app/", "/app/admin"},
		{"hash root", routing.HistoryHash, "", "/#/admin"},
		{"hash base", routing.HistoryHash, "/app", "/app/#/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, tt.history, tt.base)
			got, err := r.Href("admin")
			if err != nil {
				t.Fatalf("Href(admin) error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Href(admin) = %q, want %q", got, tt.want)
			}
		})
	}

	r := newRouter(t, routing.HistoryWeb, "")
	if _, err := r.Href("missing"); !errors.Is(err, routing.ErrUnknownName) {
		t.Errorf("Href(missing) error = %v, want ErrUnknownName", err)
	}
}

func TestHrefRoundTrip(t *testing.T) {
	for _, history := range []routing.History{routing.HistoryWeb, routing.HistoryHash} {
		t.Run(string(history), func(t *testing.T) {
			r := newRouter(t, history, "/portal")
			for _, want := range r.Routes() {
				got, err := r.Resolve(r.HrefPath(want.Path))
				if err != nil {
					t.Fatalf("Resolve(HrefPath(%q)) error = %v", want.Path, err)
				}
				if got != want {
					t.Errorf("Resolve(HrefPath(%q)) = %+v, want %+v", want.Path, got, want)
				}
			}
		})
	}
}
