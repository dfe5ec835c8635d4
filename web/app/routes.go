package app

import (
	"github.com/JaimeStill/student-portal/pkg/routing"
	"github.com/JaimeStill/student-portal/pkg/web"
)

// Portal views. Each is rendered inside the app.html layout.
var (
	StudentList = web.ViewDef{Template: "students.html", Title: "Students", Bundle: "app"}
	Login       = web.ViewDef{Template: "login.html", Title: "Sign In", Bundle: "app"}
	AdminLayout = web.ViewDef{Template: "admin.html", Title: "Administration", Bundle: "app"}
)

// NotFound is rendered for paths outside the route table. It is not a route.
var NotFound = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}

// AdminRoute names the administrative route for Named and Href lookups.
const AdminRoute = "admin"

func routeTable() []routing.Route {
	return []routing.Route{
		{Path: "/students", View: StudentList},
		{Path: "/", View: Login},
		{Path: "/admin", Name: AdminRoute, View: AdminLayout},
	}
}

// NewRouter builds the portal route table. Each call returns an independent
// router; the application shell calls it once at startup.
func NewRouter(history routing.History, basePath string) (*routing.Router, error) {
	return routing.New(routing.Config{
		History: history,
		Base:    basePath,
		Routes:  routeTable(),
	})
}
