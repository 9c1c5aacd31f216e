package handler

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// pages maps page routes to the file served for them. No page is named
// index.html because http.FileServer redirects that name to the directory.
var pages = map[string]string{
	"/":        "signup.html",
	"/app":     "app.html",
	"/results": "results.html",
	"/login":   "login.html",
}

// RegisterStatic mounts the page routes and /images from site. A missing
// file answers 404.
func RegisterStatic(r gin.IRoutes, site fs.FS) error {
	for route, file := range pages {
		r.StaticFileFS(route, file, http.FS(site))
	}

	images, err := fs.Sub(site, "images")
	if err != nil {
		return err
	}
	r.StaticFS("/images", http.FS(images))
	return nil
}
