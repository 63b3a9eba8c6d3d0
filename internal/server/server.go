// Package server exposes the video catalog and its manifest and
// segment files over HTTP.
package server

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"dashgallery/internal/catalog"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server serves a media root. Every listing request rescans the root,
// so there is no shared catalog state to synchronize.
type Server struct {
	root    string
	scanner *catalog.Scanner
}

// New returns a Server over root. Reserved folder names are hidden
// from the catalog but stay reachable through the static responder.
func New(root string, reserved ...string) *Server {
	return &Server{root: root, scanner: catalog.New(root, reserved...)}
}

// Router builds the route table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors())
	r.SetHTMLTemplate(indexTmpl)

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)
	r.GET("/api/videos", s.handleVideos)
	r.GET("/videos/:folder/:file", s.handleAsset)
	r.GET("/test-mpd/:name", s.handleTestMPD)

	return r
}
