package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dashgallery/internal/catalog"
)

type indexData struct {
	Videos []catalog.Entry
}

// GET /
func (s *Server) handleIndex(c *gin.Context) {
	entries, err := s.scanner.Scan(requestBaseURL(c))
	if err != nil {
		logrus.WithError(err).Error("listing media root failed")
		c.String(http.StatusInternalServerError, "failed to list videos")
		return
	}
	c.HTML(http.StatusOK, "index.html", indexData{Videos: entries})
}

// GET /api/videos
func (s *Server) handleVideos(c *gin.Context) {
	entries, err := s.scanner.Scan(requestBaseURL(c))
	if err != nil {
		logrus.WithError(err).Error("listing media root failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list videos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": entries})
}

// GET /videos/:folder/:file
//
// Manifests get application/dash+xml and no-cache headers: dash.js
// keeps re-requesting the MPD and a cached copy breaks seeking after
// the presentation is repackaged. Everything else below the root
// (segments, init files) goes out as a plain static file.
func (s *Server) handleAsset(c *gin.Context) {
	folder := c.Param("folder")
	file := c.Param("file")

	path, ok := safeJoin(s.root, folder, file)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}
	isManifest := strings.HasSuffix(file, catalog.ManifestExt)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		if isManifest {
			c.String(http.StatusNotFound, "MPD file not found")
		} else {
			c.String(http.StatusNotFound, "not found")
		}
		return
	}

	if isManifest {
		c.Header("Content-Type", "application/dash+xml")
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
	} else {
		c.Header("Cache-Control", "public, max-age=3600")
	}
	c.File(path)
}

// GET /test-mpd/:name
//
// Diagnostic probe reporting whether a folder's manifest is on disk
// and the URL a player would fetch it from.
func (s *Server) handleTestMPD(c *gin.Context) {
	name := c.Param("name")
	reported := filepath.Join(s.root, name, name+catalog.ManifestExt)

	path, ok := safeJoin(s.root, name, name+catalog.ManifestExt)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "not_found", "path": reported})
		return
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		c.JSON(http.StatusOK, gin.H{"status": "not_found", "path": reported})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "exists",
		"path":   path,
		"url":    fmt.Sprintf("%s/videos/%s/%s%s", requestBaseURL(c), name, name, catalog.ManifestExt),
	})
}

// GET /healthz
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestBaseURL rebuilds the scheme and host the client used, so
// manifest URLs stay valid regardless of which address served the
// listing. X-Forwarded-Proto wins when a proxy terminates TLS.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
