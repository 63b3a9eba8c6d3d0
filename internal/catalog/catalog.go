// Package catalog discovers DASH video folders under a media root.
//
// A folder is discoverable when it contains a manifest named after
// itself (videos/demo/demo.mpd). The filesystem is the sole source of
// truth: every scan reads the tree fresh and nothing is cached.
package catalog

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ManifestExt is the extension of the DASH presentation description a
// folder must contain to be discoverable.
const ManifestExt = ".mpd"

// Entry describes one playable video folder.
type Entry struct {
	Name        string `json:"name"`
	MPDFile     string `json:"mpd_file"`
	DisplayName string `json:"display_name"`
}

// Scanner lists video folders below Root. Reserved names (staging
// folders like "export") are never listed regardless of contents.
type Scanner struct {
	FS       afero.Fs
	Root     string
	Reserved []string
}

// New returns a Scanner over the OS filesystem.
func New(root string, reserved ...string) *Scanner {
	return &Scanner{FS: afero.NewOsFs(), Root: root, Reserved: reserved}
}

// Scan walks the immediate subdirectories of Root and returns one entry
// per folder holding a matching manifest, sorted ascending by name. A
// folder without one is skipped, not an error; an unreadable root is.
// baseURL supplies the scheme and host manifest URLs are built from, so
// playback works no matter which address served the listing.
func (s *Scanner) Scan(baseURL string) ([]Entry, error) {
	infos, err := afero.ReadDir(s.FS, s.Root)
	if err != nil {
		return nil, fmt.Errorf("read media root: %w", err)
	}

	entries := []Entry{}
	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		name := info.Name()
		if slices.Contains(s.Reserved, name) {
			continue
		}
		manifest := filepath.Join(s.Root, name, name+ManifestExt)
		if ok, _ := afero.Exists(s.FS, manifest); !ok {
			continue
		}
		entries = append(entries, Entry{
			Name:        name,
			MPDFile:     fmt.Sprintf("%s/videos/%s/%s%s", baseURL, name, name, ManifestExt),
			DisplayName: DisplayName(name),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// DisplayName turns a folder name into a human title: underscores
// become spaces and each word gets a capital first letter.
func DisplayName(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	return strings.Join(lo.Map(words, func(w string, _ int) string {
		return strings.ToUpper(w[:1]) + w[1:]
	}), " ")
}
