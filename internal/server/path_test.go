package server

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSafeJoin(t *testing.T) {
	Convey("safeJoin", t, func() {
		Convey("Should join clean segments under the root", func() {
			path, ok := safeJoin("videos", "demo", "demo.mpd")
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, filepath.Join("videos", "demo", "demo.mpd"))
		})

		Convey("Should reject parent traversal", func() {
			_, ok := safeJoin("videos", "..", "secret")
			So(ok, ShouldBeFalse)
		})

		Convey("Should reject absolute segments", func() {
			_, ok := safeJoin("videos", "/etc", "passwd")
			So(ok, ShouldBeFalse)
		})

		Convey("Should reject a path resolving to the root itself", func() {
			_, ok := safeJoin("videos", "..", "videos")
			So(ok, ShouldBeFalse)
		})

		Convey("Should reject empty segments", func() {
			_, ok := safeJoin("videos", "", "demo.mpd")
			So(ok, ShouldBeFalse)
		})
	})
}
