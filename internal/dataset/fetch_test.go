package dataset_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"music-insights-go/internal/dataset"
)

func TestResolve(t *testing.T) {
	Convey("Given a plain local path", t, func() {
		Convey("Then it passes through untouched", func() {
			path, err := dataset.Resolve("data/song_ratings.xlsx")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "data/song_ratings.xlsx")
		})
	})

	Convey("Given an HTTP source that fails once before succeeding", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			w.Write([]byte("workbook-bytes"))
		}))
		defer srv.Close()

		Convey("Then the download retries and lands in a temp file", func() {
			path, err := dataset.Resolve(srv.URL)
			So(err, ShouldBeNil)
			defer os.Remove(path)
			body, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "workbook-bytes")
			So(atomic.LoadInt32(&calls), ShouldBeGreaterThanOrEqualTo, 2)
		})
	})

	Convey("Given an HTTP source that answers 404", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			http.NotFound(w, r)
		}))
		defer srv.Close()

		Convey("Then the fetch fails without retrying", func() {
			_, err := dataset.Resolve(srv.URL)
			So(err, ShouldNotBeNil)
			So(atomic.LoadInt32(&calls), ShouldEqual, 1)
		})
	})
}
