package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given empty metrics", t, func() {
		m := NewMetrics()

		Convey("Frequencies should be zero", func() {
			So(m.Total(), ShouldEqual, 0)
			So(m.Frequency("|0>"), ShouldEqual, 0.0)
			So(m.Outcomes(), ShouldBeEmpty)
		})

		Convey("When recording outcomes", func() {
			m.Record("|111>")
			m.Record("|000>")
			m.Record("|111>")
			m.Record("|111>")

			Convey("Then counts and frequencies should add up", func() {
				So(m.Total(), ShouldEqual, 4)
				So(m.Count("|111>"), ShouldEqual, 3)
				So(m.Count("|000>"), ShouldEqual, 1)
				So(m.Frequency("|111>"), ShouldEqual, 0.75)
			})

			Convey("Then outcomes should be listed in order", func() {
				So(m.Outcomes(), ShouldResemble, []string{"|000>", "|111>"})
			})

			Convey("Then the export should be detached from the live counts", func() {
				exported := m.ExportMetrics()
				So(exported["total"], ShouldEqual, 4)

				counts := exported["counts"].(map[string]int)
				counts["|000>"] = 99
				So(m.Count("|000>"), ShouldEqual, 1)
			})
		})
	})
}
