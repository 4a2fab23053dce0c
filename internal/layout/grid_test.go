package layout_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tiMaxal/cardhatch/internal/layout"
	"github.com/tiMaxal/cardhatch/pkg/models"
)

// A 100x120 mm page with 10 mm margins and 40x50 mm cards: the usable
// height of 100 mm holds two rows, and two declared columns fill 80 mm of
// the 80 mm usable width.
func testGeometry() layout.GeometrySpec {
	return layout.GeometrySpec{
		PageWidthMM:    100,
		PageHeightMM:   120,
		MarginTopMM:    10,
		MarginBottomMM: 10,
		MarginLeftMM:   10,
		MarginRightMM:  10,
		CardWidthMM:    40,
		CardHeightMM:   50,
		CardsPerRow:    2,
	}
}

var _ = Describe("Grid Planner", func() {
	It("derives the row count from usable height", func() {
		geom, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())
		Expect(geom.CardsPerRow).To(Equal(2))
		Expect(geom.CardsPerCol).To(Equal(2))
		Expect(geom.CardsPerPage()).To(Equal(4))
	})

	It("centers the grid within the usable area", func() {
		geom, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())

		// 80 mm grid in 80 mm usable width: flush to 10 mm margins.
		Expect(geom.OffsetLeft).To(BeNumerically("~", layout.MM(10), 1e-9))
		// 100 mm of rows in a 100 mm usable height: flush vertically too.
		Expect(geom.OffsetTop).To(BeNumerically("~", layout.MM(10), 1e-9))

		// Shrink the cards and the leftover splits evenly.
		spec := testGeometry()
		spec.CardWidthMM = 30
		spec.CardHeightMM = 40
		geom, err = layout.PlanGeometry(spec)
		Expect(err).NotTo(HaveOccurred())
		Expect(geom.OffsetLeft).To(BeNumerically("~", layout.MM(10+(80.0-60.0)/2), 1e-9))
		Expect(geom.OffsetTop).To(BeNumerically("~", layout.MM(10+(100.0-80.0)/2), 1e-9))
	})

	It("lays cells out in row-major order", func() {
		geom, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())

		pages := geom.Paginate(4)
		Expect(pages).To(HaveLen(1))
		cells := pages[0]

		Expect(cells[0].X).To(BeNumerically("<", cells[1].X))
		Expect(cells[0].Y).To(BeNumerically("~", cells[1].Y, 1e-9))
		Expect(cells[2].Y).To(BeNumerically(">", cells[0].Y))
		Expect(cells[2].X).To(BeNumerically("~", cells[0].X, 1e-9))
	})

	It("pads the final partial chunk with empty cells in place", func() {
		geom, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())

		pages := geom.Paginate(5)
		Expect(pages).To(HaveLen(2))
		Expect(pages[0]).To(HaveLen(4))
		Expect(pages[1]).To(HaveLen(4))

		Expect(pages[1][0].CardIndex).To(Equal(4))
		for pos := 1; pos < 4; pos++ {
			Expect(pages[1][pos].Empty()).To(BeTrue())
			// Empty cells keep the same position as their front-page twin.
			Expect(pages[1][pos].X).To(BeNumerically("~", pages[0][pos].X, 1e-9))
			Expect(pages[1][pos].Y).To(BeNumerically("~", pages[0][pos].Y, 1e-9))
		}
	})

	It("is idempotent over identical inputs", func() {
		geomA, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())
		geomB, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())
		Expect(geomA).To(Equal(geomB))
		Expect(geomA.Paginate(7)).To(Equal(geomB.Paginate(7)))
	})

	DescribeTable("rejecting impossible geometry",
		func(mutate func(*layout.GeometrySpec)) {
			spec := testGeometry()
			mutate(&spec)
			_, err := layout.PlanGeometry(spec)
			var geomErr *layout.GeometryError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &geomErr)).To(BeTrue())
		},
		Entry("zero cards per row", func(s *layout.GeometrySpec) { s.CardsPerRow = 0 }),
		Entry("card taller than usable height", func(s *layout.GeometrySpec) { s.CardHeightMM = 150 }),
		Entry("grid wider than the page", func(s *layout.GeometrySpec) { s.CardsPerRow = 5 }),
		Entry("negative card width", func(s *layout.GeometrySpec) { s.CardWidthMM = -1 }),
	)
})

var _ = Describe("Cell positions", func() {
	It("converts millimeters to points", func() {
		Expect(layout.MM(1)).To(BeNumerically("~", 2.83465, 1e-9))
		Expect(layout.MM(10)).To(BeNumerically("~", 28.3465, 1e-9))
	})

	It("spaces adjacent cells exactly one card apart", func() {
		geom, err := layout.PlanGeometry(testGeometry())
		Expect(err).NotTo(HaveOccurred())

		a := geom.Cell(0, 0)
		b := geom.Cell(1, models.NoCard)
		Expect(b.X - a.X).To(BeNumerically("~", geom.CardWidth, 1e-9))
		Expect(b.Empty()).To(BeTrue())
	})
})
