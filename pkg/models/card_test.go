package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

var _ = Describe("Card models", func() {
	Context("Record", func() {
		It("returns column text by name", func() {
			rec := models.Record{
				Index:  3,
				Fields: map[string]string{"front": "hello", "back": "world"},
			}

			Expect(rec.Get("front")).To(Equal("hello"))
			Expect(rec.Get("back")).To(Equal("world"))
		})

		It("returns empty text for absent columns", func() {
			rec := models.Record{Fields: map[string]string{}}
			Expect(rec.Get("qty")).To(Equal(""))
		})
	})

	Context("CellPlan", func() {
		It("distinguishes empty slots from populated ones", func() {
			populated := models.CellPlan{CardIndex: 0}
			empty := models.CellPlan{CardIndex: models.NoCard}

			Expect(populated.Empty()).To(BeFalse())
			Expect(empty.Empty()).To(BeTrue())
		})
	})
})
