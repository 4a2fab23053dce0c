package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tiMaxal/cardhatch/internal/config"
	"github.com/tiMaxal/cardhatch/internal/ingest"
	"github.com/tiMaxal/cardhatch/internal/layout"
	"github.com/tiMaxal/cardhatch/internal/pipeline"
	"github.com/tiMaxal/cardhatch/pkg/logger"
)

var _ = Describe("Pipeline", func() {
	var (
		dir string
		cfg *config.Config
		log *logger.Logger
		ctx context.Context
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "cardhatch-pipeline-*")
		Expect(err).NotTo(HaveOccurred())

		log = logger.New(logger.WithOutput(GinkgoWriter), logger.WithPrefix("[pipeline-test] "), logger.WithFlags(0))
		log.SetVerbose(true)
		ctx = context.Background()

		cfg = config.Default()
		cfg.Input = filepath.Join(dir, "cards.csv")
		cfg.Output = filepath.Join(dir, "cards.pdf")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	writeInput := func(content string) {
		Expect(os.WriteFile(cfg.Input, []byte(content), 0644)).To(Succeed())
	}

	It("generates a verified duplex PDF end to end", func() {
		// 5 cards on the default A4 2-column layout: 2x5 grid, one pair.
		writeInput("front,back,qty\nhello,world,4\nsecond,card,1\n")

		report, err := pipeline.New(cfg, log).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.RowsRead).To(Equal(2))
		Expect(report.CardsPlanned).To(Equal(5))
		Expect(report.PagePairs).To(Equal(1))
		Expect(report.PagesWritten).To(Equal(2))
		Expect(report.Warnings).To(BeEmpty())

		pages, err := api.PageCountFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(Equal(2))
	})

	It("reports qty warnings without aborting", func() {
		writeInput("front,back,qty\na,b,oops\nc,d,2\n")

		report, err := pipeline.New(cfg, log).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.CardsPlanned).To(Equal(3))
		Expect(report.Warnings).To(HaveLen(1))
		Expect(report.Warnings[0].Row).To(Equal(0))
		Expect(report.Warnings[0].Value).To(Equal("oops"))
	})

	It("fails on missing columns before writing anything", func() {
		writeInput("title,body\na,b\n")

		_, err := pipeline.New(cfg, log).Run(ctx)

		var missing *ingest.MissingColumnError
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.Columns).To(ContainElements("front", "back", "qty"))
		Expect(cfg.Output).NotTo(BeAnExistingFile())
	})

	It("fails on overflow when truncation is off", func() {
		// A tiny card cannot hold three hard lines at font size 12.
		cfg.Layout.CardWidthMM = 30
		cfg.Layout.CardHeightMM = 12
		writeInput(`front,back,qty` + "\n" + `"one\ntwo\nthree",b,1` + "\n")

		_, err := pipeline.New(cfg, log).Run(ctx)

		var overflow *layout.OverflowError
		Expect(errors.As(err, &overflow)).To(BeTrue())
		Expect(overflow.Row).To(Equal(0))
		Expect(cfg.Output).NotTo(BeAnExistingFile())
	})

	It("truncates with an ellipsis when enabled", func() {
		cfg.Layout.CardWidthMM = 30
		cfg.Layout.CardHeightMM = 12
		cfg.Truncate = true
		writeInput(`front,back,qty` + "\n" + `"one\ntwo\nthree",b,1` + "\n")

		report, err := pipeline.New(cfg, log).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.PagesWritten).To(Equal(2))
	})

	It("rejects an invalid configuration up front", func() {
		cfg.Multiplier = 0
		writeInput("front,back,qty\na,b,1\n")

		_, err := pipeline.New(cfg, log).Run(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("rejects unsupported input formats", func() {
		cfg.Input = filepath.Join(dir, "cards.xlsx")
		Expect(os.WriteFile(cfg.Input, []byte("not a sheet"), 0644)).To(Succeed())

		_, err := pipeline.New(cfg, log).Run(ctx)
		Expect(err).To(HaveOccurred())
	})
})
