package catalog_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chatshelf/chatshelf/pkg/catalog"
)

var _ = Describe("Delete", func() {
	var (
		tmpDir     string
		claudeHome string
		codexHome  string
		cat        *catalog.Catalog
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		claudeHome = filepath.Join(tmpDir, ".claude")
		codexHome = filepath.Join(tmpDir, ".codex")

		cat = catalog.New(
			catalog.WithClaudeDir(claudeHome),
			catalog.WithCodexDir(codexHome),
		)
	})

	It("removes the log file", func() {
		path := writeLog(filepath.Join(claudeHome, "projects", "p"), "log.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		_, err := os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("returns ErrNotFound for a missing file", func() {
		err := cat.Delete(filepath.Join(tmpDir, "nope.jsonl"))
		Expect(err).To(BeAssignableToTypeOf(catalog.ErrNotFound{}))
	})

	It("returns ErrNotFound when deleting the same log twice", func() {
		path := writeLog(filepath.Join(claudeHome, "projects", "p"), "log.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		err := cat.Delete(path)
		Expect(err).To(BeAssignableToTypeOf(catalog.ErrNotFound{}))
	})

	It("removes a project directory left empty, but keeps the projects root", func() {
		projectDir := filepath.Join(claudeHome, "projects", "lonely")
		path := writeLog(projectDir, "only.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		_, err := os.Stat(projectDir)
		Expect(os.IsNotExist(err)).To(BeTrue())

		info, err := os.Stat(filepath.Join(claudeHome, "projects"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("keeps a project directory that still holds other logs", func() {
		projectDir := filepath.Join(claudeHome, "projects", "busy")
		path := writeLog(projectDir, "one.jsonl", "{}\n")
		writeLog(projectDir, "two.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		info, err := os.Stat(projectDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("collapses an emptied year/month/day chain, but keeps the sessions root", func() {
		dayDir := filepath.Join(codexHome, "sessions", "2026", "08", "14")
		path := writeLog(dayDir, "only.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		_, err := os.Stat(filepath.Join(codexHome, "sessions", "2026"))
		Expect(os.IsNotExist(err)).To(BeTrue())

		info, err := os.Stat(filepath.Join(codexHome, "sessions"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("stops collapsing at the first non-empty ancestor", func() {
		path := writeLog(filepath.Join(codexHome, "sessions", "2026", "08", "14"), "only.jsonl", "{}\n")
		writeLog(filepath.Join(codexHome, "sessions", "2026", "07", "01"), "keep.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		_, err := os.Stat(filepath.Join(codexHome, "sessions", "2026", "08"))
		Expect(os.IsNotExist(err)).To(BeTrue())

		info, err := os.Stat(filepath.Join(codexHome, "sessions", "2026"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("makes a deleted log disappear from the listing", func() {
		writeLog(filepath.Join(claudeHome, "projects", "p"), "keep.jsonl", "{}\n")
		path := writeLog(filepath.Join(claudeHome, "projects", "p"), "gone.jsonl", "{}\n")

		Expect(cat.Delete(path)).To(Succeed())

		metas, err := cat.List(catalog.BackendClaude)
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(1))
		Expect(metas[0].ID).To(Equal("keep"))
	})
})
