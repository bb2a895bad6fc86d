package catalog_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chatshelf/chatshelf/pkg/catalog"
)

var _ = Describe("Search", func() {
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

		writeLog(filepath.Join(claudeHome, "projects", "alpha-service"), "abc123.jsonl",
			`{"sessionId":"sess-alpha"}`+"\n")
		writeLog(filepath.Join(claudeHome, "projects", "beta-tool"), "def456.jsonl",
			`{"sessionId":"sess-beta"}`+"\n")
		writeLog(filepath.Join(codexHome, "sessions", "2026", "08", "14"), "rollout-ABC999.jsonl",
			`{"type":"session_meta","payload":{"id":"sess-codex"}}`+"\n")
	})

	It("matches ids case-insensitively", func() {
		metas, err := cat.Search("", "ABC")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(2))
	})

	It("matches the project container name", func() {
		metas, err := cat.Search("", "alpha-service")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(1))
		Expect(metas[0].ID).To(Equal("abc123"))
	})

	It("matches the embedded session id", func() {
		metas, err := cat.Search("", "sess-codex")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(1))
		Expect(metas[0].Backend).To(Equal(catalog.BackendCodex))
	})

	It("returns everything for an empty keyword", func() {
		metas, err := cat.Search("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(3))
	})

	It("restricts the search to one backend", func() {
		metas, err := cat.Search(catalog.BackendClaude, "abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(1))
		Expect(metas[0].Backend).To(Equal(catalog.BackendClaude))

		metas, err = cat.Search(catalog.BackendCodex, "abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(1))
		Expect(metas[0].Backend).To(Equal(catalog.BackendCodex))
	})

	It("puts claude results before codex results", func() {
		metas, err := cat.Search("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(HaveLen(3))
		Expect(metas[0].Backend).To(Equal(catalog.BackendClaude))
		Expect(metas[1].Backend).To(Equal(catalog.BackendClaude))
		Expect(metas[2].Backend).To(Equal(catalog.BackendCodex))
	})

	It("returns an empty result for a keyword that matches nothing", func() {
		metas, err := cat.Search("", "zzz-no-such-log")
		Expect(err).NotTo(HaveOccurred())
		Expect(metas).To(BeEmpty())
	})
})
