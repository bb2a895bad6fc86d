package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chatshelf/chatshelf/pkg/catalog"
)

func TestCatalog(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Catalog Suite")
}

// writeLog writes a .jsonl log file, creating parent directories as needed,
// and returns its path.
func writeLog(dir, name, content string) string {
	ExpectWithOffset(1, os.MkdirAll(dir, 0o755)).To(Succeed())
	path := filepath.Join(dir, name)
	ExpectWithOffset(1, os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Catalog", func() {
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

	Describe("List", func() {
		It("returns an empty catalog when the root does not exist", func() {
			metas, err := cat.List(catalog.BackendClaude)
			Expect(err).NotTo(HaveOccurred())
			Expect(metas).To(BeEmpty())

			metas, err = cat.List(catalog.BackendCodex)
			Expect(err).NotTo(HaveOccurred())
			Expect(metas).To(BeEmpty())
		})

		It("rejects an unknown backend", func() {
			_, err := cat.List(catalog.Backend("gemini"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown backend"))
		})

		Context("claude tree", func() {
			It("lists logs with their project container name", func() {
				projectDir := filepath.Join(claudeHome, "projects", "my-project")
				path := writeLog(projectDir, "4f9d.jsonl", `{"sessionId":"sess-1"}`+"\n")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))

				m := metas[0]
				Expect(m.ID).To(Equal("4f9d"))
				Expect(m.Backend).To(Equal(catalog.BackendClaude))
				Expect(m.FilePath).To(Equal(path))
				Expect(m.ContainerName).To(Equal("my-project"))
				Expect(m.SessionID).To(Equal("sess-1"))
				Expect(m.EntryCount).To(Equal(1))
				Expect(m.FileSize).To(BeNumerically(">", 0))
				Expect(m.ModifiedAt).To(BeNumerically(">", 0))
			})

			It("skips dot-directories", func() {
				writeLog(filepath.Join(claudeHome, "projects", ".hidden"), "a.jsonl", "{}\n")
				writeLog(filepath.Join(claudeHome, "projects", "visible"), "b.jsonl", "{}\n")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))
				Expect(metas[0].ContainerName).To(Equal("visible"))
			})

			It("skips files that are not .jsonl", func() {
				projectDir := filepath.Join(claudeHome, "projects", "proj")
				writeLog(projectDir, "log.jsonl", "{}\n")
				Expect(os.WriteFile(filepath.Join(projectDir, "notes.txt"), []byte("x"), 0o644)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(projectDir, "data.json"), []byte("{}"), 0o644)).To(Succeed())

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))
				Expect(metas[0].ID).To(Equal("log"))
			})

			It("skips loose files directly under the root", func() {
				Expect(os.MkdirAll(filepath.Join(claudeHome, "projects"), 0o755)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(claudeHome, "projects", "stray.jsonl"), []byte("{}\n"), 0o644)).To(Succeed())

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(BeEmpty())
			})

			It("sorts results by modification time, newest first", func() {
				projects := filepath.Join(claudeHome, "projects")
				older := writeLog(filepath.Join(projects, "a"), "old.jsonl", "{}\n")
				newer := writeLog(filepath.Join(projects, "b"), "new.jsonl", "{}\n")

				base := time.Now().Add(-time.Hour)
				Expect(os.Chtimes(older, base, base)).To(Succeed())
				Expect(os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute))).To(Succeed())

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(2))
				Expect(metas[0].ID).To(Equal("new"))
				Expect(metas[1].ID).To(Equal("old"))
			})
		})

		Context("codex tree", func() {
			It("lists logs nested under year/month/day", func() {
				dayDir := filepath.Join(codexHome, "sessions", "2026", "08", "14")
				path := writeLog(dayDir, "rollout-abc.jsonl",
					`{"type":"session_meta","payload":{"id":"sess-codex"}}`+"\n")

				metas, err := cat.List(catalog.BackendCodex)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))

				m := metas[0]
				Expect(m.ID).To(Equal("rollout-abc"))
				Expect(m.Backend).To(Equal(catalog.BackendCodex))
				Expect(m.FilePath).To(Equal(path))
				Expect(m.ContainerName).To(BeEmpty())
				Expect(m.SessionID).To(Equal("sess-codex"))
			})

			It("ignores stray files at intermediate levels", func() {
				Expect(os.MkdirAll(filepath.Join(codexHome, "sessions", "2026", "08"), 0o755)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(codexHome, "sessions", "stray.jsonl"), []byte("{}\n"), 0o644)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(codexHome, "sessions", "2026", "stray.jsonl"), []byte("{}\n"), 0o644)).To(Succeed())
				Expect(os.WriteFile(filepath.Join(codexHome, "sessions", "2026", "08", "stray.jsonl"), []byte("{}\n"), 0o644)).To(Succeed())

				writeLog(filepath.Join(codexHome, "sessions", "2026", "08", "14"), "real.jsonl", "{}\n")

				metas, err := cat.List(catalog.BackendCodex)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))
				Expect(metas[0].ID).To(Equal("real"))
			})

			It("lists logs across multiple days", func() {
				writeLog(filepath.Join(codexHome, "sessions", "2026", "08", "13"), "one.jsonl", "{}\n")
				writeLog(filepath.Join(codexHome, "sessions", "2026", "08", "14"), "two.jsonl", "{}\n")
				writeLog(filepath.Join(codexHome, "sessions", "2025", "12", "31"), "three.jsonl", "{}\n")

				metas, err := cat.List(catalog.BackendCodex)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(3))
			})
		})

		Context("entry counting", func() {
			It("counts line-delimited entries", func() {
				writeLog(filepath.Join(claudeHome, "projects", "p"), "log.jsonl",
					"{\"a\":1}\n{\"b\":2}\n{\"c\":3}\n")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas[0].EntryCount).To(Equal(3))
			})

			It("does not count a trailing newline as an entry", func() {
				writeLog(filepath.Join(claudeHome, "projects", "p"), "log.jsonl", "{}\n{}")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas[0].EntryCount).To(Equal(2))
			})

			It("counts an empty file as zero entries", func() {
				writeLog(filepath.Join(claudeHome, "projects", "p"), "empty.jsonl", "")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas[0].EntryCount).To(Equal(0))
			})
		})

		Context("session id extraction", func() {
			It("leaves the session id empty when the first line is not JSON", func() {
				writeLog(filepath.Join(claudeHome, "projects", "p"), "bad.jsonl", "not json at all\n")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))
				Expect(metas[0].SessionID).To(BeEmpty())
			})

			It("leaves the session id empty when the claude envelope lacks the field", func() {
				writeLog(filepath.Join(claudeHome, "projects", "p"), "plain.jsonl", `{"type":"summary"}`+"\n")

				metas, err := cat.List(catalog.BackendClaude)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas[0].SessionID).To(BeEmpty())
			})

			It("ignores codex first lines that are not session_meta", func() {
				writeLog(filepath.Join(codexHome, "sessions", "2026", "01", "01"), "r.jsonl",
					`{"type":"other","payload":{"id":"should-not-appear"}}`+"\n")

				metas, err := cat.List(catalog.BackendCodex)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas[0].SessionID).To(BeEmpty())
			})

			It("ignores a codex payload that is not an object", func() {
				writeLog(filepath.Join(codexHome, "sessions", "2026", "01", "01"), "r.jsonl",
					`{"type":"session_meta","payload":"oops"}`+"\n")

				metas, err := cat.List(catalog.BackendCodex)
				Expect(err).NotTo(HaveOccurred())
				Expect(metas).To(HaveLen(1))
				Expect(metas[0].SessionID).To(BeEmpty())
			})
		})
	})

	Describe("Content", func() {
		It("returns the raw log text", func() {
			path := writeLog(filepath.Join(claudeHome, "projects", "p"), "log.jsonl", "{\"a\":1}\n")

			content, err := cat.Content(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(content).To(Equal("{\"a\":1}\n"))
		})

		It("returns ErrNotFound for a missing file", func() {
			_, err := cat.Content(filepath.Join(tmpDir, "nope.jsonl"))
			Expect(err).To(BeAssignableToTypeOf(catalog.ErrNotFound{}))
		})
	})
})
