package rules_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chatshelf/chatshelf/pkg/codexcfg"
	"github.com/chatshelf/chatshelf/pkg/rules"
)

var _ = Describe("Claude rules", func() {
	var (
		tmpDir     string
		claudeHome string
		store      *rules.Store
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		claudeHome = filepath.Join(tmpDir, ".claude")

		accessor, err := codexcfg.NewAccessor(filepath.Join(tmpDir, ".codex"))
		Expect(err).NotTo(HaveOccurred())

		store = rules.NewStore(accessor, rules.WithClaudeDir(claudeHome))
	})

	It("resolves the CLAUDE.md path under the claude directory", func() {
		path, err := store.ClaudeRulesPath()
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(claudeHome, "CLAUDE.md")))
	})

	It("reads empty content when the file does not exist", func() {
		content, err := store.ReadClaudeRules()
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(BeEmpty())
	})

	It("round-trips the rules document", func() {
		Expect(store.WriteClaudeRules("# Rules\nBe kind.\n")).To(Succeed())

		content, err := store.ReadClaudeRules()
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(Equal("# Rules\nBe kind.\n"))
	})

	It("creates the claude directory on write", func() {
		_, err := os.Stat(claudeHome)
		Expect(os.IsNotExist(err)).To(BeTrue())

		Expect(store.WriteClaudeRules("content")).To(Succeed())

		info, err := os.Stat(claudeHome)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	It("overwrites existing content", func() {
		Expect(store.WriteClaudeRules("first")).To(Succeed())
		Expect(store.WriteClaudeRules("second")).To(Succeed())

		content, err := store.ReadClaudeRules()
		Expect(err).NotTo(HaveOccurred())
		Expect(content).To(Equal("second"))
	})
})
