package e2e_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("gig <languages> [output]", func() {
	var dir string

	BeforeEach(func() {
		dir = tempDir()
	})

	It("writes .gitignore for a single template", func() {
		gigOK(dir, "python")

		gi := readFile(dir, ".gitignore")
		Expect(gi).To(ContainSubstring("__pycache__/"))
		Expect(gi).To(HavePrefix("# Byte-compiled"))
	})

	It("matches template names case-insensitively", func() {
		gigOK(dir, "PyThOn")
		Expect(readFile(dir, ".gitignore")).To(ContainSubstring("__pycache__/"))
	})

	It("merges several templates and writes shared patterns once", func() {
		gigOK(dir, "go,c,macos")

		gi := readFile(dir, ".gitignore")
		Expect(gi).To(ContainSubstring("go.work"))
		Expect(gi).To(ContainSubstring("*.o"))
		Expect(gi).To(ContainSubstring(".DS_Store"))
		Expect(countLines(gi, "*.exe")).To(Equal(1))
		Expect(countLines(gi, "*.dll")).To(Equal(1))
	})

	It("keeps template order", func() {
		gigOK(dir, "node,go")

		gi := readFile(dir, ".gitignore")
		Expect(strings.Index(gi, "node_modules/")).To(BeNumerically("<", strings.Index(gi, "go.work")))
	})

	It("writes to a custom output path", func() {
		writeFile(dir, "src/keep", "")
		gigOK(dir, "rust", "src/.gitignore")

		Expect(readFile(dir, "src/.gitignore")).To(ContainSubstring("**/*.rs.bk"))
		Expect(fileExists(dir, ".gitignore")).To(BeFalse())
	})

	It("writes to stdout with -", func() {
		out := gigStdout(dir, "godot", "-")

		Expect(out).To(ContainSubstring(".godot/"))
		Expect(fileExists(dir, ".gitignore")).To(BeFalse())
		Expect(fileExists(dir, "-")).To(BeFalse())
	})

	It("resolves qualified keys and unique nested bare names", func() {
		gigOK(dir, "global-macos,coldbox", "a.gitignore")
		gigOK(dir, "macos,community-cfml-coldbox", "b.gitignore")

		Expect(readFile(dir, "a.gitignore")).To(Equal(readFile(dir, "b.gitignore")))
	})

	Context("when the output file exists", func() {
		BeforeEach(func() {
			writeFile(dir, ".gitignore", "existing content\n")
		})

		It("refuses to overwrite it", func() {
			out := gigFail(dir, "python")

			Expect(out).To(ContainSubstring("already exists"))
			Expect(readFile(dir, ".gitignore")).To(Equal("existing content\n"))
		})

		It("overwrites it with --force", func() {
			gigOK(dir, "--force", "python")

			gi := readFile(dir, ".gitignore")
			Expect(gi).NotTo(ContainSubstring("existing content"))
			Expect(gi).To(ContainSubstring("__pycache__/"))
		})

		It("merges into it with --append, keeping existing lines first", func() {
			writeFile(dir, ".gitignore", "# project\n*.log\n/secrets/\n")
			gigOK(dir, "-a", "node")

			gi := readFile(dir, ".gitignore")
			Expect(gi).To(HavePrefix("# project\n*.log\n/secrets/\n"))
			Expect(gi).To(ContainSubstring("node_modules/"))
			Expect(countLines(gi, "*.log")).To(Equal(1))
		})

		It("is idempotent when appending the same template twice", func() {
			gigOK(dir, "--append", "go")
			first := readFile(dir, ".gitignore")
			gigOK(dir, "--append", "go")
			second := readFile(dir, ".gitignore")

			Expect(countLines(second, "*.exe")).To(Equal(1))
			Expect(countLines(second, "go.work")).To(Equal(1))
			Expect(len(second)).To(BeNumerically(">=", len(first)))
		})

		It("rejects --append together with --force", func() {
			gigFail(dir, "--append", "--force", "go")
			Expect(readFile(dir, ".gitignore")).To(Equal("existing content\n"))
		})
	})

	It("creates the file with --append when it does not exist", func() {
		gigOK(dir, "--append", "go")
		Expect(readFile(dir, ".gitignore")).To(ContainSubstring("go.work"))
	})

	Describe("errors", func() {
		It("reports an unknown template and writes nothing", func() {
			out := gigFail(dir, "doesnotexist")

			Expect(out).To(ContainSubstring(`no template found for "doesnotexist"`))
			Expect(out).To(ContainSubstring("gig --list"))
			Expect(fileExists(dir, ".gitignore")).To(BeFalse())
		})

		It("aborts the whole request when one of several names is unknown", func() {
			gigFail(dir, "go,nope,python")
			Expect(fileExists(dir, ".gitignore")).To(BeFalse())
		})

		It("does not touch an existing file on error, even with --force", func() {
			writeFile(dir, ".gitignore", "keep me\n")
			gigFail(dir, "--force", "go,nope")
			Expect(readFile(dir, ".gitignore")).To(Equal("keep me\n"))
		})

		It("does not do prefix matching", func() {
			out := gigFail(dir, "pyth")
			Expect(out).To(ContainSubstring(`no template found for "pyth"`))
		})

		It("rejects an empty name in the list", func() {
			out := gigFail(dir, "go,,godot")
			Expect(out).To(ContainSubstring("empty template name"))
			Expect(fileExists(dir, ".gitignore")).To(BeFalse())
		})

		It("fails when the output directory does not exist", func() {
			out := gigFail(dir, "go", filepath.Join("missing", ".gitignore"))
			Expect(out).NotTo(ContainSubstring("already exists"))
		})

		It("rejects more than two arguments", func() {
			gigFail(dir, "go", "a", "b")
		})
	})

	It("prints help without arguments", func() {
		out := gigOK(dir)
		Expect(out).To(ContainSubstring("Usage:"))
		Expect(out).To(ContainSubstring("gig <languages> [output]"))
		Expect(fileExists(dir, ".gitignore")).To(BeFalse())
	})

	It("leaves no temporary files behind", func() {
		gigOK(dir, "go")
		gigFail(dir, "go")
		gigOK(dir, "-f", "rust")

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})
})
