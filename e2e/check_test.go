package e2e_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("gig check", func() {
	var dir string

	BeforeEach(func() {
		dir = tempDir()
	})

	It("reports paths against merged templates", func() {
		out := gigStdout(dir, "check", "go,macos", "app.exe", ".DS_Store", "main.go")

		Expect(out).To(Equal("ignored  app.exe\nignored  .DS_Store\nkept     main.go\n"))
	})

	It("reports paths against an existing file with --file", func() {
		writeFile(dir, "my.ignore", "# local\r\n/build/\r\n*.tmp\r\n")
		out := gigStdout(dir, "check", "--file", "my.ignore", "build/out", "a.tmp", "src/a.go")

		Expect(out).To(Equal("ignored  build/out\nignored  a.tmp\nkept     src/a.go\n"))
	})

	It("fails with --strict when a path is kept", func() {
		out := gigFail(dir, "check", "--strict", "go", "app.exe", "main.go")
		Expect(out).To(ContainSubstring("not every path is ignored"))
	})

	It("succeeds with --strict when every path is ignored", func() {
		gigOK(dir, "check", "--strict", "go", "app.exe", "lib.dll")
	})

	It("fails for unknown templates", func() {
		gigFail(dir, "check", "nope", "a")
	})

	It("asks git with --git", func() {
		if _, err := exec.LookPath("git"); err != nil {
			Skip("git not installed")
		}
		gitInit := exec.Command("git", "init", dir)
		out, err := gitInit.CombinedOutput()
		Expect(err).NotTo(HaveOccurred(), string(out))

		gigOK(dir, "go")
		Expect(gigStdout(dir, "check", "--git", "app.exe", "main.go")).To(Equal("ignored  app.exe\nkept     main.go\n"))
	})

	It("reports non-ASCII names git ignores with --git", func() {
		if _, err := exec.LookPath("git"); err != nil {
			Skip("git not installed")
		}
		gitInit := exec.Command("git", "init", dir)
		out, err := gitInit.CombinedOutput()
		Expect(err).NotTo(HaveOccurred(), string(out))

		writeFile(dir, ".gitignore", "café.log\n")
		Expect(gigStdout(dir, "check", "--git", "--strict", "café.log")).To(Equal("ignored  café.log\n"))
	})

	It("rejects --git together with --file", func() {
		gigFail(dir, "check", "--git", "--file", "x", "a")
	})
})
