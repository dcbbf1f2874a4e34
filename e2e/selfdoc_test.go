package e2e_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("self-documentation", func() {
	var dir string

	BeforeEach(func() {
		dir = tempDir()
	})

	Describe("version", func() {
		It("prints the build version", func() {
			Expect(gigOK(dir, "version")).To(Equal("gig 1.2.3"))
		})

		It("supports -V and --version", func() {
			Expect(gigOK(dir, "-V")).To(Equal("gig 1.2.3"))
			Expect(gigOK(dir, "--version")).To(Equal("gig 1.2.3"))
		})
	})

	Describe("explain", func() {
		It("describes naming and merging", func() {
			out := gigOK(dir, "explain")
			Expect(out).To(ContainSubstring("TEMPLATE NAMES"))
			Expect(out).To(ContainSubstring("global-macos"))
			Expect(out).To(ContainSubstring("CONFIG FORMAT"))
		})
	})

	Describe("schema", func() {
		It("outputs a JSON Schema for the config file", func() {
			out := gigStdout(dir, "schema")

			var schema map[string]any
			Expect(json.Unmarshal([]byte(out), &schema)).To(Succeed())
			Expect(schema).To(HaveKeyWithValue("type", "object"))
			Expect(schema["properties"]).To(HaveKey("templates"))
			Expect(schema["properties"]).To(HaveKey("output"))
			Expect(schema["properties"]).To(HaveKey("append"))
			Expect(schema["properties"]).To(HaveKey("extra"))
		})
	})

	Describe("validate", func() {
		It("accepts a valid config", func() {
			writeConfig(dir, "output: .gitignore\ntemplates: [go, global-macos]\nextra: [/dist/]\n")
			Expect(gigOK(dir, "validate")).To(Equal("valid"))
		})

		It("reports every problem", func() {
			writeConfig(dir, "output: ''\ntemplates: [go, GO, 'a,b', nope]\n")
			out := gigFail(dir, "validate")

			Expect(out).To(ContainSubstring("output: must not be empty"))
			Expect(out).To(ContainSubstring(`templates[1]: duplicate template "GO"`))
			Expect(out).To(ContainSubstring("templates[2]"))
			Expect(out).To(ContainSubstring(`templates[3]: no template found for "nope"`))
		})

		It("fails without a config file", func() {
			out := gigFail(dir, "validate")
			Expect(out).To(ContainSubstring("no config file found"))
		})
	})
})
