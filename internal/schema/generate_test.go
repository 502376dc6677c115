package schema_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nisha-kaushik/nunit/internal/schema"
)

var _ = Describe("Generate", func() {
	It("reflects the expectations config at the top level", func() {
		s := schema.Generate()

		Expect(s.Version).To(Equal("https://json-schema.org/draft/2020-12/schema"))
		Expect(s.Title).To(Equal("test expectation criteria"))
		_, hasVersion := s.Properties.Get("version")
		Expect(hasVersion).To(BeTrue())
		_, hasExpectations := s.Properties.Get("expectations")
		Expect(hasExpectations).To(BeTrue())
	})
})

var _ = Describe("GenerateJSON", func() {
	It("produces valid JSON ending in a newline", func() {
		data, err := schema.GenerateJSON(true)
		Expect(err).ToNot(HaveOccurred())

		Expect(data[len(data)-1]).To(Equal(byte('\n')))

		var decoded map[string]any
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("properties"))
	})
})

var _ = Describe("Filename", func() {
	It("carries the config version", func() {
		Expect(schema.Filename()).To(Equal("expectations-v1.schema.json"))
	})
})

var _ = Describe("Directive", func() {
	It("points at the versioned schema as a TOML comment", func() {
		Expect(schema.Directive()).To(Equal("#:schema ./expectations-v1.schema.json"))
	})
})
