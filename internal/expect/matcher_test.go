package expect_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nisha-kaushik/nunit/internal/expect"
	"github.com/nisha-kaushik/nunit/pkg/config"
)

var _ = Describe("MessageMatcher", func() {
	Describe("ExactMatcher", func() {
		matcher := expect.NewExactMatcher("bad value")

		It("accepts an identical message", func() {
			Expect(matcher.Match("bad value")).To(BeTrue())
		})

		It("rejects a superstring", func() {
			Expect(matcher.Match("value was bad value indeed")).To(BeFalse())
		})

		It("rejects a substring", func() {
			Expect(matcher.Match("bad")).To(BeFalse())
		})

		It("names its strategy", func() {
			Expect(matcher.Expectation()).To(Equal("Expected: "))
		})
	})

	Describe("ContainsMatcher", func() {
		matcher := expect.NewContainsMatcher("bad value")

		It("accepts any superstring", func() {
			Expect(matcher.Match("value was bad value indeed")).To(BeTrue())
		})

		It("accepts an identical message", func() {
			Expect(matcher.Match("bad value")).To(BeTrue())
		})

		It("rejects a message missing the text", func() {
			Expect(matcher.Match("totally different")).To(BeFalse())
		})

		It("names its strategy", func() {
			Expect(matcher.Expectation()).To(Equal("Expected message containing: "))
		})
	})

	Describe("RegexpMatcher", func() {
		It("matches anywhere in the message, unanchored", func() {
			matcher, err := expect.NewRegexpMatcher(`bad \w+`)
			Expect(err).ToNot(HaveOccurred())

			Expect(matcher.Match("value was bad value indeed")).To(BeTrue())
			Expect(matcher.Match("bad value")).To(BeTrue())
			Expect(matcher.Match("totally different")).To(BeFalse())
		})

		It("rejects an invalid pattern at construction", func() {
			_, err := expect.NewRegexpMatcher("(unclosed")

			Expect(err).To(HaveOccurred())
		})

		It("names its strategy", func() {
			matcher, err := expect.NewRegexpMatcher("bad")
			Expect(err).ToNot(HaveOccurred())

			Expect(matcher.Expectation()).To(Equal("Expected message matching: "))
		})
	})

	Describe("StartsWithMatcher", func() {
		matcher := expect.NewStartsWithMatcher("bad value")

		It("accepts a message beginning with the text", func() {
			Expect(matcher.Match("bad value was given")).To(BeTrue())
		})

		It("rejects a message with the text mid-string", func() {
			Expect(matcher.Match("value was bad value indeed")).To(BeFalse())
		})

		It("names its strategy", func() {
			Expect(matcher.Expectation()).To(Equal("Expected message starting: "))
		})
	})

	Describe("MatcherFor", func() {
		It("builds the matcher for each strategy", func() {
			exact, err := expect.MatcherFor(config.MatchExact, "x")
			Expect(err).ToNot(HaveOccurred())
			Expect(exact).To(BeAssignableToTypeOf(&expect.ExactMatcher{}))

			contains, err := expect.MatcherFor(config.MatchContains, "x")
			Expect(err).ToNot(HaveOccurred())
			Expect(contains).To(BeAssignableToTypeOf(&expect.ContainsMatcher{}))

			regex, err := expect.MatcherFor(config.MatchRegexp, "x")
			Expect(err).ToNot(HaveOccurred())
			Expect(regex).To(BeAssignableToTypeOf(&expect.RegexpMatcher{}))

			starts, err := expect.MatcherFor(config.MatchStartsWith, "x")
			Expect(err).ToNot(HaveOccurred())
			Expect(starts).To(BeAssignableToTypeOf(&expect.StartsWithMatcher{}))
		})

		It("propagates regexp compilation errors", func() {
			_, err := expect.MatcherFor(config.MatchRegexp, "(unclosed")

			Expect(err).To(HaveOccurred())
		})
	})
})
