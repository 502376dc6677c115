package expect_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nisha-kaushik/nunit/internal/expect"
	"github.com/nisha-kaushik/nunit/internal/fixture"
	"github.com/nisha-kaushik/nunit/internal/result"
	"github.com/nisha-kaushik/nunit/pkg/config"
	"github.com/nisha-kaushik/nunit/pkg/throw"
)

var _ = Describe("FromConfig", func() {
	It("builds a working verifier from a declarative entry", func() {
		verifier, err := expect.FromConfig(
			"TestDivide",
			&config.ExpectationConfig{
				Type:    "System.DivideByZeroException",
				Message: strPtr("divide"),
				Match:   config.MatchContains,
			},
			nil,
		)
		Expect(err).ToNot(HaveOccurred())

		recorder := result.NewRecorder()
		verifier.ProcessException(
			throw.New("System.DivideByZeroException", "attempted to divide by zero"),
			recorder,
		)

		Expect(recorder.State()).To(Equal(throw.StateSuccess))
	})

	It("rejects a nil entry, naming the test", func() {
		_, err := expect.FromConfig("TestDivide", nil, nil)

		Expect(err).To(MatchError(expect.ErrNilExpectation))
		Expect(err.Error()).To(ContainSubstring("TestDivide"))
	})

	It("names the test when the handler cannot be resolved", func() {
		_, err := expect.FromConfig(
			"TestDivide",
			&config.ExpectationConfig{Handler: "MissingHandler"},
			fixture.Describe(&plainFixture{}),
		)

		Expect(err).To(MatchError(expect.ErrHandlerNotFound))
		Expect(err.Error()).To(ContainSubstring("TestDivide"))
	})

	It("wires the named handler through", func() {
		f := &handlerFixture{}
		verifier, err := expect.FromConfig(
			"TestDivide",
			&config.ExpectationConfig{Handler: "CheckArgument"},
			fixture.Describe(f),
		)
		Expect(err).ToNot(HaveOccurred())

		verifier.ProcessException(
			throw.New("System.ArgumentException", "bad value"),
			result.NewRecorder(),
		)

		Expect(f.handled).To(HaveLen(1))
	})
})
