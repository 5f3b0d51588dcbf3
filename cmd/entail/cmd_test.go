package entail_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/mazesolver/cmd/entail"
	"github.com/katalvlaran/mazesolver/cmd/root"
	"github.com/katalvlaran/mazesolver/logic"
)

func execute(args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := root.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"entail"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

var _ = Describe("entail", func() {
	It("should infer rain and the Unimayor visit, and refute BBC", func() {
		out, err := execute()
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("rain: true\nbbc: false\nunimayor: true\n"))
	})

	It("should agree when checking by truth table", func() {
		out, err := execute("--method", "truth-table")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("rain: true\nbbc: false\nunimayor: true\n"))
	})

	It("should answer unknown for symbols the knowledge base does not constrain", func() {
		out, err := execute("--query", "snow", "--query", "bbc")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("snow: unknown\nbbc: false\n"))
	})

	It("should reject an unknown method and positional arguments", func() {
		_, err := execute("--method", "guess")
		Expect(err).To(HaveOccurred())

		_, err = execute("rain")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("KnowledgeBase", func() {
	It("should print as a conjunction of four sentences", func() {
		Expect(entail.KnowledgeBase().Formula()).To(Equal("(¬rain => bbc) ∧ (bbc ∨ unimayor) ∧ ¬(bbc ∧ unimayor) ∧ unimayor"))
	})

	It("should mention exactly its three symbols", func() {
		Expect(entail.KnowledgeBase().Symbols()).To(Equal([]string{"bbc", "rain", "unimayor"}))
	})

	It("should be satisfied by the intended model", func() {
		ok, err := entail.KnowledgeBase().Evaluate(logic.Model{"rain": true, "bbc": false, "unimayor": true})
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
	})
})
