package entail

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/internal/logging"
	"github.com/katalvlaran/mazesolver/logic"
)

// Symbols of the bundled knowledge base.
const (
	Rain     = logic.Symbol("rain")
	BBC      = logic.Symbol("bbc")
	Unimayor = logic.Symbol("unimayor")
)

// KnowledgeBase returns the student-visit puzzle: if it does not rain the
// students visit BBC; they visit BBC or Unimayor but not both; they visited
// Unimayor today.
func KnowledgeBase() logic.Sentence {
	return logic.And{
		logic.Implication{Antecedent: logic.Not{Operand: Rain}, Consequent: BBC},
		logic.Or{BBC, Unimayor},
		logic.Not{Operand: logic.And{BBC, Unimayor}},
		Unimayor,
	}
}

func NewEntailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entail",
		Short: "Queries the bundled propositional knowledge base",
		Long: `Queries the bundled student-visit knowledge base:

  (¬rain => bbc) ∧ (bbc ∨ unimayor) ∧ ¬(bbc ∧ unimayor) ∧ unimayor

and prints, per query symbol, "true" when the knowledge base entails it,
"false" when it entails its negation, and "unknown" otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			queries, _ := cmd.Flags().GetStringSlice("query")
			method, _ := cmd.Flags().GetString("method")
			return entail(cmd, queries, method)
		},
	}

	cmd.Flags().StringSlice("query", []string{string(Rain), string(BBC), string(Unimayor)}, "symbols to query")
	cmd.Flags().String("method", "sat", "decision method: sat or truth-table")

	return cmd
}

func entail(cmd *cobra.Command, queries []string, method string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, format := cfg.LogLevel, cfg.LogFormat
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		format, _ = cmd.Flags().GetString("log-format")
	}
	log, err := logging.New(level, format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var decide logic.Decider
	switch strings.ToLower(method) {
	case "sat":
		decide = logic.Entails
	case "truth-table", "model":
		decide = logic.ModelCheck
	default:
		return fmt.Errorf("unknown method %q (choose sat or truth-table)", method)
	}

	kb := KnowledgeBase()
	log.WithField("kb", kb.Formula()).Debug("knowledge base")

	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		v, err := logic.InferBy(decide, kb, logic.Symbol(q))
		if err != nil {
			return fmt.Errorf("query %q: %w", q, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", q, v)
	}
	return nil
}
