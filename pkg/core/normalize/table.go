package normalize

import (
	_ "embed"
	"fmt"

	"equity_research/pkg/models"

	hjson "github.com/hjson/hjson-go/v4"
)

//go:embed aliases.hjson
var aliasesHJSON []byte

// aliasSpec is one canonical field's resolution rule.
type aliasSpec struct {
	Statement string   `json:"statement"`
	Aliases   []string `json:"aliases"`
	SumOf     []string `json:"sum_of"`
}

// AliasTable maps every canonical field to its ordered provider aliases.
type AliasTable map[Field]aliasSpec

// DefaultAliasTable parses the embedded alias document. The table is built
// once per Normalizer; the embedded document is the single source of truth
// for provider label variations.
func DefaultAliasTable() (AliasTable, error) {
	raw := make(map[string]aliasSpec)
	if err := hjson.Unmarshal(aliasesHJSON, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse alias table: %w", err)
	}

	table := make(AliasTable, len(raw))
	for name, spec := range raw {
		switch models.Statement(spec.Statement) {
		case models.IncomeStatement, models.BalanceSheet, models.CashFlowStatement:
		default:
			return nil, fmt.Errorf("alias table entry %q: unknown statement %q", name, spec.Statement)
		}
		if len(spec.Aliases) == 0 {
			return nil, fmt.Errorf("alias table entry %q: no aliases", name)
		}
		table[Field(name)] = spec
	}

	for _, f := range AllFields() {
		if _, ok := table[f]; !ok {
			return nil, fmt.Errorf("alias table is missing canonical field %q", f)
		}
	}
	return table, nil
}
