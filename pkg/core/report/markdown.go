// Package report renders an analysis report as Markdown (and HTML for
// downstream consumers that want it). Rendering is mechanical: it states the
// engine outputs and generates no prose of its own.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"equity_research/pkg/core/analysis"
	"equity_research/pkg/core/ratios"
	"equity_research/pkg/core/valuation"

	"github.com/yuin/goldmark"
)

// Markdown renders the report as a Markdown document.
func Markdown(r *analysis.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Equity Analysis: %s\n\n", r.Entity)
	fmt.Fprintf(&b, "Run `%s`, generated %s. Current price %.2f.\n\n",
		r.RunID, r.GeneratedAt.Format("2006-01-02 15:04 MST"), r.CurrentPrice)

	b.WriteString("## Financial Ratios (latest period)\n\n")
	b.WriteString("| Ratio | Category | Value | Trend |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, def := range ratios.Catalog() {
		values := r.Ratios[def.Name]
		latest := "n/a"
		for i := len(values) - 1; i >= 0; i-- {
			if values[i].Defined {
				latest = fmt.Sprintf("%.3f", values[i].Num)
				break
			}
		}
		trend := string(r.Trends[def.Name].Direction)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", def.Name, def.Category, latest, trend)
	}
	b.WriteString("\n")

	if r.Beta != nil {
		b.WriteString("## Market Risk\n\n")
		fmt.Fprintf(&b, "- Beta: %.3f (%s), alpha %.5f, R² %.3f, correlation %.3f over %d observations\n",
			r.Beta.Beta, r.Beta.Interpretation, r.Beta.Alpha, r.Beta.RSquared, r.Beta.Correlation, r.Beta.Observations)
		fmt.Fprintf(&b, "- Annualized volatility: asset %.2f%%, benchmark %.2f%%\n",
			r.Beta.AssetVolatility*100, r.Beta.BenchmarkVolatility*100)
		if r.MarketPremium != nil {
			fmt.Fprintf(&b, "- Market risk premium: %.2f%% (benchmark return %.2f%%, Sharpe %.2f)\n",
				r.MarketPremium.Premium*100, r.MarketPremium.AnnualizedReturn*100, r.MarketPremium.SharpeRatio)
		}
		if r.CostOfEquity != nil {
			fmt.Fprintf(&b, "- Cost of equity (CAPM): %.2f%%\n", *r.CostOfEquity*100)
		}
		b.WriteString("\n")
	}

	if r.DDM != nil {
		b.WriteString("## Dividend Valuation\n\n")
		if r.DDM.Applicable {
			fmt.Fprintf(&b, "- Fair value: %.2f (D0 %.2f, D1 %.2f, growth %.2f%%)\n",
				*r.DDM.FairValue, r.DDM.D0, r.DDM.D1, r.DDM.GrowthRate*100)
			fmt.Fprintf(&b, "- Upside/downside vs %.2f: %.1f%%\n", r.DDM.CurrentPrice, *r.DDM.UpsideDownside*100)
			fmt.Fprintf(&b, "- Recommendation: **%s**\n", r.DDM.Recommendation)
		} else {
			fmt.Fprintf(&b, "- Not applicable: %s\n", r.DDM.Reason)
		}
		b.WriteString("\n")
	}

	writeDCF(&b, "## DCF Supplement\n\n", r.DCF)
	if r.WACC != nil {
		b.WriteString("## Cost of Capital\n\n")
		fmt.Fprintf(&b, "- WACC: %.2f%% (equity weight %.0f%%, after-tax cost of debt %.2f%%)\n\n",
			r.WACC.WACC*100, r.WACC.WeightEquity*100, r.WACC.AfterTaxCostOfDebt*100)
	}
	writeDCF(&b, "## DCF Supplement (firm, at WACC)\n\n", r.DCFFirm)

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

func writeDCF(b *strings.Builder, heading string, dcf *valuation.DCFResult) {
	if dcf == nil {
		return
	}
	b.WriteString(heading)
	if dcf.Applicable {
		fmt.Fprintf(b, "- Method: %s, growth %.2f%%, equity value %.0f\n",
			dcf.Method, dcf.GrowthRate*100, dcf.EquityValue)
		if dcf.FairValuePerShare != nil {
			fmt.Fprintf(b, "- Fair value per share: %.2f\n", *dcf.FairValuePerShare)
		}
		if dcf.Recommendation != "" {
			fmt.Fprintf(b, "- Recommendation: **%s**\n", dcf.Recommendation)
		}
	} else {
		fmt.Fprintf(b, "- Not applicable: %s\n", dcf.Reason)
	}
	b.WriteString("\n")
}

// HTML renders the report's Markdown through goldmark.
func HTML(r *analysis.Report) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
