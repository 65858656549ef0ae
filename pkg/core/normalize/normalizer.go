package normalize

import (
	"math"
	"time"

	"equity_research/pkg/models"

	"github.com/phuslu/log"
)

// CanonicalPeriod is one reporting period after normalization: a value for
// every canonical field that resolved, explicit absence for every field that
// did not. A field is a finite number or absent, never zero-for-missing.
type CanonicalPeriod struct {
	EndDate time.Time
	values  map[Field]float64
	missing []Field
}

// FromValues builds a CanonicalPeriod directly from canonical values,
// bypassing alias resolution. Fields not present in values are marked absent.
func FromValues(end time.Time, values map[Field]float64) CanonicalPeriod {
	p := CanonicalPeriod{EndDate: end, values: make(map[Field]float64, len(values))}
	for f, v := range values {
		p.values[f] = v
	}
	for _, f := range AllFields() {
		if !p.Has(f) {
			p.missing = append(p.missing, f)
		}
	}
	return p
}

// Get returns the value for a canonical field and whether it resolved.
func (p CanonicalPeriod) Get(f Field) (float64, bool) {
	v, ok := p.values[f]
	return v, ok
}

// Has reports whether the field resolved for this period.
func (p CanonicalPeriod) Has(f Field) bool {
	_, ok := p.values[f]
	return ok
}

// Missing lists the canonical fields that could not be resolved, in the
// stable AllFields order.
func (p CanonicalPeriod) Missing() []Field {
	out := make([]Field, len(p.missing))
	copy(out, p.missing)
	return out
}

// Normalizer resolves raw provider periods onto the canonical vocabulary.
type Normalizer struct {
	table AliasTable
}

// New builds a Normalizer over the embedded alias table.
func New() (*Normalizer, error) {
	table, err := DefaultAliasTable()
	if err != nil {
		return nil, err
	}
	return &Normalizer{table: table}, nil
}

// NewWithTable builds a Normalizer over a caller-supplied table. Used by
// tests and by callers carrying provider-specific extensions.
func NewWithTable(table AliasTable) *Normalizer {
	return &Normalizer{table: table}
}

// Normalize maps one raw period onto the canonical field set. Fields that
// cannot be resolved are marked absent and logged; normalization never fails.
func (n *Normalizer) Normalize(raw models.RawPeriod) CanonicalPeriod {
	period := CanonicalPeriod{
		EndDate: raw.EndDate,
		values:  make(map[Field]float64),
	}

	// First pass: direct alias resolution.
	for _, field := range AllFields() {
		spec := n.table[field]
		items := raw.Items(models.Statement(spec.Statement))
		if v, ok := resolveAliases(items, spec.Aliases); ok {
			period.values[field] = v
		}
	}

	// Second pass: sum-of-subcomponents fallback. Components are canonical
	// fields resolved in the first pass; the sum resolves when at least one
	// component did.
	for _, field := range AllFields() {
		spec := n.table[field]
		if len(spec.SumOf) == 0 || period.Has(field) {
			continue
		}
		sum, any := 0.0, false
		for _, component := range spec.SumOf {
			if v, ok := period.values[Field(component)]; ok {
				sum += v
				any = true
			}
		}
		if any {
			period.values[field] = sum
		}
	}

	for _, field := range AllFields() {
		if !period.Has(field) {
			period.missing = append(period.missing, field)
		}
	}
	if len(period.missing) > 0 {
		log.Warn().
			Str("component", "normalizer").
			Str("period_end", raw.EndDate.Format("2006-01-02")).
			Int("resolved", len(period.values)).
			Strs("missing", fieldNames(period.missing)).
			Msg("canonical fields unresolved for period")
	}
	return period
}

// NormalizeSeries normalizes every period of a statement series, preserving
// period order. The series should be validated by the caller first.
func (n *Normalizer) NormalizeSeries(series models.StatementSeries) []CanonicalPeriod {
	periods := make([]CanonicalPeriod, 0, len(series.Periods))
	for _, raw := range series.Periods {
		periods = append(periods, n.Normalize(raw))
	}
	return periods
}

// resolveAliases tries each alias in order and takes the first present,
// non-nil, finite value.
func resolveAliases(items map[string]*float64, aliases []string) (float64, bool) {
	for _, alias := range aliases {
		v, ok := items[alias]
		if !ok || v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		return *v, true
	}
	return 0, false
}

func fieldNames(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}
