package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCostSummaryIsNotConstructed is returned when using an improperly initialized CostSummary.
var ErrCostSummaryIsNotConstructed = errors.New("CostSummary must be created via NewCostSummary constructor")

// CostElement identifies a cost bucket of the summary.
type CostElement int

const (
	// ElementUnknown represents an invalid or undefined cost element.
	ElementUnknown CostElement = iota
	// ElementMaterial accumulates material cost (goods issues).
	ElementMaterial
	// ElementLabor accumulates labor cost (confirmations).
	ElementLabor
	// ElementExternal accumulates external service cost.
	ElementExternal
)

// CostElements lists the valid elements in reporting order.
func CostElements() []CostElement {
	return []CostElement{ElementMaterial, ElementLabor, ElementExternal}
}

// Validate checks if the CostElement value is valid.
func (e CostElement) Validate() error {
	if e < ElementMaterial || e > ElementExternal {
		return errs.NewValueIsInvalidErrorWithCause("cost element", fmt.Errorf("%d is not a valid cost element", e))
	}
	return nil
}

// String returns the canonical lowercase name of the cost element.
func (e CostElement) String() string {
	switch e {
	case ElementMaterial:
		return "material"
	case ElementLabor:
		return "labor"
	case ElementExternal:
		return "external"
	default:
		return "unknown"
	}
}

// ParseCostElement converts an external string to a CostElement,
// case-normalizing at the boundary.
func ParseCostElement(s string) (CostElement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "material":
		return ElementMaterial, nil
	case "labor":
		return ElementLabor, nil
	case "external":
		return ElementExternal, nil
	default:
		return ElementUnknown, errs.NewValueIsInvalidErrorWithCause(
			"cost element", fmt.Errorf("%q is not a known cost element", s))
	}
}

// CostSummary is the per-order cost aggregate: estimated and actual cost by
// element, with variance = actual − estimated maintained per element and in
// total. Actuals are accumulated incrementally as transactional documents
// post; the summary never rescans history in the hot path. Every applied
// document id is remembered, which makes accumulation idempotent on retry.
type CostSummary struct {
	// estimated holds the estimate per cost element
	estimated map[CostElement]decimal.Decimal
	// actual holds the accumulated actuals per cost element
	actual map[CostElement]decimal.Decimal
	// processedDocs guards against double-counting a document
	processedDocs map[string]struct{}
	// estimatedOnce reports whether an estimate was ever computed
	estimatedOnce bool
	// guard ensures the summary was properly constructed
	guard guard.ConstructorGuard
}

// NewCostSummary creates an empty cost summary with all elements at zero.
func NewCostSummary() *CostSummary {
	return &CostSummary{
		estimated:     zeroElements(),
		actual:        zeroElements(),
		processedDocs: make(map[string]struct{}),
		guard:         guard.NewConstructorGuard(),
	}
}

// RestoreCostSummary reconstructs a cost summary from persistence.
func RestoreCostSummary(
	estimated, actual map[CostElement]decimal.Decimal, processedDocs []string, estimatedOnce bool,
) (*CostSummary, error) {
	s := NewCostSummary()
	for _, e := range CostElements() {
		if v, ok := estimated[e]; ok {
			s.estimated[e] = v
		}
		if v, ok := actual[e]; ok {
			s.actual[e] = v
		}
	}
	for _, id := range processedDocs {
		s.processedDocs[id] = struct{}{}
	}
	s.estimatedOnce = estimatedOnce
	return s, nil
}

func zeroElements() map[CostElement]decimal.Decimal {
	m := make(map[CostElement]decimal.Decimal, len(CostElements()))
	for _, e := range CostElements() {
		m[e] = decimal.Zero
	}
	return m
}

// Validate ensures the CostSummary was created through a constructor.
func (s *CostSummary) Validate() error {
	if s == nil {
		return ErrCostSummaryIsNotConstructed
	}
	return s.guard.Validate(ErrCostSummaryIsNotConstructed)
}

// ApplyEstimate replaces the estimate for all elements and marks the
// summary as computed.
func (s *CostSummary) ApplyEstimate(material, labor, external decimal.Decimal) error {
	if material.IsNegative() || labor.IsNegative() || external.IsNegative() {
		return errs.NewValueIsInvalidError("estimated cost")
	}
	s.estimated[ElementMaterial] = material
	s.estimated[ElementLabor] = labor
	s.estimated[ElementExternal] = external
	s.estimatedOnce = true
	return nil
}

// AddActual accumulates an actual-cost amount for one element. The
// documentID identifies the originating transactional document; reprocessing
// the same id is a no-op and returns applied=false, which guards against
// double-counting on retry.
func (s *CostSummary) AddActual(element CostElement, amount decimal.Decimal, documentID string) (bool, error) {
	if err := element.Validate(); err != nil {
		return false, err
	}
	if documentID == "" {
		return false, errs.NewValueIsRequiredError("document id")
	}
	if _, done := s.processedDocs[documentID]; done {
		return false, nil
	}

	s.actual[element] = s.actual[element].Add(amount)
	s.processedDocs[documentID] = struct{}{}
	return true, nil
}

// HasProcessed reports whether a document id has already been accumulated.
func (s *CostSummary) HasProcessed(documentID string) bool {
	_, done := s.processedDocs[documentID]
	return done
}

// IsComputed reports whether an estimate was ever computed. Settlement
// requires a computed summary.
func (s *CostSummary) IsComputed() bool {
	return s.estimatedOnce
}

// Estimated returns the estimate for one element.
func (s *CostSummary) Estimated(element CostElement) decimal.Decimal {
	return s.estimated[element]
}

// Actual returns the accumulated actual for one element.
func (s *CostSummary) Actual(element CostElement) decimal.Decimal {
	return s.actual[element]
}

// Variance returns actual − estimated for one element.
func (s *CostSummary) Variance(element CostElement) decimal.Decimal {
	return s.actual[element].Sub(s.estimated[element])
}

// TotalEstimated returns the estimate summed over all elements.
func (s *CostSummary) TotalEstimated() decimal.Decimal {
	return s.sum(s.estimated)
}

// TotalActual returns the actuals summed over all elements.
func (s *CostSummary) TotalActual() decimal.Decimal {
	return s.sum(s.actual)
}

// TotalVariance returns actual − estimated over all elements.
func (s *CostSummary) TotalVariance() decimal.Decimal {
	return s.TotalActual().Sub(s.TotalEstimated())
}

// ProcessedDocumentIDs returns the applied document ids in stable order,
// for persistence.
func (s *CostSummary) ProcessedDocumentIDs() []string {
	ids := make([]string, 0, len(s.processedDocs))
	for id := range s.processedDocs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *CostSummary) sum(m map[CostElement]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, e := range CostElements() {
		total = total.Add(m[e])
	}
	return total
}
