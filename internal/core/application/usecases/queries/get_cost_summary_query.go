package queries

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCostSummaryQueryIsNotConstructed = errors.New(
		"GetCostSummaryQuery must be created via NewGetCostSummaryQuery constructor",
	)
)

// GetCostSummaryQuery retrieves the cost picture of one order: the frozen
// estimate next to the running actuals.
type GetCostSummaryQuery struct {
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetCostSummaryQuery creates a query for an order's cost summary.
func NewGetCostSummaryQuery(orderNumber kernel.OrderNumber) (GetCostSummaryQuery, error) {
	if err := orderNumber.Validate(); err != nil {
		return GetCostSummaryQuery{}, err
	}

	return GetCostSummaryQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCostSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCostSummaryQueryIsNotConstructed)
}

// OrderNumber returns the order whose costs are requested.
func (q GetCostSummaryQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

// GetCostSummaryQueryResponse is the cost summary read model. Variance is
// total actual minus total estimate; it is only meaningful once the estimate
// has been computed.
type GetCostSummaryQueryResponse struct {
	OrderNumber       kernel.OrderNumber
	Status            order.Status
	EstimateComputed  bool
	EstimatedMaterial decimal.Decimal
	EstimatedLabor    decimal.Decimal
	EstimatedExternal decimal.Decimal
	EstimatedTotal    decimal.Decimal
	ActualMaterial    decimal.Decimal
	ActualLabor       decimal.Decimal
	ActualExternal    decimal.Decimal
	ActualTotal       decimal.Decimal
	Variance          decimal.Decimal
}
