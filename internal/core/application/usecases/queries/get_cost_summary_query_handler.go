package queries

import (
	"context"

	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCostSummaryQueryHandler reads the cost columns of one order straight
// from the database, bypassing the aggregate. Dashboards poll this; the
// figures they see were all written inside committed transactions, so the
// read needs no lock.
type GetCostSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetCostSummaryQueryHandler creates a handler for cost summary queries.
func NewGetCostSummaryQueryHandler(db *gorm.DB) GetCostSummaryQueryHandler {
	return GetCostSummaryQueryHandler{db: db}
}

// Handle executes the cost summary query.
func (h GetCostSummaryQueryHandler) Handle(
	ctx context.Context, query GetCostSummaryQuery,
) (GetCostSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCostSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			estimate_computed,
			estimated_material,
			estimated_labor,
			estimated_external,
			actual_material,
			actual_labor,
			actual_external
		FROM orders
		WHERE order_number = ?
	`, query.OrderNumber().String()).Rows()
	if err != nil {
		return GetCostSummaryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCostSummaryQueryResponse{}, err
		}
		return GetCostSummaryQueryResponse{}, errs.NewObjectNotFoundError(
			"order", query.OrderNumber().String())
	}

	var (
		status            int
		estimateComputed  bool
		estimatedMaterial decimal.Decimal
		estimatedLabor    decimal.Decimal
		estimatedExternal decimal.Decimal
		actualMaterial    decimal.Decimal
		actualLabor       decimal.Decimal
		actualExternal    decimal.Decimal
	)

	err = rows.Scan(
		&status,
		&estimateComputed,
		&estimatedMaterial,
		&estimatedLabor,
		&estimatedExternal,
		&actualMaterial,
		&actualLabor,
		&actualExternal,
	)
	if err != nil {
		return GetCostSummaryQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetCostSummaryQueryResponse{}, err
	}

	estimatedTotal := estimatedMaterial.Add(estimatedLabor).Add(estimatedExternal)
	actualTotal := actualMaterial.Add(actualLabor).Add(actualExternal)

	return GetCostSummaryQueryResponse{
		OrderNumber:       query.OrderNumber(),
		Status:            orderStatus,
		EstimateComputed:  estimateComputed,
		EstimatedMaterial: estimatedMaterial,
		EstimatedLabor:    estimatedLabor,
		EstimatedExternal: estimatedExternal,
		EstimatedTotal:    estimatedTotal,
		ActualMaterial:    actualMaterial,
		ActualLabor:       actualLabor,
		ActualExternal:    actualExternal,
		ActualTotal:       actualTotal,
		Variance:          actualTotal.Sub(estimatedTotal),
	}, nil
}
