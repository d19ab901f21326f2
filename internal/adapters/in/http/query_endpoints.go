package http

import (
	"net/http"
	"time"

	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/docflow"
	"maintenance/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ChecklistItem is one release prerequisite and its current state.
type ChecklistItem struct {
	Label     string `json:"label"`
	Satisfied bool   `json:"satisfied"`
	Detail    string `json:"detail,omitempty"`
}

// ReadinessChecklistResponse reports whether a transition would pass and
// which prerequisites currently block it.
type ReadinessChecklistResponse struct {
	OrderNumber     string          `json:"orderNumber"`
	CurrentStatus   string          `json:"currentStatus"`
	Target          string          `json:"target"`
	TransitionValid bool            `json:"transitionValid"`
	Allowed         bool            `json:"allowed"`
	BlockingReasons []string        `json:"blockingReasons,omitempty"`
	Checklist       []ChecklistItem `json:"checklist"`
}

// GetReadinessChecklist handles GET /api/v1/orders/:orderNumber/readiness.
// The target status defaults to Released, the only gated transition.
func (s *Server) GetReadinessChecklist(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	target := order.Released
	if raw := ctx.QueryParam("target"); raw != "" {
		target, err = order.ParseStatus(raw)
		if err != nil {
			return badRequest(ctx, "Invalid target status: "+raw)
		}
	}

	query, err := queries.NewGetReadinessChecklistQuery(orderNumber, target)
	if err != nil {
		return badRequest(ctx, "Invalid readiness query: "+err.Error())
	}

	result, err := s.readinessChecklistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	checklist := make([]ChecklistItem, len(result.Checklist))
	for i, item := range result.Checklist {
		checklist[i] = ChecklistItem{
			Label:     item.Label,
			Satisfied: item.Satisfied,
			Detail:    item.Detail,
		}
	}

	return ctx.JSON(http.StatusOK, ReadinessChecklistResponse{
		OrderNumber:     result.OrderNumber.String(),
		CurrentStatus:   result.CurrentStatus.String(),
		Target:          result.Target.String(),
		TransitionValid: result.TransitionValid,
		Allowed:         result.Allowed,
		BlockingReasons: result.BlockingReasons,
		Checklist:       checklist,
	})
}

// CostSummaryResponse reports the estimate/actual cost split of an order.
// Monetary values travel as decimal strings.
type CostSummaryResponse struct {
	OrderNumber       string `json:"orderNumber"`
	Status            string `json:"status"`
	EstimateComputed  bool   `json:"estimateComputed"`
	EstimatedMaterial string `json:"estimatedMaterial"`
	EstimatedLabor    string `json:"estimatedLabor"`
	EstimatedExternal string `json:"estimatedExternal"`
	EstimatedTotal    string `json:"estimatedTotal"`
	ActualMaterial    string `json:"actualMaterial"`
	ActualLabor       string `json:"actualLabor"`
	ActualExternal    string `json:"actualExternal"`
	ActualTotal       string `json:"actualTotal"`
	Variance          string `json:"variance"`
}

// GetCostSummary handles GET /api/v1/orders/:orderNumber/costs.
func (s *Server) GetCostSummary(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetCostSummaryQuery(orderNumber)
	if err != nil {
		return badRequest(ctx, "Invalid cost query: "+err.Error())
	}

	result, err := s.costSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CostSummaryResponse{
		OrderNumber:       result.OrderNumber.String(),
		Status:            result.Status.String(),
		EstimateComputed:  result.EstimateComputed,
		EstimatedMaterial: result.EstimatedMaterial.String(),
		EstimatedLabor:    result.EstimatedLabor.String(),
		EstimatedExternal: result.EstimatedExternal.String(),
		EstimatedTotal:    result.EstimatedTotal.String(),
		ActualMaterial:    result.ActualMaterial.String(),
		ActualLabor:       result.ActualLabor.String(),
		ActualExternal:    result.ActualExternal.String(),
		ActualTotal:       result.ActualTotal.String(),
		Variance:          result.Variance.String(),
	})
}

// DocumentFlowEntry is one ledger entry of the audit trail.
type DocumentFlowEntry struct {
	ID             string    `json:"id"`
	OrderNumber    string    `json:"orderNumber"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	OccurredAt     time.Time `json:"occurredAt"`
	Actor          string    `json:"actor"`
	Detail         string    `json:"detail,omitempty"`
}

// GetDocumentFlow handles GET /api/v1/orders/:orderNumber/document-flow.
// An optional ?type= filter narrows the trail to one document type.
func (s *Server) GetDocumentFlow(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var typeFilter *docflow.DocumentType
	if raw := ctx.QueryParam("type"); raw != "" {
		documentType, parseErr := docflow.ParseDocumentType(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid document type: "+raw)
		}
		typeFilter = &documentType
	}

	query, err := queries.NewGetDocumentFlowQuery(orderNumber, typeFilter)
	if err != nil {
		return badRequest(ctx, "Invalid document flow query: "+err.Error())
	}

	entries, err := s.documentFlowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]DocumentFlowEntry, len(entries))
	for i, entry := range entries {
		response[i] = DocumentFlowEntry{
			ID:             entry.ID.String(),
			OrderNumber:    entry.OrderNumber.String(),
			DocumentType:   string(entry.DocumentType),
			DocumentNumber: entry.DocumentNumber,
			OccurredAt:     entry.OccurredAt,
			Actor:          entry.Actor,
			Detail:         entry.Detail,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
