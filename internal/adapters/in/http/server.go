package http

import (
	"errors"
	"net/http"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/order"
	"maintenance/internal/core/domain/services"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server exposes the maintenance order lifecycle over HTTP. It binds and
// validates the request payloads, translates them into commands and queries,
// and maps domain errors onto HTTP statuses.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	transitionOrderHandler     commands.TransitionOrderCommandHandler
	addOperationHandler        commands.AddOperationCommandHandler
	addComponentHandler        commands.AddComponentCommandHandler
	assignTechnicianHandler    commands.AssignTechnicianCommandHandler
	attachPurchaseOrderHandler commands.AttachPurchaseOrderCommandHandler
	postGoodsReceiptHandler    commands.PostGoodsReceiptCommandHandler
	postGoodsIssueHandler      commands.PostGoodsIssueCommandHandler
	postConfirmationHandler    commands.PostConfirmationCommandHandler
	reportMalfunctionHandler   commands.ReportMalfunctionCommandHandler
	settleOrderHandler         commands.SettleOrderCommandHandler

	// Query handlers
	readinessChecklistHandler queries.GetReadinessChecklistQueryHandler
	costSummaryHandler        queries.GetCostSummaryQueryHandler
	documentFlowHandler       queries.GetDocumentFlowQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	addOperationHandler commands.AddOperationCommandHandler,
	addComponentHandler commands.AddComponentCommandHandler,
	assignTechnicianHandler commands.AssignTechnicianCommandHandler,
	attachPurchaseOrderHandler commands.AttachPurchaseOrderCommandHandler,
	postGoodsReceiptHandler commands.PostGoodsReceiptCommandHandler,
	postGoodsIssueHandler commands.PostGoodsIssueCommandHandler,
	postConfirmationHandler commands.PostConfirmationCommandHandler,
	reportMalfunctionHandler commands.ReportMalfunctionCommandHandler,
	settleOrderHandler commands.SettleOrderCommandHandler,
	readinessChecklistHandler queries.GetReadinessChecklistQueryHandler,
	costSummaryHandler queries.GetCostSummaryQueryHandler,
	documentFlowHandler queries.GetDocumentFlowQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		transitionOrderHandler:     transitionOrderHandler,
		addOperationHandler:        addOperationHandler,
		addComponentHandler:        addComponentHandler,
		assignTechnicianHandler:    assignTechnicianHandler,
		attachPurchaseOrderHandler: attachPurchaseOrderHandler,
		postGoodsReceiptHandler:    postGoodsReceiptHandler,
		postGoodsIssueHandler:      postGoodsIssueHandler,
		postConfirmationHandler:    postConfirmationHandler,
		reportMalfunctionHandler:   reportMalfunctionHandler,
		settleOrderHandler:         settleOrderHandler,
		readinessChecklistHandler:  readinessChecklistHandler,
		costSummaryHandler:         costSummaryHandler,
		documentFlowHandler:        documentFlowHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderNumber/transitions", s.TransitionOrder)
	api.POST("/orders/:orderNumber/operations", s.AddOperation)
	api.POST("/orders/:orderNumber/components", s.AddComponent)
	api.PUT("/orders/:orderNumber/operations/:operationId/technician", s.AssignTechnician)
	api.POST("/orders/:orderNumber/purchase-orders", s.AttachPurchaseOrder)
	api.POST("/orders/:orderNumber/goods-receipts", s.PostGoodsReceipt)
	api.POST("/orders/:orderNumber/goods-issues", s.PostGoodsIssue)
	api.POST("/orders/:orderNumber/confirmations", s.PostConfirmation)
	api.POST("/orders/:orderNumber/malfunction-reports", s.ReportMalfunction)
	api.POST("/orders/:orderNumber/settlement", s.SettleOrder)
	api.GET("/orders/:orderNumber/readiness", s.GetReadinessChecklist)
	api.GET("/orders/:orderNumber/costs", s.GetCostSummary)
	api.GET("/orders/:orderNumber/document-flow", s.GetDocumentFlow)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// bindAndValidate decodes the JSON body and runs struct validation. A nil
// return means the request is well-formed; otherwise the error response has
// already been written.
func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(ctx, "Invalid request body: "+validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msg := ""
	for i, fieldErr := range validationErrors {
		if i > 0 {
			msg += ", "
		}
		msg += fieldErr.Field() + " is " + fieldErr.Tag()
	}
	return msg
}

// writeDomainError maps application and domain errors to HTTP statuses:
// missing aggregates are 404, optimistic-lock and transition conflicts are
// 409, unmet release prerequisites are 422, override rejections are 403, and
// collaborator outages are 503. Everything unrecognized stays a 500.
func writeDomainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var invalidValue *errs.ValueIsInvalidError
	var requiredValue *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.Is(err, ports.ErrOrderLocked):
		status = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, order.ErrPostingNotAllowed):
		status = http.StatusConflict
	case errors.Is(err, services.ErrPrerequisitesNotMet):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrGoodsIssueRequiredFirst):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrEmergencyIssueNotAllowed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSettlementNotAllowed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrEstimateNotAllowed):
		status = http.StatusConflict
	case errors.Is(err, ports.ErrUnauthorizedOverride):
		status = http.StatusForbidden
	case errors.Is(err, ports.ErrCollaboratorUnavailable):
		status = http.StatusServiceUnavailable
	case errors.As(err, &invalidValue),
		errors.As(err, &requiredValue),
		errors.As(err, &outOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
