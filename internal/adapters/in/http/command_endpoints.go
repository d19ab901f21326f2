package http

import (
	"net/http"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func orderNumberParam(ctx echo.Context) (kernel.OrderNumber, error) {
	return kernel.OrderNumberFromString(ctx.Param("orderNumber"))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	orderType, err := order.ParseType(req.OrderType)
	if err != nil {
		return badRequest(ctx, "Invalid order type: "+req.OrderType)
	}
	priority, err := order.ParsePriority(req.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+req.Priority)
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderType, priority,
		req.EquipmentID, req.FunctionalLocation, req.NotificationID,
		req.Description, req.CreatedBy,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderNumber, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"orderNumber": orderNumber.String(),
	})
}

// TransitionOrder handles POST /api/v1/orders/:orderNumber/transitions.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req TransitionOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	target, err := order.ParseStatus(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+req.Target)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderNumber, target, req.Actor, req.OverrideReason)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOperation handles POST /api/v1/orders/:orderNumber/operations.
func (s *Server) AddOperation(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req AddOperationRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	plannedHours, err := decimal.NewFromString(req.PlannedHours)
	if err != nil {
		return badRequest(ctx, "Invalid planned hours: "+req.PlannedHours)
	}

	cmd, err := commands.NewAddOperationCommand(orderNumber, req.WorkCenter, req.Description, plannedHours)
	if err != nil {
		return badRequest(ctx, "Invalid operation data: "+err.Error())
	}

	operationID, err := s.addOperationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"operationId": operationID.String(),
	})
}

// AddComponent handles POST /api/v1/orders/:orderNumber/components.
func (s *Server) AddComponent(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req AddComponentRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+req.Quantity)
	}
	estimatedCost, err := decimal.NewFromString(req.EstimatedCost)
	if err != nil {
		return badRequest(ctx, "Invalid estimated cost: "+req.EstimatedCost)
	}

	var operationID *kernel.UUID
	if req.OperationID != "" {
		id, parseErr := kernel.UUIDFromString(req.OperationID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid operation id: "+req.OperationID)
		}
		operationID = &id
	}

	cmd, err := commands.NewAddComponentCommand(
		orderNumber, req.MaterialRef, quantity, req.Unit, estimatedCost,
		req.NonStock, req.Critical, operationID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid component data: "+err.Error())
	}

	componentID, err := s.addComponentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"componentId": componentID.String(),
	})
}

// AssignTechnician handles
// PUT /api/v1/orders/:orderNumber/operations/:operationId/technician.
func (s *Server) AssignTechnician(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}
	operationID, err := kernel.UUIDFromString(ctx.Param("operationId"))
	if err != nil {
		return badRequest(ctx, "Invalid operation id")
	}

	var req AssignTechnicianRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignTechnicianCommand(orderNumber, operationID, req.TechnicianID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignTechnicianHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachPurchaseOrder handles POST /api/v1/orders/:orderNumber/purchase-orders.
func (s *Server) AttachPurchaseOrder(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req AttachPurchaseOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	poType, err := order.ParsePOType(req.POType)
	if err != nil {
		return badRequest(ctx, "Invalid purchase order type: "+req.POType)
	}
	totalValue, err := decimal.NewFromString(req.TotalValue)
	if err != nil {
		return badRequest(ctx, "Invalid total value: "+req.TotalValue)
	}

	cmd, err := commands.NewAttachPurchaseOrderCommand(orderNumber, req.PONumber, poType, totalValue, req.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid purchase order data: "+err.Error())
	}

	if err = s.attachPurchaseOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// PostGoodsReceipt handles POST /api/v1/orders/:orderNumber/goods-receipts.
func (s *Server) PostGoodsReceipt(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req PostGoodsReceiptRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+req.Quantity)
	}
	unitCost, err := decimal.NewFromString(req.UnitCost)
	if err != nil {
		return badRequest(ctx, "Invalid unit cost: "+req.UnitCost)
	}

	cmd, err := commands.NewPostGoodsReceiptCommand(
		orderNumber, req.MaterialRef, req.PONumber, quantity, unitCost,
		req.StorageLocation, req.FinalDelivery, req.Actor,
	)
	if err != nil {
		return badRequest(ctx, "Invalid goods receipt data: "+err.Error())
	}

	if err = s.postGoodsReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// PostGoodsIssue handles POST /api/v1/orders/:orderNumber/goods-issues.
func (s *Server) PostGoodsIssue(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req PostGoodsIssueRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+req.Quantity)
	}
	unitCost, err := decimal.NewFromString(req.UnitCost)
	if err != nil {
		return badRequest(ctx, "Invalid unit cost: "+req.UnitCost)
	}

	cmd, err := commands.NewPostGoodsIssueCommand(
		orderNumber, req.MaterialRef, quantity, unitCost,
		req.StorageLocation, req.Emergency, req.Actor,
	)
	if err != nil {
		return badRequest(ctx, "Invalid goods issue data: "+err.Error())
	}

	if err = s.postGoodsIssueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// PostConfirmation handles POST /api/v1/orders/:orderNumber/confirmations.
func (s *Server) PostConfirmation(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req PostConfirmationRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	operationID, err := kernel.UUIDFromString(req.OperationID)
	if err != nil {
		return badRequest(ctx, "Invalid operation id: "+req.OperationID)
	}
	actualHours, err := decimal.NewFromString(req.ActualHours)
	if err != nil {
		return badRequest(ctx, "Invalid actual hours: "+req.ActualHours)
	}

	cmd, err := commands.NewPostConfirmationCommand(
		orderNumber, operationID, actualHours, req.Detail, req.External, req.Actor,
	)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.postConfirmationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReportMalfunction handles POST /api/v1/orders/:orderNumber/malfunction-reports.
func (s *Server) ReportMalfunction(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req ReportMalfunctionRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReportMalfunctionCommand(
		orderNumber, req.CauseCode, req.RootCause, req.CorrectiveAction, req.Actor,
	)
	if err != nil {
		return badRequest(ctx, "Invalid malfunction report data: "+err.Error())
	}

	if err = s.reportMalfunctionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SettleOrder handles POST /api/v1/orders/:orderNumber/settlement.
func (s *Server) SettleOrder(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var req SettleOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSettleOrderCommand(orderNumber, req.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid settlement data: "+err.Error())
	}

	if err = s.settleOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
