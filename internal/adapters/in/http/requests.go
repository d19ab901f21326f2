package http

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateOrderRequest is the payload for registering a new maintenance order.
// Enum fields are accepted case-insensitively ("general", "Breakdown").
type CreateOrderRequest struct {
	OrderType          string `json:"orderType" validate:"required"`
	Priority           string `json:"priority" validate:"required"`
	EquipmentID        string `json:"equipmentId"`
	FunctionalLocation string `json:"functionalLocation"`
	NotificationID     string `json:"notificationId"`
	Description        string `json:"description"`
	CreatedBy          string `json:"createdBy" validate:"required"`
}

// TransitionOrderRequest asks for a lifecycle transition. OverrideReason is
// only meaningful for Released and requires supervisor authority.
type TransitionOrderRequest struct {
	Target         string `json:"target" validate:"required"`
	Actor          string `json:"actor" validate:"required"`
	OverrideReason string `json:"overrideReason"`
}

// AddOperationRequest adds a work step to a plannable order.
type AddOperationRequest struct {
	WorkCenter   string `json:"workCenter" validate:"required"`
	Description  string `json:"description" validate:"required"`
	PlannedHours string `json:"plannedHours" validate:"required"`
}

// AddComponentRequest reserves a material for the order. Monetary and
// quantity values travel as decimal strings to avoid float rounding.
type AddComponentRequest struct {
	MaterialRef   string `json:"materialRef" validate:"required"`
	Quantity      string `json:"quantity" validate:"required"`
	Unit          string `json:"unit" validate:"required"`
	EstimatedCost string `json:"estimatedCost" validate:"required"`
	NonStock      bool   `json:"nonStock"`
	Critical      bool   `json:"critical"`
	OperationID   string `json:"operationId"`
}

// AssignTechnicianRequest assigns a workforce member to one operation.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technicianId" validate:"required"`
}

// AttachPurchaseOrderRequest links an external procurement document.
type AttachPurchaseOrderRequest struct {
	PONumber   string `json:"poNumber" validate:"required"`
	POType     string `json:"poType" validate:"required"`
	TotalValue string `json:"totalValue" validate:"required"`
	Actor      string `json:"actor" validate:"required"`
}

// PostGoodsReceiptRequest records arrived materials against a purchase order.
type PostGoodsReceiptRequest struct {
	MaterialRef     string `json:"materialRef" validate:"required"`
	PONumber        string `json:"poNumber" validate:"required"`
	Quantity        string `json:"quantity" validate:"required"`
	UnitCost        string `json:"unitCost" validate:"required"`
	StorageLocation string `json:"storageLocation"`
	FinalDelivery   bool   `json:"finalDelivery"`
	Actor           string `json:"actor" validate:"required"`
}

// PostGoodsIssueRequest records materials drawn from stock to the order.
type PostGoodsIssueRequest struct {
	MaterialRef     string `json:"materialRef" validate:"required"`
	Quantity        string `json:"quantity" validate:"required"`
	UnitCost        string `json:"unitCost" validate:"required"`
	StorageLocation string `json:"storageLocation"`
	Emergency       bool   `json:"emergency"`
	Actor           string `json:"actor" validate:"required"`
}

// PostConfirmationRequest reports hours worked on one operation.
type PostConfirmationRequest struct {
	OperationID string `json:"operationId" validate:"required"`
	ActualHours string `json:"actualHours" validate:"required"`
	Detail      string `json:"detail"`
	External    bool   `json:"external"`
	Actor       string `json:"actor" validate:"required"`
}

// ReportMalfunctionRequest attaches a technical finding to a breakdown order.
type ReportMalfunctionRequest struct {
	CauseCode        string `json:"causeCode" validate:"required"`
	RootCause        string `json:"rootCause"`
	CorrectiveAction string `json:"correctiveAction"`
	Actor            string `json:"actor" validate:"required"`
}

// SettleOrderRequest closes the commercial side of a TECO order.
type SettleOrderRequest struct {
	Actor string `json:"actor" validate:"required"`
}
