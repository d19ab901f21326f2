// Package orderrepo provides data transfer objects and mapping functions for
// maintenance-order persistence. The whole aggregate — operations,
// components, purchase orders, goods movements, confirmations, malfunction
// reports, and the cost summary — is stored and loaded as a unit.
package orderrepo

import (
	"encoding/json"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The business identifier is the primary key; the version column backs the
// compare-and-swap update. Cost summary columns are flattened into the order
// row so a cost read never joins.
type OrderDTO struct {
	OrderNumber        string     `gorm:"type:varchar(16);primaryKey"`
	OrderType          int        `gorm:"type:int;not null"`
	Status             int        `gorm:"type:int;not null;index"`
	Priority           int        `gorm:"type:int;not null"`
	EquipmentID        string     `gorm:"type:varchar(64)"`
	FunctionalLocation string     `gorm:"type:varchar(64)"`
	NotificationID     string     `gorm:"type:varchar(64)"`
	PlannedStart       *time.Time
	PlannedEnd         *time.Time
	ActualStart        *time.Time
	ActualEnd          *time.Time
	CreatedBy          string    `gorm:"type:varchar(64);not null"`
	CreatedAt          time.Time `gorm:"not null"`
	Version            int64     `gorm:"type:bigint;not null"`

	EstimatedMaterial decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EstimatedLabor    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EstimatedExternal decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ActualMaterial    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ActualLabor       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ActualExternal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EstimateComputed  bool            `gorm:"not null"`
	ProcessedDocs     string          `gorm:"type:text;not null"`

	Operations         []OperationDTO         `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
	Components         []ComponentDTO         `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
	PurchaseOrders     []PurchaseOrderDTO     `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
	GoodsMovements     []GoodsMovementDTO     `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
	Confirmations      []ConfirmationDTO      `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
	MalfunctionReports []MalfunctionReportDTO `gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OperationDTO represents a planned operation row.
type OperationDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber  string          `gorm:"type:varchar(16);not null;index"`
	WorkCenter   string          `gorm:"type:varchar(64);not null"`
	Description  string          `gorm:"type:varchar(255);not null"`
	PlannedHours decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TechnicianID string          `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for operation entities.
func (OperationDTO) TableName() string {
	return "operations"
}

// ComponentDTO represents a material requirement row.
type ComponentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber   string          `gorm:"type:varchar(16);not null;index"`
	MaterialRef   string          `gorm:"type:varchar(64);not null"`
	NonStock      bool            `gorm:"not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit          string          `gorm:"type:varchar(16);not null"`
	EstimatedCost decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Critical      bool            `gorm:"not null"`
	OperationID   *uuid.UUID      `gorm:"type:uuid"`
}

// TableName specifies the database table name for component entities.
func (ComponentDTO) TableName() string {
	return "components"
}

// PurchaseOrderDTO represents a child procurement document row.
type PurchaseOrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber string          `gorm:"type:varchar(16);not null;index"`
	PONumber    string          `gorm:"type:varchar(32);not null;index"`
	POType      int             `gorm:"type:int;not null"`
	POStatus    int             `gorm:"type:int;not null"`
	TotalValue  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName specifies the database table name for purchase order entities.
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// GoodsMovementDTO represents an immutable goods receipt or issue row.
type GoodsMovementDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber     string          `gorm:"type:varchar(16);not null;index"`
	Direction       int             `gorm:"type:int;not null"`
	MaterialRef     string          `gorm:"type:varchar(64);not null"`
	PONumber        string          `gorm:"type:varchar(32)"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	StorageLocation string          `gorm:"type:varchar(64)"`
	Actor           string          `gorm:"type:varchar(64);not null"`
	PostedAt        time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for goods movement entities.
func (GoodsMovementDTO) TableName() string {
	return "goods_movements"
}

// ConfirmationDTO represents an immutable work confirmation row.
type ConfirmationDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber string          `gorm:"type:varchar(16);not null;index"`
	OperationID uuid.UUID       `gorm:"type:uuid;not null"`
	ActualHours decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Detail      string          `gorm:"type:text"`
	External    bool            `gorm:"not null"`
	Actor       string          `gorm:"type:varchar(64);not null"`
	PostedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for confirmation entities.
func (ConfirmationDTO) TableName() string {
	return "confirmations"
}

// MalfunctionReportDTO represents a filed malfunction report row.
type MalfunctionReportDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber      string    `gorm:"type:varchar(16);not null;index"`
	CauseCode        string    `gorm:"type:varchar(32);not null"`
	RootCause        string    `gorm:"type:text;not null"`
	CorrectiveAction string    `gorm:"type:text;not null"`
	Actor            string    `gorm:"type:varchar(64);not null"`
	ReportedAt       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for malfunction report entities.
func (MalfunctionReportDTO) TableName() string {
	return "malfunction_reports"
}

// OrderSequenceDTO backs the shared MO/BD number sequence.
type OrderSequenceDTO struct {
	ID    int   `gorm:"primaryKey"`
	Value int64 `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for the order sequence.
func (OrderSequenceDTO) TableName() string {
	return "order_sequence"
}

// fromDomain converts an order domain aggregate to its database
// representation, flattening the cost summary into the order row.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	orderNumber := aggregate.OrderNumber().String()
	summary := aggregate.CostSummary()

	processedDocs, err := json.Marshal(summary.ProcessedDocumentIDs())
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		OrderNumber:        orderNumber,
		OrderType:          int(aggregate.OrderType()),
		Status:             int(aggregate.Status()),
		Priority:           int(aggregate.Priority()),
		EquipmentID:        aggregate.Equipment().EquipmentID(),
		FunctionalLocation: aggregate.Equipment().FunctionalLocation(),
		NotificationID:     aggregate.NotificationID(),
		PlannedStart:       aggregate.PlannedStart(),
		PlannedEnd:         aggregate.PlannedEnd(),
		ActualStart:        aggregate.ActualStart(),
		ActualEnd:          aggregate.ActualEnd(),
		CreatedBy:          aggregate.CreatedBy(),
		CreatedAt:          aggregate.CreatedAt(),
		Version:            aggregate.Version(),

		EstimatedMaterial: summary.Estimated(order.ElementMaterial),
		EstimatedLabor:    summary.Estimated(order.ElementLabor),
		EstimatedExternal: summary.Estimated(order.ElementExternal),
		ActualMaterial:    summary.Actual(order.ElementMaterial),
		ActualLabor:       summary.Actual(order.ElementLabor),
		ActualExternal:    summary.Actual(order.ElementExternal),
		EstimateComputed:  summary.IsComputed(),
		ProcessedDocs:     string(processedDocs),
	}

	for _, op := range aggregate.Operations() {
		dto.Operations = append(dto.Operations, OperationDTO{
			ID:           op.ID().Bytes(),
			OrderNumber:  orderNumber,
			WorkCenter:   op.WorkCenter(),
			Description:  op.Description(),
			PlannedHours: op.PlannedHours(),
			TechnicianID: op.TechnicianID(),
		})
	}

	for _, c := range aggregate.Components() {
		var operationID *uuid.UUID
		if c.OperationID() != nil {
			raw := c.OperationID().Bytes()
			operationID = &raw
		}
		dto.Components = append(dto.Components, ComponentDTO{
			ID:            c.ID().Bytes(),
			OrderNumber:   orderNumber,
			MaterialRef:   c.MaterialRef(),
			NonStock:      c.IsNonStock(),
			Quantity:      c.Quantity(),
			Unit:          c.Unit(),
			EstimatedCost: c.EstimatedCost(),
			Critical:      c.IsCritical(),
			OperationID:   operationID,
		})
	}

	for _, po := range aggregate.PurchaseOrders() {
		dto.PurchaseOrders = append(dto.PurchaseOrders, PurchaseOrderDTO{
			ID:          po.ID().Bytes(),
			OrderNumber: orderNumber,
			PONumber:    po.PONumber(),
			POType:      int(po.POType()),
			POStatus:    int(po.Status()),
			TotalValue:  po.TotalValue(),
		})
	}

	for _, m := range aggregate.GoodsMovements() {
		dto.GoodsMovements = append(dto.GoodsMovements, GoodsMovementDTO{
			ID:              m.ID().Bytes(),
			OrderNumber:     orderNumber,
			Direction:       int(m.Direction()),
			MaterialRef:     m.MaterialRef(),
			PONumber:        m.PONumber(),
			Quantity:        m.Quantity(),
			UnitCost:        m.UnitCost(),
			StorageLocation: m.StorageLocation(),
			Actor:           m.Actor(),
			PostedAt:        m.PostedAt(),
		})
	}

	for _, c := range aggregate.Confirmations() {
		dto.Confirmations = append(dto.Confirmations, ConfirmationDTO{
			ID:          c.ID().Bytes(),
			OrderNumber: orderNumber,
			OperationID: c.OperationID().Bytes(),
			ActualHours: c.ActualHours(),
			Detail:      c.Detail(),
			External:    c.IsExternal(),
			Actor:       c.Actor(),
			PostedAt:    c.PostedAt(),
		})
	}

	for _, r := range aggregate.MalfunctionReports() {
		dto.MalfunctionReports = append(dto.MalfunctionReports, MalfunctionReportDTO{
			ID:               r.ID().Bytes(),
			OrderNumber:      orderNumber,
			CauseCode:        r.CauseCode(),
			RootCause:        r.RootCause(),
			CorrectiveAction: r.CorrectiveAction(),
			Actor:            r.Actor(),
			ReportedAt:       r.ReportedAt(),
		})
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including children and the cost
// summary using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	equipment, err := kernel.RestoreEquipmentRef(dto.EquipmentID, dto.FunctionalLocation)
	if err != nil {
		return nil, err
	}

	operations := make([]*order.Operation, 0, len(dto.Operations))
	for _, opDto := range dto.Operations {
		op, opErr := operationToDomain(opDto)
		if opErr != nil {
			return nil, opErr
		}
		operations = append(operations, op)
	}

	components := make([]*order.Component, 0, len(dto.Components))
	for _, cDto := range dto.Components {
		c, cErr := componentToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		components = append(components, c)
	}

	purchaseOrders := make([]*order.PurchaseOrder, 0, len(dto.PurchaseOrders))
	for _, poDto := range dto.PurchaseOrders {
		po, poErr := purchaseOrderToDomain(poDto, orderNumber)
		if poErr != nil {
			return nil, poErr
		}
		purchaseOrders = append(purchaseOrders, po)
	}

	goodsMovements := make([]*order.GoodsMovement, 0, len(dto.GoodsMovements))
	for _, mDto := range dto.GoodsMovements {
		m, mErr := goodsMovementToDomain(mDto)
		if mErr != nil {
			return nil, mErr
		}
		goodsMovements = append(goodsMovements, m)
	}

	confirmations := make([]*order.Confirmation, 0, len(dto.Confirmations))
	for _, cDto := range dto.Confirmations {
		c, cErr := confirmationToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		confirmations = append(confirmations, c)
	}

	malfunctionReports := make([]*order.MalfunctionReport, 0, len(dto.MalfunctionReports))
	for _, rDto := range dto.MalfunctionReports {
		r, rErr := malfunctionReportToDomain(rDto)
		if rErr != nil {
			return nil, rErr
		}
		malfunctionReports = append(malfunctionReports, r)
	}

	costSummary, err := costSummaryToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderNumber, order.Type(dto.OrderType), order.Status(dto.Status), order.Priority(dto.Priority),
		equipment, dto.NotificationID, dto.CreatedBy, dto.CreatedAt,
		dto.PlannedStart, dto.PlannedEnd, dto.ActualStart, dto.ActualEnd, dto.Version,
		operations, components, purchaseOrders, goodsMovements, confirmations,
		malfunctionReports, costSummary,
	)
}

func operationToDomain(dto OperationDTO) (*order.Operation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreOperation(id, dto.WorkCenter, dto.Description, dto.PlannedHours, dto.TechnicianID)
}

func componentToDomain(dto ComponentDTO) (*order.Component, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var operationID *kernel.UUID
	if dto.OperationID != nil {
		opID, opErr := kernel.UUIDFromBytes((*dto.OperationID)[:])
		if opErr != nil {
			return nil, opErr
		}
		operationID = &opID
	}

	return order.RestoreComponent(
		id, dto.MaterialRef, dto.Quantity, dto.Unit, dto.EstimatedCost,
		dto.NonStock, dto.Critical, operationID)
}

func purchaseOrderToDomain(dto PurchaseOrderDTO, orderNumber kernel.OrderNumber) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.RestorePurchaseOrder(
		id, dto.PONumber, orderNumber, order.POType(dto.POType), order.POStatus(dto.POStatus), dto.TotalValue)
}

func goodsMovementToDomain(dto GoodsMovementDTO) (*order.GoodsMovement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	if order.MovementDirection(dto.Direction) == order.MovementReceipt {
		return order.NewGoodsReceipt(
			id, dto.MaterialRef, dto.PONumber, dto.Quantity, dto.UnitCost,
			dto.StorageLocation, dto.Actor, dto.PostedAt)
	}
	return order.NewGoodsIssue(
		id, dto.MaterialRef, dto.PONumber, dto.Quantity, dto.UnitCost,
		dto.StorageLocation, dto.Actor, dto.PostedAt)
}

func confirmationToDomain(dto ConfirmationDTO) (*order.Confirmation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	operationID, err := kernel.UUIDFromBytes(dto.OperationID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreConfirmation(
		id, operationID, dto.ActualHours, dto.Detail, dto.External, dto.Actor, dto.PostedAt)
}

func malfunctionReportToDomain(dto MalfunctionReportDTO) (*order.MalfunctionReport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.NewMalfunctionReport(
		id, dto.CauseCode, dto.RootCause, dto.CorrectiveAction, dto.Actor, dto.ReportedAt)
}

func costSummaryToDomain(dto OrderDTO) (*order.CostSummary, error) {
	var processedDocs []string
	if dto.ProcessedDocs != "" {
		if err := json.Unmarshal([]byte(dto.ProcessedDocs), &processedDocs); err != nil {
			return nil, err
		}
	}

	estimated := map[order.CostElement]decimal.Decimal{
		order.ElementMaterial: dto.EstimatedMaterial,
		order.ElementLabor:    dto.EstimatedLabor,
		order.ElementExternal: dto.EstimatedExternal,
	}
	actual := map[order.CostElement]decimal.Decimal{
		order.ElementMaterial: dto.ActualMaterial,
		order.ElementLabor:    dto.ActualLabor,
		order.ElementExternal: dto.ActualExternal,
	}

	return order.RestoreCostSummary(estimated, actual, processedDocs, dto.EstimateComputed)
}
