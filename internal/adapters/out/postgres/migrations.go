package postgres

import (
	"maintenance/internal/adapters/out/postgres/docflowrepo"
	"maintenance/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the adapters persist to.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OperationDTO{},
		&orderrepo.ComponentDTO{},
		&orderrepo.PurchaseOrderDTO{},
		&orderrepo.GoodsMovementDTO{},
		&orderrepo.ConfirmationDTO{},
		&orderrepo.MalfunctionReportDTO{},
		&orderrepo.OrderSequenceDTO{},
		&docflowrepo.EntryDTO{},
	)
}
