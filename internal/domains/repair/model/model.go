package model

const (
	TableName  = "RoomRepairs"
	EntityName = "repair"
)

const (
	RequestTableName  = "RoomRepairRequests"
	RequestEntityName = "repair_request"
)

const (
	CompanyTableName  = "MaintenanceCompany"
	CompanyEntityName = "company"

	FieldCompanyID = "companyID"
)

// Repair is an append-only repair ticket.
type Repair struct {
	RepairID   int    `db:"repairID"   insert:"-"`
	CompanyID  int    `db:"companyID"`
	HotelID    int    `db:"hotelID"`
	RoomNumber int    `db:"roomNumber"`
	RepairDate string `db:"repairDate"`
}

// Request links a repair ticket to the manager who placed it.
type Request struct {
	RequestNumber int    `db:"requestNumber" insert:"-"`
	ManagerID     string `db:"managerID"`
	RepairID      int    `db:"repairID"`
}

// Company is referenced by repairs and never written here.
type Company struct {
	CompanyID int    `db:"companyID" insert:"-"`
	Name      string `db:"name"`
}
