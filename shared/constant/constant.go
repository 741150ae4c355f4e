package constant

const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
)

const (
	// DateInputLayout accepts 5/1/2024 as well as 05/01/2024.
	DateInputLayout   = "1/2/2006"
	DateDisplayLayout = "01/02/2006"
	DateSQLLayout     = "2006-01-02"
	TimestampLayout   = "2006-01-02 15:04:05"
)

const (
	NearbyRadius = 30.0

	RecentBookingsLimit   = 5
	RecentUpdatesLimit    = 5
	RegularCustomersLimit = 5
)

const (
	MenuChoiceLogOut = 20
	MenuChoiceExit   = 9
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExecutorScopeName   = "executor"

	OtelQueryAttributeKey   = "query"
	OtelSessionAttributeKey = "session.id"
	OtelUserAttributeKey    = "user.id"
)

const (
	Empty = ""
)
