package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Currencies
	PHPCurrency = "PHP"

	// User roles
	AdminRole    = "admin"
	OperatorRole = "operator"
	GuestRole    = "guest"
)
