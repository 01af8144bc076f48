package errs

// Sentinel errors shared by the usecase and handler layers
var (
	// Admission errors
	ErrNoStock              = New("no stock")
	ErrDuplicateOrder       = New("multiple order for a user")
	ErrAdmissionUnavailable = New("admission store unavailable")

	// Voucher errors
	ErrVoucherNotFound = New("voucher not found")
	ErrVoucherExists   = New("voucher already published")

	// Order errors
	ErrOrderNotFound = New("order not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
