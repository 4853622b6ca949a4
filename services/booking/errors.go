package booking

// Reason codes returned to clients.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInvalidDate       = "INVALID_DATE"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeOverlappingRange  = "OVERLAPPING_RANGE"
	CodePastRange         = "PAST_RANGE"
	CodeProviderNotFound  = "PROVIDER_NOT_FOUND"
	CodeSlotNotFound      = "SLOT_NOT_FOUND"
	CodeSlotAlreadyBooked = "SLOT_ALREADY_BOOKED"
	CodeStorageFailure    = "STORAGE_UNAVAILABLE"
)
