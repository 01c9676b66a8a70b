package domain

// Default booking limits
const (
	DefaultMaxMainPerDay      = 2
	DefaultMaxRentalPerDay    = 2
	DefaultEventDurationHours = 4
	MaxEventDurationHours     = 12
	MaxClientNameLength       = 200
	MaxServicesLength         = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
