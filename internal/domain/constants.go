package domain

// Default selection values for a new booking session
const (
	DefaultAdults   = 1
	DefaultChildren = 0
	DefaultQuantity = 1
)

// Counter bounds
const (
	MinAdults   = 1
	MinChildren = 0
	MinQuantity = 1
)

// Business validation constants
const (
	MaxNameLength           = 100
	MaxEmailLength          = 254
	MaxPhoneLength          = 32
	MaxAddressLength        = 255
	MaxZipLength            = 16
	MaxAdditionalInfoLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
