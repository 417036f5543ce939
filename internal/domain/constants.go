package domain

// Business rules
const (
	MinAdvanceBookingDays = 1    // бронирование не раньше, чем на завтра
	MemberPriceMultiplier = 0.33 // скидка 67% для участников клуба
	MaxNameLength         = 100
	MaxPhoneLength        = 32
	MaxDescriptionLength  = 500
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
