package booking

// Intent carries everything the coordinator needs to create an
// appointment together with its detail form.
type Intent struct {
	ClientID  uint
	MasterID  uint
	ServiceID uint

	Date string
	Time string

	PassportNumber string
	VisitPurpose   string
	PlannedStart   string
	PlannedEnd     string

	AdditionalOptionID *uint
	Notes              string
}

// Slot identifies one bookable unit at exact-match granularity.
type Slot struct {
	MasterID uint
	Date     string
	Time     string
}
