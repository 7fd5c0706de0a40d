package models

// DcnReference is reference data for one designated accounting method
// change number from the current automatic change revenue procedure.
//
// The table is immutable for end users. It is populated by the seeding
// process at startup and only changes with a new revenue procedure
// revision.
type DcnReference struct {
	DefaultModel
	DcnNumber         string `gorm:"uniqueIndex"`
	Description       string
	Category          string
	IsAutomatic       bool
	Requires481a      bool
	SpreadPeriod      *int // 1 or 4 tax years, nil when the guidance does not suggest one
	RequiresScheduleA bool
	RequiresScheduleB bool
	RequiresScheduleC bool
	RequiresScheduleD bool
	RequiresScheduleE bool
	RevProcReference  string
}
