package repositories

import "gorm.io/gorm"

// NewSet wires every gorm-backed repository onto one connection
func NewSet(db *gorm.DB) Set {
	return Set{
		Users:      NewUserRepository(db),
		Attendance: NewAttendanceRepository(db),
		Locations:  NewLocationRepository(db),
		Dealers:    NewDealerRepository(db),
		Visits:     NewVisitRepository(db),
		Plans:      NewPlanRepository(db),
		Claims:     NewClaimRepository(db),
	}
}
