package models

// RosterModels lists the tables owned by the roster service.
func RosterModels() []interface{} {
	return []interface{}{&Teacher{}, &Class{}, &Student{}}
}

// ActivitiesModels lists the tables owned by the activities service.
func ActivitiesModels() []interface{} {
	return []interface{}{&Activity{}, &Grade{}}
}

// ReservationsModels lists the tables owned by the reservations service.
func ReservationsModels() []interface{} {
	return []interface{}{&Reservation{}}
}
