package planner

// Partition splits events around today. Past-due events are dated strictly
// before today; upcoming events are dated today or later. Both halves keep
// the input order, so sorted input yields sorted halves. Input need not be
// sorted.
func Partition(events []Event, today Date) (pastDue, upcoming []Event) {
	pastDue = []Event{}
	upcoming = []Event{}
	for _, e := range events {
		if e.Date.Before(today) {
			pastDue = append(pastDue, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return pastDue, upcoming
}
