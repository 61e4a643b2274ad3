package services

import "time"

// SetClock pins the evaluation time of a service built by one of the
// constructors in this package.
func SetClock(service interface{}, now func() time.Time) {
	switch s := service.(type) {
	case *subscriptionService:
		s.now = now
	case *budgetService:
		s.now = now
	case *dashboardService:
		s.now = now
	case *exportService:
		s.now = now
	case *demoDataService:
		s.now = now
	case *CircuitBreaker:
		s.now = now
	default:
		panic("SetClock: unsupported service type")
	}
}
