package store

import (
	"sort"
	"time"

	"github.com/sidhant19/dental-center-management/internal/models"
)

// PatientRevenue is a patient ranked by completed-incident revenue.
type PatientRevenue struct {
	models.Patient
	TotalRevenue float64 `json:"totalRevenue"`
}

// PatientVisits is a patient ranked by non-cancelled visit count.
type PatientVisits struct {
	models.Patient
	TotalVisits int `json:"totalVisits"`
}

// UpcomingPage is one page of upcoming scheduled appointments.
type UpcomingPage struct {
	Appointments []models.Incident `json:"appointments"`
	Total        int               `json:"total"`
}

// RevenuePage is one page of the top-paying patient ranking.
type RevenuePage struct {
	Patients []PatientRevenue `json:"patients"`
	Total    int              `json:"total"`
}

// VisitsPage is one page of the most-visited patient ranking.
type VisitsPage struct {
	Patients []PatientVisits `json:"patients"`
	Total    int             `json:"total"`
}

// TotalRevenue sums cost over Completed incidents. Scheduled and Cancelled
// incidents never contribute.
func (s *Store) TotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, in := range s.snapshot.Incidents {
		if in.Status == models.StatusCompleted {
			sum += in.Cost
		}
	}
	return sum
}

// MonthlyRevenue sums completed revenue whose appointment date falls in the
// current calendar month.
func (s *Store) MonthlyRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revenueForMonth(s.now())
}

// RevenueChange is the month-over-month revenue change in percent: 0 when
// both months are zero, 100 when the prior month is zero but the current one
// is positive.
func (s *Store) RevenueChange() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	current := s.revenueForMonth(now)
	last := s.revenueForMonth(previousMonth(now))
	return percentChange(current, last)
}

// revenueForMonth must be called with at least the read lock held.
func (s *Store) revenueForMonth(ref time.Time) float64 {
	var sum float64
	for _, in := range s.snapshot.Incidents {
		if in.Status == models.StatusCompleted && sameMonth(in.AppointmentDate, ref) {
			sum += in.Cost
		}
	}
	return sum
}

// TotalPatients is the number of patient records.
func (s *Store) TotalPatients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot.Patients)
}

// MonthlyNewPatients counts patients whose earliest incident date falls in
// the current month.
func (s *Store) MonthlyNewPatients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countFirstVisits(firstVisitDates(s.snapshot), s.now())
}

// PatientChange is the month-over-month change in new patients, with the
// same zero-handling rule as RevenueChange.
func (s *Store) PatientChange() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	firsts := firstVisitDates(s.snapshot)
	current := countFirstVisits(firsts, now)
	last := countFirstVisits(firsts, previousMonth(now))
	return percentChange(float64(current), float64(last))
}

// ScheduledAppointments counts incidents currently in the Scheduled state.
func (s *Store) ScheduledAppointments() int {
	return s.countByStatus(models.StatusScheduled)
}

// CompletedAppointments counts incidents in the Completed state.
func (s *Store) CompletedAppointments() int {
	return s.countByStatus(models.StatusCompleted)
}

func (s *Store) countByStatus(status models.IncidentStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, in := range s.snapshot.Incidents {
		if in.Status == status {
			n++
		}
	}
	return n
}

// UpcomingAppointments pages through scheduled incidents strictly after now,
// ascending by appointment date.
func (s *Store) UpcomingAppointments(page, limit int) UpcomingPage {
	page, limit = normalizePage(page, limit, 5)

	s.mu.RLock()
	now := s.now()
	upcoming := []models.Incident{}
	for _, in := range s.snapshot.Incidents {
		if in.Status == models.StatusScheduled && in.AppointmentDate.After(now) {
			upcoming = append(upcoming, in)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].AppointmentDate.Before(upcoming[j].AppointmentDate)
	})
	pageItems, total := slicePage(upcoming, page, limit)
	return UpcomingPage{Appointments: pageItems, Total: total}
}

// TopPayingPatients ranks patients by completed revenue, descending. Patients
// with equal sums keep the order in which they were first encountered while
// grouping incidents.
func (s *Store) TopPayingPatients(page, limit int) RevenuePage {
	page, limit = normalizePage(page, limit, 3)

	s.mu.RLock()
	order := []string{}
	revenue := map[string]float64{}
	for _, in := range s.snapshot.Incidents {
		if in.Status != models.StatusCompleted {
			continue
		}
		if _, seen := revenue[in.PatientID]; !seen {
			order = append(order, in.PatientID)
		}
		revenue[in.PatientID] += in.Cost
	}

	ranked := make([]PatientRevenue, 0, len(order))
	for _, id := range order {
		if i, ok := findPatient(s.snapshot, id); ok {
			ranked = append(ranked, PatientRevenue{
				Patient:      s.snapshot.Patients[i],
				TotalRevenue: revenue[id],
			})
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})
	pageItems, total := slicePage(ranked, page, limit)
	return RevenuePage{Patients: pageItems, Total: total}
}

// MostVisitedPatients ranks patients by non-cancelled visit count, descending,
// with the same stable tie order as TopPayingPatients.
func (s *Store) MostVisitedPatients(page, limit int) VisitsPage {
	page, limit = normalizePage(page, limit, 3)

	s.mu.RLock()
	order := []string{}
	visits := map[string]int{}
	for _, in := range s.snapshot.Incidents {
		if in.Status == models.StatusCancelled {
			continue
		}
		if _, seen := visits[in.PatientID]; !seen {
			order = append(order, in.PatientID)
		}
		visits[in.PatientID]++
	}

	ranked := make([]PatientVisits, 0, len(order))
	for _, id := range order {
		if i, ok := findPatient(s.snapshot, id); ok {
			ranked = append(ranked, PatientVisits{
				Patient:     s.snapshot.Patients[i],
				TotalVisits: visits[id],
			})
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalVisits > ranked[j].TotalVisits
	})
	pageItems, total := slicePage(ranked, page, limit)
	return VisitsPage{Patients: pageItems, Total: total}
}

// firstVisitDates maps each patient with incidents to its earliest
// appointment date.
func firstVisitDates(snap *models.Snapshot) map[string]time.Time {
	firsts := map[string]time.Time{}
	for _, in := range snap.Incidents {
		if first, ok := firsts[in.PatientID]; !ok || in.AppointmentDate.Before(first) {
			firsts[in.PatientID] = in.AppointmentDate
		}
	}
	return firsts
}

func countFirstVisits(firsts map[string]time.Time, ref time.Time) int {
	n := 0
	for _, d := range firsts {
		if sameMonth(d, ref) {
			n++
		}
	}
	return n
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

// previousMonth returns a time in the calendar month before ref.
func previousMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 0, -1)
}

func percentChange(current, last float64) float64 {
	if last == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - last) / last * 100
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

func slicePage[T any](items []T, page, limit int) ([]T, int) {
	total := len(items)
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], total
}
