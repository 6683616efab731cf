package services

import (
	"errors"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/ajshan23/alghazal-b-p/repositories"
	"gorm.io/gorm"
)

// LaborService computes the labor-cost breakdown for a project from its
// current team assignment and raw attendance. Nothing is cached: every
// call re-reads attendance and re-derives the totals.
type LaborService struct {
	projectRepo    *repositories.ProjectRepository
	attendanceRepo *repositories.AttendanceRepository
}

// NewLaborService creates a new labor service instance
func NewLaborService() *LaborService {
	return &LaborService{
		projectRepo:    repositories.NewProjectRepository(),
		attendanceRepo: repositories.NewAttendanceRepository(),
	}
}

// GetLaborDetails computes a fresh labor-cost breakdown for a project.
// Workers and driver are read from the current project snapshot, so a
// recomputation always reflects today's team assignment.
func (s *LaborService) GetLaborDetails(projectID string) (models.LaborDetails, error) {
	project, err := s.projectRepo.WithTeam(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LaborDetails{}, apperrors.NotFoundf("project %s", projectID)
		}
		return models.LaborDetails{}, err
	}

	records, err := s.attendanceRepo.FindPresentByProject(projectID)
	if err != nil {
		return models.LaborDetails{}, err
	}

	presence := workerPresenceCounts(records, project.AssignedWorkers)
	distinctDates := distinctAttendanceDates(records)

	return buildLaborDetails(project.AssignedWorkers, project.AssignedDriver, presence, distinctDates), nil
}

// workerPresenceCounts counts present attendance rows per assigned worker.
// Rows are counted exactly as stored; duplicate dates for the same worker
// are not de-duplicated.
func workerPresenceCounts(records []models.Attendance, workers []models.User) map[string]int {
	assigned := make(map[string]bool, len(workers))
	for _, worker := range workers {
		assigned[worker.ID] = true
	}

	counts := make(map[string]int, len(workers))
	for _, record := range records {
		if record.Present && assigned[record.UserID] {
			counts[record.UserID]++
		}
	}
	return counts
}

// distinctAttendanceDates counts the distinct calendar dates on which the
// project had any present attendance, regardless of who produced it. The
// driver is paid for each such date whether or not the driver personally
// attended; this mirrors how driver days are billed today and is kept
// separate so the rule can be swapped without touching the rest of the
// aggregation.
func distinctAttendanceDates(records []models.Attendance) int {
	seen := make(map[string]bool)
	for _, record := range records {
		if record.Present {
			seen[record.Date.Format("2006-01-02")] = true
		}
	}
	return len(seen)
}

// buildLaborDetails assembles the breakdown. Per-row total is
// daysPresent x dailySalary, salary defaulting to zero when unset; the
// grand total sums worker rows plus the driver row.
func buildLaborDetails(workers []models.User, driver *models.User, presence map[string]int, distinctDates int) models.LaborDetails {
	details := models.LaborDetails{
		Workers: make([]models.LaborItem, 0, len(workers)),
	}

	for _, worker := range workers {
		daysPresent := presence[worker.ID]
		item := models.LaborItem{
			UserID:       worker.ID,
			Name:         worker.Name,
			ProfileImage: worker.ProfileImage,
			DaysPresent:  daysPresent,
			DailySalary:  worker.DailySalary,
			TotalSalary:  float64(daysPresent) * worker.DailySalary,
		}
		details.Workers = append(details.Workers, item)
		details.TotalLaborCost += item.TotalSalary
	}

	if driver != nil {
		item := models.LaborItem{
			UserID:       driver.ID,
			Name:         driver.Name,
			ProfileImage: driver.ProfileImage,
			DaysPresent:  distinctDates,
			DailySalary:  driver.DailySalary,
			TotalSalary:  float64(distinctDates) * driver.DailySalary,
		}
		details.Driver = &item
		details.TotalLaborCost += item.TotalSalary
	}

	return details
}
