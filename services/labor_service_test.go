package services

import (
	"testing"
	"time"

	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func present(userID, date string) models.Attendance {
	return models.Attendance{UserID: userID, Date: day(date), Present: true}
}

func TestLaborDetailsTwoWorkersAndDriver(t *testing.T) {
	workers := []models.User{
		{ID: "worker-a", Name: "Worker A", DailySalary: 50},
		{ID: "worker-b", Name: "Worker B", DailySalary: 50},
	}
	driver := &models.User{ID: "driver-d", Name: "Driver D", DailySalary: 50}

	// A attends two days, B attends one of them; the driver row is paid
	// for each distinct project date
	records := []models.Attendance{
		present("worker-a", "2026-03-01"),
		present("worker-a", "2026-03-02"),
		present("worker-b", "2026-03-01"),
	}

	presence := workerPresenceCounts(records, workers)
	distinctDates := distinctAttendanceDates(records)
	details := buildLaborDetails(workers, driver, presence, distinctDates)

	require.Len(t, details.Workers, 2)
	assert.Equal(t, 2, details.Workers[0].DaysPresent)
	assert.Equal(t, float64(100), details.Workers[0].TotalSalary)
	assert.Equal(t, 1, details.Workers[1].DaysPresent)
	assert.Equal(t, float64(50), details.Workers[1].TotalSalary)

	require.NotNil(t, details.Driver)
	assert.Equal(t, 2, details.Driver.DaysPresent)
	assert.Equal(t, float64(100), details.Driver.TotalSalary)

	assert.Equal(t, float64(250), details.TotalLaborCost)
}

func TestLaborDetailsDeterministic(t *testing.T) {
	workers := []models.User{
		{ID: "w1", Name: "One", DailySalary: 120.5},
		{ID: "w2", Name: "Two", DailySalary: 80},
	}
	records := []models.Attendance{
		present("w1", "2026-01-05"),
		present("w2", "2026-01-05"),
		present("w1", "2026-01-06"),
	}

	first := buildLaborDetails(workers, nil, workerPresenceCounts(records, workers), distinctAttendanceDates(records))
	second := buildLaborDetails(workers, nil, workerPresenceCounts(records, workers), distinctAttendanceDates(records))

	assert.Equal(t, first, second)
}

func TestWorkerPresenceCountsIgnoresAbsentAndUnassigned(t *testing.T) {
	workers := []models.User{{ID: "w1", DailySalary: 100}}

	records := []models.Attendance{
		present("w1", "2026-02-01"),
		{UserID: "w1", Date: day("2026-02-02"), Present: false},
		// Attendance from someone no longer on the team
		present("ghost", "2026-02-01"),
	}

	presence := workerPresenceCounts(records, workers)

	assert.Equal(t, 1, presence["w1"])
	assert.Zero(t, presence["ghost"])
}

func TestWorkerPresenceCountsRowsNotDeduplicated(t *testing.T) {
	// Normal-type attendance has no project scope, so the same user and
	// date can appear more than once in a fetched set; each row counts
	workers := []models.User{{ID: "w1", DailySalary: 10}}
	records := []models.Attendance{
		present("w1", "2026-02-01"),
		present("w1", "2026-02-01"),
	}

	presence := workerPresenceCounts(records, workers)

	assert.Equal(t, 2, presence["w1"])
}

func TestDistinctAttendanceDatesIndependentOfAttendee(t *testing.T) {
	// Driver days depend on which dates had any presence, not on whose
	records := []models.Attendance{
		present("w1", "2026-04-01"),
		present("w2", "2026-04-01"),
		present("w3", "2026-04-02"),
		{UserID: "w1", Date: day("2026-04-03"), Present: false},
	}

	assert.Equal(t, 2, distinctAttendanceDates(records))
	assert.Equal(t, 0, distinctAttendanceDates(nil))
}

func TestBuildLaborDetailsNoDriver(t *testing.T) {
	workers := []models.User{{ID: "w1", Name: "One", DailySalary: 75}}
	presence := map[string]int{"w1": 3}

	details := buildLaborDetails(workers, nil, presence, 3)

	assert.Nil(t, details.Driver)
	assert.Equal(t, float64(225), details.TotalLaborCost)
}

func TestBuildLaborDetailsZeroSalaryAndNoAttendance(t *testing.T) {
	workers := []models.User{
		{ID: "w1", Name: "Unpaid"},
		{ID: "w2", Name: "Idle", DailySalary: 90},
	}
	driver := &models.User{ID: "d1", Name: "Driver", DailySalary: 60}

	details := buildLaborDetails(workers, driver, map[string]int{"w1": 4}, 0)

	require.Len(t, details.Workers, 2)
	// Salary defaults to zero: days accrue but cost nothing
	assert.Equal(t, 4, details.Workers[0].DaysPresent)
	assert.Zero(t, details.Workers[0].TotalSalary)
	// No attendance: zero days, zero cost
	assert.Zero(t, details.Workers[1].DaysPresent)
	assert.Zero(t, details.Workers[1].TotalSalary)
	assert.Zero(t, details.Driver.TotalSalary)
	assert.Zero(t, details.TotalLaborCost)
}

func TestLaborCostLinearInDays(t *testing.T) {
	workers := []models.User{{ID: "w1", DailySalary: 33.25}}

	one := buildLaborDetails(workers, nil, map[string]int{"w1": 1}, 1)
	four := buildLaborDetails(workers, nil, map[string]int{"w1": 4}, 4)

	assert.Equal(t, one.TotalLaborCost*4, four.TotalLaborCost)
}
