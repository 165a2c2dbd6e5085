package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hospital-gin/internal/handlers"
	"hospital-gin/internal/models"
	"hospital-gin/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIDepartmentsIncludesDoctorCount(t *testing.T) {
	r, db := newEnv(t)
	cardiology := seedDepartment(t, db, "Cardiology")
	neurology := seedDepartment(t, db, "Neurology")
	seedDoctor(t, db, "doc1@hospital.com", cardiology.ID)
	seedDoctor(t, db, "doc2@hospital.com", cardiology.ID)

	w := do(r, http.MethodGet, "/api/departments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var departments []handlers.DepartmentSummary
	decode(t, w, &departments)
	require.Len(t, departments, 2)

	byName := map[string]handlers.DepartmentSummary{}
	for _, d := range departments {
		byName[d.Name] = d
	}
	assert.EqualValues(t, 2, byName[cardiology.Name].DoctorCount)
	assert.EqualValues(t, 0, byName[neurology.Name].DoctorCount)
}

func TestAPIDoctorsFilterByDepartment(t *testing.T) {
	r, db := newEnv(t)
	cardiology := seedDepartment(t, db, "Cardiology")
	neurology := seedDepartment(t, db, "Neurology")
	seedDoctor(t, db, "doc1@hospital.com", cardiology.ID)
	seedDoctor(t, db, "doc2@hospital.com", neurology.ID)

	w := do(r, http.MethodGet, "/api/doctors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []handlers.DoctorSummary
	decode(t, w, &all)
	assert.Len(t, all, 2)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/doctors?department_id=%d", neurology.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []handlers.DoctorSummary
	decode(t, w, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Neurology", filtered[0].Department)
	assert.Equal(t, 5, filtered[0].ExperienceYears)
	assert.Equal(t, 100.0, filtered[0].ConsultationFee)
}

func TestAPIDoctorAvailabilityRollingWeek(t *testing.T) {
	r, db := newEnv(t)
	department := seedDepartment(t, db, "Cardiology")
	docUser, doctor := seedDoctor(t, db, "doc@hospital.com", department.ID)

	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1).Format(models.DateLayout)
	farOut := today.AddDate(0, 0, 9).Format(models.DateLayout)

	w := do(r, http.MethodPut, "/doctor/availability", token(t, docUser), map[string]interface{}{
		"days": []scheduling.DaySelection{
			{Date: tomorrow, Available: true, StartTime: "09:00", EndTime: "17:00"},
			{Date: farOut, Available: true, StartTime: "09:00", EndTime: "17:00"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/doctors/%d/availability", doctor.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var windows []handlers.AvailabilityWindow
	decode(t, w, &windows)
	require.Len(t, windows, 1)
	assert.Equal(t, tomorrow, windows[0].Date)
	assert.Equal(t, "09:00", windows[0].StartTime)
	assert.Equal(t, "17:00", windows[0].EndTime)
}
