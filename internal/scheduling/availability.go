package scheduling

import (
	"errors"
	"time"

	"hospital-gin/internal/models"

	"gorm.io/gorm"
)

// DaySelection is one day of a doctor's weekly availability form: either
// unavailable, or a start/end window.
type DaySelection struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Available bool   `json:"available"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DayWindow is one day of the editing view: the calendar day plus the stored
// window, if any.
type DayWindow struct {
	Date    string                     `json:"date"`
	DayName string                     `json:"day_name"`
	Window  *models.DoctorAvailability `json:"window"`
}

// Horizon returns the inclusive date bounds [today, today+6] of the rolling
// window.
func Horizon(today time.Time) (from, to string) {
	return today.Format(models.DateLayout), today.AddDate(0, 0, HorizonDays-1).Format(models.DateLayout)
}

// ReplaceWeek atomically rewrites a doctor's availability for the rolling
// window: all rows with dates in [today, today+6] are deleted, then one row is
// inserted per selection marked available. Selections outside the window are
// ignored. Rows beyond the window are left untouched.
func (s *Service) ReplaceWeek(doctorID uint, today time.Time, days []DaySelection) error {
	if err := s.requireDoctor(doctorID); err != nil {
		return err
	}

	from, to := Horizon(today)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ? AND date >= ? AND date <= ?", doctorID, from, to).
			Delete(&models.DoctorAvailability{}).Error; err != nil {
			return err
		}

		var rows []models.DoctorAvailability
		for _, day := range days {
			if !day.Available || day.Date < from || day.Date > to {
				continue
			}
			rows = append(rows, models.DoctorAvailability{
				DoctorID:    doctorID,
				Date:        day.Date,
				StartTime:   day.StartTime,
				EndTime:     day.EndTime,
				IsAvailable: true,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// Week returns the doctor's available windows inside [today, today+6],
// ordered by date ascending. Unavailable rows are never returned.
func (s *Service) Week(doctorID uint, today time.Time) ([]models.DoctorAvailability, error) {
	from, to := Horizon(today)
	var rows []models.DoctorAvailability
	err := s.db.
		Where("doctor_id = ? AND date >= ? AND date <= ? AND is_available = ?", doctorID, from, to, true).
		Order("date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// WeekTemplate returns one entry per day of the rolling window with the
// stored window attached where one exists, for the availability editing form.
func (s *Service) WeekTemplate(doctorID uint, today time.Time) ([]DayWindow, error) {
	from, to := Horizon(today)
	var rows []models.DoctorAvailability
	err := s.db.
		Where("doctor_id = ? AND date >= ? AND date <= ?", doctorID, from, to).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.DoctorAvailability, len(rows))
	for i := range rows {
		byDate[rows[i].Date] = &rows[i]
	}

	days := make([]DayWindow, 0, HorizonDays)
	for i := 0; i < HorizonDays; i++ {
		day := today.AddDate(0, 0, i)
		key := day.Format(models.DateLayout)
		days = append(days, DayWindow{
			Date:    key,
			DayName: day.Format("Monday, January 02, 2006"),
			Window:  byDate[key],
		})
	}
	return days, nil
}

func (s *Service) requireDoctor(doctorID uint) error {
	var doctor models.Doctor
	if err := s.db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
