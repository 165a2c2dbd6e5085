package models

// Department is static reference data, seeded once at startup.
type Department struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"uniqueIndex;not null"`
	Description string   `json:"description"`
	Doctors     []Doctor `json:"doctors,omitempty" gorm:"foreignKey:DepartmentID"`
}
