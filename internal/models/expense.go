package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Amount      float64        `json:"amount" gorm:"not null"`
	Category    string         `json:"category" gorm:"not null"`
	Date        time.Time      `json:"date" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	BillPath    string         `json:"bill_path"`
	EmployeeID  *uint          `json:"employee_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

const CategoryStaffSalaries = "Staff Salaries"

// ExpenseCategories is the fixed set of allowed expense categories.
var ExpenseCategories = []string{
	"Rent",
	"Electricity",
	"Water",
	"Raw Materials",
	"Tools & Equipment",
	CategoryStaffSalaries,
	"Transport",
	"Marketing",
	"Packaging",
	"Repairs & Maintenance",
	"Taxes & Fees",
	"Miscellaneous",
}

func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
