package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages branches and payroll
	RoleHR       Role = "hr"       // Approves leave, runs reports
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           uuid.UUID
	BranchID     *uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Salary       decimal.Decimal
	LeaveBalance float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	BranchName *string
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin checks if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}
