package entities

import (
	"time"
)

// UserRole representa o papel do usuário no sistema
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
)

// UserRoles lista os papéis conhecidos
var UserRoles = []UserRole{RoleAdmin, RoleUser, RoleModerator}

// Valid informa se o papel pertence ao vocabulário
func (r UserRole) Valid() bool {
	for _, known := range UserRoles {
		if r == known {
			return true
		}
	}
	return false
}

// UserStatus representa o estado da conta
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusSuspended UserStatus = "suspended"
)

// UserStatuses lista os estados conhecidos
var UserStatuses = []UserStatus{StatusActive, StatusInactive, StatusSuspended}

type UserPreferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

type UserMetrics struct {
	ConversionRate         float64 `json:"conversionRate"`
	AverageSessionDuration int     `json:"averageSessionDuration"`
	TotalRevenue           float64 `json:"totalRevenue"`
}

type User struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Avatar         string          `json:"avatar"`
	Role           UserRole        `json:"role"`
	Status         UserStatus      `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastLoginAt    *time.Time      `json:"lastLoginAt,omitempty"`
	TotalSessions  int             `json:"totalSessions"`
	TotalTimeSpent int             `json:"totalTimeSpent"` // minutos
	Preferences    UserPreferences `json:"preferences"`
	Metrics        UserMetrics     `json:"metrics"`
}

// IsActive verifica se a conta está ativa
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
