package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReportStatusPending   = "pending"
	ReportStatusReviewing = "reviewing"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

const (
	ReportPriorityLow    = "low"
	ReportPriorityMedium = "medium"
	ReportPriorityHigh   = "high"
	ReportPriorityUrgent = "urgent"
)

const (
	ReportReasonSpam          = "spam"
	ReportReasonFraud         = "fraud"
	ReportReasonInappropriate = "inappropriate"
	ReportReasonDuplicate     = "duplicate"
	ReportReasonWrongInfo     = "wrong_info"
	ReportReasonOther         = "other"
)

const (
	ModerationActionApprove = "approve"
	ModerationActionReject  = "reject"
	ModerationActionSuspend = "suspend"
	ModerationActionDelete  = "delete"
	ModerationActionWarn    = "warn"
)

// ReportedProperty is the listing snapshot taken when the report was filed
type ReportedProperty struct {
	ID        string `gorm:"type:char(36);index" json:"id"`
	Title     string `gorm:"type:varchar(150)" json:"title"`
	Image     string `gorm:"type:text" json:"image,omitempty"`
	OwnerID   uint   `json:"owner_id"`
	OwnerName string `gorm:"type:varchar(150)" json:"owner_name"`
}

// ReporterInfo identifies who filed a report
type ReporterInfo struct {
	ID    *uint  `json:"id,omitempty"`
	Name  string `gorm:"type:varchar(150)" json:"name"`
	Email string `gorm:"type:varchar(200)" json:"email"`
}

// Report is a user complaint about a listing, worked by the moderation service
type Report struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Property     ReportedProperty `gorm:"embedded;embeddedPrefix:property_" json:"property"`
	Reporter     ReporterInfo     `gorm:"embedded;embeddedPrefix:reporter_" json:"reporter"`
	Reason       string           `gorm:"type:varchar(30);not null;index" json:"reason"`
	Description  string           `gorm:"type:text" json:"description"`
	Status       string           `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Priority     string           `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	ResolvedByID *uint            `gorm:"index" json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time       `json:"resolved_at,omitempty"`
	Resolution   string           `gorm:"type:text" json:"resolution,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}

// ModerationAction records a single administrative decision
type ModerationAction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID string    `gorm:"type:char(36);index;not null" json:"property_id"`
	ReportID   *uint     `gorm:"index" json:"report_id,omitempty"`
	AdminID    uint      `gorm:"index;not null" json:"admin_id"`
	Action     string    `gorm:"type:varchar(20);not null" json:"action"`
	Reason     string    `gorm:"type:text" json:"reason"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ModerationStats aggregates the report backlog
type ModerationStats struct {
	TotalReports      int64            `json:"total_reports"`
	PendingReports    int64            `json:"pending_reports"`
	ResolvedReports   int64            `json:"resolved_reports"`
	DismissedReports  int64            `json:"dismissed_reports"`
	ReportsByType     map[string]int64 `json:"reports_by_type"`
	ReportsByPriority map[string]int64 `json:"reports_by_priority"`
	// AverageResolutionTime in hours over resolved and dismissed reports
	AverageResolutionTime float64 `json:"average_resolution_time"`
}
