package repository

import (
	"context"

	"github.com/ManuelReschke/PropertiPro/app/models"
	"gorm.io/gorm"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// List returns reports, newest first. An empty status lists every status.
func (r *reportRepository) List(ctx context.Context, status string, limit int) ([]models.Report, error) {
	var reports []models.Report
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&reports).Error
	return reports, err
}

type groupCount struct {
	Key   string
	Count int64
}

// Stats aggregates the report table into ModerationStats
func (r *reportRepository) Stats(ctx context.Context) (*models.ModerationStats, error) {
	db := r.db.WithContext(ctx).Model(&models.Report{})
	stats := &models.ModerationStats{
		ReportsByType:     map[string]int64{},
		ReportsByPriority: map[string]int64{},
	}

	var byStatus []groupCount
	if err := db.Session(&gorm.Session{}).Select("status AS `key`, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, g := range byStatus {
		stats.TotalReports += g.Count
		switch g.Key {
		case models.ReportStatusPending:
			stats.PendingReports = g.Count
		case models.ReportStatusResolved:
			stats.ResolvedReports = g.Count
		case models.ReportStatusDismissed:
			stats.DismissedReports = g.Count
		}
	}

	var byType []groupCount
	if err := db.Session(&gorm.Session{}).Select("reason AS `key`, COUNT(*) AS count").Group("reason").Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, g := range byType {
		stats.ReportsByType[g.Key] = g.Count
	}

	var byPriority []groupCount
	if err := db.Session(&gorm.Session{}).Select("priority AS `key`, COUNT(*) AS count").Group("priority").Scan(&byPriority).Error; err != nil {
		return nil, err
	}
	for _, g := range byPriority {
		stats.ReportsByPriority[g.Key] = g.Count
	}

	var avgSeconds *float64
	err := db.Session(&gorm.Session{}).
		Select("AVG(TIMESTAMPDIFF(SECOND, created_at, resolved_at))").
		Where("resolved_at IS NOT NULL").
		Scan(&avgSeconds).Error
	if err != nil {
		return nil, err
	}
	if avgSeconds != nil {
		stats.AverageResolutionTime = *avgSeconds / 3600
	}

	return stats, nil
}
