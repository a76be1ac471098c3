package sqlite

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity and writes the generated ID back.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// FindByID retrieves one activity by surrogate key, active or not.
func (repo *activityRepository) FindByID(ctx context.Context, id uint) (*entity.Activity, error) {
	var activityM model.ActivityModel

	err := repo.db.WithContext(ctx).First(&activityM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// ListByUser returns the user's active activities ordered by creation.
func (repo *activityRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Activity, error) {
	var activityMs []model.ActivityModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id ASC").
		Find(&activityMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for i := range activityMs {
		activities = append(activities, toActivityDomain(&activityMs[i]))
	}

	return activities, nil
}

// Update persists edits to an existing activity.
func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", activity.ID).
		Updates(map[string]any{
			"name":         activity.Name,
			"description":  activity.Description,
			"icon":         activity.Icon,
			"target_value": activity.TargetValue,
			"target_unit":  activity.TargetUnit,
			"category":     activity.Category,
			"is_active":    activity.Active,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// SoftDelete flips the activity's active flag. The WHERE clause binds the
// given id, so no other activity is touched.
func (repo *activityRepository) SoftDelete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// UpsertLog inserts or replaces the log row keyed on (activity_id, log_date).
// Re-logging the same day overwrites the prior record in place.
func (repo *activityRepository) UpsertLog(ctx context.Context, log *entity.ActivityLog) error {
	logM := fromLogDomain(log)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "activity_id"},
				{Name: "log_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"completed", "actual_value", "notes", "updated_at",
			}),
		}).
		Create(logM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert activity log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// LogsForDate returns the user's logs for exactly one calendar day, joined
// with their parent activity.
func (repo *activityRepository) LogsForDate(ctx context.Context, userID uint, date string) ([]*entity.LoggedActivity, error) {
	type joinedRow struct {
		model.ActivityLogModel
		ActivityName        string
		ActivityDescription string
		ActivityIcon        string
		ActivityTargetValue float64
		ActivityTargetUnit  string
		ActivityCategory    string
		ActivityIsActive    bool
	}

	var rows []joinedRow

	err := repo.db.WithContext(ctx).
		Table("activity_logs").
		Select(`activity_logs.*,
			activities.name AS activity_name,
			activities.description AS activity_description,
			activities.icon AS activity_icon,
			activities.target_value AS activity_target_value,
			activities.target_unit AS activity_target_unit,
			activities.category AS activity_category,
			activities.is_active AS activity_is_active`).
		Joins("INNER JOIN activities ON activities.id = activity_logs.activity_id").
		Where("activity_logs.user_id = ? AND activity_logs.log_date = ?", userID, date).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logs for date")
	}

	logged := make([]*entity.LoggedActivity, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		logged = append(logged, &entity.LoggedActivity{
			Log: *toLogDomain(&row.ActivityLogModel),
			Activity: entity.Activity{
				ID:          row.ActivityID,
				UserID:      row.UserID,
				Name:        row.ActivityName,
				Description: row.ActivityDescription,
				Icon:        row.ActivityIcon,
				TargetValue: row.ActivityTargetValue,
				TargetUnit:  row.ActivityTargetUnit,
				Category:    row.ActivityCategory,
				Active:      row.ActivityIsActive,
			},
		})
	}

	return logged, nil
}

// Stats aggregates completion over [startDate, endDate] per active activity.
// The LEFT JOIN keeps activities with zero logs in range; their rate is 0.
// Soft-deleted activities are excluded even for ranges predating their
// deactivation, matching the product's current behavior.
func (repo *activityRepository) Stats(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.ActivityStat, error) {
	type statRow struct {
		ActivityID     uint
		Name           string
		Category       string
		CompletedCount int
		TotalCount     int
	}

	var rows []statRow

	err := repo.db.WithContext(ctx).
		Table("activities").
		Select(`activities.id AS activity_id,
			activities.name AS name,
			activities.category AS category,
			COALESCE(SUM(CASE WHEN activity_logs.completed THEN 1 ELSE 0 END), 0) AS completed_count,
			COUNT(activity_logs.id) AS total_count`).
		Joins("LEFT JOIN activity_logs ON activity_logs.activity_id = activities.id AND activity_logs.log_date BETWEEN ? AND ?", startDate, endDate).
		Where("activities.user_id = ? AND activities.is_active = ?", userID, true).
		Group("activities.id, activities.name, activities.category").
		Order("activities.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate activity stats")
	}

	stats := make([]*entity.ActivityStat, 0, len(rows))
	for _, row := range rows {
		stat := &entity.ActivityStat{
			ActivityID:     row.ActivityID,
			Name:           row.Name,
			Category:       row.Category,
			CompletedCount: row.CompletedCount,
			TotalCount:     row.TotalCount,
		}
		if row.TotalCount > 0 {
			stat.CompletionRate = float64(row.CompletedCount) / float64(row.TotalCount)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

// --- mapping between persistence models and domain entities ---

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	return &entity.Activity{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		TargetValue: m.TargetValue,
		TargetUnit:  m.TargetUnit,
		Category:    m.Category,
		Active:      m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromActivityDomain(activity *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:          activity.ID,
		UserID:      activity.UserID,
		Name:        activity.Name,
		Description: activity.Description,
		Icon:        activity.Icon,
		TargetValue: activity.TargetValue,
		TargetUnit:  activity.TargetUnit,
		Category:    activity.Category,
		IsActive:    activity.Active,
	}
}

func toLogDomain(m *model.ActivityLogModel) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:          m.ID,
		ActivityID:  m.ActivityID,
		UserID:      m.UserID,
		LogDate:     m.LogDate,
		Completed:   m.Completed,
		ActualValue: m.ActualValue,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromLogDomain(log *entity.ActivityLog) *model.ActivityLogModel {
	return &model.ActivityLogModel{
		ID:          log.ID,
		ActivityID:  log.ActivityID,
		UserID:      log.UserID,
		LogDate:     log.LogDate,
		Completed:   log.Completed,
		ActualValue: log.ActualValue,
		Notes:       log.Notes,
	}
}
