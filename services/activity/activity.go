// File: services/activity/activity.go
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	activityRepo "campwise/database/repository/activity"
	"campwise/models"
	"campwise/utils"
)

const summaryCacheTTL = 10 * time.Minute

// ActivityService creates activities and serves cached read-only summaries.
type ActivityService interface {
	Create(ctx context.Context, groupID string, req models.CreateActivityRequest) (*models.Activity, error)
	GetSummary(ctx context.Context, activityID string) (*models.ActivitySummary, error)
}

// DefaultActivityService caches summaries in Redis keyed by activity id;
// slots routinely reference activities not yet resident in a client's memory
// and the summary is immutable enough for a short TTL.
type DefaultActivityService struct {
	Repo  activityRepo.ActivityRepository
	Cache *redis.Client
}

func (s *DefaultActivityService) Create(ctx context.Context, groupID string, req models.CreateActivityRequest) (*models.Activity, error) {
	act := models.Activity{
		GroupID:     groupID,
		Title:       req.Title,
		Status:      req.Status,
		Description: req.Description,
	}
	created, err := s.Repo.Create(ctx, act)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return created, nil
}

func (s *DefaultActivityService) GetSummary(ctx context.Context, activityID string) (*models.ActivitySummary, error) {
	key := cacheKey(activityID)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var summary models.ActivitySummary
			if err := json.Unmarshal([]byte(data), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	act, err := s.Repo.GetByID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("activity not found: %w", err)
	}
	summary := act.Summary()

	if s.Cache != nil {
		data, err := json.Marshal(summary)
		if err == nil {
			if err := s.Cache.Set(ctx, key, data, summaryCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache activity summary",
					zap.String("activityID", activityID), zap.Error(err))
			}
		}
	}
	return &summary, nil
}

func cacheKey(activityID string) string {
	return "activity:summary:" + activityID
}
