package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"aceup/models"
	"aceup/utils"
)

const defaultCacheTTL = 5 * time.Minute

// GetGroupAvailability retrieves a ranked availability result, serving from
// cache when the same (group, week, weekday, config) query was computed
// recently.
func (s *DefaultAvailabilityService) GetGroupAvailability(ctx context.Context, groupID string, weekStart time.Time, weekday time.Weekday, cfg models.EngineConfig) (models.AvailabilityResult, error) {
	cfg = cfg.Normalize()
	key, keyErr := s.cacheKey(groupID, weekStart, weekday, cfg)
	useCache := keyErr == nil && s.CacheClient != nil
	if useCache {
		if cached, cerr := s.CacheClient.Get(ctx, key).Result(); cerr == nil && cached != "" {
			var res models.AvailabilityResult
			if jerr := json.Unmarshal([]byte(cached), &res); jerr == nil {
				return res, nil
			}
			// Corrupt cache entries fall through to recomputation.
		}
	}

	res, err := s.compute(ctx, groupID, weekStart, weekday, cfg)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	if useCache {
		ttl := s.CacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		if payload, jerr := json.Marshal(res); jerr == nil {
			if cerr := s.CacheClient.Set(ctx, key, payload, ttl).Err(); cerr != nil {
				utils.GetLogger().Warn("failed to cache availability result",
					zap.String("groupID", groupID), zap.Error(cerr))
			}
		}
	}
	return res, nil
}

// GetGroupWeek computes all seven weekdays; each (group, weekday) pair is
// independent, so the days run concurrently.
func (s *DefaultAvailabilityService) GetGroupWeek(ctx context.Context, groupID string, weekStart time.Time, cfg models.EngineConfig) (map[time.Weekday]models.AvailabilityResult, error) {
	group, err := s.GroupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	weeklies, err := s.ScheduleRepo.GetByMemberIDs(ctx, group.MemberIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member schedules for group %s: %w", groupID, err)
	}

	type dayResult struct {
		day time.Weekday
		res models.AvailabilityResult
	}
	results := make(chan dayResult, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		go func(day time.Weekday) {
			members := expandAll(weeklies, day, weekStart)
			results <- dayResult{day: day, res: ComputeAvailability(members, day, cfg)}
		}(d)
	}

	week := make(map[time.Weekday]models.AvailabilityResult, 7)
	for i := 0; i < 7; i++ {
		r := <-results
		week[r.day] = r.res
	}
	return week, nil
}

// InvalidateGroup removes every cached availability entry for the group.
func (s *DefaultAvailabilityService) InvalidateGroup(ctx context.Context, groupID string) error {
	if s.CacheClient == nil {
		return nil
	}
	pattern := fmt.Sprintf("availability:%s:*", groupID)
	iter := s.CacheClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.CacheClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to drop cache key %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (s *DefaultAvailabilityService) compute(ctx context.Context, groupID string, weekStart time.Time, weekday time.Weekday, cfg models.EngineConfig) (models.AvailabilityResult, error) {
	group, err := s.GroupRepo.GetByID(ctx, groupID)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	if group == nil {
		return models.AvailabilityResult{}, ErrGroupNotFound
	}

	weeklies, err := s.ScheduleRepo.GetByMemberIDs(ctx, group.MemberIDs())
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to fetch member schedules for group %s: %w", groupID, err)
	}

	members := expandAll(weeklies, weekday, weekStart)
	return ComputeAvailability(members, weekday, cfg), nil
}

// expandAll turns stored weekly availabilities into the engine's per-day
// input. Members without a stored schedule simply contribute no data.
func expandAll(weeklies []models.WeeklyAvailability, weekday time.Weekday, weekStart time.Time) []models.MemberSchedule {
	members := make([]models.MemberSchedule, 0, len(weeklies))
	for _, w := range weeklies {
		members = append(members, ExpandDaySchedule(w, weekday, weekStart))
	}
	return members
}

// cacheKey hashes the query identity; the config is part of the key so
// callers with different quorum or duration settings never share entries.
func (s *DefaultAvailabilityService) cacheKey(groupID string, weekStart time.Time, weekday time.Weekday, cfg models.EngineConfig) (string, error) {
	cfgBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal engine config: %w", err)
	}
	return fmt.Sprintf("availability:%s:%s:%d:%x", groupID, weekStart.Format("2006-01-02"), weekday, cfgBytes), nil
}
