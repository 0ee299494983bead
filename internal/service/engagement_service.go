package service

import (
	"Hustings/internal/api/config"
	"Hustings/internal/api/dto"
	"Hustings/internal/pkg/consts"
	"Hustings/internal/pkg/metrics"
	"Hustings/internal/pkg/ranking"
	"Hustings/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/singleflight"
)

// 多个请求共享的 CMS 拉取不跟随任何单个请求取消
const sharedFetchTimeout = 30 * time.Second

// Cacher 互动计数缓存所需的最小读写能力，写入按版本号比对
type Cacher interface {
	GetValue(ctx context.Context, key string) (string, error)
	GetVersion(ctx context.Context, versionKey string) (int64, error)
	BumpVersion(ctx context.Context, versionKey string, keys ...string) error
	SetIfVersion(ctx context.Context, key, versionKey string, version int64, value interface{}, expiration time.Duration) (bool, error)
}

type EngagementService interface {
	GetTopCandidates(ctx context.Context) ([]*dto.TopCandidateDTO, error)
	GetPanel(ctx context.Context) ([]*dto.PanelMemberDTO, error)
	GetEngagement(ctx context.Context) ([]*dto.CandidateEngagementDTO, error)
	Invalidate(ctx context.Context) error
	Refresh(ctx context.Context) (*dto.EngagementRefreshDTO, error)
}

type EngagementServiceImpl struct {
	candidateRepo repository.CandidateRepo
	cache         Cacher
	ttl           time.Duration
	metrics       *metrics.Manager
	group         singleflight.Group
}

// NewEngagementService cache 为 nil 或 TTL 不大于 0 时每次请求都直接读 CMS
func NewEngagementService(candidateRepo repository.CandidateRepo, cache Cacher, cfg config.CacheConfig, m *metrics.Manager) EngagementService {
	s := &EngagementServiceImpl{
		candidateRepo: candidateRepo,
		ttl:           cfg.EngagementTTL,
		metrics:       m,
	}
	if cache != nil && cfg.EngagementTTL > 0 {
		s.cache = cache
	}
	return s
}

func (s *EngagementServiceImpl) GetTopCandidates(ctx context.Context) ([]*dto.TopCandidateDTO, error) {
	candidates, err := s.scoredCandidates(ctx)
	if err != nil {
		return nil, err
	}

	top := ranking.TopCandidates(candidates)
	res := make([]*dto.TopCandidateDTO, 0, len(top))
	for i := range top {
		item := &dto.TopCandidateDTO{}
		_ = copier.Copy(item, &top[i])
		res = append(res, item)
	}
	return res, nil
}

func (s *EngagementServiceImpl) GetPanel(ctx context.Context) ([]*dto.PanelMemberDTO, error) {
	candidates, err := s.scoredCandidates(ctx)
	if err != nil {
		return nil, err
	}

	panel := ranking.SelectPanel(candidates)
	res := make([]*dto.PanelMemberDTO, 0, len(panel))
	for i := range panel {
		item := &dto.PanelMemberDTO{}
		_ = copier.Copy(item, &panel[i])
		res = append(res, item)
	}
	return res, nil
}

func (s *EngagementServiceImpl) GetEngagement(ctx context.Context) ([]*dto.CandidateEngagementDTO, error) {
	candidates, err := s.scoredCandidates(ctx)
	if err != nil {
		return nil, err
	}

	ranking.SortByScore(candidates)
	res := make([]*dto.CandidateEngagementDTO, 0, len(candidates))
	for i := range candidates {
		item := &dto.CandidateEngagementDTO{}
		_ = copier.Copy(item, &candidates[i])
		res = append(res, item)
	}
	return res, nil
}

// Invalidate 删除缓存的计数并自增版本，进行中的拉取不会再写回旧数据
func (s *EngagementServiceImpl) Invalidate(ctx context.Context) error {
	s.group.Forget(consts.EngagementTallyKey)
	if s.cache == nil {
		return nil
	}
	if err := s.cache.BumpVersion(ctx, consts.EngagementTallyVersionKey, consts.EngagementTallyKey); err != nil {
		log.ErrorContext(ctx, "invalidate engagement cache failed", "err", err)
		return UnExpectedError
	}
	log.InfoContext(ctx, "engagement cache invalidated")
	return nil
}

// Refresh 跳过缓存读取，重新拉取并写回
func (s *EngagementServiceImpl) Refresh(ctx context.Context) (*dto.EngagementRefreshDTO, error) {
	s.group.Forget(consts.EngagementTallyKey)
	tallies, cached, err := s.fetchTallies(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EngagementRefreshDTO{
		Candidates: len(tallies),
		Cached:     cached,
	}, nil
}

// scoredCandidates 分数每次都由计数重新计算，不进入缓存
func (s *EngagementServiceImpl) scoredCandidates(ctx context.Context) ([]ranking.CandidateEngagement, error) {
	tallies, err := s.loadTallies(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.ScoreAll(tallies), nil
}

func (s *EngagementServiceImpl) loadTallies(ctx context.Context) ([]ranking.Tally, error) {
	if tallies, ok := s.readCache(ctx); ok {
		return tallies, nil
	}

	ch := s.group.DoChan(consts.EngagementTallyKey, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		tallies, _, err := s.fetchTallies(fetchCtx)
		return tallies, err
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrCMSUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]ranking.Tally), nil
	}
}

func (s *EngagementServiceImpl) readCache(ctx context.Context) ([]ranking.Tally, bool) {
	if s.cache == nil {
		return nil, false
	}

	value, err := s.cache.GetValue(ctx, consts.EngagementTallyKey)
	if err != nil {
		s.metrics.ObserveCache(metrics.CacheError)
		log.WarnContext(ctx, "read engagement cache failed", "err", err)
		return nil, false
	}
	if value == "" {
		s.metrics.ObserveCache(metrics.CacheMiss)
		return nil, false
	}

	var tallies []ranking.Tally
	if err = json.Unmarshal([]byte(value), &tallies); err != nil {
		s.metrics.ObserveCache(metrics.CacheError)
		log.WarnContext(ctx, "decode engagement cache failed", "err", err)
		return nil, false
	}
	s.metrics.ObserveCache(metrics.CacheHit)
	return tallies, true
}

// fetchTallies 从 CMS 拉取并统计，缓存可用且期间未被失效时整体写入一次
func (s *EngagementServiceImpl) fetchTallies(ctx context.Context) ([]ranking.Tally, bool, error) {
	cacheable := s.cache != nil
	var version int64
	if cacheable {
		var err error
		// 版本号必须在读 CMS 之前取
		if version, err = s.cache.GetVersion(ctx, consts.EngagementTallyVersionKey); err != nil {
			log.WarnContext(ctx, "read engagement cache version failed", "err", err)
			cacheable = false
		}
	}

	profiles, err := s.candidateRepo.ListCandidateProfiles(ctx)
	if err != nil {
		log.ErrorContext(ctx, "fetch candidate profiles failed", "err", err)
		return nil, false, classifyFetchError(err)
	}

	tallies := ranking.CountAll(profiles)
	s.metrics.SetCandidates(len(tallies))

	if !cacheable {
		return tallies, false, nil
	}
	data, err := json.Marshal(tallies)
	if err != nil {
		log.ErrorContext(ctx, "encode engagement tallies failed", "err", err)
		return tallies, false, nil
	}
	written, err := s.cache.SetIfVersion(ctx, consts.EngagementTallyKey, consts.EngagementTallyVersionKey, version, data, s.ttl)
	if err != nil {
		log.WarnContext(ctx, "write engagement cache failed", "err", err)
		return tallies, false, nil
	}
	if !written {
		log.InfoContext(ctx, "engagement cache invalidated during fetch, skip write", "version", version)
	}
	return tallies, written, nil
}

// classifyFetchError 网络错误、非 2xx 以及其它读取失败都按 CMS 不可用处理
func classifyFetchError(err error) error {
	if errors.Is(err, repository.ErrMalformedRecord) {
		return fmt.Errorf("%w: %w", ErrCMSMalformed, err)
	}
	return fmt.Errorf("%w: %w", ErrCMSUnavailable, err)
}
