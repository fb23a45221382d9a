package usecase

import (
	"context"

	"powar-data/internal/domain/analytics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AnalyticsUsecase interface {
	Summary(ctx context.Context) (analytics.Summary, error)
}

type Analytics struct {
	repo analytics.Repository
	log  *zap.Logger
}

func NewAnalyticsUsecase(repo analytics.Repository, logger *zap.Logger) *Analytics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analytics{repo: repo, log: logger}
}

// Summary runs the nine aggregate queries concurrently. The first failure
// cancels the rest and is returned; there is no partial summary.
func (u *Analytics) Summary(ctx context.Context) (analytics.Summary, error) {
	var out analytics.Summary

	counts := map[analytics.Metric]*int64{
		analytics.TotalUsers:       &out.TotalUsers,
		analytics.TotalProfiles:    &out.TotalProfiles,
		analytics.TotalStates:      &out.TotalStates,
		analytics.TotalDistricts:   &out.TotalDistricts,
		analytics.TotalTahsils:     &out.TotalTahsils,
		analytics.TotalProfessions: &out.TotalProfessions,
	}
	groups := map[analytics.Metric]*[]analytics.GroupCount{
		analytics.UsersByRole:       &out.UsersByRole,
		analytics.UsersByGender:     &out.UsersByGender,
		analytics.UsersByProfession: &out.UsersByProfession,
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, m := range analytics.CountMetrics {
		dst := counts[m]
		g.Go(func() error {
			n, err := u.repo.Count(gctx, m)
			if err != nil {
				u.log.Error("analytics metric failed", zap.String("metric", string(m)), zap.Error(err))
				return err
			}
			*dst = n
			return nil
		})
	}

	for _, m := range analytics.GroupMetrics {
		dst := groups[m]
		g.Go(func() error {
			items, err := u.repo.GroupCount(gctx, m)
			if err != nil {
				u.log.Error("analytics metric failed", zap.String("metric", string(m)), zap.Error(err))
				return err
			}
			*dst = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return analytics.Summary{}, err
	}

	u.log.Info("fetched analytics data")
	return out, nil
}
