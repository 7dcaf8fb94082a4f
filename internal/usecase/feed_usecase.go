package usecase

import (
	"context"
	"fmt"
	"sort"

	"recipebook/internal/entity"
	"recipebook/internal/repo/persistent"
	"recipebook/internal/view"
	"recipebook/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Per-kind pre-limit before the global cut: bounded query cost over exact
// global ranking. One very active followed account can fill its own kind's
// window but cannot starve the other kinds out of the fetch.
const (
	feedPerKindLimit = 10
	feedTotalLimit   = 20
)

type FeedUseCase interface {
	GetFeed(ctx context.Context, viewerID string) ([]view.FeedItem, error)
}

type feedUseCase struct {
	feedRepo   persistent.FeedRepository
	socialRepo persistent.SocialRepository
	logger     *logger.Logger
}

func NewFeedUseCase(feedRepo persistent.FeedRepository, socialRepo persistent.SocialRepository, logger *logger.Logger) FeedUseCase {
	return &feedUseCase{
		feedRepo:   feedRepo,
		socialRepo: socialRepo,
		logger:     logger,
	}
}

// feedEntry keeps the source row id alongside the projected item so the
// merge sort has a deterministic tiebreak for equal timestamps.
type feedEntry struct {
	id   string
	item view.FeedItem
}

func (uc *feedUseCase) GetFeed(ctx context.Context, viewerID string) ([]view.FeedItem, error) {
	if viewerID == "" {
		return nil, entity.ErrUnauthorized
	}

	followedIDs, err := uc.socialRepo.FollowedIDs(viewerID)
	if err != nil {
		uc.logger.Error("Failed to resolve followed set for %s: %v", viewerID, err)
		return nil, fmt.Errorf("failed to build feed: %w", err)
	}

	// Following nobody is a normal state, not an error. Returning here also
	// keeps an empty IN-filter from ever reaching the store, where it could
	// read as "no filter".
	if len(followedIDs) == 0 {
		return []view.FeedItem{}, nil
	}

	var (
		recipes  []*entity.Recipe
		likes    []*entity.Like
		comments []*entity.Comment
		follows  []*entity.Follow
	)

	// The four fetches are independent reads; run them concurrently and let
	// the first failure cancel the rest. Any failure aborts the whole feed.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipes, err = uc.feedRepo.RecentRecipes(gctx, followedIDs, viewerID, feedPerKindLimit)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = uc.feedRepo.RecentLikes(gctx, followedIDs, viewerID, feedPerKindLimit)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = uc.feedRepo.RecentComments(gctx, followedIDs, viewerID, feedPerKindLimit)
		return err
	})
	g.Go(func() error {
		var err error
		follows, err = uc.feedRepo.RecentFollows(gctx, followedIDs, viewerID, feedPerKindLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("Feed aggregation failed for %s: %v", viewerID, err)
		return nil, fmt.Errorf("failed to build feed: %w", err)
	}

	entries := make([]feedEntry, 0, len(recipes)+len(likes)+len(comments)+len(follows))
	for _, r := range recipes {
		entries = append(entries, feedEntry{id: r.ID, item: view.FeedItem{
			Type:      entity.FeedKindRecipe,
			CreatedAt: r.CreatedAt,
			Data:      view.Recipe(r, viewerID),
		}})
	}
	for _, l := range likes {
		entries = append(entries, feedEntry{id: l.ID, item: view.FeedItem{
			Type:      entity.FeedKindLike,
			CreatedAt: l.CreatedAt,
			Data:      view.Like(l),
		}})
	}
	for _, c := range comments {
		entries = append(entries, feedEntry{id: c.ID, item: view.FeedItem{
			Type:      entity.FeedKindComment,
			CreatedAt: c.CreatedAt,
			Data:      view.Comment(c, viewerID),
		}})
	}
	for _, f := range follows {
		entries = append(entries, feedEntry{id: f.ID, item: view.FeedItem{
			Type:      entity.FeedKindFollow,
			CreatedAt: f.CreatedAt,
			Data:      view.Follow(f),
		}})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].item.CreatedAt.Equal(entries[j].item.CreatedAt) {
			return entries[i].item.CreatedAt.After(entries[j].item.CreatedAt)
		}
		return entries[i].id > entries[j].id
	})

	if len(entries) > feedTotalLimit {
		entries = entries[:feedTotalLimit]
	}

	items := make([]view.FeedItem, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items, nil
}
