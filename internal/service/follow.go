package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
)

// FollowService maintains the follow graph. A follow edge lives on both
// endpoints: the follower's following list and the followee's follower list
// must stay mutual for every pair of users.
type FollowService struct {
	users store.UserStore
}

// NewFollowService creates a new FollowService instance.
func NewFollowService(users store.UserStore) *FollowService {
	return &FollowService{users: users}
}

// Follow records that userID now follows targetID, writing the edge to both
// rows as one logical unit.
func (s *FollowService) Follow(ctx context.Context, userID, targetID uuid.UUID) (*models.User, error) {
	if userID == targetID {
		return nil, ErrSelfFollow
	}
	if _, err := s.users.Get(ctx, targetID); err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, userID, func(u *models.User) error {
		if u.FollowingList.Contains(targetID) {
			return ErrAlreadyExists
		}
		u.FollowingList = u.FollowingList.Add(targetID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = completePaired("follow", "user "+userID.String(), "user "+targetID.String(), func() error {
		_, err := s.users.Update(ctx, targetID, func(t *models.User) error {
			t.FollowerList = t.FollowerList.Add(userID)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Unfollow removes the edge from both rows; it fails with store.ErrNotFound
// when the edge does not exist.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetID uuid.UUID) (*models.User, error) {
	if userID == targetID {
		return nil, ErrSelfFollow
	}

	updated, err := s.users.Update(ctx, userID, func(u *models.User) error {
		var removed bool
		if u.FollowingList, removed = u.FollowingList.Remove(targetID); !removed {
			return store.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = completePaired("unfollow", "user "+userID.String(), "user "+targetID.String(), func() error {
		_, err := s.users.Update(ctx, targetID, func(t *models.User) error {
			t.FollowerList, _ = t.FollowerList.Remove(userID)
			return nil
		})
		if errors.Is(err, store.ErrNotFound) {
			// Target account is gone, so there is no follower list left to
			// clean up.
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Following resolves the users that userID follows. Dangling ids are skipped.
func (s *FollowService) Following(ctx context.Context, userID uuid.UUID) ([]*models.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.FollowingList)
}

// Followers resolves the users that follow userID.
func (s *FollowService) Followers(ctx context.Context, userID uuid.UUID) ([]*models.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.FollowerList)
}

func (s *FollowService) resolve(ctx context.Context, ids models.UUIDList) ([]*models.User, error) {
	result := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, nil
}
