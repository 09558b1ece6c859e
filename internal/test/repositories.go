package test

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// HabitRepositoryStub keeps habits in a map and enforces the creation limit.
type HabitRepositoryStub struct {
	Habits  map[uuid.UUID]*model.Habit
	Err     error
	Deleted []uuid.UUID
}

// NewHabitRepositoryStub constructs an empty HabitRepositoryStub.
func NewHabitRepositoryStub() *HabitRepositoryStub {
	return &HabitRepositoryStub{Habits: make(map[uuid.UUID]*model.Habit)}
}

// Create inserts a habit unless the owner reached limit.
func (s *HabitRepositoryStub) Create(ctx context.Context, owner model.Owner, draft model.HabitDraft, limit int) (*model.Habit, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	count := 0
	for _, h := range s.Habits {
		if h.UserID == owner.UserID() {
			count++
		}
	}
	if count >= limit {
		return nil, domainErrors.ErrHabitLimitReached
	}
	now := time.Now()
	h := &model.Habit{
		ID:         uuid.New(),
		UserID:     owner.UserID(),
		Name:       draft.Name,
		Color:      draft.Color,
		Difficulty: draft.Difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.Habits[h.ID] = h
	return h, nil
}

// GetByID returns stored habit.
func (s *HabitRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Habit, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	h, ok := s.Habits[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

// ListByOwner returns habits of owner.
func (s *HabitRepositoryStub) ListByOwner(ctx context.Context, owner model.Owner) ([]model.Habit, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Habit
	for _, h := range s.Habits {
		if h.UserID == owner.UserID() {
			result = append(result, *h)
		}
	}
	return result, nil
}

// Rename updates stored habit name.
func (s *HabitRepositoryStub) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Habit, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	h, ok := s.Habits[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	h.Name = name
	cp := *h
	return &cp, nil
}

// Delete removes stored habit.
func (s *HabitRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Habits[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Habits, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// RewardRepositoryStub records created rewards.
type RewardRepositoryStub struct {
	Items []model.Reward
	Err   error
}

// Create appends reward to Items.
func (s *RewardRepositoryStub) Create(ctx context.Context, reward *model.Reward) error {
	if s.Err != nil {
		return s.Err
	}
	reward.CreatedAt = time.Now()
	s.Items = append(s.Items, *reward)
	return nil
}

// ListByUser filters Items by owner.
func (s *RewardRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Reward, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Reward
	for _, r := range s.Items {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

// AchievementRepositoryStub returns configured achievements.
type AchievementRepositoryStub struct {
	Items []model.Achievement
	Err   error
}

// List returns a copy of Items.
func (s *AchievementRepositoryStub) List(ctx context.Context) ([]model.Achievement, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Items), nil
}

var (
	_ repository.UserRepository        = (*UserRepositoryStub)(nil)
	_ repository.HabitRepository       = (*HabitRepositoryStub)(nil)
	_ repository.RewardRepository      = (*RewardRepositoryStub)(nil)
	_ repository.AchievementRepository = (*AchievementRepositoryStub)(nil)
)
