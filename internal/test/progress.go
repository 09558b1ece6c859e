package test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

// MemoryProgressStore is an in-memory ProgressTransactor. Sessions are
// serialized like they are by the user row lock in PostgreSQL, work on a
// private copy of the data and are committed only when they succeed.
type MemoryProgressStore struct {
	mu    sync.Mutex
	state memoryState

	// Errs injects failures keyed by ProgressStore method name.
	Errs map[string]error
	// SaveUserCalls counts SaveUser invocations across all sessions.
	SaveUserCalls int
	// Commits counts successful sessions.
	Commits int
}

type memoryState struct {
	users        map[int64]model.User
	habits       map[uuid.UUID]model.Habit
	achievements map[model.AchievementKind]model.Achievement
}

// NewMemoryProgressStore returns a store seeded with the achievement catalog.
func NewMemoryProgressStore() *MemoryProgressStore {
	s := &MemoryProgressStore{state: memoryState{
		users:        make(map[int64]model.User),
		habits:       make(map[uuid.UUID]model.Habit),
		achievements: make(map[model.AchievementKind]model.Achievement),
	}}
	for _, def := range model.AchievementCatalog() {
		s.state.achievements[def.Kind] = model.Achievement{
			Kind:      def.Kind,
			Title:     def.Title,
			Subtitle:  def.Subtitle,
			Value:     def.Value,
			ImageName: def.ImageName,
		}
	}
	return s
}

// PutUser stores a user.
func (s *MemoryProgressStore) PutUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID] = u
}

// PutHabit stores a habit, assigning an id when missing, and returns it.
func (s *MemoryProgressStore) PutHabit(h model.Habit) model.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	s.state.habits[h.ID] = h
	return h
}

// RemoveAchievement deletes a catalog entry to simulate a missing definition.
func (s *MemoryProgressStore) RemoveAchievement(kind model.AchievementKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.achievements, kind)
}

// User returns the committed state of a user.
func (s *MemoryProgressStore) User(id int64) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.users[id]
}

// Habit returns the committed state of a habit.
func (s *MemoryProgressStore) Habit(id uuid.UUID) model.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.habits[id]
}

// Achievement returns the committed state of an achievement.
func (s *MemoryProgressStore) Achievement(kind model.AchievementKind) model.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.state.achievements[kind]
	a.UsersWhoFinished = slices.Clone(a.UsersWhoFinished)
	return a
}

// WithinProgress runs fn on a private copy of the data and commits the copy
// only when fn succeeds.
func (s *MemoryProgressStore) WithinProgress(ctx context.Context, fn func(ctx context.Context, store repository.ProgressStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{parent: s, state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = tx.state
	s.Commits++
	return nil
}

func (st memoryState) clone() memoryState {
	out := memoryState{
		users:        maps.Clone(st.users),
		habits:       maps.Clone(st.habits),
		achievements: make(map[model.AchievementKind]model.Achievement, len(st.achievements)),
	}
	for k, a := range st.achievements {
		a.UsersWhoFinished = slices.Clone(a.UsersWhoFinished)
		out.achievements[k] = a
	}
	return out
}

type memoryTx struct {
	parent *MemoryProgressStore
	state  memoryState
}

func (tx *memoryTx) fail(method string) error {
	return tx.parent.Errs[method]
}

func (tx *memoryTx) LockUser(_ context.Context, userID int64) (*model.User, error) {
	if err := tx.fail("LockUser"); err != nil {
		return nil, err
	}
	u, ok := tx.state.users[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &u, nil
}

func (tx *memoryTx) SaveUser(_ context.Context, user *model.User) error {
	tx.parent.SaveUserCalls++
	if err := tx.fail("SaveUser"); err != nil {
		return err
	}
	if _, ok := tx.state.users[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	tx.state.users[user.ID] = *user
	return nil
}

func (tx *memoryTx) ListOwnerHabits(_ context.Context, owner model.Owner) ([]model.Habit, error) {
	if err := tx.fail("ListOwnerHabits"); err != nil {
		return nil, err
	}
	var result []model.Habit
	for _, h := range tx.state.habits {
		if h.UserID == owner.UserID() {
			result = append(result, h)
		}
	}
	slices.SortFunc(result, func(a, b model.Habit) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return result, nil
}

func (tx *memoryTx) SaveOwnerHabits(_ context.Context, owner model.Owner, habits []model.Habit) error {
	if err := tx.fail("SaveOwnerHabits"); err != nil {
		return err
	}
	for _, h := range habits {
		stored, ok := tx.state.habits[h.ID]
		if !ok || stored.UserID != owner.UserID() {
			continue
		}
		stored.Streak = h.Streak
		stored.IsFinished = h.IsFinished
		stored.UpdatedAt = h.UpdatedAt
		tx.state.habits[h.ID] = stored
	}
	return nil
}

func (tx *memoryTx) GetHabit(_ context.Context, id uuid.UUID) (*model.Habit, error) {
	if err := tx.fail("GetHabit"); err != nil {
		return nil, err
	}
	h, ok := tx.state.habits[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &h, nil
}

func (tx *memoryTx) MarkHabitFinished(_ context.Context, owner model.Owner, habit *model.Habit) error {
	if err := tx.fail("MarkHabitFinished"); err != nil {
		return err
	}
	stored, ok := tx.state.habits[habit.ID]
	if !ok || stored.UserID != owner.UserID() || stored.IsFinished {
		return domainErrors.ErrAlreadyCompleted
	}
	stored.IsFinished = true
	stored.Streak = habit.Streak
	stored.LastDateFinished = habit.LastDateFinished
	stored.UpdatedAt = habit.UpdatedAt
	tx.state.habits[habit.ID] = stored
	return nil
}

func (tx *memoryTx) AddAchievementHolder(_ context.Context, kind model.AchievementKind, userID int64) (int64, error) {
	if err := tx.fail("AddAchievementHolder"); err != nil {
		return 0, err
	}
	a, ok := tx.state.achievements[kind]
	if !ok {
		return 0, domainErrors.ErrUnknownAchievement
	}
	if a.HeldBy(userID) {
		return 0, nil
	}
	a.UsersWhoFinished = append(a.UsersWhoFinished, userID)
	tx.state.achievements[kind] = a
	return a.Value, nil
}

// ClockStub returns a fixed instant that tests can move.
type ClockStub struct {
	mu  sync.Mutex
	now time.Time
}

// NewClockStub returns a clock frozen at now.
func NewClockStub(now time.Time) *ClockStub {
	return &ClockStub{now: now}
}

// Now returns the current fake time.
func (c *ClockStub) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *ClockStub) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *ClockStub) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var _ repository.ProgressTransactor = (*MemoryProgressStore)(nil)
var _ repository.ProgressStore = (*memoryTx)(nil)
