package storage

import "github.com/julianstephens/habitual/internal/models"

// MemStore is an in-memory Provider for tests and dry runs. SaveErr, when
// set, makes Save fail without touching the stored collection.
type MemStore struct {
	Habits  []models.Habit
	Seeded  bool
	SaveErr error

	SaveCalls int
}

func NewMemStore(habits ...models.Habit) *MemStore {
	return &MemStore{Habits: habits}
}

func (m *MemStore) InitializeIfNeeded() error {
	m.Seeded = true
	return nil
}

func (m *MemStore) Load() []models.Habit {
	out := make([]models.Habit, len(m.Habits))
	copy(out, m.Habits)
	return out
}

func (m *MemStore) Save(habits []models.Habit) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Habits = make([]models.Habit, len(habits))
	copy(m.Habits, habits)
	return nil
}

func (m *MemStore) Update(habit models.Habit, at int) error {
	if at < 0 || at >= len(m.Habits) {
		return nil
	}
	habits := m.Load()
	habits[at] = habit
	return m.Save(habits)
}

func (m *MemStore) DataPath() string {
	return ""
}

var _ Provider = (*MemStore)(nil)
