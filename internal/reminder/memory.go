package reminder

// Alarm is one pending recurring reminder.
type Alarm struct {
	ID      string
	Hour    int
	Minute  int
	Message string
}

// MemoryService keeps pending alarms in process. It backs tests and the
// remind --dry-run path.
type MemoryService struct {
	alarms map[string]Alarm
	order  []string

	ScheduleErr error
}

func NewMemoryService() *MemoryService {
	return &MemoryService{alarms: map[string]Alarm{}}
}

func (m *MemoryService) Schedule(id string, hour, minute int, message string) error {
	if m.ScheduleErr != nil {
		return m.ScheduleErr
	}
	if _, exists := m.alarms[id]; !exists {
		m.order = append(m.order, id)
	}
	m.alarms[id] = Alarm{ID: id, Hour: hour, Minute: minute, Message: message}
	return nil
}

func (m *MemoryService) CancelAll() error {
	m.alarms = map[string]Alarm{}
	m.order = nil
	return nil
}

// Pending returns the alarms in scheduling order.
func (m *MemoryService) Pending() []Alarm {
	out := make([]Alarm, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.alarms[id])
	}
	return out
}

var _ AlarmService = (*MemoryService)(nil)
