package usecases

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/infrastructure/email"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

// =====================================================================
// Reminder repository
// =====================================================================

type mockReminderRepository struct {
	mu        sync.Mutex
	reminders map[uint]*reminder.Reminder
	generated map[string]bool
	nextID    uint

	ListPendingFunc    func(ctx context.Context) ([]*reminder.Reminder, error)
	CreateGeneratedErr map[uint]error // keyed by employee id
	UpdateErr          error
}

func newMockReminderRepository(reminders ...*reminder.Reminder) *mockReminderRepository {
	m := &mockReminderRepository{
		reminders: make(map[uint]*reminder.Reminder),
		generated: make(map[string]bool),
		nextID:    1000,
	}
	for _, r := range reminders {
		m.reminders[r.ID()] = r
	}
	return m
}

func (m *mockReminderRepository) Create(ctx context.Context, r *reminder.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := r.SetID(m.nextID); err != nil {
		return err
	}
	m.reminders[r.ID()] = r
	return nil
}

func (m *mockReminderRepository) CreateGenerated(ctx context.Context, r *reminder.Reminder) (bool, error) {
	if err, ok := m.CreateGeneratedErr[r.EmployeeID()]; ok {
		return false, err
	}
	m.mu.Lock()
	key := fmt.Sprintf("%d:%d:%s", *r.RecurringID(), r.EmployeeID(), biztime.FormatDate(r.DueDate()))
	if m.generated[key] {
		m.mu.Unlock()
		return false, nil
	}
	m.generated[key] = true
	m.mu.Unlock()
	return true, m.Create(ctx, r)
}

func (m *mockReminderRepository) GetByID(ctx context.Context, id uint) (*reminder.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reminders[id]
	if !ok {
		return nil, reminder.ErrReminderNotFound
	}
	return r, nil
}

func (m *mockReminderRepository) Update(ctx context.Context, r *reminder.Reminder) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reminders[r.ID()]; !ok {
		return reminder.ErrReminderNotFound
	}
	m.reminders[r.ID()] = r
	return nil
}

func (m *mockReminderRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reminders[id]; !ok {
		return reminder.ErrReminderNotFound
	}
	delete(m.reminders, id)
	return nil
}

func (m *mockReminderRepository) List(ctx context.Context, filter reminder.ListFilter) ([]*reminder.Reminder, int64, error) {
	all := m.sorted()
	out := make([]*reminder.Reminder, 0, len(all))
	for _, r := range all {
		if filter.Completed != nil && r.IsCompleted() != *filter.Completed {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID() != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (m *mockReminderRepository) ListPending(ctx context.Context) ([]*reminder.Reminder, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx)
	}
	var out []*reminder.Reminder
	for _, r := range m.sorted() {
		if !r.IsCompleted() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReminderRepository) SaveCompletion(ctx context.Context, r *reminder.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders[r.ID()] = r
	return nil
}

func (m *mockReminderRepository) CountByReminderType(ctx context.Context, typeID uint) (int64, error) {
	var n int64
	for _, r := range m.sorted() {
		if r.ReminderTypeID() == typeID {
			n++
		}
	}
	return n, nil
}

func (m *mockReminderRepository) sorted() []*reminder.Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*reminder.Reminder, 0, len(m.reminders))
	for _, r := range m.reminders {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// =====================================================================
// Reminder type repository
// =====================================================================

type mockReminderTypeRepository struct {
	types  map[uint]*reminder.ReminderType
	nextID uint

	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*reminder.ReminderType, error)
}

func newMockReminderTypeRepository(types ...*reminder.ReminderType) *mockReminderTypeRepository {
	m := &mockReminderTypeRepository{types: make(map[uint]*reminder.ReminderType), nextID: 100}
	for _, t := range types {
		m.types[t.ID()] = t
	}
	return m
}

func (m *mockReminderTypeRepository) Create(ctx context.Context, t *reminder.ReminderType) error {
	m.nextID++
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.types[t.ID()] = t
	return nil
}

func (m *mockReminderTypeRepository) GetByID(ctx context.Context, id uint) (*reminder.ReminderType, error) {
	t, ok := m.types[id]
	if !ok {
		return nil, reminder.ErrReminderTypeNotFound
	}
	return t, nil
}

func (m *mockReminderTypeRepository) GetByName(ctx context.Context, name string) (*reminder.ReminderType, error) {
	for _, t := range m.types {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, reminder.ErrReminderTypeNotFound
}

func (m *mockReminderTypeRepository) Update(ctx context.Context, t *reminder.ReminderType) error {
	m.types[t.ID()] = t
	return nil
}

func (m *mockReminderTypeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.types[id]; !ok {
		return reminder.ErrReminderTypeNotFound
	}
	delete(m.types, id)
	return nil
}

func (m *mockReminderTypeRepository) List(ctx context.Context) ([]*reminder.ReminderType, error) {
	out := make([]*reminder.ReminderType, 0, len(m.types))
	for _, t := range m.types {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockReminderTypeRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*reminder.ReminderType, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	out := make(map[uint]*reminder.ReminderType)
	for _, id := range ids {
		if t, ok := m.types[id]; ok {
			out[id] = t
		}
	}
	return out, nil
}

// =====================================================================
// Dispatch log repository
// =====================================================================

// mockDispatchLogRepository enforces the claim key uniqueness the way the
// database unique index does.
type mockDispatchLogRepository struct {
	mu     sync.Mutex
	logs   []*reminder.DispatchLog
	claims map[string]bool
	nextID uint

	ClaimFunc func(ctx context.Context, l *reminder.DispatchLog) error
}

func newMockDispatchLogRepository() *mockDispatchLogRepository {
	return &mockDispatchLogRepository{claims: make(map[string]bool)}
}

func (m *mockDispatchLogRepository) Claim(ctx context.Context, l *reminder.DispatchLog) error {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, l)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := l.ClaimKey()
	if m.claims[key] {
		return reminder.ErrDispatchAlreadyClaimed
	}
	m.claims[key] = true
	return m.insert(l)
}

func (m *mockDispatchLogRepository) Create(ctx context.Context, l *reminder.DispatchLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insert(l)
}

func (m *mockDispatchLogRepository) Finalize(ctx context.Context, l *reminder.DispatchLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.Status() == vo.DispatchStatusFailed {
		delete(m.claims, reminder.ClaimKeyFor(l.ReminderID(), l.DaysBefore()))
	}
	return nil
}

func (m *mockDispatchLogRepository) HasSuccessfulDispatch(ctx context.Context, reminderID uint, daysBefore int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.logs {
		if l.ReminderID() == reminderID && l.DaysBefore() == daysBefore && l.Status() == vo.DispatchStatusSent {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDispatchLogRepository) ListByReminder(ctx context.Context, reminderID uint) ([]*reminder.DispatchLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*reminder.DispatchLog
	for _, l := range m.logs {
		if l.ReminderID() == reminderID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockDispatchLogRepository) insert(l *reminder.DispatchLog) error {
	m.nextID++
	if err := l.SetID(m.nextID); err != nil {
		return err
	}
	m.logs = append(m.logs, l)
	return nil
}

func (m *mockDispatchLogRepository) byStatus(status vo.DispatchStatus) []*reminder.DispatchLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*reminder.DispatchLog
	for _, l := range m.logs {
		if l.Status() == status {
			out = append(out, l)
		}
	}
	return out
}

// =====================================================================
// Recurring definition repository
// =====================================================================

type mockRecurringRepository struct {
	defs map[uint]*reminder.RecurringDefinition
	// stored mirrors the persisted next_due_date used by the compare-and-set.
	stored map[uint]time.Time

	AdvanceScheduleFunc func(ctx context.Context, d *reminder.RecurringDefinition, previous time.Time) (bool, error)
}

func newMockRecurringRepository(defs ...*reminder.RecurringDefinition) *mockRecurringRepository {
	m := &mockRecurringRepository{
		defs:   make(map[uint]*reminder.RecurringDefinition),
		stored: make(map[uint]time.Time),
	}
	for _, d := range defs {
		m.defs[d.ID()] = d
		m.stored[d.ID()] = d.NextDueDate()
	}
	return m
}

func (m *mockRecurringRepository) Create(ctx context.Context, d *reminder.RecurringDefinition) error {
	if err := d.SetID(uint(len(m.defs) + 1)); err != nil {
		return err
	}
	m.defs[d.ID()] = d
	m.stored[d.ID()] = d.NextDueDate()
	return nil
}

func (m *mockRecurringRepository) GetByID(ctx context.Context, id uint) (*reminder.RecurringDefinition, error) {
	d, ok := m.defs[id]
	if !ok {
		return nil, reminder.ErrRecurringNotFound
	}
	return d, nil
}

func (m *mockRecurringRepository) Update(ctx context.Context, d *reminder.RecurringDefinition) error {
	m.defs[d.ID()] = d
	m.stored[d.ID()] = d.NextDueDate()
	return nil
}

func (m *mockRecurringRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.defs[id]; !ok {
		return reminder.ErrRecurringNotFound
	}
	delete(m.defs, id)
	return nil
}

func (m *mockRecurringRepository) List(ctx context.Context) ([]*reminder.RecurringDefinition, error) {
	out := make([]*reminder.RecurringDefinition, 0, len(m.defs))
	for _, d := range m.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *mockRecurringRepository) ListDue(ctx context.Context, today time.Time) ([]*reminder.RecurringDefinition, error) {
	all, _ := m.List(ctx)
	var out []*reminder.RecurringDefinition
	for _, d := range all {
		if d.IsDue(today) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockRecurringRepository) AdvanceSchedule(ctx context.Context, d *reminder.RecurringDefinition, previous time.Time) (bool, error) {
	if m.AdvanceScheduleFunc != nil {
		return m.AdvanceScheduleFunc(ctx, d, previous)
	}
	if !m.stored[d.ID()].Equal(previous) {
		return false, nil
	}
	m.stored[d.ID()] = d.NextDueDate()
	return true, nil
}

// =====================================================================
// Employees, sender, formatter, metrics
// =====================================================================

type mockEmployeeReader struct {
	employees map[uint]*employee.Employee

	ListAllFunc func(ctx context.Context) ([]*employee.Employee, error)
}

func newMockEmployeeReader(emps ...*employee.Employee) *mockEmployeeReader {
	m := &mockEmployeeReader{employees: make(map[uint]*employee.Employee)}
	for _, e := range emps {
		m.employees[e.ID()] = e
	}
	return m
}

func (m *mockEmployeeReader) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *mockEmployeeReader) GetByIDs(ctx context.Context, ids []uint) (map[uint]*employee.Employee, error) {
	out := make(map[uint]*employee.Employee)
	for _, id := range ids {
		if e, ok := m.employees[id]; ok {
			out[id] = e
		}
	}
	return out, nil
}

func (m *mockEmployeeReader) ListAll(ctx context.Context) ([]*employee.Employee, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	out := make([]*employee.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type mockSender struct {
	mu      sync.Mutex
	sent    []email.Message
	failFor map[string]error
}

func newMockSender() *mockSender {
	return &mockSender{failFor: make(map[string]error)}
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) (*email.SendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[msg.To[0].Email]; ok {
		return nil, err
	}
	m.sent = append(m.sent, msg)
	return &email.SendResult{MessageID: fmt.Sprintf("msg-%d", len(m.sent))}, nil
}

func (m *mockSender) Provider() string {
	return "mock"
}

func (m *mockSender) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		out = append(out, msg.To[0].Email)
	}
	return out
}

type plainFormatter struct{}

func (plainFormatter) Format(body string, _ vo.TemplateFormat) (string, error) {
	return body, nil
}

type mockMetrics struct {
	outcomes map[string]int
	spawned  int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{outcomes: make(map[string]int)}
}

func (m *mockMetrics) DispatchOutcome(status string) {
	m.outcomes[status]++
}

func (m *mockMetrics) RecurringSpawned(count int) {
	m.spawned += count
}

// mockTransactor runs fn directly and records how often it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
