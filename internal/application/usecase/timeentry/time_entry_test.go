package timeentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeTimeEntryRepository struct {
	entries map[uuid.UUID]*entity.TimeEntry
	limit   int
}

func newFakeTimeEntryRepository() *fakeTimeEntryRepository {
	return &fakeTimeEntryRepository{entries: make(map[uuid.UUID]*entity.TimeEntry)}
}

func (r *fakeTimeEntryRepository) Create(_ context.Context, entry *entity.TimeEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeTimeEntryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrTimeEntryNotFound
	}
	return entry, nil
}

func (r *fakeTimeEntryRepository) FindRecent(_ context.Context, limit int) ([]*entity.TimeEntry, error) {
	r.limit = limit
	entries := make([]*entity.TimeEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *fakeTimeEntryRepository) Update(_ context.Context, entry *entity.TimeEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeTimeEntryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.entries, id)
	return nil
}

func timeEntryErrorCode(t *testing.T, err error) domainerror.TimeEntryErrorCode {
	t.Helper()
	var entryErr *domainerror.TimeEntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("expected TimeEntryError, got %v", err)
	}
	return entryErr.Code
}

func TestTimeEntryLifecycle(t *testing.T) {
	repo := newFakeTimeEntryRepository()
	clock := &fakeClock{now: time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)}

	started, err := NewStartTimeEntryUseCase(repo, clock).Execute(context.Background(), StartTimeEntryInput{Project: "lifetracker"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !started.Entry.IsRunning() {
		t.Fatal("expected a running entry")
	}

	clock.now = clock.now.Add(90 * time.Minute)
	update := NewUpdateTimeEntryUseCase(repo, clock)

	stopped, err := update.Execute(context.Background(), UpdateTimeEntryInput{EntryID: started.Entry.ID, Action: ActionStop})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stopped.Entry.Duration != 5400 {
		t.Errorf("expected duration 5400, got %d", stopped.Entry.Duration)
	}
	if stopped.Entry.EndTime == nil || !stopped.Entry.EndTime.Equal(clock.now) {
		t.Errorf("expected end time %s, got %v", clock.now, stopped.Entry.EndTime)
	}

	_, err = update.Execute(context.Background(), UpdateTimeEntryInput{EntryID: started.Entry.ID, Action: ActionStop})
	if code := timeEntryErrorCode(t, err); code != domainerror.ErrCodeTimeEntryAlreadyStopped {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeTimeEntryAlreadyStopped, code)
	}

	list, err := NewListTimeEntriesUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Entries) != 1 || repo.limit != 50 {
		t.Errorf("expected 1 entry with limit 50, got %d entries limit %d", len(list.Entries), repo.limit)
	}

	deleteUC := NewDeleteTimeEntryUseCase(repo)
	if err := deleteUC.Execute(context.Background(), DeleteTimeEntryInput{EntryID: started.Entry.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = deleteUC.Execute(context.Background(), DeleteTimeEntryInput{EntryID: started.Entry.ID})
	if code := timeEntryErrorCode(t, err); code != domainerror.ErrCodeTimeEntryNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeTimeEntryNotFound, code)
	}
}

func TestUpdateTimeEntryUseCase_InvalidAction(t *testing.T) {
	repo := newFakeTimeEntryRepository()
	uc := NewUpdateTimeEntryUseCase(repo, &fakeClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), UpdateTimeEntryInput{EntryID: uuid.New(), Action: "pause"})
	if code := timeEntryErrorCode(t, err); code != domainerror.ErrCodeInvalidTimeEntryAction {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTimeEntryAction, code)
	}
}

func TestStartTimeEntryUseCase_RequiresProject(t *testing.T) {
	uc := NewStartTimeEntryUseCase(newFakeTimeEntryRepository(), &fakeClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), StartTimeEntryInput{Project: " "})
	if code := timeEntryErrorCode(t, err); code != domainerror.ErrCodeMissingTimeEntryFields {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingTimeEntryFields, code)
	}
}
