// Package timeentry contains time tracking use cases.
package timeentry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// recentEntriesLimit caps the time entry listing.
const recentEntriesLimit = 50

// ActionStop is the only supported update action.
const ActionStop = "stop"

// ListTimeEntriesOutput represents the output of listing time entries.
type ListTimeEntriesOutput struct {
	Entries []*entity.TimeEntry
}

// ListTimeEntriesUseCase handles listing recent time entries.
type ListTimeEntriesUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewListTimeEntriesUseCase creates a new ListTimeEntriesUseCase instance.
func NewListTimeEntriesUseCase(entryRepo adapter.TimeEntryRepository) *ListTimeEntriesUseCase {
	return &ListTimeEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute returns the latest entries, newest start first.
func (uc *ListTimeEntriesUseCase) Execute(ctx context.Context) (*ListTimeEntriesOutput, error) {
	entries, err := uc.entryRepo.FindRecent(ctx, recentEntriesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return &ListTimeEntriesOutput{
		Entries: entries,
	}, nil
}

// StartTimeEntryInput represents the input for starting a time entry.
type StartTimeEntryInput struct {
	Project     string
	Description string
}

// StartTimeEntryOutput represents the output of starting a time entry.
type StartTimeEntryOutput struct {
	Entry *entity.TimeEntry
}

// StartTimeEntryUseCase handles starting a new time entry.
type StartTimeEntryUseCase struct {
	entryRepo adapter.TimeEntryRepository
	clock     adapter.Clock
}

// NewStartTimeEntryUseCase creates a new StartTimeEntryUseCase instance.
func NewStartTimeEntryUseCase(entryRepo adapter.TimeEntryRepository, clock adapter.Clock) *StartTimeEntryUseCase {
	return &StartTimeEntryUseCase{
		entryRepo: entryRepo,
		clock:     clock,
	}
}

// Execute starts a running entry at the current time.
func (uc *StartTimeEntryUseCase) Execute(ctx context.Context, input StartTimeEntryInput) (*StartTimeEntryOutput, error) {
	project := strings.TrimSpace(input.Project)
	if project == "" {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeMissingTimeEntryFields,
			"project is required",
			nil,
		)
	}

	entry := entity.NewTimeEntry(project, input.Description, uc.clock.Now().UTC())

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return &StartTimeEntryOutput{
		Entry: entry,
	}, nil
}

// UpdateTimeEntryInput represents the input for updating a time entry.
type UpdateTimeEntryInput struct {
	EntryID uuid.UUID
	Action  string
}

// UpdateTimeEntryOutput represents the output of updating a time entry.
type UpdateTimeEntryOutput struct {
	Entry *entity.TimeEntry
}

// UpdateTimeEntryUseCase applies an action to a time entry.
type UpdateTimeEntryUseCase struct {
	entryRepo adapter.TimeEntryRepository
	clock     adapter.Clock
}

// NewUpdateTimeEntryUseCase creates a new UpdateTimeEntryUseCase instance.
func NewUpdateTimeEntryUseCase(entryRepo adapter.TimeEntryRepository, clock adapter.Clock) *UpdateTimeEntryUseCase {
	return &UpdateTimeEntryUseCase{
		entryRepo: entryRepo,
		clock:     clock,
	}
}

// Execute stops a running entry.
func (uc *UpdateTimeEntryUseCase) Execute(ctx context.Context, input UpdateTimeEntryInput) (*UpdateTimeEntryOutput, error) {
	if input.Action != ActionStop {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidTimeEntryAction,
			"invalid action",
			domainerror.ErrInvalidTimeEntryAction,
		)
	}

	entry, err := findEntry(ctx, uc.entryRepo, input.EntryID)
	if err != nil {
		return nil, err
	}

	if !entry.IsRunning() {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeTimeEntryAlreadyStopped,
			"time entry already stopped",
			domainerror.ErrTimeEntryAlreadyStopped,
		)
	}

	entry.Stop(uc.clock.Now().UTC())

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	return &UpdateTimeEntryOutput{
		Entry: entry,
	}, nil
}

// DeleteTimeEntryInput represents the input for deleting a time entry.
type DeleteTimeEntryInput struct {
	EntryID uuid.UUID
}

// DeleteTimeEntryUseCase handles time entry deletion.
type DeleteTimeEntryUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewDeleteTimeEntryUseCase creates a new DeleteTimeEntryUseCase instance.
func NewDeleteTimeEntryUseCase(entryRepo adapter.TimeEntryRepository) *DeleteTimeEntryUseCase {
	return &DeleteTimeEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute deletes the entry.
func (uc *DeleteTimeEntryUseCase) Execute(ctx context.Context, input DeleteTimeEntryInput) error {
	if _, err := findEntry(ctx, uc.entryRepo, input.EntryID); err != nil {
		return err
	}

	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	return nil
}

func findEntry(ctx context.Context, repo adapter.TimeEntryRepository, id uuid.UUID) (*entity.TimeEntry, error) {
	entry, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTimeEntryNotFound) {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeTimeEntryNotFound,
				"time entry not found",
				domainerror.ErrTimeEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find time entry: %w", err)
	}
	return entry, nil
}
