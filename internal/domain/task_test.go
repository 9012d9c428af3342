package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTaskValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	now := time.Now().UTC()

	valid := Task{
		ID:          uuid.New(),
		Title:       "Buy milk",
		Description: "2 liters",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// updated_at may be strictly after created_at
	later := valid
	later.UpdatedAt = now.Add(time.Minute)
	if err := later.Validate(); err != nil {
		t.Errorf("Expected no error for later UpdatedAt, got %v", err)
	}

	// Test nil ID
	noID := valid
	noID.ID = uuid.Nil
	if err := noID.Validate(); err != ErrTaskIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrTaskIDEmpty, err)
	}

	// Test empty title
	noTitle := valid
	noTitle.Title = ""
	if err := noTitle.Validate(); err != ErrTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTitleEmpty, err)
	}

	// Test updated_at before created_at
	backwards := valid
	backwards.UpdatedAt = now.Add(-time.Second)
	if err := backwards.Validate(); err != ErrTimestampsInvalid {
		t.Errorf("Expected error %v, got %v", ErrTimestampsInvalid, err)
	}
}

func TestTaskValidateEmptyDescription(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	task := Task{
		ID:        uuid.New(),
		Title:     "No description",
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Description is optional and defaults to the empty string
	if err := task.Validate(); err != nil {
		t.Errorf("Expected no error for empty description, got %v", err)
	}
}
