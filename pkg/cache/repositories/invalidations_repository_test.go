package cacherepositories

import (
	"context"
	"reflect"
	"testing"
	"time"

	dbconnections "github.com/thebartekbanach/imglide/pkg/connections"
)

func createInvalidationModel(disk string, creationTime time.Time, requested, done, entries []string) InvalidationModel {
	return InvalidationModel{
		Disk:                   disk,
		RequestedInvalidations: requested,
		DoneInvalidations:      done,
		InvalidatedEntries:     entries,
		InvalidationDate:       creationTime,
	}
}

func TestInvalidationsRepository_RejectsEmptyInvalidation(t *testing.T) {
	repo := NewInvalidationsRepository(nil)

	err := repo.CreateInvalidation(context.Background(), InvalidationModel{})

	if err != ErrNothingToInvalidate {
		t.Errorf("Expected %v, got %v", ErrNothingToInvalidate, err)
	}
}

func TestInvalidationsRepositoryIntegration_CreatesInvalidationCorrectly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping invalidationsRepository integration tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths := []string{"photos/a.jpg", "photos/b.jpg"}
	info := createInvalidationModel("uploads", time.Now(), paths, paths, []string{"abc", "def"})

	conn := dbconnections.NewInvalidationsDBTestingConnection(t)
	repo := NewInvalidationsRepository(conn)

	if err := repo.CreateInvalidation(ctx, info); err != nil {
		t.Errorf("Unexpected error when creating invalidation entry: %v", err)
	}

	invalidation, err := repo.GetLatestInvalidation(ctx, "uploads")
	if err != nil {
		t.Errorf("Unexpected error when getting latest invalidation: %v", err)
	}

	// InvalidationDate loses precision in mongo, so it is not compared
	if !reflect.DeepEqual(invalidation.RequestedInvalidations, info.RequestedInvalidations) ||
		!reflect.DeepEqual(invalidation.InvalidatedEntries, info.InvalidatedEntries) {
		t.Errorf("Invalidation is not the same as the one created")
	}
}

func TestInvalidationsRepositoryIntegration_ReturnsLatestInvalidationOfDisk(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping invalidationsRepository integration tests")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	older := createInvalidationModel("", now.Add(-time.Hour), []string{"old.jpg"}, []string{"old.jpg"}, []string{})
	newer := createInvalidationModel("", now, []string{"new.jpg"}, []string{"new.jpg"}, []string{})
	otherDisk := createInvalidationModel("uploads", now.Add(time.Hour), []string{"other.jpg"}, []string{}, []string{})

	conn := dbconnections.NewInvalidationsDBTestingConnection(t)
	repo := NewInvalidationsRepository(conn)

	for _, invalidation := range []InvalidationModel{older, newer, otherDisk} {
		if err := repo.CreateInvalidation(ctx, invalidation); err != nil {
			t.Fatalf("Unexpected error when creating invalidation entry: %v", err)
		}
	}

	latest, err := repo.GetLatestInvalidation(ctx, "")
	if err != nil {
		t.Fatalf("Unexpected error when getting latest invalidation: %v", err)
	}

	if !reflect.DeepEqual(latest.RequestedInvalidations, newer.RequestedInvalidations) {
		t.Errorf("Expected latest invalidation %v, got %v", newer.RequestedInvalidations, latest.RequestedInvalidations)
	}
}

func TestInvalidationsRepositoryIntegration_ReturnsErrInvalidationNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping invalidationsRepository integration tests")
	}

	conn := dbconnections.NewInvalidationsDBTestingConnection(t)
	repo := NewInvalidationsRepository(conn)

	_, err := repo.GetLatestInvalidation(context.Background(), "never-invalidated")
	if err != ErrInvalidationNotFound {
		t.Errorf("Expected %v, got %v", ErrInvalidationNotFound, err)
	}
}
