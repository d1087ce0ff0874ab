package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"cargocal/internal/models/request_models"
	"cargocal/pkg/utils"
)

func TestActivityCatalogCRUD(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created, err := env.activity.CreateActivity(ctx, "Aforo fisico")
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}
	if created.Name != "Aforo fisico" {
		t.Errorf("created name = %q", created.Name)
	}

	updated, err := env.activity.UpdateActivity(ctx, uuid.MustParse(created.ID), "Aforo documentario")
	if err != nil {
		t.Fatalf("UpdateActivity: %v", err)
	}
	if updated.Name != "Aforo documentario" {
		t.Errorf("updated name = %q", updated.Name)
	}

	list, err := env.activity.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Aforo documentario" {
		t.Errorf("catalog list mismatch: %+v", list)
	}

	if err := env.activity.DeleteActivity(ctx, uuid.MustParse(created.ID)); err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	list, _ = env.activity.ListActivities(ctx)
	if len(list) != 0 {
		t.Errorf("catalog should be empty after delete, got %d", len(list))
	}
}

func TestDeleteActivityInUse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.store.addAccount("coordinadora", "coordinacion")

	created, err := env.activity.CreateActivity(ctx, "Tramite aduanero")
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}
	activityID := created.ID

	if _, err := env.events.CreateEvent(ctx, owner, request_models.CreateEventRequest{
		ActivityID: &activityID,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-01",
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	err = env.activity.DeleteActivity(ctx, uuid.MustParse(activityID))
	if !errors.Is(err, utils.ErrActivityInUse) {
		t.Fatalf("referenced activity must refuse deletion, got %v", err)
	}
}

func TestUpdateUnknownActivity(t *testing.T) {
	env := newTestEnv()

	_, err := env.activity.UpdateActivity(context.Background(), uuid.New(), "Nuevo nombre")
	if !errors.Is(err, utils.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}
