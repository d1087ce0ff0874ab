package services

import (
	"context"
	"errors"
	"testing"

	dbm "cargocal/internal/models/db_models"
	"cargocal/pkg/utils"
)

func TestChargeLifecycleProducesFullAuditTrail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.store.addAccount("coordinadora", "coordinacion")
	holder := env.store.addAccount("ana", "documentacion")
	_, chargeID := setupEventWithCharge(t, env, owner, holder)

	if _, err := env.charges.UpdateChargeStatus(ctx, chargeID, holder, dbm.ChargeInProgress, nil, true); err != nil {
		t.Fatalf("to EN_PROGRESO: %v", err)
	}
	if _, err := env.charges.UpdateChargeStatus(ctx, chargeID, holder, dbm.ChargeCompleted, nil, true); err != nil {
		t.Fatalf("to COMPLETADO: %v", err)
	}

	entries, err := env.tracking.GetTrackingForCharge(ctx, chargeID, owner, true)
	if err != nil {
		t.Fatalf("GetTrackingForCharge: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("assignment plus two transitions is 3 rows, got %d", len(entries))
	}

	if entries[0].FromStatus != nil {
		t.Errorf("initial row has no from-status, got %v", *entries[0].FromStatus)
	}
	if entries[0].ToStatus != string(dbm.ChargePending) {
		t.Errorf("initial row lands on PENDIENTE, got %s", entries[0].ToStatus)
	}
	if entries[1].FromStatus == nil || *entries[1].FromStatus != string(dbm.ChargePending) {
		t.Errorf("second row starts from PENDIENTE")
	}
	if entries[2].ToStatus != string(dbm.ChargeCompleted) {
		t.Errorf("final row lands on COMPLETADO, got %s", entries[2].ToStatus)
	}

	for i, e := range entries {
		if e.ResponsibleID != holder.String() {
			t.Errorf("row %d responsible mismatch: %s", i, e.ResponsibleID)
		}
		if e.ResponsibleName != "ana" {
			t.Errorf("row %d should carry the holder's name, got %q", i, e.ResponsibleName)
		}
	}
	if entries[0].ChangedByName != "coordinadora" {
		t.Errorf("assignment row actor is the assigner, got %q", entries[0].ChangedByName)
	}
}

func TestTrackingForChargeVisibleToHolderOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.store.addAccount("coordinadora", "coordinacion")
	holder := env.store.addAccount("ana", "documentacion")
	stranger := env.store.addAccount("otro", "cotizacion")
	_, chargeID := setupEventWithCharge(t, env, owner, holder)

	if _, err := env.tracking.GetTrackingForCharge(ctx, chargeID, holder, false); err != nil {
		t.Errorf("holder should read their own history: %v", err)
	}
	if _, err := env.tracking.GetTrackingForCharge(ctx, chargeID, stranger, false); !errors.Is(err, utils.ErrChargeNotFound) {
		t.Errorf("stranger must get not-found, got %v", err)
	}
	if _, err := env.tracking.GetTrackingForCharge(ctx, chargeID, stranger, true); err != nil {
		t.Errorf("see-all caller reads any history: %v", err)
	}
}

func TestTrackingForActivityIncludesRemovedCharges(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.store.addAccount("coordinadora", "coordinacion")
	first := env.store.addAccount("ana", "documentacion")
	second := env.store.addAccount("bruno", "cotizacion")
	eventID, firstChargeID := setupEventWithCharge(t, env, owner, first)

	if _, err := env.charges.UpdateChargeStatus(ctx, firstChargeID, first, dbm.ChargeInProgress, nil, true); err != nil {
		t.Fatalf("UpdateChargeStatus: %v", err)
	}
	if err := env.charges.RemoveResponsable(ctx, eventID, first, owner); err != nil {
		t.Fatalf("RemoveResponsable: %v", err)
	}
	if _, err := env.charges.AddResponsable(ctx, eventID, second, owner); err != nil {
		t.Fatalf("AddResponsable: %v", err)
	}

	entries, err := env.tracking.GetTrackingForActivity(ctx, eventID, owner, true)
	if err != nil {
		t.Fatalf("GetTrackingForActivity: %v", err)
	}
	// ana: assignment + transition; bruno: assignment.
	if len(entries) != 3 {
		t.Fatalf("event history spans removed charges, got %d rows", len(entries))
	}

	seenFirst := false
	for _, e := range entries {
		if e.ResponsibleID == first.String() {
			seenFirst = true
		}
	}
	if !seenFirst {
		t.Error("rows of the removed responsible must still resolve to them")
	}
}

func TestTrackingForActivityScope(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.store.addAccount("coordinadora", "coordinacion")
	holder := env.store.addAccount("ana", "documentacion")
	stranger := env.store.addAccount("otro", "cotizacion")
	eventID, _ := setupEventWithCharge(t, env, owner, holder)

	if _, err := env.tracking.GetTrackingForActivity(ctx, eventID, holder, false); err != nil {
		t.Errorf("active holder reads the event history: %v", err)
	}
	if _, err := env.tracking.GetTrackingForActivity(ctx, eventID, stranger, false); !errors.Is(err, utils.ErrEventNotFound) {
		t.Errorf("non-holder must get not-found, got %v", err)
	}
}
