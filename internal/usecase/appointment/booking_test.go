package appointment

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/pawsclinic/clinic-scheduler/internal/audit"
	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
)

// -------------------------
// Fixture
// -------------------------

type noopSink struct{}

func (noopSink) Log(userID *string, action, entity string, entityID *string, metadata any) error {
	return nil
}

type fixture struct {
	repo     *memRepo
	create   *CreateAppointment
	update   *UpdateAppointment
	cancel   *CancelAppointment
	complete *CompleteAppointment
	del      *DeleteAppointment
}

func newFixture() *fixture {
	repo := newMemRepo()
	return newFixtureWith(repo, repo)
}

func newFixtureWith(repo *memRepo, facade domain.Repository) *fixture {
	log := zap.NewNop()
	disp := audit.NewDispatcher(noopSink{}, log)
	return &fixture{
		repo:     repo,
		create:   NewCreateAppointment(facade, disp, log),
		update:   NewUpdateAppointment(facade, disp, log),
		cancel:   NewCancelAppointment(facade, disp, log),
		complete: NewCompleteAppointment(facade, disp, log),
		del:      NewDeleteAppointment(facade, disp, log),
	}
}

func mustCreate(t *testing.T, f *fixture, petID, date, timeOfDay string) string {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		PetID:   petID,
		OwnerID: "owner-1",
		Date:    date,
		Time:    timeOfDay,
	})
	if err != nil {
		t.Fatalf("create (%s %s %s): unexpected error %v", petID, date, timeOfDay, err)
	}
	return ap.ID
}

func strptr(s string) *string { return &s }

// -------------------------
// Create
// -------------------------

func TestCreate_RequiredFields(t *testing.T) {
	f := newFixture()

	_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		PetID: "pet-1",
		Date:  "2025-08-16",
		Time:  "10:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation error for missing ownerId, got %v", err)
	}
	if len(f.repo.byID) != 0 {
		t.Fatalf("store must be unchanged after rejected create")
	}
}

func TestCreate_NonCanonicalDateTime(t *testing.T) {
	f := newFixture()

	cases := []struct{ date, tm string }{
		{"2025-8-16", "10:30"},
		{"16-08-2025", "10:30"},
		{"2025-08-16", "9:30"},
		{"2025-08-16", "10:30:00"},
	}
	for _, tc := range cases {
		_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
			PetID:   "pet-1",
			OwnerID: "owner-1",
			Date:    tc.date,
			Time:    tc.tm,
		})
		if !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Fatalf("date=%q time=%q: expected validation error, got %v", tc.date, tc.tm, err)
		}
	}
}

func TestCreate_DefaultsToScheduled(t *testing.T) {
	f := newFixture()

	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Date:    "2025-08-16",
		Time:    "10:30",
		Reason:  "vaccination",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("expected scheduled status, got %q", ap.Status)
	}
	if ap.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
}

func TestCreate_DoubleBookingRejected(t *testing.T) {
	f := newFixture()

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		PetID:   "pet-1",
		OwnerID: "owner-2",
		Date:    "2025-08-16",
		Time:    "10:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
		t.Fatalf("expected double booking error, got %v", err)
	}
	if n := f.repo.countScheduled("pet-1", "2025-08-16", "10:30"); n != 1 {
		t.Fatalf("expected exactly 1 scheduled appointment in the slot, got %d", n)
	}
}

func TestCreate_SamePetDifferentSlot(t *testing.T) {
	f := newFixture()

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")
	mustCreate(t, f, "pet-1", "2025-08-16", "11:00")
	mustCreate(t, f, "pet-2", "2025-08-16", "10:30")
}

func TestCreate_RaceCaughtByConstraint(t *testing.T) {
	repo := newMemRepo()
	f := newFixtureWith(repo, &racyRepo{memRepo: repo})

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	// The pre-check reports the slot free, the constraint must hold.
	_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Date:    "2025-08-16",
		Time:    "10:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeDoubleBookingRaced) {
		t.Fatalf("expected constraint-path conflict, got %v", err)
	}
	if n := repo.countScheduled("pet-1", "2025-08-16", "10:30"); n != 1 {
		t.Fatalf("invariant broken: %d scheduled appointments in the slot", n)
	}
}

func TestUpdate_RaceCaughtByConstraint(t *testing.T) {
	repo := newMemRepo()
	f := newFixtureWith(repo, &racyRepo{memRepo: repo})

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")
	id2 := mustCreate(t, f, "pet-1", "2025-08-16", "11:00")

	// The pre-check reports the target slot free; the constraint on the
	// save path must still reject the reschedule.
	_, err := f.update.Execute(context.Background(), id2, domain.Patch{
		Time: strptr("10:30"),
	})
	if !httperr.IsBusiness(err, httperr.CodeDoubleBookingRaced) {
		t.Fatalf("expected constraint-path conflict, got %v", err)
	}

	// The rejected save must leave the record unmodified.
	stored, _ := repo.GetByID(context.Background(), id2)
	if stored.Time != "11:00" {
		t.Fatalf("record mutated by raced update: time=%q", stored.Time)
	}
	if n := repo.countScheduled("pet-1", "2025-08-16", "10:30"); n != 1 {
		t.Fatalf("invariant broken: %d scheduled appointments in the slot", n)
	}
}

// -------------------------
// Update
// -------------------------

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.update.Execute(context.Background(), "missing", domain.Patch{
		Reason: strptr("checkup"),
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdate_RescheduleOntoOccupiedSlot(t *testing.T) {
	f := newFixture()

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")
	id2 := mustCreate(t, f, "pet-1", "2025-08-16", "11:00")

	_, err := f.update.Execute(context.Background(), id2, domain.Patch{
		Time: strptr("10:30"),
	})
	if !httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
		t.Fatalf("expected double booking error, got %v", err)
	}

	// Rejected update must leave the record unmodified.
	stored, _ := f.repo.GetByID(context.Background(), id2)
	if stored.Time != "11:00" {
		t.Fatalf("record mutated by rejected update: time=%q", stored.Time)
	}
}

func TestUpdate_OwnSlotIsNotAConflict(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	ap, err := f.update.Execute(context.Background(), id, domain.Patch{
		Date:   strptr("2025-08-16"),
		Time:   strptr("10:30"),
		Reason: strptr("follow-up"),
	})
	if err != nil {
		t.Fatalf("no-op reschedule must succeed, got %v", err)
	}
	if ap.Reason != "follow-up" {
		t.Fatalf("expected reason applied, got %q", ap.Reason)
	}
}

func TestUpdate_OmittedFieldsKeepStoredValues(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	ap, err := f.update.Execute(context.Background(), id, domain.Patch{
		Reason: strptr("dental cleaning"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.PetID != "pet-1" || ap.Date != "2025-08-16" || ap.Time != "10:30" {
		t.Fatalf("omitted fields changed: %+v", ap)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("status changed by reason-only update: %q", ap.Status)
	}
}

func TestUpdate_InvalidStatusValue(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	_, err := f.update.Execute(context.Background(), id, domain.Patch{
		Status: strptr("postponed"),
	})
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdate_ResurrectionReentersConflictCheck(t *testing.T) {
	f := newFixture()

	id1 := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	_, err := f.cancel.Execute(context.Background(), id1)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// Slot is taken again by a new booking.
	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	// Resurrecting the cancelled appointment must hit the conflict.
	_, err = f.update.Execute(context.Background(), id1, domain.Patch{
		Status: strptr(string(domain.StatusScheduled)),
	})
	if !httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
		t.Fatalf("expected double booking on resurrection, got %v", err)
	}

	// With the slot free, resurrection goes through.
	id3 := mustCreate(t, f, "pet-1", "2025-09-01", "09:00")
	if _, err := f.cancel.Execute(context.Background(), id3); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	ap, err := f.update.Execute(context.Background(), id3, domain.Patch{
		Status: strptr(string(domain.StatusScheduled)),
	})
	if err != nil {
		t.Fatalf("resurrection into a free slot must succeed, got %v", err)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("expected scheduled, got %q", ap.Status)
	}
}

func TestUpdate_ToTerminalStatusSkipsConflictCheck(t *testing.T) {
	f := newFixture()

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")
	id2 := mustCreate(t, f, "pet-1", "2025-08-16", "11:00")

	// Moving id2 onto the occupied slot while completing it: the
	// effective status is not scheduled, so no conflict applies.
	ap, err := f.update.Execute(context.Background(), id2, domain.Patch{
		Time:   strptr("10:30"),
		Status: strptr(string(domain.StatusCompleted)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(domain.StatusCompleted) || ap.Time != "10:30" {
		t.Fatalf("unexpected record: %+v", ap)
	}
}

// -------------------------
// Cancel / Complete
// -------------------------

func TestCancel_IsUnconditional(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	if _, err := f.complete.Execute(context.Background(), id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	ap, err := f.cancel.Execute(context.Background(), id)
	if err != nil {
		t.Fatalf("cancel of a completed appointment must succeed, got %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %q", ap.Status)
	}
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.cancel.Execute(context.Background(), "missing")
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	if _, err := f.cancel.Execute(context.Background(), id); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	if n := f.repo.countScheduled("pet-1", "2025-08-16", "10:30"); n != 1 {
		t.Fatalf("expected 1 scheduled appointment after rebooking, got %d", n)
	}
}

func TestComplete_OnlyFromScheduled(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	if _, err := f.cancel.Execute(context.Background(), id); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := f.complete.Execute(context.Background(), id)
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
}

// -------------------------
// Delete
// -------------------------

func TestDelete_RepeatedDeletesAllNotFound(t *testing.T) {
	f := newFixture()

	id := mustCreate(t, f, "pet-1", "2025-08-16", "10:30")

	if err := f.del.Execute(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for i := 0; i < 3; i++ {
		err := f.del.Execute(context.Background(), id)
		if !httperr.IsBusiness(err, httperr.CodeNotFound) {
			t.Fatalf("repeat %d: expected not found, got %v", i, err)
		}
	}
}

// -------------------------
// End-to-end scenario
// -------------------------

func TestSlotLifecycleScenario(t *testing.T) {
	f := newFixture()

	// Book P1 at 2025-08-16 10:30.
	first := mustCreate(t, f, "P1", "2025-08-16", "10:30")

	// Booking the same slot again fails.
	_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		PetID:   "P1",
		OwnerID: "owner-1",
		Date:    "2025-08-16",
		Time:    "10:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
		t.Fatalf("expected double booking, got %v", err)
	}

	// Cancelling the first frees the slot.
	ap, err := f.cancel.Execute(context.Background(), first)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %q", ap.Status)
	}

	// Third booking of the same slot succeeds.
	mustCreate(t, f, "P1", "2025-08-16", "10:30")
}
