package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/apperrors"
	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
)

// openTestDB gives every test its own throwaway database file so tests
// stay independent and need no cleanup.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bandsite.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Location{}, &models.Event{}, &models.Member{}, &models.Gig{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func mustSaveLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()

	location, err := models.NewLocation(name, models.Address{
		Street:       "Hauptstraße",
		StreetNumber: "1",
		PostalCode:   "7000",
		City:         "Eisenstadt",
		Country:      "Österreich",
	})
	if err != nil {
		t.Fatalf("new location: %v", err)
	}
	saved, err := NewLocationRepository(db).Save(location)
	if err != nil {
		t.Fatalf("save location: %v", err)
	}
	return saved
}

func TestDeleteLocationLeavesNoOrphanEvents(t *testing.T) {
	db := openTestDB(t)
	locations := NewLocationRepository(db)
	events := NewEventRepository(db)

	location := mustSaveLocation(t, db, "Hauptplatz")
	for _, title := range []string{"Frühjahrskonzert", "Herbstkonzert"} {
		event := &models.Event{Title: title, Type: models.EventTypeConcert, Date: time.Now(), LocationID: location.ID}
		if _, err := events.Save(event); err != nil {
			t.Fatalf("save event %q: %v", title, err)
		}
	}

	if err := locations.Delete(location.ID); err != nil {
		t.Fatalf("delete location: %v", err)
	}

	if _, err := locations.FindByID(location.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("deleted location still found, err = %v", err)
	}
	var orphans int64
	if err := db.Model(&models.Event{}).Where("location_id = ?", location.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if orphans != 0 {
		t.Errorf("%d event rows still reference the deleted location", orphans)
	}
}

func TestDeleteLocationUnknownID(t *testing.T) {
	db := openTestDB(t)

	if err := NewLocationRepository(db).Delete(uuid.New()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestSaveEventDuplicateTitleConflicts(t *testing.T) {
	db := openTestDB(t)
	events := NewEventRepository(db)

	location := mustSaveLocation(t, db, "Hauptplatz")
	first := &models.Event{Title: "Frühjahrskonzert", Type: models.EventTypeConcert, Date: time.Now(), LocationID: location.ID}
	if _, err := events.Save(first); err != nil {
		t.Fatalf("save first event: %v", err)
	}

	dup := &models.Event{Title: "Frühjahrskonzert", Type: models.EventTypeSerenade, Date: time.Now(), LocationID: location.ID}
	if _, err := events.Save(dup); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate title, got %v", err)
	}

	// The original row must be untouched.
	kept, err := events.FindByTitle("Frühjahrskonzert")
	if err != nil {
		t.Fatalf("find surviving event: %v", err)
	}
	if kept.ID != first.ID || kept.Type != models.EventTypeConcert {
		t.Errorf("surviving event changed: id=%v type=%v", kept.ID, kept.Type)
	}
}

func TestEventsAtLocationScenario(t *testing.T) {
	db := openTestDB(t)
	locations := NewLocationRepository(db)
	events := NewEventRepository(db)

	location := mustSaveLocation(t, db, "Hauptplatz")
	event := &models.Event{Title: "Frühjahrskonzert", Type: models.EventTypeConcert, Date: time.Now()}
	location.AddEvent(event)
	if _, err := events.Save(event); err != nil {
		t.Fatalf("save event: %v", err)
	}

	matches, err := locations.FindByName("Hauptplatz")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one Hauptplatz, got %d", len(matches))
	}

	found, err := events.FindByLocation(&matches[0])
	if err != nil {
		t.Fatalf("find by location: %v", err)
	}
	if found.Title != "Frühjahrskonzert" {
		t.Errorf("wrong event at location: %q", found.Title)
	}
	if found.LocationID != location.ID {
		t.Errorf("back-reference lost on round trip: %v", found.LocationID)
	}

	owned, err := events.FindAllByLocation(&matches[0])
	if err != nil {
		t.Fatalf("find all by location: %v", err)
	}
	if len(owned) != 1 {
		t.Errorf("expected one owned event, got %d", len(owned))
	}

	reloaded, err := locations.FindByID(location.ID)
	if err != nil {
		t.Fatalf("reload location: %v", err)
	}
	if len(reloaded.Events) != 1 {
		t.Errorf("preloaded collection has %d events, want 1", len(reloaded.Events))
	}
}

func TestSoftDeleteFiltersMemberQueries(t *testing.T) {
	db := openTestDB(t)
	members := NewMemberRepository(db)

	active := &models.Member{FirstName: "Anna", LastName: "Bauer", Instrument: models.InstrumentTrumpet, Section: models.SectionHighBrass}
	leaving := &models.Member{FirstName: "Josef", LastName: "Wagner", Instrument: models.InstrumentTuba, Section: models.SectionLowBrass}
	for _, m := range []*models.Member{active, leaving} {
		if _, err := members.Save(m); err != nil {
			t.Fatalf("save member %s: %v", m.LastName, err)
		}
	}

	if err := members.SoftDelete(leaving.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	visible, err := members.FindAllActive()
	if err != nil {
		t.Fatalf("find all active: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != active.ID {
		t.Errorf("active listing wrong: %d members", len(visible))
	}

	if _, err := members.FindActiveByID(leaving.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("soft-deleted member still active, err = %v", err)
	}

	// Audit listing keeps the row, with the timestamp set.
	everyone, err := members.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(everyone) != 2 {
		t.Errorf("audit listing lost a row: %d members", len(everyone))
	}

	// Deleting twice is a not-found, not a second stamp.
	if err := members.SoftDelete(leaving.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound on repeated delete, got %v", err)
	}
}
