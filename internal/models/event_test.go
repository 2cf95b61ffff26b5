package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestEventSchemaConstraints(t *testing.T) {
	s, err := schema.Parse(&Event{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse event schema: %v", err)
	}

	locationID := s.LookUpField("LocationID")
	if locationID == nil {
		t.Fatal("LocationID field missing from schema")
	}
	if !locationID.NotNull {
		t.Errorf("location_id must be NOT NULL: every event belongs to a location")
	}

	title := s.LookUpField("Title")
	if title == nil {
		t.Fatal("Title field missing from schema")
	}
	if !title.NotNull || !title.Unique {
		t.Errorf("title must be NOT NULL and unique, got not null=%v unique=%v", title.NotNull, title.Unique)
	}
}
