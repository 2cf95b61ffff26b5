package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/internal/models"
	"github.com/stadtkapelle/eisenstadt-backend/internal/repository"
)

func listGigs(t *testing.T, db *gorm.DB, target string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Set("db", db)

	ListGigs(c)
	return w
}

func TestListGigsRejectsHalfSpecifiedDateRange(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bandsite.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Gig{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	gig := &models.Gig{Title: "Frühschoppen am Hauptplatz", Venue: "Hauptplatz", Date: time.Date(2026, 6, 14, 10, 0, 0, 0, time.UTC)}
	if _, err := repository.NewGigRepository(db).Save(gig); err != nil {
		t.Fatalf("save gig: %v", err)
	}

	for _, target := range []string{
		"/v1/gigs?from=2026-06-01T00:00:00Z",
		"/v1/gigs?to=2026-06-30T00:00:00Z",
	} {
		if w := listGigs(t, db, target); w.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want %d", target, w.Code, http.StatusBadRequest)
		}
	}

	// A complete range still works.
	w := listGigs(t, db, "/v1/gigs?from=2026-06-01T00:00:00Z&to=2026-06-30T00:00:00Z")
	if w.Code != http.StatusOK {
		t.Fatalf("complete range: got %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
}
