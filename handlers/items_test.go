package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticketly/models"

	"github.com/gin-gonic/gin"
)

type stubCarRepo struct {
	cars []models.Car

	nearbyCalls int
	gotLng      float64
	gotLat      float64
	gotMaxDist  float64
}

func (s *stubCarRepo) Create(car *models.Car) error           { return nil }
func (s *stubCarRepo) GetByID(id string) (*models.Car, error) { return nil, nil }
func (s *stubCarRepo) List(activeOnly bool) ([]models.Car, error) {
	return s.cars, nil
}
func (s *stubCarRepo) ListNearby(longitude, latitude, maxDistanceMeters float64) ([]models.Car, error) {
	s.nearbyCalls++
	s.gotLng = longitude
	s.gotLat = latitude
	s.gotMaxDist = maxDistanceMeters
	return s.cars, nil
}
func (s *stubCarRepo) AppendBooking(ctx context.Context, carID, bookingDocID string) error {
	return nil
}

func nearbyRequest(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/cars/nearby", ListNearbyCars)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/nearby"+query, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListNearbyCars(t *testing.T) {
	repo := &stubCarRepo{cars: []models.Car{
		{ID: "car-1", RegistrationNumber: "KA01AB1234", CarModel: "Swift", SeatingCapacity: 4},
		{ID: "car-2", RegistrationNumber: "KA02CD5678", CarModel: "Innova", SeatingCapacity: 7},
	}}
	Catalog.Cars = repo

	w := nearbyRequest(t, "?longitude=77.59&latitude=12.97")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		Count   int          `json:"count"`
		Cars    []models.Car `json:"cars"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Count != 2 || len(resp.Cars) != 2 {
		t.Errorf("expected 2 cars, got count=%d len=%d", resp.Count, len(resp.Cars))
	}
	if repo.nearbyCalls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.nearbyCalls)
	}
	if repo.gotLng != 77.59 || repo.gotLat != 12.97 {
		t.Errorf("coordinates not passed through: got (%v, %v)", repo.gotLng, repo.gotLat)
	}
	if repo.gotMaxDist != 5000 {
		t.Errorf("expected default maxDistance 5000, got %v", repo.gotMaxDist)
	}
}

func TestListNearbyCarsCustomMaxDistance(t *testing.T) {
	repo := &stubCarRepo{}
	Catalog.Cars = repo

	w := nearbyRequest(t, "?longitude=77.59&latitude=12.97&maxDistance=1200")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if repo.gotMaxDist != 1200 {
		t.Errorf("expected maxDistance 1200, got %v", repo.gotMaxDist)
	}
}

func TestListNearbyCarsMissingCoordinates(t *testing.T) {
	repo := &stubCarRepo{}
	Catalog.Cars = repo

	cases := []string{"", "?longitude=77.59", "?latitude=12.97"}
	for _, query := range cases {
		w := nearbyRequest(t, query)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected status 400, got %d", query, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Please provide longitude and latitude") {
			t.Errorf("query %q: unexpected body %s", query, w.Body.String())
		}
	}
	if repo.nearbyCalls != 0 {
		t.Errorf("repository should not be called on validation failure, got %d calls", repo.nearbyCalls)
	}
}

func TestListNearbyCarsRejectsMalformedInput(t *testing.T) {
	repo := &stubCarRepo{}
	Catalog.Cars = repo

	for _, query := range []string{
		"?longitude=east&latitude=12.97",
		"?longitude=77.59&latitude=12.97&maxDistance=-5",
	} {
		w := nearbyRequest(t, query)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected status 400, got %d", query, w.Code)
		}
	}
	if repo.nearbyCalls != 0 {
		t.Errorf("repository should not be called on validation failure, got %d calls", repo.nearbyCalls)
	}
}
