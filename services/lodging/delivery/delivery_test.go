package delivery_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"minshuku/config"
	"minshuku/services/lodging"
	"minshuku/services/lodging/delivery"

	"github.com/gofiber/fiber/v2"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("API_SECRET", "")

	db, err := config.OpenDB(config.DatabaseOptions{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "http.sqlite"),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	services := lodging.NewServices(lodging.NewRepositories(db), 5*time.Second)
	return delivery.NewApp(services.HTTP())
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, target, raw, err)
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/health", "")
	if status != http.StatusOK || !env.Success {
		t.Errorf("health = %d %+v", status, env)
	}
}

func TestGuestLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/api/guests",
		`{"full_name":"Luis Soto","national_id":"7.654.321-6","email":"luis@example.com","sex":"Hombre","age":34}`)
	if status != http.StatusCreated {
		t.Fatalf("create guest = %d %+v", status, env)
	}
	var created struct {
		GuestID int `json:"guest_id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.GuestID == 0 {
		t.Fatalf("bad create payload %s: %v", env.Data, err)
	}

	status, env = do(t, app, http.MethodPost, "/api/guests",
		`{"full_name":"Otro","national_id":"7654321-6","email":"otro@example.com","sex":"male"}`)
	if status != http.StatusConflict {
		t.Errorf("duplicate guest = %d %+v", status, env)
	}

	status, env = do(t, app, http.MethodGet, "/api/guests?q=soto", "")
	if status != http.StatusOK {
		t.Fatalf("search = %d", status)
	}
	var found []map[string]interface{}
	if err := json.Unmarshal(env.Data, &found); err != nil || len(found) != 1 {
		t.Errorf("search result %s: %v", env.Data, err)
	}

	status, _ = do(t, app, http.MethodPost, "/api/guests/1/family", `{"name":"Pedro","sex":"male","age":121}`)
	if status != http.StatusBadRequest {
		t.Errorf("family member age 121 = %d", status)
	}
	status, _ = do(t, app, http.MethodPost, "/api/guests/1/family", `{"name":"Pedro","sex":"male","age":120,"relation":"Hijo"}`)
	if status != http.StatusCreated {
		t.Errorf("family member age 120 = %d", status)
	}

	status, _ = do(t, app, http.MethodDelete, "/api/guests/1", "")
	if status != http.StatusOK {
		t.Errorf("delete guest = %d", status)
	}
	status, _ = do(t, app, http.MethodGet, "/api/guests/1", "")
	if status != http.StatusNotFound {
		t.Errorf("get deleted guest = %d", status)
	}
}

func TestCreateGuest_ValidationMessage(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodPost, "/api/guests",
		`{"full_name":"Luis","national_id":"12345678-9","email":"luis@example.com","sex":"male"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if env.Error != "Invalid national ID" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCreateGuest_NormalizesBeforeValidating(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodPost, "/api/guests",
		`{"full_name":"  Ana Rojas ","national_id":"12.345.678-5","email":" Ana@Mail.cl ","sex":"Mujer"}`)
	if status != http.StatusCreated {
		t.Fatalf("create guest = %d %+v", status, env)
	}

	status, env = do(t, app, http.MethodGet, "/api/guests/1", "")
	if status != http.StatusOK {
		t.Fatalf("get guest = %d", status)
	}
	var got struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Sex      string `json:"sex"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode %s: %v", env.Data, err)
	}
	if got.FullName != "Ana Rojas" || got.Email != "ana@mail.cl" || got.Sex != "female" {
		t.Errorf("stored guest = %+v", got)
	}
}

func TestCreateGuest_FirstErrorInDetectionOrder(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodPost, "/api/guests",
		`{"full_name":" ","national_id":"12345678-9","email":"bad","sex":"other"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if env.Error != "Name is required" {
		t.Errorf("error = %q", env.Error)
	}
	var all []string
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatalf("decode %s: %v", env.Data, err)
	}
	want := []string{"Name is required", "Invalid national ID", "Invalid email format", "Invalid sex"}
	if strings.Join(all, "|") != strings.Join(want, "|") {
		t.Errorf("errors = %v, want %v", all, want)
	}
}

func TestHouseFullReplace(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodPost, "/api/hosts", `{"full_name":"Ana","national_id":"12345678-5","sex":"female"}`)
	if status != http.StatusCreated {
		t.Fatalf("create host = %d", status)
	}

	status, env := do(t, app, http.MethodPost, "/api/houses",
		`{"address":"Los Aromos 123","host_id":1,"rooms":[{"capacity":1,"beds":[{"type":"individual"}]},{"capacity":2},{"capacity":3}],"bathrooms":[{"location":"arriba","has_tub":true}]}`)
	if status != http.StatusCreated {
		t.Fatalf("create house = %d %+v", status, env)
	}

	status, env = do(t, app, http.MethodPut, "/api/houses/1",
		`{"address":"Los Aromos 123","host_id":1,"rooms":[{"capacity":1},{"capacity":3}],"bathrooms":[]}`)
	if status != http.StatusOK {
		t.Fatalf("save house = %d %+v", status, env)
	}

	status, env = do(t, app, http.MethodGet, "/api/houses/1", "")
	if status != http.StatusOK {
		t.Fatalf("get house = %d", status)
	}
	var house struct {
		Rooms     []struct{ Capacity int } `json:"rooms"`
		Bathrooms []struct{}               `json:"bathrooms"`
	}
	if err := json.Unmarshal(env.Data, &house); err != nil {
		t.Fatalf("decode house: %v", err)
	}
	if len(house.Rooms) != 2 || house.Rooms[1].Capacity != 3 || len(house.Bathrooms) != 0 {
		t.Errorf("unexpected house %+v", house)
	}

	status, _ = do(t, app, http.MethodPut, "/api/houses/9", `{"address":"x","host_id":1}`)
	if status != http.StatusNotFound {
		t.Errorf("save missing house = %d", status)
	}
}

func TestFacilityRoutes(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodPost, "/api/hosts", `{"full_name":"Ana","national_id":"12345678-5","sex":"female"}`)
	if status != http.StatusCreated {
		t.Fatalf("create host = %d", status)
	}
	status, env := do(t, app, http.MethodPost, "/api/houses", `{"address":"Los Aromos 123","host_id":1,
		"rooms":[{"name":"Terraza","capacity":1},{"name":"Buhardilla","capacity":2}],
		"bathrooms":[{"location":"segundo piso","has_tub":true},{"location":"entrada"}]}`)
	if status != http.StatusCreated {
		t.Fatalf("create house = %d %+v", status, env)
	}

	var rooms []struct {
		Name string `json:"name"`
	}
	status, env = do(t, app, http.MethodGet, "/api/rooms", "")
	if status != http.StatusOK {
		t.Fatalf("list rooms = %d", status)
	}
	if err := json.Unmarshal(env.Data, &rooms); err != nil || len(rooms) != 2 || rooms[0].Name != "Buhardilla" {
		t.Errorf("rooms %s: %v", env.Data, err)
	}

	status, env = do(t, app, http.MethodGet, "/api/rooms?house_id=1", "")
	if status != http.StatusOK {
		t.Fatalf("list house rooms = %d", status)
	}
	if err := json.Unmarshal(env.Data, &rooms); err != nil || len(rooms) != 2 || rooms[0].Name != "Terraza" {
		t.Errorf("house rooms %s: %v", env.Data, err)
	}

	var bathrooms []struct {
		Location string `json:"location"`
	}
	status, env = do(t, app, http.MethodGet, "/api/bathrooms", "")
	if status != http.StatusOK {
		t.Fatalf("list bathrooms = %d", status)
	}
	if err := json.Unmarshal(env.Data, &bathrooms); err != nil || len(bathrooms) != 2 || bathrooms[0].Location != "entrada" {
		t.Errorf("bathrooms %s: %v", env.Data, err)
	}

	status, env = do(t, app, http.MethodGet, "/api/bathrooms?house_id=2", "")
	if status != http.StatusOK {
		t.Fatalf("list bathrooms of missing house = %d", status)
	}
	if err := json.Unmarshal(env.Data, &bathrooms); err != nil || len(bathrooms) != 0 {
		t.Errorf("bathrooms of missing house %s: %v", env.Data, err)
	}
}

func TestValidateRut(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/validate/rut?value=12.345.678-5", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var out struct {
		Normalized string `json:"normalized"`
		Valid      bool   `json:"valid"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Valid || out.Normalized != "12345678-5" {
		t.Errorf("unexpected %+v", out)
	}
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)
	t.Setenv("API_SECRET", "secret")

	status, _ := do(t, app, http.MethodGet, "/api/hosts", "")
	if status != http.StatusUnauthorized {
		t.Errorf("no token = %d", status)
	}
	status, _ = do(t, app, http.MethodGet, "/health", "")
	if status != http.StatusOK {
		t.Errorf("health should stay public, got %d", status)
	}
}
