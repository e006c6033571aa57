package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/models"
)

// setupTestRouter wires every route group against a fresh in-memory
// database.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db.DB = db.NewTestDB(t)

	router := gin.New()
	UserRoutes(router)
	GroupRoutes(router)
	ItemRoutes(router)
	StockRoutes(router)
	MovementRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

func createTestUser(t *testing.T, router *gin.Engine, name, email string) models.User {
	t.Helper()
	w := doRequest(t, router, "POST", "/users/", gin.H{"name": name, "email": email})
	if w.Code != 200 {
		t.Fatalf("creating user %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		User models.User `json:"user"`
	}
	decodeResponse(t, w, &resp)
	return resp.User
}

func createTestGroup(t *testing.T, router *gin.Engine, name string) models.Group {
	t.Helper()
	w := doRequest(t, router, "POST", "/groups/", gin.H{"name": name})
	if w.Code != 200 {
		t.Fatalf("creating group %s: status %d, body %s", name, w.Code, w.Body.String())
	}
	var resp struct {
		Group models.Group `json:"group"`
	}
	decodeResponse(t, w, &resp)
	return resp.Group
}

func createTestItem(t *testing.T, router *gin.Engine, name string) models.Item {
	t.Helper()
	w := doRequest(t, router, "POST", "/items/", gin.H{"name": name, "is_food": true, "unit": "L"})
	if w.Code != 200 {
		t.Fatalf("creating item %s: status %d, body %s", name, w.Code, w.Body.String())
	}
	var resp struct {
		Item models.Item `json:"item"`
	}
	decodeResponse(t, w, &resp)
	return resp.Item
}

func createTestStock(t *testing.T, router *gin.Engine, body gin.H) models.Stock {
	t.Helper()
	w := doRequest(t, router, "POST", "/stocks/", body)
	if w.Code != 200 {
		t.Fatalf("creating stock: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Stock models.Stock `json:"stock"`
	}
	decodeResponse(t, w, &resp)
	return resp.Stock
}
