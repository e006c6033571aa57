package routes

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/adrienb3106/fridgey-backend/models"
)

func TestCreateStockUnknownItem(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(t, router, "POST", "/stocks/", map[string]any{"item_id": 9999, "initial_quantity": "5"})
	if w.Code != 404 {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestCreateStockInitializesRemaining(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")
	stock := createTestStock(t, router, map[string]any{
		"item_id":            item.ID,
		"initial_quantity":   "5",
		"remaining_quantity": "99", // ignored, server derives remaining
	})

	if !stock.RemainingQuantity.Equal(decimal.RequireFromString("5")) {
		t.Errorf("expected remaining 5, got %s", stock.RemainingQuantity)
	}
	if stock.LotCount != 1 {
		t.Errorf("expected lot_count default 1, got %d", stock.LotCount)
	}

	// Exactly one opening movement exists.
	w := doRequest(t, router, "GET", fmt.Sprintf("/movements/stock/%d", stock.ID), nil)
	var resp struct {
		Movements []models.StockMovement `json:"movements"`
	}
	decodeResponse(t, w, &resp)
	if len(resp.Movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(resp.Movements))
	}
	if !resp.Movements[0].ChangeQuantity.Equal(decimal.RequireFromString("5")) {
		t.Errorf("expected opening change 5, got %s", resp.Movements[0].ChangeQuantity)
	}
}

func TestCreateStockDanglingOwner(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")

	w := doRequest(t, router, "POST", "/stocks/", map[string]any{
		"item_id": item.ID, "user_id": 9999, "initial_quantity": "5",
	})
	if w.Code != 400 {
		t.Fatalf("expected 400 for unknown owning user, got %d, body %s", w.Code, w.Body.String())
	}

	w = doRequest(t, router, "POST", "/stocks/", map[string]any{
		"item_id": item.ID, "group_id": 9999, "initial_quantity": "5",
	})
	if w.Code != 400 {
		t.Fatalf("expected 400 for unknown owning group, got %d, body %s", w.Code, w.Body.String())
	}

	// Nothing was persisted by the rejected requests.
	w = doRequest(t, router, "GET", "/stocks/", nil)
	var resp struct {
		Stocks []models.Stock `json:"stocks"`
	}
	decodeResponse(t, w, &resp)
	if len(resp.Stocks) != 0 {
		t.Errorf("expected no stocks, got %d", len(resp.Stocks))
	}
}

func TestCreateStockNegativeInitial(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")
	w := doRequest(t, router, "POST", "/stocks/", map[string]any{"item_id": item.ID, "initial_quantity": "-1"})
	if w.Code != 400 {
		t.Errorf("expected 400 for negative initial quantity, got %d", w.Code)
	}
}

// The scenario from the API docs: 5L of milk, drink 2, then try to
// drink 10.
func TestMilkScenario(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")
	stock := createTestStock(t, router, map[string]any{"item_id": item.ID, "initial_quantity": "5"})

	w := doRequest(t, router, "PUT", fmt.Sprintf("/stocks/%d?change=-2", stock.ID), nil)
	if w.Code != 200 {
		t.Fatalf("PUT change=-2: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Stock models.Stock `json:"stock"`
	}
	decodeResponse(t, w, &resp)
	if !resp.Stock.RemainingQuantity.Equal(decimal.RequireFromString("3")) {
		t.Errorf("expected remaining 3, got %s", resp.Stock.RemainingQuantity)
	}

	w = doRequest(t, router, "GET", fmt.Sprintf("/movements/stock/%d", stock.ID), nil)
	var movResp struct {
		Movements []models.StockMovement `json:"movements"`
	}
	decodeResponse(t, w, &movResp)
	if len(movResp.Movements) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(movResp.Movements))
	}
	if !movResp.Movements[0].ChangeQuantity.Equal(decimal.RequireFromString("5")) ||
		!movResp.Movements[1].ChangeQuantity.Equal(decimal.RequireFromString("-2")) {
		t.Errorf("unexpected movement changes: %s, %s",
			movResp.Movements[0].ChangeQuantity, movResp.Movements[1].ChangeQuantity)
	}

	// Draining more than remains is rejected and changes nothing.
	w = doRequest(t, router, "PUT", fmt.Sprintf("/stocks/%d?change=-10", stock.ID), nil)
	if w.Code != 400 {
		t.Fatalf("expected 400 on insufficient quantity, got %d", w.Code)
	}
	w = doRequest(t, router, "GET", fmt.Sprintf("/stocks/%d", stock.ID), nil)
	decodeResponse(t, w, &resp)
	if !resp.Stock.RemainingQuantity.Equal(decimal.RequireFromString("3")) {
		t.Errorf("expected remaining to stay 3, got %s", resp.Stock.RemainingQuantity)
	}
}

func TestUpdateStockQuantityBadRequests(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")
	stock := createTestStock(t, router, map[string]any{"item_id": item.ID, "initial_quantity": "5"})

	if w := doRequest(t, router, "PUT", fmt.Sprintf("/stocks/%d", stock.ID), nil); w.Code != 400 {
		t.Errorf("expected 400 without change param, got %d", w.Code)
	}
	if w := doRequest(t, router, "PUT", fmt.Sprintf("/stocks/%d?change=abc", stock.ID), nil); w.Code != 400 {
		t.Errorf("expected 400 on unparseable change, got %d", w.Code)
	}
	if w := doRequest(t, router, "PUT", "/stocks/9999?change=-1", nil); w.Code != 404 {
		t.Errorf("expected 404 on unknown stock, got %d", w.Code)
	}
}

func TestDeleteStockCascadesMovements(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")
	stock := createTestStock(t, router, map[string]any{"item_id": item.ID, "initial_quantity": "5"})
	doRequest(t, router, "PUT", fmt.Sprintf("/stocks/%d?change=-1", stock.ID), nil)

	if w := doRequest(t, router, "DELETE", fmt.Sprintf("/stocks/%d", stock.ID), nil); w.Code != 200 {
		t.Fatalf("DELETE stock: status %d", w.Code)
	}

	if w := doRequest(t, router, "GET", fmt.Sprintf("/stocks/%d", stock.ID), nil); w.Code != 404 {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}

	// All movements went with the stock.
	w := doRequest(t, router, "GET", "/movements/", nil)
	var resp struct {
		Movements []models.StockMovement `json:"movements"`
	}
	decodeResponse(t, w, &resp)
	if len(resp.Movements) != 0 {
		t.Errorf("expected no orphaned movements, got %d", len(resp.Movements))
	}
}

func TestGetAllStocks(t *testing.T) {
	router := setupTestRouter(t)

	item := createTestItem(t, router, "Milk")
	createTestStock(t, router, map[string]any{"item_id": item.ID, "initial_quantity": "5"})
	createTestStock(t, router, map[string]any{"item_id": item.ID, "initial_quantity": "2"})

	w := doRequest(t, router, "GET", "/stocks/", nil)
	if w.Code != 200 {
		t.Fatalf("GET stocks: status %d", w.Code)
	}
	var resp struct {
		Stocks []models.Stock `json:"stocks"`
	}
	decodeResponse(t, w, &resp)
	if len(resp.Stocks) != 2 {
		t.Errorf("expected 2 stocks, got %d", len(resp.Stocks))
	}
}
