package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "car-auction/internal/auctionService"
	"car-auction/internal/inventory"
	model "car-auction/internal/models"
	"car-auction/internal/registry"
	"car-auction/internal/server"
	user "car-auction/internal/userService"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with fresh in-memory state for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	carStore := inventory.NewStore(utils.NewSequence(1))
	auctions := registry.NewRegistry()
	userService := user.NewUserService(utils.NewSequence(1))
	auctionService := auction.NewAuctionService(carStore, auctions, utils.NewSequence(1))
	return server.SetupRouter(auctionService, carStore, userService)
}

// SetupTestRouterSeeded initializes the router and seeds it with users and
// cars. Users get ids 1..len(userNames) in order; cars get ids 1..len(cars).
func SetupTestRouterSeeded(t *testing.T, userNames []string, cars ...model.CarSpec) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	carStore := inventory.NewStore(utils.NewSequence(1))
	auctions := registry.NewRegistry()
	userService := user.NewUserService(utils.NewSequence(1))
	auctionService := auction.NewAuctionService(carStore, auctions, utils.NewSequence(1))

	for _, name := range userNames {
		if _, err := userService.AddUser(name); err != nil {
			t.Fatalf("failed to seed user %q: %v", name, err)
		}
	}
	for _, spec := range cars {
		if _, err := carStore.Add(spec); err != nil {
			t.Fatalf("failed to seed car: %v", err)
		}
	}

	return server.SetupRouter(auctionService, carStore, userService)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

func intPtr(v int) *int { return &v }

func sedanSpec(ownerID int) model.CarSpec {
	return model.CarSpec{
		Type:         model.TypeSedan,
		Manufacturer: "Toyota",
		Model:        "Camry",
		Year:         2021,
		StartBid:     10000,
		OwnerID:      ownerID,
		NumDoors:     intPtr(4),
	}
}
