package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"student-exchange/internal/arbitration"
	"student-exchange/internal/cart"
	"student-exchange/internal/config"
	"student-exchange/internal/listing"
	model "student-exchange/internal/models"
	"student-exchange/internal/repository"
	"student-exchange/internal/request"
	"student-exchange/internal/server"
)

const testJWTSecret = "integration-test-secret"

// SetupTestRouter initializes the full router stack with an in-memory
// repository seeded with the given items.
func SetupTestRouter(items ...model.Item) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, item := range items {
		repo.AddItem(item)
	}

	cfg := &config.Config{
		ServerAddress: ":0",
		JWTSecret:     testJWTSecret,
	}

	listingService := listing.NewListingService(repo)
	cartService := cart.NewCartService(repo)
	requestService := request.NewRequestService(repo)
	arbitrationService := arbitration.NewArbitrationService(repo)

	return server.SetupRouter(cfg, listingService, cartService, requestService, arbitrationService)
}

// TokenFor signs a short-lived token for the given user with the test secret.
func TokenFor(t *testing.T, username string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// ExecuteRequestAs executes an HTTP request authenticated as the given user
// and parses the JSON response. An empty user sends no Authorization header.
func ExecuteRequestAs(t *testing.T, router *gin.Engine, user, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
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
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+TokenFor(t, user))
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// DataOf extracts the data envelope of a successful response as a map.
func DataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// ListOf extracts the data envelope of a successful response as a list.
func ListOf(t *testing.T, resp map[string]any) []map[string]any {
	t.Helper()

	raw, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no data list: %v", resp)
	}
	out := make([]map[string]any, len(raw))
	for i, v := range raw {
		out[i] = v.(map[string]any)
	}
	return out
}

func availableItem(itemID, seller string, price float64) model.Item {
	return model.Item{
		ItemID:      itemID,
		Seller:      seller,
		Title:       itemID + " title",
		Description: itemID + " description",
		Price:       price,
		Status:      model.ItemAvailable,
		CreatedAt:   time.Now().UTC(),
	}
}
