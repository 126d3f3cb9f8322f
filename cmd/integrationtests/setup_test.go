package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/bidding"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/locks"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/settlement"

	"github.com/gin-gonic/gin"
)

// recordingNotifier captures winner notifications instead of delivering them
// over HTTP. failNext makes the next delivery attempt fail once.
type recordingNotifier struct {
	mu       sync.Mutex
	sent     []string
	failNext bool
}

func (r *recordingNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return context.DeadlineExceeded
	}
	r.sent = append(r.sent, recipient)
	return nil
}

func (r *recordingNotifier) recipients() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sent...)
}

func (r *recordingNotifier) failNextDelivery() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNext = true
}

// SetupTestRouter initializes the full HTTP stack on an in-memory repository
// seeded with the standard test accounts.
func SetupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo, *recordingNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, u := range []model.User{
		{UserID: "admin1", Name: "Admin", Email: "admin@market.test", Role: model.RoleAdmin},
		{UserID: "seller1", Name: "Sam Seller", Email: "sam@market.test", Role: model.RoleSeller},
		{UserID: "buyer1", Name: "Ann Buyer", Email: "ann@market.test", Role: model.RoleBuyer},
		{UserID: "buyer2", Name: "Bea Buyer", Email: "bea@market.test", Role: model.RoleBuyer},
	} {
		if err := repo.AddUser(u); err != nil {
			t.Fatalf("failed to seed user %s: %v", u.UserID, err)
		}
	}

	n := &recordingNotifier{}
	dispatcher := notifier.NewDispatcher(repo, n, 3, 5*time.Millisecond, 100*time.Millisecond)
	dispatcher.Start()
	t.Cleanup(dispatcher.Stop)

	productLocks := locks.NewKeyed()
	biddingService := bidding.NewBiddingService(repo, productLocks)
	settlementService := settlement.NewSettlementService(repo, n, dispatcher, productLocks, 100*time.Millisecond)
	catalogService := catalog.NewCatalogService(repo, productLocks)

	return server.SetupRouter(biddingService, settlementService, catalogService), repo, n
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
// parses the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case []byte:
		reqBody = v
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// dataOf extracts the data object from a response envelope.
func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
