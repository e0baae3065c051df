package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/customer"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/llm"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/order"
)

type fakeCompletions struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompletions) Complete(_ context.Context, _ string, _ []llm.Turn) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeNotifier struct {
	orders []*order.Order
}

func (f *fakeNotifier) NotifyOrder(_ context.Context, o *order.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func setupChatTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.POST("/chat", h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const orderReply = "Perfecte!\n" +
	`ORDER_JSON: {"client":{"nom":"Joan","telefon":"600111222"},"comanda":[{"pizza":"Margherita","quantitat":1,"modificacions":[],"ingredients_extra":[],"preu_total_pizza":9.70}],"entrega":{"tipus":"recollida","cost_entrega":0,"temps_estimacio":"15 min"},"pagament":"efectiu","total_comanda":9.70}`

func TestChat_MissingMessage(t *testing.T) {
	completions := &fakeCompletions{reply: "hola"}
	r := setupChatTestRouter(NewHandler(NewService(completions, nil, nil, nil), "key"))

	w := postChat(t, r, map[string]any{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if completions.calls != 0 {
		t.Fatal("completion API must not be called without a message")
	}
}

func TestChat_MethodNotAllowed(t *testing.T) {
	r := setupChatTestRouter(NewHandler(NewService(&fakeCompletions{}, nil, nil, nil), "key"))

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestChat_MissingAPIKey(t *testing.T) {
	completions := &fakeCompletions{reply: "hola"}
	r := setupChatTestRouter(NewHandler(NewService(completions, nil, nil, nil), ""))

	w := postChat(t, r, map[string]any{"message": "Hola"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if completions.calls != 0 {
		t.Fatal("completion API must not be called without configuration")
	}
}

// Plain reply, no marker: pass-through, zero side effects.
func TestChat_PlainReply(t *testing.T) {
	completions := &fakeCompletions{reply: "Clar que sí! Una Margherita per recollir, uns 15 minutets."}
	notifier := &fakeNotifier{}
	customers := customer.NewInMemoryRepository()
	orders := order.NewInMemoryRepository()
	service := NewService(completions, customer.NewLookup(customers), notifier, order.NewPersister(customers, orders))
	r := setupChatTestRouter(NewHandler(service, "key"))

	w := postChat(t, r, map[string]any{"message": "Vull una Margherita per recollir"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Response != completions.reply {
		t.Fatalf("reply was modified: %q", resp.Response)
	}
	if len(notifier.orders) != 0 || len(orders.Orders) != 0 {
		t.Fatal("no side effects expected without a marker")
	}
}

// Confirmed order: marker stripped, notification and persistence attempted.
func TestChat_ConfirmedOrder(t *testing.T) {
	completions := &fakeCompletions{reply: orderReply}
	notifier := &fakeNotifier{}
	customers := customer.NewInMemoryRepository()
	orders := order.NewInMemoryRepository()
	service := NewService(completions, customer.NewLookup(customers), notifier, order.NewPersister(customers, orders))
	r := setupChatTestRouter(NewHandler(service, "key"))

	w := postChat(t, r, map[string]any{"message": "Sí, confirmo"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Response != "Perfecte!" {
		t.Fatalf("marker not stripped: %q", resp.Response)
	}

	if len(notifier.orders) != 1 || notifier.orders[0].Customer.Name != "Joan" {
		t.Fatalf("expected one notification for Joan, got %+v", notifier.orders)
	}
	c, _ := customers.FindByPhone(context.Background(), "600111222")
	if c == nil {
		t.Fatal("customer upsert not attempted")
	}
	if len(orders.Orders) != 1 || len(orders.Lines) != 1 {
		t.Fatalf("expected one order and one line, got %d/%d", len(orders.Orders), len(orders.Lines))
	}
}

// Unparsable payload: 200 with the unmodified reply, no side effects.
func TestChat_UnparsablePayload(t *testing.T) {
	reply := "Perfecte!\nORDER_JSON: {trencat"
	completions := &fakeCompletions{reply: reply}
	notifier := &fakeNotifier{}
	orders := order.NewInMemoryRepository()
	customers := customer.NewInMemoryRepository()
	service := NewService(completions, nil, notifier, order.NewPersister(customers, orders))
	r := setupChatTestRouter(NewHandler(service, "key"))

	w := postChat(t, r, map[string]any{"message": "Sí"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Response != reply {
		t.Fatalf("reply was modified: %q", resp.Response)
	}
	if len(notifier.orders) != 0 || len(orders.Orders) != 0 {
		t.Fatal("no side effects expected for an unparsable payload")
	}
}

// Upstream failure: status code passthrough with a generic message.
func TestChat_UpstreamStatusPassthrough(t *testing.T) {
	completions := &fakeCompletions{err: &llm.UpstreamError{StatusCode: 529, Body: "overloaded"}}
	r := setupChatTestRouter(NewHandler(NewService(completions, nil, nil, nil), "key"))

	w := postChat(t, r, map[string]any{"message": "Hola"})

	if w.Code != 529 {
		t.Fatalf("expected 529 passthrough, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Failed to get response from AI" {
		t.Fatalf("wrong error body: %v", body)
	}
}

// History reaches the completion API and the reply still comes back intact.
func TestChat_WithHistory(t *testing.T) {
	completions := &fakeCompletions{reply: "Bones de nou!"}
	r := setupChatTestRouter(NewHandler(NewService(completions, nil, nil, nil), "key"))

	w := postChat(t, r, map[string]any{
		"message": "I una de Pepperoni?",
		"history": []map[string]any{
			{"role": "user", "parts": []map[string]string{{"text": "Hola"}}},
			{"role": "model", "parts": []map[string]string{{"text": "Bones!"}}},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if completions.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", completions.calls)
	}
}
