package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderRouter(h *OrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/orders/create", h.Create)
	r.Get("/orders/history", h.History)
	r.Post("/refund/apply", h.ApplyRefund)
	r.Post("/privacy/export", h.ExportData)
	r.Post("/privacy/delete-account", h.DeleteAccount)
	return r
}

func TestOrderHandler_CreateAndHistory(t *testing.T) {
	router := newOrderRouter(NewOrderHandler(store.NewMemoryStore(), domain.NewSequence(nil), nil))

	order := decodeEnvelope[domain.OrderItem](t, doJSON(t, router, http.MethodPost, "/orders/create",
		domain.OrderRequest{UserID: "u100", PlanCode: "BASIC", Channel: "WECHAT", Amount: 12}))
	assert.True(t, strings.HasPrefix(order.OrderNo, domain.OrderNoPrefix))
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, 12, order.Amount)

	history := decodeEnvelope[[]domain.OrderItem](t, doJSON(t, router, http.MethodGet, "/orders/history?userId=u100", nil))
	require.Len(t, history, 1)
	assert.Equal(t, order, history[0])

	none := decodeEnvelope[[]domain.OrderItem](t, doJSON(t, router, http.MethodGet, "/orders/history?userId=nobody", nil))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderHandler_CreateValidation(t *testing.T) {
	router := newOrderRouter(NewOrderHandler(store.NewMemoryStore(), domain.NewSequence(nil), nil))

	tests := []struct {
		name     string
		body     interface{}
		expected string
	}{
		{
			name:     "negative amount",
			body:     domain.OrderRequest{UserID: "u1", PlanCode: "BASIC", Channel: "WECHAT", Amount: -1},
			expected: "Invalid amount: must not be negative",
		},
		{
			name:     "blank plan",
			body:     domain.OrderRequest{UserID: "u1", PlanCode: " ", Channel: "WECHAT"},
			expected: "Invalid planCode: required field",
		},
		{
			name:     "missing user",
			body:     map[string]interface{}{"planCode": "BASIC", "channel": "ALIPAY", "amount": 1},
			expected: "Invalid userId: required field",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := decodeError(t, doJSON(t, router, http.MethodPost, "/orders/create", tc.body), http.StatusBadRequest)
			assert.Equal(t, tc.expected, resp.Error)
		})
	}
}

func TestOrderHandler_ApplyRefund(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	seq := domain.NewSequence(func() time.Time { return fixed })
	router := newOrderRouter(NewOrderHandler(store.NewMemoryStore(), seq, nil))

	first := decodeEnvelope[RefundResponse](t, doJSON(t, router, http.MethodPost, "/refund/apply",
		RefundRequest{UserID: "u1", OrderNo: "OD1", Reason: "不想要了"}))
	second := decodeEnvelope[RefundResponse](t, doJSON(t, router, http.MethodPost, "/refund/apply",
		RefundRequest{UserID: "u1", OrderNo: "OD1", Reason: "不想要了"}))

	assert.Equal(t, RefundResponse{TicketNo: "RF1700000000000", Status: RefundStatusPending}, first)
	assert.Equal(t, "RF1700000000001", second.TicketNo, "ticket numbers never repeat")

	resp := decodeError(t, doJSON(t, router, http.MethodPost, "/refund/apply",
		map[string]string{"userId": "u1", "orderNo": "OD1"}), http.StatusBadRequest)
	assert.Equal(t, "Invalid reason: required field", resp.Error)
}

func TestOrderHandler_PrivacyRequests(t *testing.T) {
	router := newOrderRouter(NewOrderHandler(store.NewMemoryStore(), domain.NewSequence(nil), nil))

	export := decodeEnvelope[StatusMessageResponse](t, doJSON(t, router, http.MethodPost, "/privacy/export",
		UserRequest{UserID: "u1"}))
	assert.Equal(t, StatusMessageResponse{Status: PrivacyStatusQueued, Message: MessageExportQueued}, export)

	del := decodeEnvelope[StatusMessageResponse](t, doJSON(t, router, http.MethodPost, "/privacy/delete-account",
		UserRequest{UserID: "u1"}))
	assert.Equal(t, StatusMessageResponse{Status: PrivacyStatusQueued, Message: MessageDeleteQueued}, del)

	decodeError(t, doJSON(t, router, http.MethodPost, "/privacy/export", UserRequest{}), http.StatusBadRequest)
}
