package api

import (
	"log/slog"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/evomind/evomind-api/internal/store"
)

// Refund and privacy acknowledgements.
const (
	RefundTicketPrefix  = "RF"
	RefundStatusPending = "待审核"
	PrivacyStatusQueued = "已受理"
	MessageExportQueued = "导出文件将在24小时内生成"
	MessageDeleteQueued = "账号注销申请已提交，T+7完成删除"
)

// OrderHandler handles orders, refunds and privacy requests.
type OrderHandler struct {
	orders    store.OrderStore
	ticketSeq *domain.Sequence
	logger    *slog.Logger
}

// NewOrderHandler creates a new OrderHandler. Refund ticket numbers are
// drawn from ticketSeq.
func NewOrderHandler(orders store.OrderStore, ticketSeq *domain.Sequence, logger *slog.Logger) *OrderHandler {
	if orders == nil || ticketSeq == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("order store and ticket sequence cannot be nil for OrderHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{
		orders:    orders,
		ticketSeq: ticketSeq,
		logger:    logger.With(slog.String("component", "order_handler")),
	}
}

// Create handles POST /orders/create.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create order")
		return
	}
	shared.RespondOK(w, r, order)
}

// History handles GET /orders/history?userId=.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryParam(w, r, "userId")
	if !ok {
		return
	}
	shared.RespondOK(w, r, h.orders.Orders(r.Context(), userID))
}

// ApplyRefund handles POST /refund/apply. The ticket is not persisted.
func (h *OrderHandler) ApplyRefund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ticketNo := h.ticketSeq.NextWithPrefix(RefundTicketPrefix)
	logger.FromContextOrDefault(r.Context(), h.logger).Info("refund ticket opened",
		slog.String("user_id", req.UserID),
		slog.String("order_no", req.OrderNo),
		slog.String("ticket_no", ticketNo))

	shared.RespondOK(w, r, RefundResponse{TicketNo: ticketNo, Status: RefundStatusPending})
}

// ExportData handles POST /privacy/export.
func (h *OrderHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	h.acceptPrivacyRequest(w, r, "export", MessageExportQueued)
}

// DeleteAccount handles POST /privacy/delete-account.
func (h *OrderHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	h.acceptPrivacyRequest(w, r, "delete_account", MessageDeleteQueued)
}

func (h *OrderHandler) acceptPrivacyRequest(w http.ResponseWriter, r *http.Request, kind, message string) {
	var req UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("privacy request accepted",
		slog.String("user_id", req.UserID),
		slog.String("kind", kind))
	shared.RespondOK(w, r, StatusMessageResponse{Status: PrivacyStatusQueued, Message: message})
}
