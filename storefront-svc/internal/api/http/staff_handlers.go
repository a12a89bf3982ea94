package httpapi

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

func (h *Handler) registerStaffRoutes(r *mux.Router) {
	s := r.PathPrefix("/api/staff").Subrouter()
	s.Use(StaffAuth(h.Tokens, h.Log))

	s.HandleFunc("/orders", h.listOrders).Methods("GET")
	s.HandleFunc("/orders/{orderId}", h.getOrder).Methods("GET")
	s.HandleFunc("/orders/{orderId}/status", h.updateOrderStatus).Methods("PATCH")

	s.HandleFunc("/service-requests", h.listServiceRequests).Methods("GET")
	s.HandleFunc("/service-requests/{requestId}/complete", h.completeServiceRequest).Methods("POST")

	s.HandleFunc("/menu", h.listMenuItems).Methods("GET")
	s.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	s.HandleFunc("/menu/scan", h.scanMenu).Methods("POST")
	s.HandleFunc("/menu/import", h.importMenu).Methods("POST")
	s.HandleFunc("/menu/{itemId}", h.updateMenuItem).Methods("PUT")
	s.HandleFunc("/menu/{itemId}", h.deleteMenuItem).Methods("DELETE")

	s.HandleFunc("/stats/today", h.todayStats).Methods("GET")
	s.HandleFunc("/tables", h.listTables).Methods("GET")
	s.HandleFunc("/tables/{tableId}/qrcode", h.tableQRCode).Methods("GET")
}

func restaurantOf(r *http.Request) string {
	if claims := staffClaims(r.Context()); claims != nil {
		return claims.RestaurantID
	}
	return ""
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeValidation, err, key+" must be a number")
	}
	return n, nil
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	size, err := queryInt(r, "page_size", 0)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	orders, err := h.Staff.ListActiveOrders(r.Context(), restaurantOf(r), page, size)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Staff.GetOrder(r.Context(), restaurantOf(r), mux.Vars(r)["orderId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=PENDING PREPARING READY SERVED PAID CANCELLED"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	order, err := h.Staff.UpdateOrderStatus(r.Context(), restaurantOf(r), mux.Vars(r)["orderId"], req.Status)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listServiceRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Staff.ListPendingRequests(r.Context(), restaurantOf(r))
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.ServiceRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *Handler) completeServiceRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.Staff.CompleteRequest(r.Context(), restaurantOf(r), mux.Vars(r)["requestId"]); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.Menus.Catalog(r.Context(), restaurantOf(r))
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Entries())
}

type menuItemRequest struct {
	Name        string          `json:"name" validate:"required,max=120"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required,max=64"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	DietaryTags []string        `json:"dietary" validate:"max=10,dive,required,max=16"`
	Popular     bool            `json:"is_popular"`
	InStock     *bool           `json:"in_stock"`
}

func (m menuItemRequest) entry(restaurantID, id string) *domain.MenuEntry {
	inStock := true
	if m.InStock != nil {
		inStock = *m.InStock
	}
	tags := m.DietaryTags
	if tags == nil {
		tags = []string{}
	}
	return &domain.MenuEntry{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Category:     m.Category,
		ImageURL:     m.ImageURL,
		DietaryTags:  tags,
		Popular:      m.Popular,
		InStock:      inStock,
	}
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	entry := req.entry(restaurantOf(r), "")
	if err := h.Menus.CreateItem(r.Context(), entry); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	entry := req.entry(restaurantOf(r), mux.Vars(r)["itemId"])
	if err := h.Menus.UpdateItem(r.Context(), entry); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menus.DeleteItem(r.Context(), restaurantOf(r), mux.Vars(r)["itemId"]); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Photos arrive base64 encoded inside JSON.
const maxScanBody = 8 << 20

type scanRequest struct {
	Image    string `json:"image" validate:"required,base64"`
	MimeType string `json:"mime_type" validate:"required,oneof=image/jpeg image/png image/webp"`
}

func (h *Handler) scanMenu(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxScanBody)
	var req scanRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		WriteError(r.Context(), h.Log, w, apperr.Wrap(apperr.CodeValidation, err, "image must be base64"))
		return
	}
	drafts, err := h.Menus.ScanImage(r.Context(), restaurantOf(r), image, req.MimeType)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": drafts})
}

type importRequest struct {
	Items   []menuItemRequest `json:"items" validate:"required,min=1,max=200,dive"`
	Replace bool              `json:"replace"`
}

func (h *Handler) importMenu(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	restaurantID := restaurantOf(r)
	entries := make([]domain.MenuEntry, 0, len(req.Items))
	for _, item := range req.Items {
		entries = append(entries, *item.entry(restaurantID, ""))
	}
	stored, err := h.Menus.ImportItems(r.Context(), restaurantID, entries, req.Replace)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"items": stored, "replaced": req.Replace})
}

func (h *Handler) todayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Staff.TodayStats(r.Context(), restaurantOf(r))
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Staff.ListTables(r.Context(), restaurantOf(r))
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) tableQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Staff.TableQRCode(r.Context(), restaurantOf(r), mux.Vars(r)["tableId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
