package httpapi

import (
	"net/http"
	"time"

	"restrofi/logger"
	"restrofi/storefront-svc/internal/cart"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/menu"
	"restrofi/storefront-svc/internal/pin"
	"restrofi/storefront-svc/internal/service"
	"restrofi/storefront-svc/internal/session"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Sessions  service.SessionServiceInterface
	Menus     service.MenuServiceInterface
	Orders    service.OrderSubmitterInterface
	Dispatch  service.ServiceDispatcherInterface
	Concierge service.ConciergeServiceInterface
	Staff     service.StaffServiceInterface
	Tokens    service.StaffTokenParser
	Log       *logger.Logger
	Gatherer  prometheus.Gatherer
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	if h.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}

	r.HandleFunc("/api/restaurants/{restaurantId}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/{tableId}/sessions", h.openSession).Methods("POST")

	s := r.PathPrefix("/api/sessions/{sessionId}").Subrouter()
	s.HandleFunc("", h.getSession).Methods("GET")
	s.HandleFunc("", h.closeSession).Methods("DELETE")
	s.HandleFunc("/menu", h.getMenu).Methods("GET")
	s.HandleFunc("/menu/refresh", h.refreshMenu).Methods("POST")
	s.HandleFunc("/filter", h.setFilter).Methods("PUT")
	s.HandleFunc("/filter/tags/{tag}", h.toggleTag).Methods("POST")
	s.HandleFunc("/cart", h.getCart).Methods("GET")
	s.HandleFunc("/cart/items", h.addToCart).Methods("POST")
	s.HandleFunc("/cart/items/{itemId}", h.updateCartItem).Methods("PATCH")
	s.HandleFunc("/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	s.HandleFunc("/orders", h.submitOrder).Methods("POST")
	s.HandleFunc("/service-requests", h.requestService).Methods("POST")
	s.HandleFunc("/chat", h.getTranscript).Methods("GET")
	s.HandleFunc("/chat", h.sendChat).Methods("POST")
	s.HandleFunc("/gate", h.openGate).Methods("POST")
	s.HandleFunc("/gate/digits", h.enterDigit).Methods("POST")
	s.HandleFunc("/gate/backspace", h.backspace).Methods("POST")

	h.registerStaffRoutes(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Sessions.Restaurant(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

type sessionView struct {
	ID            string               `json:"id"`
	RestaurantID  string               `json:"restaurant_id"`
	TableID       string               `json:"table_id"`
	TableNumber   int                  `json:"table_number"`
	Categories    []string             `json:"categories"`
	Filter        menu.FilterState     `json:"filter"`
	Items         []domain.MenuEntry   `json:"items"`
	Cart          cart.Snapshot        `json:"cart"`
	Transcript    []domain.ChatMessage `json:"transcript"`
	Gate          pin.View             `json:"gate"`
	Submitting    bool                 `json:"submitting"`
	AwaitingReply bool                 `json:"awaiting_reply"`
}

func newSessionView(sess *session.Session) sessionView {
	return sessionView{
		ID:            sess.ID,
		RestaurantID:  sess.RestaurantID,
		TableID:       sess.TableID,
		TableNumber:   sess.TableNumber,
		Categories:    sess.Catalog().Categories(),
		Filter:        sess.Filter(),
		Items:         sess.VisibleItems(),
		Cart:          sess.Cart(),
		Transcript:    sess.Transcript(),
		Gate:          sess.GateView(),
		Submitting:    sess.Submitting(),
		AwaitingReply: sess.AwaitingReply(),
	}
}

type menuView struct {
	Categories []string           `json:"categories"`
	Filter     menu.FilterState   `json:"filter"`
	Items      []domain.MenuEntry `json:"items"`
}

func newMenuView(sess *session.Session) menuView {
	return menuView{
		Categories: sess.Catalog().Categories(),
		Filter:     sess.Filter(),
		Items:      sess.VisibleItems(),
	}
}

type cartView struct {
	cart.Snapshot
	Changed *bool `json:"changed,omitempty"`
}

// session resolves the {sessionId} route variable, writing the error itself
// when the session is gone.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.Sessions.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return nil, false
	}
	return sess, true
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sess, err := h.Sessions.Open(r.Context(), vars["restaurantId"], vars["tableId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionView(sess))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess))
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Close(mux.Vars(r)["sessionId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newMenuView(sess))
}

func (h *Handler) refreshMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]
	if _, err := h.Sessions.RefreshCatalog(r.Context(), id); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newMenuView(sess))
}

type filterRequest struct {
	Category    string   `json:"category" validate:"max=64"`
	Search      string   `json:"search" validate:"max=128"`
	DietaryTags []string `json:"dietary" validate:"max=10,dive,required,max=16"`
}

func (h *Handler) setFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	id := mux.Vars(r)["sessionId"]
	if _, err := h.Sessions.SetFilter(id, menu.FilterState{
		Category:    req.Category,
		Search:      req.Search,
		DietaryTags: req.DietaryTags,
	}); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newMenuView(sess))
}

func (h *Handler) toggleTag(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.ToggleDietaryTag(mux.Vars(r)["tag"])
	writeJSON(w, http.StatusOK, newMenuView(sess))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartView{Snapshot: sess.Cart()})
}

type addToCartRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	snap, err := h.Sessions.AddToCart(mux.Vars(r)["sessionId"], req.MenuItemID)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{Snapshot: snap})
}

// Delta may be zero; only a missing field is rejected.
type updateQuantityRequest struct {
	Delta *int `json:"delta" validate:"required,min=-99,max=99"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	vars := mux.Vars(r)
	snap, changed, err := h.Sessions.UpdateQuantity(vars["sessionId"], vars["itemId"], *req.Delta)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{Snapshot: snap, Changed: &changed})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	snap, changed, err := h.Sessions.RemoveFromCart(vars["sessionId"], vars["itemId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{Snapshot: snap, Changed: &changed})
}

type submitOrderRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if r.ContentLength != 0 {
		if err := DecodeJSONBody(r, &req); err != nil {
			WriteError(r.Context(), h.Log, w, err)
			return
		}
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.Submit(r.Context(), sess, req.Notes)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

type serviceRequestBody struct {
	Type domain.ServiceType `json:"type" validate:"required,oneof=WATER BILL SERVER CLEAN"`
}

func (h *Handler) requestService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequestBody
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	created, err := h.Dispatch.Request(r.Context(), sess, req.Type)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type chatView struct {
	Transcript    []domain.ChatMessage `json:"transcript"`
	AwaitingReply bool                 `json:"awaiting_reply"`
}

func (h *Handler) getTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, chatView{Transcript: sess.Transcript(), AwaitingReply: sess.AwaitingReply()})
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

func (h *Handler) sendChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	transcript, err := h.Concierge.Send(r.Context(), sess, req.Message)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatView{Transcript: transcript})
}

func (h *Handler) openGate(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.OpenGate(mux.Vars(r)["sessionId"])
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.PinResult{Gate: view})
}

type digitRequest struct {
	Digit    string `json:"digit" validate:"required,len=1,numeric"`
	Position *int   `json:"position" validate:"omitempty,min=0,max=3"`
}

func (h *Handler) enterDigit(w http.ResponseWriter, r *http.Request) {
	var req digitRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	position := -1
	if req.Position != nil {
		position = *req.Position
	}
	ctx := service.WithClient(r.Context(), clientAddr(r))
	result, err := h.Sessions.EnterPin(ctx, mux.Vars(r)["sessionId"], position, req.Digit)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type backspaceRequest struct {
	Position *int `json:"position" validate:"omitempty,min=0,max=3"`
}

func (h *Handler) backspace(w http.ResponseWriter, r *http.Request) {
	var req backspaceRequest
	if r.ContentLength != 0 {
		if err := DecodeJSONBody(r, &req); err != nil {
			WriteError(r.Context(), h.Log, w, err)
			return
		}
	}
	id := mux.Vars(r)["sessionId"]
	var position int
	if req.Position != nil {
		position = *req.Position
	} else {
		sess, ok := h.session(w, r)
		if !ok {
			return
		}
		position = sess.GateView().Cursor
	}
	view, err := h.Sessions.PinBackspace(id, position)
	if err != nil {
		WriteError(r.Context(), h.Log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.PinResult{Gate: view})
}
