package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storekeeper/internal/core/domain"
	"github.com/rl1809/storekeeper/internal/core/service"
)

const dateLayout = "2006-01-02"

type HTTPHandler struct {
	storeService *service.StoreService
}

type StoreHTTPResponse struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	Snapshots int    `json:"snapshots"`
}

type StockHTTPResponse struct {
	Item       string          `json:"item"`
	Quantity   int             `json:"quantity"`
	Cost       decimal.Decimal `json:"cost"`
	SnapshotID string          `json:"snapshot_id"`
	Date       string          `json:"date"`
}

type SnapshotHTTPResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

type AmountSoldHTTPResponse struct {
	Item       string `json:"item"`
	AmountSold int    `json:"amount_sold"`
}

type OrderLineHTTPRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type OrderHTTPRequest struct {
	Lines []OrderLineHTTPRequest `json:"lines"`
}

type QuoteHTTPResponse struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
	USD   string   `json:"usd"`
	BRL   string   `json:"brl"`
}

type ErrorHTTPResponse struct {
	Message string `json:"message"`
}

func NewHTTPHandler(storeService *service.StoreService) *HTTPHandler {
	return &HTTPHandler{storeService: storeService}
}

// Routes registers every endpoint on mux.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/store", h.Store)
	mux.HandleFunc("/api/stock", h.Stock)
	mux.HandleFunc("/api/inventories", h.Inventories)
	mux.HandleFunc("/api/amount-sold", h.AmountSold)
	mux.HandleFunc("/api/order", h.Order)
}

func (h *HTTPHandler) Store(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	info := h.storeService.Info()
	writeJSON(w, http.StatusOK, StoreHTTPResponse{
		Name:      info.Name,
		Address:   info.Address,
		Type:      info.Type,
		Snapshots: info.Snapshots,
	})
}

func (h *HTTPHandler) Stock(w http.ResponseWriter, r *http.Request) {
	item, ok := itemQuery(w, r)
	if !ok {
		return
	}

	rec, err := h.storeService.StockCheck(item)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StockHTTPResponse{
		Item:       rec.Item,
		Quantity:   rec.Record.Quantity,
		Cost:       rec.Record.Cost,
		SnapshotID: rec.Snapshot.ID(),
		Date:       rec.Snapshot.Date().Format(dateLayout),
	})
}

func (h *HTTPHandler) Inventories(w http.ResponseWriter, r *http.Request) {
	item, ok := itemQuery(w, r)
	if !ok {
		return
	}

	found := h.storeService.FindInventory(item)
	resp := make([]SnapshotHTTPResponse, 0, len(found))
	for _, inv := range found {
		resp = append(resp, SnapshotHTTPResponse{ID: inv.ID(), Date: inv.Date().Format(dateLayout)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) AmountSold(w http.ResponseWriter, r *http.Request) {
	item, ok := itemQuery(w, r)
	if !ok {
		return
	}

	sold, err := h.storeService.AmountSold(item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AmountSoldHTTPResponse{Item: item, AmountSold: sold})
}

func (h *HTTPHandler) Order(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req OrderHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Message: "invalid request body"})
		return
	}

	order := make(domain.Order, 0, len(req.Lines))
	for _, line := range req.Lines {
		order = append(order, domain.OrderLine{Item: line.Item, Quantity: line.Quantity})
	}

	quote, err := h.storeService.Quote(order)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuoteHTTPResponse{
		ID:    quote.ID,
		Items: quote.Items,
		USD:   quote.USD.StringFixed(2),
		BRL:   quote.BRL.StringFixed(2),
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func itemQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	item := r.URL.Query().Get("item")
	if item == "" {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Message: "missing item"})
		return "", false
	}
	return item, true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	if errors.Is(err, domain.ErrItemNotFound) {
		status = http.StatusNotFound
		message = err.Error()
	} else if errors.Is(err, service.ErrEmptyOrder) {
		status = http.StatusBadRequest
		message = "empty order"
	}

	writeJSON(w, status, ErrorHTTPResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
