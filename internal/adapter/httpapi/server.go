package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/usecase"
)

// OrderPlacer оформляет заказ.
type OrderPlacer interface {
	Execute(ctx context.Context, draft domain.OrderDraft) (domain.OrderResult, error)
}

// Options задаёт необязательные настройки сервера.
type Options struct {
	// OrderLimiter ограничивает POST /order; nil снимает ограничение.
	OrderLimiter *rate.Limiter
	// StaticDir раздаётся по "/", если задан.
	StaticDir string
}

type Server struct {
	Router  *mux.Router
	Catalog domain.ProductCatalog
	UCPlace OrderPlacer
	UCGet   usecase.GetOrderByID
	limiter *rate.Limiter
}

type errorBody struct {
	Error string `json:"error"`
}

func NewServer(catalog domain.ProductCatalog, place OrderPlacer, get usecase.GetOrderByID, opts Options) *Server {
	s := &Server{
		Router:  mux.NewRouter(),
		Catalog: catalog,
		UCPlace: place,
		UCGet:   get,
		limiter: opts.OrderLimiter,
	}
	s.Router.HandleFunc("/product", s.handleProducts).Methods(http.MethodGet)
	s.Router.HandleFunc("/product/{id}", s.handleProduct).Methods(http.MethodGet)
	s.Router.HandleFunc("/order", s.handlePlaceOrder).Methods(http.MethodPost)
	s.Router.HandleFunc("/api/order/{id}", s.handleGet).Methods(http.MethodGet)
	if opts.StaticDir != "" {
		s.Router.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir)))
	}
	return s
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.Catalog.List(r.Context())
	if err != nil {
		log.Printf("list products: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, domain.ProductList{Total: len(items), Items: items})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := s.Catalog.Get(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "NotFound")
		return
	}
	if err != nil {
		log.Printf("get product %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}
	var draft domain.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	res, err := s.UCPlace.Execute(r.Context(), draft)
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("place order: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	log.Printf("placed order %s", res.ID)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	o, ok := s.UCGet.Execute(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NotFound")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
