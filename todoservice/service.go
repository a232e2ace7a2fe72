// Package todoservice is an in-memory implementation of the TodoItems API. It exists so that
// the contract tests can be run, and tested, without the real service.
package todoservice

import (
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/todoitems/api-contract-tests/framework"
	"github.com/todoitems/api-contract-tests/servicedef"
)

// MaxNameLength is the longest item name the service accepts.
const MaxNameLength = 256

// Service holds the items and the HTTP routes for them.
type Service struct {
	items  map[int]servicedef.TodoItem
	lastID int
	logger framework.Logger
	router chi.Router
	lock   sync.Mutex
}

// NewService creates an empty service.
func NewService(logger framework.Logger) *Service {
	if logger == nil {
		logger = framework.NullLogger()
	}
	s := &Service{
		items:  make(map[int]servicedef.TodoItem),
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for the service.
func (s *Service) Handler() http.Handler {
	return s.router
}

func (s *Service) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w)
	})
	r.Route(servicedef.TodoItemsPath, func(r chi.Router) {
		r.Get("/", s.listItems)
		r.Post("/", s.createItem)
		r.Get("/{id}", s.getItem)
		r.Put("/{id}", s.updateItem)
		r.Delete("/{id}", s.deleteItem)
	})
	return r
}

func (s *Service) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Printf("%s %s -> %d", r.Method, r.URL.Path, ww.Status())
	})
}

// Items returns a snapshot of all items, ordered by ID.
func (s *Service) Items() []servicedef.TodoItem {
	s.lock.Lock()
	defer s.lock.Unlock()
	ret := make([]servicedef.TodoItem, 0, len(s.items))
	for _, item := range s.items {
		ret = append(ret, item)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}

func (s *Service) get(id int) (servicedef.TodoItem, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	item, ok := s.items[id]
	return item, ok
}

// insert stores a new item. An ID of zero means the service allocates one, which is always
// greater than any ID it has seen before, including IDs of deleted items.
func (s *Service) insert(item servicedef.TodoItem) (servicedef.TodoItem, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if item.ID == 0 {
		s.lastID++
		item.ID = s.lastID
	} else {
		if _, exists := s.items[item.ID]; exists {
			return item, false
		}
		if item.ID > s.lastID {
			s.lastID = item.ID
		}
	}
	s.items[item.ID] = item
	return item, true
}

func (s *Service) replace(item servicedef.TodoItem) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, exists := s.items[item.ID]; !exists {
		return false
	}
	s.items[item.ID] = item
	return true
}

func (s *Service) remove(id int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	return true
}
