//go:build unit || e2e

// Package fakeapi is an in-memory stand-in for the remote slot service.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	MsgSlotFull      = "Slot full"
	MsgSlotNotFound  = "Slot not found"
	MsgNothingBooked = "No bookings to cancel"
)

type Slot struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"startTime"`
	MaxBookings     int       `json:"maxBookings"`
	CurrentBookings int       `json:"currentBookings"`
	IsBooked        bool      `json:"isBooked"`
}

type failure struct {
	status  int
	message string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	slots    []*Slot
	calls    map[string]int
	failures []failure
	headers  []http.Header
}

// Start runs the fake service until the test ends.
func Start(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{calls: make(map[string]int)}
	engine := gin.New()
	engine.Use(s.record)

	api := engine.Group("/api")
	api.GET("/slots", s.listAll)
	api.GET("/slots/available", s.listAvailable)
	api.POST("/slots", s.create)
	api.POST("/slots/:id/book", s.book)
	api.POST("/slots/:id/cancel", s.cancel)

	s.Server = httptest.NewServer(engine)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the value for SLOT_API_BASE_URL.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

func (s *Server) Seed(slots ...Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range slots {
		sl := slots[i]
		if sl.ID == "" {
			sl.ID = uuid.NewString()
		}
		sl.IsBooked = sl.CurrentBookings >= sl.MaxBookings
		s.slots = append(s.slots, &sl)
	}
}

func (s *Server) Slots() []Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Slot, len(s.slots))
	for i, sl := range s.slots {
		out[i] = *sl
	}
	return out
}

// FailNext makes the next request answer with status and an optional
// message body.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, message: message})
}

// Calls counts requests by "METHOD path", with slot ids replaced by ":id".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

func (s *Server) LastHeaders() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.headers) == 0 {
		return nil
	}
	return s.headers[len(s.headers)-1]
}

func (s *Server) record(c *gin.Context) {
	c.Next()

	s.mu.Lock()
	defer s.mu.Unlock()
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	s.calls[c.Request.Method+" "+route]++
	s.headers = append(s.headers, c.Request.Header.Clone())
}

// takeFailure must be called with s.mu held.
func (s *Server) takeFailure(c *gin.Context) bool {
	if len(s.failures) == 0 {
		return false
	}
	f := s.failures[0]
	s.failures = s.failures[1:]
	if f.message == "" {
		c.Status(f.status)
		return true
	}
	c.JSON(f.status, gin.H{"message": f.message})
	return true
}

func (s *Server) listAll(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.takeFailure(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.snapshot(func(*Slot) bool { return true })})
}

func (s *Server) listAvailable(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.takeFailure(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.snapshot(func(sl *Slot) bool { return !sl.IsBooked })})
}

func (s *Server) create(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.takeFailure(c) {
		return
	}

	var req struct {
		StartTime   string `json:"startTime"`
		MaxBookings int    `json:"maxBookings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	start, err := time.Parse(time.RFC3339Nano, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid start time"})
		return
	}
	if req.MaxBookings < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Max bookings must be at least 1"})
		return
	}

	sl := &Slot{ID: uuid.NewString(), StartTime: start.UTC(), MaxBookings: req.MaxBookings}
	s.slots = append(s.slots, sl)
	c.JSON(http.StatusCreated, sl)
}

func (s *Server) book(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.takeFailure(c) {
		return
	}
	sl := s.find(c.Param("id"))
	switch {
	case sl == nil:
		c.JSON(http.StatusNotFound, gin.H{"message": MsgSlotNotFound})
	case sl.CurrentBookings >= sl.MaxBookings:
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgSlotFull})
	default:
		sl.CurrentBookings++
		sl.IsBooked = sl.CurrentBookings >= sl.MaxBookings
		c.JSON(http.StatusOK, gin.H{"message": "Slot booked"})
	}
}

func (s *Server) cancel(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.takeFailure(c) {
		return
	}
	sl := s.find(c.Param("id"))
	switch {
	case sl == nil:
		c.JSON(http.StatusNotFound, gin.H{"message": MsgSlotNotFound})
	case sl.CurrentBookings == 0:
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgNothingBooked})
	default:
		sl.CurrentBookings--
		sl.IsBooked = sl.CurrentBookings >= sl.MaxBookings
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
	}
}

func (s *Server) find(id string) *Slot {
	for _, sl := range s.slots {
		if strings.EqualFold(sl.ID, id) {
			return sl
		}
	}
	return nil
}

func (s *Server) snapshot(keep func(*Slot) bool) []Slot {
	out := make([]Slot, 0, len(s.slots))
	for _, sl := range s.slots {
		if keep(sl) {
			out = append(out, *sl)
		}
	}
	return out
}
