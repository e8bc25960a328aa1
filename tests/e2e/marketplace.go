//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"booking-gateway/internal/infra/marketplace"

	"github.com/gin-gonic/gin"
)

const (
	fakeAccessToken  = "fake-access-token"
	fakeRefreshToken = "fake-refresh-token"
	fakePassword     = "password1"
)

// FakeMarketplace serves the subset of the marketplace API the gateway calls, backed by
// in-memory fixtures. Every reservation write is recorded.
type FakeMarketplace struct {
	server *httptest.Server

	mu           sync.Mutex
	users        map[string]marketplace.User
	companies    map[int64]marketplace.User
	hours        []string
	reservations []marketplace.Reservation
	created      []marketplace.CreateReservationRequest
	updates      map[int64][]marketplace.UpdateReservationRequest
	rejectCreate string
	logouts      int
}

func NewFakeMarketplace() *FakeMarketplace {
	f := &FakeMarketplace{}
	f.Reset()

	r := gin.New()
	r.POST("/auth/login", f.login)
	r.POST("/auth/logout", f.authorized, f.logout)
	r.POST("/auth/refresh-token", f.refresh)
	r.GET("/profile", f.authorized, f.profile)
	r.GET("/shared/countries", f.countries)
	r.GET("/companies/:id", f.authorized, f.company)
	r.GET("/services/aviable-hours", f.authorized, f.availableHours)
	r.GET("/reservations", f.authorized, f.listReservations)
	r.POST("/reservations", f.authorized, f.createReservation)
	r.PATCH("/reservations/:id", f.authorized, f.updateReservation)

	f.server = httptest.NewServer(r)
	return f
}

func (f *FakeMarketplace) URL() string { return f.server.URL }

func (f *FakeMarketplace) Close() { f.server.Close() }

// Reset restores the default fixtures: one customer, one business with two services.
func (f *FakeMarketplace) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	customer := marketplace.User{
		ID: 7, FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com",
		Status: "Active", Role: "customer", Country: "Colombia", City: "Bogota",
	}
	business := marketplace.User{
		ID: 3, FirstName: "Barber", LastName: "Shop", Email: "shop@example.com",
		Status: "Active", Role: "business", Country: "Colombia", City: "Bogota",
		Services: []marketplace.Service{
			{ID: 11, Name: "Haircut", Duration: "1h 30m", Price: 25, UserID: 3},
			{ID: 12, Name: "Shave", Duration: "30m", Price: 10, UserID: 3},
		},
	}
	f.users = map[string]marketplace.User{customer.Email: customer, business.Email: business}
	f.companies = map[int64]marketplace.User{business.ID: business}
	f.hours = []string{"9:00", "9:30", "10:00"}
	f.reservations = nil
	f.created = nil
	f.updates = map[int64][]marketplace.UpdateReservationRequest{}
	f.rejectCreate = ""
	f.logouts = 0
}

func (f *FakeMarketplace) SetReservations(rs ...marketplace.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = rs
}

// RejectCreate makes the next reservation creations fail with 409 and msg.
func (f *FakeMarketplace) RejectCreate(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectCreate = msg
}

func (f *FakeMarketplace) Created() []marketplace.CreateReservationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]marketplace.CreateReservationRequest(nil), f.created...)
}

func (f *FakeMarketplace) Updates(id int64) []marketplace.UpdateReservationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]marketplace.UpdateReservationRequest(nil), f.updates[id]...)
}

func (f *FakeMarketplace) Logouts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logouts
}

func ok(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, gin.H{"data": data, "message": msg})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

func (f *FakeMarketplace) authorized(c *gin.Context) {
	if strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ") != fakeAccessToken {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.Next()
}

func (f *FakeMarketplace) login(c *gin.Context) {
	var req marketplace.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return
	}
	f.mu.Lock()
	u, found := f.users[req.Email]
	f.mu.Unlock()
	if !found || req.Password != fakePassword {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	ok(c, marketplace.AuthResult{AccessToken: fakeAccessToken, RefreshToken: fakeRefreshToken}, "Logged in")
}

func (f *FakeMarketplace) logout(c *gin.Context) {
	f.mu.Lock()
	f.logouts++
	f.mu.Unlock()
	c.Status(http.StatusNoContent)
}

func (f *FakeMarketplace) refresh(c *gin.Context) {
	if c.GetHeader(marketplace.RefreshTokenHeader) != fakeRefreshToken {
		fail(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	ok(c, marketplace.AuthResult{AccessToken: fakeAccessToken}, "")
}

// profile always answers with the customer; the business fixture is only browsed.
func (f *FakeMarketplace) profile(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ok(c, f.users["ana@example.com"], "")
}

func (f *FakeMarketplace) countries(c *gin.Context) {
	ok(c, []marketplace.Country{{ISO: "CO", Country: "Colombia"}}, "")
}

func (f *FakeMarketplace) company(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	f.mu.Lock()
	company, found := f.companies[id]
	f.mu.Unlock()
	if !found {
		fail(c, http.StatusNotFound, "Company not found")
		return
	}
	ok(c, company, "")
}

func (f *FakeMarketplace) availableHours(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ok(c, f.hours, "")
}

func (f *FakeMarketplace) listReservations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	f.mu.Lock()
	defer f.mu.Unlock()
	items := []marketplace.Reservation{}
	for i := offset; i < len(f.reservations) && i < offset+limit; i++ {
		items = append(items, f.reservations[i])
	}
	ok(c, marketplace.Page[marketplace.Reservation]{Items: items, Count: len(f.reservations)}, "")
}

func (f *FakeMarketplace) createReservation(c *gin.Context) {
	var req marketplace.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejectCreate != "" {
		fail(c, http.StatusConflict, f.rejectCreate)
		return
	}
	f.created = append(f.created, req)
	ok(c, nil, "Reservation created")
}

func (f *FakeMarketplace) updateReservation(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var req marketplace.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = append(f.updates[id], req)
	for i := range f.reservations {
		if f.reservations[i].ID == id && req.Status != "" {
			f.reservations[i].Status = req.Status
		}
	}
	ok(c, nil, "Reservation updated")
}
