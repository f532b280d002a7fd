package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/wandergenie/internal/common"
	"github.com/dmitrijs2005/wandergenie/internal/server/itineraries"
	"github.com/dmitrijs2005/wandergenie/internal/server/users"
)

func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to WanderGenie API", "version": s.info.Version})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "healthy", Version: s.info.Version, Database: s.info.Database})
}

// Register handles POST /auth/register.
func (s *Server) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	u, err := s.users.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			abortDetail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		s.logger.Error(ctx, "registration failed", "error", err)
		abortDetail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	c.JSON(http.StatusCreated, toUserResponse(u))
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			abortUnauthorized(c, "Incorrect email or password")
			return
		}
		s.logger.Error(ctx, "login failed", "error", err)
		abortDetail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		User:        toUserResponse(res.User),
	})
}

// Me handles GET /auth/me.
func (s *Server) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

// Plan handles POST /plan: it generates an itinerary and saves it to the
// caller's history.
func (s *Server) Plan(c *gin.Context) {
	ctx := c.Request.Context()
	u := currentUser(c)

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	rec, err := s.itineraries.Plan(ctx, u.ID, itineraries.Request{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		TravelStyle: req.TravelStyle,
	})
	if err != nil {
		s.logger.Error(ctx, "planning failed", "user_id", u.ID, "error", err)
		abortDetail(c, http.StatusInternalServerError, "Failed to generate itinerary: "+err.Error())
		return
	}

	s.logger.Info(ctx, "Itinerary saved", "user_id", u.ID, "itinerary_id", rec.ID)
	c.JSON(http.StatusOK, rec.Itinerary)
}

// Itineraries handles GET /itineraries, newest first.
func (s *Server) Itineraries(c *gin.Context) {
	ctx := c.Request.Context()
	u := currentUser(c)

	recs, err := s.itineraries.History(ctx, u.ID)
	if err != nil {
		s.logger.Error(ctx, "listing itineraries failed", "user_id", u.ID, "error", err)
		abortDetail(c, http.StatusInternalServerError, "Failed to fetch itineraries: "+err.Error())
		return
	}

	out := historyResponse{Count: len(recs), Itineraries: make([]recordResponse, 0, len(recs))}
	for _, r := range recs {
		out.Itineraries = append(out.Itineraries, toRecordResponse(r))
	}
	c.JSON(http.StatusOK, out)
}
