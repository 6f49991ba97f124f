package handlers

import (
	"net/http"
	"time"

	"github.com/Akshadkurundwade07/shopflow/internal/analytics"
	"github.com/Akshadkurundwade07/shopflow/internal/auth"
	"github.com/Akshadkurundwade07/shopflow/internal/repo"
	"go.uber.org/zap"
)

// Server holds the collaborators every handler needs. Handlers are its methods.
type Server struct {
	Products   repo.ProductRepository
	Categories repo.CategoryRepository
	Users      repo.UserRepository
	Movements  repo.MovementRepository
	Analytics  *analytics.Engine
	Issuer     *auth.Issuer
	Sessions   auth.SessionStore

	// SeedSampleProducts installs the demo catalog for every new account.
	SeedSampleProducts bool

	Logger *zap.Logger
	Now    func() time.Time
}

func (s *Server) log() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

// ownerID returns the id of the authenticated user. Routes that call it sit behind the
// auth middleware, so a missing claim means the router was misconfigured.
func ownerID(r *http.Request) string {
	if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
		return claims.Subject
	}
	return ""
}

// internalError logs err and answers with a fixed message.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log().Error(msg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("owner_id", ownerID(r)),
	)
	http.Error(w, msg, http.StatusInternalServerError)
}
