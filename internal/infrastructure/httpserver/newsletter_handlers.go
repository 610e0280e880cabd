package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/newsletter"
	"github.com/paperpress/newsletter/internal/core/domain/user"
)

func (s *Server) publishNewsletter(c echo.Context) error {
	username, password, ok := c.Request().BasicAuth()
	if !ok {
		return s.basicAuthChallenge(c)
	}

	userID, err := s.authSvc.ValidateCredentials(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{"username": username}).Info("rejected newsletter publish: invalid credentials")
			}
			return s.basicAuthChallenge(c)
		}
		if s.logger != nil {
			s.logger.WithError(err).Error("failed to validate publisher credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to validate credentials")
	}

	var issue newsletter.Issue
	if err := c.Bind(&issue); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid newsletter payload")
	}
	if err := issue.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.publishSvc.Publish(c.Request().Context(), &issue); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": userID, "title": issue.Title}).WithError(err).Error("failed to publish newsletter issue")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to publish newsletter")
	}

	return c.NoContent(http.StatusOK)
}

// basicAuthChallenge rejects the request with 401 and the Basic challenge
// header for the publish realm.
func (s *Server) basicAuthChallenge(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="publish"`)
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}
