package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
)

// subscribeRequest is the raw form payload of POST /subscriptions. It is
// parsed into validated domain types before the service ever sees it.
type subscribeRequest struct {
	Email string `form:"email"`
	Name  string `form:"name"`
}

func (s *Server) subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	email, err := subscriber.ParseEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	name, err := subscriber.ParseName(req.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.subscriptionSvc.Subscribe(c.Request().Context(), email, name); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"email": email.String()}).WithError(err).Error("failed to create subscription")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create subscription")
	}

	return c.NoContent(http.StatusOK)
}

func (s *Server) confirmSubscription(c echo.Context) error {
	token := c.QueryParam("subscription_token")
	if err := subscriber.ValidateToken(token); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.subscriptionSvc.Confirm(c.Request().Context(), token); err != nil {
		if errors.Is(err, subscriber.ErrTokenNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown subscription token")
		}
		if s.logger != nil {
			s.logger.WithError(err).Error("failed to confirm subscription")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to confirm subscription")
	}

	return c.NoContent(http.StatusOK)
}
