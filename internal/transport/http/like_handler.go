package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/GuideMe_Site/internal/service"
	"github.com/njprem/GuideMe_Site/internal/util"
)

type LikeHandler struct {
	likes *service.LikeService
}

func RegisterLikes(e *echo.Echo, likes *service.LikeService) {
	handler := &LikeHandler{likes: likes}

	e.POST("/guides/:id/like", handler.toggleLike)

	api := e.Group("/api/v1/likes")
	api.GET("", handler.listLikes)
	api.PUT("/:id", handler.addLike)
	api.DELETE("/:id", handler.removeLike)
}

func parseGuideID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || id <= 0 {
		return 0, errors.New("guide id must be a positive integer")
	}
	return id, nil
}

// toggleLike backs the heart button on guide cards and returns the visitor to the card.
func (h *LikeHandler) toggleLike(c echo.Context) error {
	visitorID, ok := CurrentVisitor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("visitor session required"))
	}
	guideID, err := parseGuideID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	if _, err := h.likes.Toggle(c.Request().Context(), visitorID, guideID); err != nil {
		switch {
		case errors.Is(err, service.ErrGuideNotFound):
			return c.JSON(http.StatusNotFound, util.Error("guide not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not update likes"))
		}
	}
	return c.Redirect(http.StatusSeeOther, "/#guide-"+strconv.Itoa(guideID))
}

func (h *LikeHandler) listLikes(c echo.Context) error {
	visitorID, ok := CurrentVisitor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("visitor session required"))
	}
	liked, err := h.likes.Liked(c.Request().Context(), visitorID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load likes"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"guide_ids": liked.IDs(),
		"count":     liked.Len(),
	})
}

func (h *LikeHandler) addLike(c echo.Context) error {
	visitorID, ok := CurrentVisitor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("visitor session required"))
	}
	guideID, err := parseGuideID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	if err := h.likes.Add(c.Request().Context(), visitorID, guideID); err != nil {
		switch {
		case errors.Is(err, service.ErrGuideNotFound):
			return c.JSON(http.StatusNotFound, util.Error("guide not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not update likes"))
		}
	}
	return c.JSON(http.StatusOK, util.Envelope{"guide_id": guideID, "liked": true})
}

func (h *LikeHandler) removeLike(c echo.Context) error {
	visitorID, ok := CurrentVisitor(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("visitor session required"))
	}
	guideID, err := parseGuideID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	if err := h.likes.Remove(c.Request().Context(), visitorID, guideID); err != nil {
		switch {
		case errors.Is(err, service.ErrLikeNotFound):
			return c.JSON(http.StatusNotFound, util.Error("guide is not liked"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not update likes"))
		}
	}
	return c.JSON(http.StatusOK, util.Envelope{"guide_id": guideID, "liked": false})
}
