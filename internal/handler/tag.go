package handler

import (
	"net/http"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type TagHandler struct {
	tagService  service.TagService
	likeService service.LikeService
}

func NewTagHandler(tagService service.TagService, likeService service.LikeService) *TagHandler {
	return &TagHandler{
		tagService:  tagService,
		likeService: likeService,
	}
}

func (h *TagHandler) TagObject(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	tag, err := h.tagService.Tag(ctx, model.TargetKind(req.TargetKind), req.TargetID, req.Label)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewTagResponse(tag))
}

func (h *TagHandler) ListTags(c echo.Context) error {
	ctx := c.Request().Context()

	kind, targetID, err := targetQuery(c)
	if err != nil {
		return err
	}

	tags, err := h.tagService.TagsFor(ctx, kind, targetID)
	if err != nil {
		return err
	}

	resp := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		resp[i] = dto.NewTagResponse(tag)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TagHandler) LikeObject(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LikeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.likeService.Like(ctx, userID(c), model.TargetKind(req.TargetKind), req.TargetID); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

func (h *TagHandler) CountLikes(c echo.Context) error {
	ctx := c.Request().Context()

	kind, targetID, err := targetQuery(c)
	if err != nil {
		return err
	}

	count, err := h.likeService.Count(ctx, kind, targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

func targetQuery(c echo.Context) (model.TargetKind, uint, error) {
	kind := model.TargetKind(c.QueryParam("target_kind"))
	targetID, err := strconv.ParseUint(c.QueryParam("target_id"), 10, 32)
	if err != nil {
		return "", 0, echo.NewHTTPError(http.StatusBadRequest, "invalid target_id")
	}
	return kind, uint(targetID), nil
}
