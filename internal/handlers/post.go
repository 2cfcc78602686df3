package handlers

import (
	"github.com/cypherskull/hyperconnect/internal/middleware"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PostHandler struct {
	postService PostServiceInterface
}

func NewPostHandler(postService PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *drift.Context) {
	h.save(c, "", 201)
}

func (h *PostHandler) Update(c *drift.Context) {
	h.save(c, c.Param("id"), 200)
}

func (h *PostHandler) save(c *drift.Context, postID string, status int) {
	var req dto.SavePostRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	post, err := h.postService.SavePost(c.Request.Context(), middleware.GetCredentials(c), services.PostInput{
		ID:         postID,
		SolutionID: req.SolutionID,
		Content:    req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(status, post)
}

func (h *PostHandler) Like(c *drift.Context) {
	post, err := h.postService.ToggleLikePost(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	_ = c.JSON(200, post)
}

func (h *PostHandler) Bookmark(c *drift.Context) {
	post, err := h.postService.ToggleBookmarkPost(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	_ = c.JSON(200, post)
}

func (h *PostHandler) Comment(c *drift.Context) {
	var req dto.CommentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	post, err := h.postService.AddComment(c.Request.Context(), middleware.GetCredentials(c), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	_ = c.JSON(201, post)
}
