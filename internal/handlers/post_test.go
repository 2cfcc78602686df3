package handlers

import (
	"net/http"
	"testing"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
	"github.com/cypherskull/hyperconnect/internal/testutil"
	"github.com/cypherskull/hyperconnect/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPostHandler_Create_Success(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	in := services.PostInput{SolutionID: "sol-1", Content: "We just shipped v2"}
	mockPostService.On("SavePost", mock.Anything, credsFor(t, testSeller), in).
		Return(&models.Post{ID: "p-new", SolutionID: "sol-1", Content: in.Content}, nil)

	client := newProtectedClient(t, testSeller, http.MethodPost, "/posts", handler.Create, nil)
	rec := client.POST("/posts", dto.SavePostRequest{SolutionID: "sol-1", Content: "We just shipped v2"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var post models.Post
	testutil.ParseJSON(t, rec, &post)
	assert.Equal(t, "p-new", post.ID)
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_Update_UsesPathID(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	in := services.PostInput{ID: "p-1", Content: "edited"}
	mockPostService.On("SavePost", mock.Anything, credsFor(t, testSeller), in).
		Return(&models.Post{ID: "p-1", Content: "edited"}, nil)

	client := newProtectedClient(t, testSeller, http.MethodPut, "/posts/:id", handler.Update, nil)
	rec := client.PUT("/posts/p-1", dto.SavePostRequest{Content: "edited"})

	assert.Equal(t, http.StatusOK, rec.Code)
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_Create_WrongPersona(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	mockPostService.On("SavePost", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apierr.Forbidden("persona Admin may not perform this action"))

	client := newProtectedClient(t, testAdmin, http.MethodPost, "/posts", handler.Create, nil)
	rec := client.POST("/posts", dto.SavePostRequest{Content: "hi"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPostHandler_Like_Success(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	mockPostService.On("ToggleLikePost", mock.Anything, credsFor(t, testSeller), "p-1").
		Return(&models.Post{ID: "p-1", Likes: 6, IsLiked: true}, nil)

	client := newProtectedClient(t, testSeller, http.MethodPost, "/posts/:id/like", handler.Like, nil)
	rec := client.POST("/posts/p-1/like", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var post models.Post
	testutil.ParseJSON(t, rec, &post)
	assert.Equal(t, 6, post.Likes)
	assert.True(t, post.IsLiked)
}

func TestPostHandler_Bookmark_NotFound(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	mockPostService.On("ToggleBookmarkPost", mock.Anything, mock.Anything, "p-missing").
		Return(nil, apierr.NotFound("post p-missing not found"))

	client := newProtectedClient(t, testSeller, http.MethodPost, "/posts/:id/bookmark", handler.Bookmark, nil)
	rec := client.POST("/posts/p-missing/bookmark", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.ErrorResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.Equal(t, "post p-missing not found", resp.Error)
}

func TestPostHandler_Comment_Success(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	mockPostService.On("AddComment", mock.Anything, credsFor(t, testSeller), "p-1", "Great work").
		Return(&models.Post{ID: "p-1", Comments: []models.Comment{{Text: "Great work"}}}, nil)

	client := newProtectedClient(t, testSeller, http.MethodPost, "/posts/:id/comments", handler.Comment, nil)
	rec := client.POST("/posts/p-1/comments", dto.CommentRequest{Text: "Great work"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_Comment_Empty(t *testing.T) {
	mockPostService := new(testutil.MockPostService)
	handler := NewPostHandler(mockPostService)

	mockPostService.On("AddComment", mock.Anything, mock.Anything, "p-1", "").
		Return(nil, apierr.InvalidArgument("comment text is required"))

	client := newProtectedClient(t, testSeller, http.MethodPost, "/posts/:id/comments", handler.Comment, nil)
	rec := client.POST("/posts/p-1/comments", dto.CommentRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "comment text is required")
}
