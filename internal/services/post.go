package services

import (
	"context"
	"strings"

	"github.com/cypherskull/hyperconnect/internal/apierr"
	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/sse"
)

// PostInput creates a post when ID is empty and updates it otherwise.
type PostInput struct {
	ID         string
	SolutionID string
	Content    string
}

func (a *API) ToggleLikePost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error) {
	return a.togglePost(ctx, creds, postID, (*models.Post).ToggleLike)
}

func (a *API) ToggleBookmarkPost(ctx context.Context, creds authz.Credentials, postID string) (*models.Post, error) {
	return a.togglePost(ctx, creds, postID, (*models.Post).ToggleBookmark)
}

func (a *API) togglePost(ctx context.Context, creds authz.Credentials, postID string, toggle func(*models.Post)) (*models.Post, error) {
	var out *models.Post
	err := a.exec(ctx, func() error {
		if _, err := a.guard.Resolve(creds); err != nil {
			return err
		}
		post, ok := a.repo.Posts().Get(postID)
		if !ok {
			return apierr.NotFound("post %s not found", postID)
		}
		toggle(post)
		a.repo.Posts().Upsert(post)
		a.publish(sse.EventPostUpdated, "", post.Clone())
		out = post
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) AddComment(ctx context.Context, creds authz.Credentials, postID, text string) (*models.Post, error) {
	var out *models.Post
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return apierr.InvalidArgument("comment text is required")
		}
		post, ok := a.repo.Posts().Get(postID)
		if !ok {
			return apierr.NotFound("post %s not found", postID)
		}
		post.Comments = append(post.Comments, models.Comment{
			ID:         a.newID(),
			AuthorID:   acting.Effective.ID,
			AuthorName: acting.Effective.Name,
			Text:       text,
			CreatedAt:  a.now(),
		})
		a.repo.Posts().Upsert(post)
		a.publish(sse.EventPostUpdated, "", post.Clone())
		out = post
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) SavePost(ctx context.Context, creds authz.Credentials, in PostInput) (*models.Post, error) {
	var out *models.Post
	err := a.exec(ctx, func() error {
		acting, err := a.guard.Resolve(creds)
		if err != nil {
			return err
		}
		content := strings.TrimSpace(in.Content)
		if content == "" {
			return apierr.InvalidArgument("post content is required")
		}

		if in.ID == "" {
			out, err = a.createPost(acting, in.SolutionID, content)
		} else {
			out, err = a.updatePost(acting, in.ID, in.SolutionID, content)
		}
		if err != nil {
			return err
		}
		a.publish(sse.EventPostUpdated, "", out.Clone())
		return nil
	})
	return settle(ctx, a, out, err)
}

func (a *API) createPost(acting *authz.ActingContext, solutionID, content string) (*models.Post, error) {
	if solutionID == "" {
		return nil, apierr.InvalidArgument("solution id is required")
	}
	seller, ok := a.sellerForSolution(solutionID)
	if !ok {
		return nil, apierr.NotFound("solution %s not found", solutionID)
	}
	post := &models.Post{
		ID:         a.newID(),
		SellerID:   seller.ID,
		SolutionID: solutionID,
		Content:    content,
		Comments:   []models.Comment{},
		Author:     models.AuthorFromUser(acting.Effective),
		CreatedAt:  a.now(),
	}
	a.repo.Posts().Upsert(post)
	return post, nil
}

func (a *API) updatePost(acting *authz.ActingContext, postID, solutionID, content string) (*models.Post, error) {
	post, ok := a.repo.Posts().Get(postID)
	if !ok {
		return nil, apierr.NotFound("post %s not found", postID)
	}
	seller, _ := a.repo.Sellers().Get(post.SellerID)
	if !acting.Authenticated.IsAdmin() && !authz.CanEditPost(acting.Effective, post, seller) {
		return nil, apierr.Forbidden("only the author, the seller or an admin can edit this post")
	}

	if solutionID != "" && solutionID != post.SolutionID {
		target, ok := a.sellerForSolution(solutionID)
		if !ok {
			return nil, apierr.NotFound("solution %s not found", solutionID)
		}
		if target.ID != post.SellerID && !canManageSeller(acting, target) {
			return nil, apierr.Forbidden("%s does not manage %s", acting.Effective.Name, target.CompanyName)
		}
		post.SellerID = target.ID
		post.SolutionID = solutionID
	}
	post.Content = content
	a.repo.Posts().Upsert(post)
	return post, nil
}
