package client

import (
	"context"
	"slices"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
)

func postKey(id string) string { return "post:" + id }
func followKey(userID, sellerID string) string {
	return "follow:" + userID + ":" + sellerID
}

func noop(*State) {}

// togglePostLocal flips a post flag locally and returns its inverse.
func togglePostLocal(postID string, toggle func(*models.Post)) func(*State) func(*State) {
	return func(s *State) func(*State) {
		p := s.post(postID)
		if p == nil {
			return noop
		}
		toggle(p)
		return func(s *State) {
			if p := s.post(postID); p != nil {
				toggle(p)
			}
		}
	}
}

func (c *Controller) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	return runOptimistic(ctx, c, "toggle_like", postKey(postID),
		togglePostLocal(postID, (*models.Post).ToggleLike),
		func(ctx context.Context, creds authz.Credentials) (*models.Post, error) {
			return c.backend.ToggleLikePost(ctx, creds, postID)
		},
		(*State).putPost,
	)
}

func (c *Controller) ToggleBookmark(ctx context.Context, postID string) (*models.Post, error) {
	return runOptimistic(ctx, c, "toggle_bookmark", postKey(postID),
		togglePostLocal(postID, (*models.Post).ToggleBookmark),
		func(ctx context.Context, creds authz.Credentials) (*models.Post, error) {
			return c.backend.ToggleBookmarkPost(ctx, creds, postID)
		},
		(*State).putPost,
	)
}

// ToggleFollow flips whether the acting user follows sellerID, moving the
// seller's follower count with it.
func (c *Controller) ToggleFollow(ctx context.Context, sellerID string) (*services.FollowResult, error) {
	if err := c.requireActing(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	userID := c.state.ActingAs.ID
	c.mu.Unlock()

	apply := func(s *State) func(*State) {
		if s.ActingAs == nil {
			return noop
		}
		following := s.ActingAs.Follows(sellerID)
		decremented := false
		setFollowing(s, userID, sellerID, !following)
		if seller := s.seller(sellerID); seller != nil {
			if following {
				decremented = seller.Followers > 0
				seller.Followers = max(seller.Followers-1, 0)
			} else {
				seller.Followers++
			}
		}
		return func(s *State) {
			setFollowing(s, userID, sellerID, following)
			if seller := s.seller(sellerID); seller != nil {
				switch {
				case !following:
					seller.Followers--
				case decremented:
					seller.Followers++
				}
			}
		}
	}

	return runOptimistic(ctx, c, "toggle_follow", followKey(userID, sellerID), apply,
		func(ctx context.Context, creds authz.Credentials) (*services.FollowResult, error) {
			return c.backend.ToggleFollowSeller(ctx, creds, sellerID)
		},
		func(s *State, res *services.FollowResult) {
			s.putUser(res.User)
			s.putSeller(res.Seller)
		},
	)
}

// setFollowing sets the follow membership on every local copy of userID.
func setFollowing(s *State, userID, sellerID string, follow bool) {
	for _, u := range []*models.User{s.user(userID), s.CurrentUser, s.ActingAs} {
		if u == nil || u.ID != userID {
			continue
		}
		u.FollowedSellers = slices.DeleteFunc(u.FollowedSellers, func(id string) bool { return id == sellerID })
		if follow {
			u.FollowedSellers = append(u.FollowedSellers, sellerID)
		}
	}
}

func (c *Controller) AddComment(ctx context.Context, postID, text string) (*models.Post, error) {
	return perform(ctx, c, "add_comment",
		func(ctx context.Context, creds authz.Credentials) (*models.Post, error) {
			return c.backend.AddComment(ctx, creds, postID, text)
		},
		(*State).putPost,
	)
}

func (c *Controller) SavePost(ctx context.Context, in services.PostInput) (*models.Post, error) {
	return perform(ctx, c, "save_post",
		func(ctx context.Context, creds authz.Credentials) (*models.Post, error) {
			return c.backend.SavePost(ctx, creds, in)
		},
		(*State).putPost,
	)
}

func (c *Controller) UpdateProfile(ctx context.Context, patch services.UserPatch) (*models.User, error) {
	return perform(ctx, c, "update_profile",
		func(ctx context.Context, creds authz.Credentials) (*models.User, error) {
			return c.backend.UpdateUser(ctx, creds, patch)
		},
		(*State).putUser,
	)
}

func (c *Controller) ToggleInvestmentStatus(ctx context.Context, sellerID string) (*models.Seller, error) {
	return perform(ctx, c, "toggle_investment_status",
		func(ctx context.Context, creds authz.Credentials) (*models.Seller, error) {
			return c.backend.ToggleInvestmentStatus(ctx, creds, sellerID)
		},
		(*State).putSeller,
	)
}

func (c *Controller) UpdateDueDiligence(ctx context.Context, sellerID string, dd models.DueDiligence) (*models.Seller, error) {
	return perform(ctx, c, "update_due_diligence",
		func(ctx context.Context, creds authz.Credentials) (*models.Seller, error) {
			return c.backend.UpdateDueDiligence(ctx, creds, sellerID, dd)
		},
		(*State).putSeller,
	)
}

func (c *Controller) AddTestimonial(ctx context.Context, sellerID, solutionID string, in services.TestimonialInput) (*models.Seller, error) {
	return perform(ctx, c, "add_testimonial",
		func(ctx context.Context, creds authz.Credentials) (*models.Seller, error) {
			return c.backend.AddTestimonial(ctx, creds, sellerID, solutionID, in)
		},
		(*State).putSeller,
	)
}

func (c *Controller) UpdateSellerTier(ctx context.Context, sellerID, tier string) (*services.TierResult, error) {
	return perform(ctx, c, "update_seller_tier",
		func(ctx context.Context, creds authz.Credentials) (*services.TierResult, error) {
			return c.backend.UpdateSellerTier(ctx, creds, sellerID, tier)
		},
		func(s *State, res *services.TierResult) {
			s.putSeller(res.Seller)
			s.putUser(res.User)
		},
	)
}

// SendConnectionRequest returns the created inbox item. The item belongs to
// the recipient, so it is not added to the local inbox.
func (c *Controller) SendConnectionRequest(ctx context.Context, recipientID, message string) (*models.InboxItem, error) {
	return perform(ctx, c, "send_connection_request",
		func(ctx context.Context, creds authz.Credentials) (*models.InboxItem, error) {
			return c.backend.SendConnectionRequest(ctx, creds, recipientID, message)
		},
		func(*State, *models.InboxItem) {},
	)
}

func (c *Controller) RespondToConnectionRequest(ctx context.Context, itemID string, accept bool) (*services.ConnectionResult, error) {
	return perform(ctx, c, "respond_to_connection_request",
		func(ctx context.Context, creds authz.Credentials) (*services.ConnectionResult, error) {
			return c.backend.RespondToConnectionRequest(ctx, creds, itemID, accept)
		},
		func(s *State, res *services.ConnectionResult) {
			s.putInboxItem(res.Item)
			s.putUser(res.Recipient)
			s.putUser(res.Sender)
		},
	)
}
