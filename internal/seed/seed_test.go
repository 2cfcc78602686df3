package seed

import (
	"testing"

	"github.com/cypherskull/hyperconnect/internal/authz"
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSnapshot_Consistent(t *testing.T) {
	snap, err := Snapshot(bcrypt.MinCost)
	require.NoError(t, err)

	userIDs := map[string]*models.User{}
	for _, u := range snap.Users {
		userIDs[u.ID] = u
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(DemoPassword)))
		assert.True(t, u.Persona.Valid(), u.ID)
		assert.NotEmpty(t, u.ReferralCode, u.ID)
	}

	sellers := map[string]*models.Seller{}
	for _, s := range snap.Sellers {
		sellers[s.ID] = s
	}

	followers := map[string]int{}
	for _, u := range snap.Users {
		for _, id := range u.FollowedSellers {
			followers[id]++
		}
		for _, id := range u.Connections {
			require.Contains(t, userIDs, id)
			assert.True(t, userIDs[id].IsConnectedTo(u.ID), "connection %s-%s must be mutual", u.ID, id)
		}
	}
	for _, s := range snap.Sellers {
		assert.Equal(t, followers[s.ID], s.Followers, s.ID)
	}

	for _, p := range snap.Posts {
		s, ok := sellers[p.SellerID]
		require.True(t, ok, p.ID)
		assert.GreaterOrEqual(t, s.SolutionIndex(p.SolutionID), 0, p.ID)
	}

	for _, item := range snap.Inbox {
		assert.Contains(t, userIDs, item.RecipientID)
		assert.Contains(t, userIDs, item.SenderID)
	}
}

func TestSnapshot_SellerOwnersMatchCompanies(t *testing.T) {
	snap, err := Snapshot(bcrypt.MinCost)
	require.NoError(t, err)

	owners := 0
	for _, s := range snap.Sellers {
		for _, u := range snap.Users {
			if authz.OwnsSeller(u, s) {
				owners++
			}
		}
	}
	assert.Equal(t, len(snap.Sellers), owners)
}

func TestLoad(t *testing.T) {
	repo, err := Load(bcrypt.MinCost)
	require.NoError(t, err)

	post, ok := repo.Posts().Get(LaunchPostID)
	require.True(t, ok)
	assert.Equal(t, 5, post.Likes)
	assert.False(t, post.IsLiked)
	assert.Equal(t, len(models.Personas), repo.AccessConfig().Len())
	assert.Equal(t, 3, repo.MonetizationRules().Len())
}
