package authz

import (
	"github.com/cypherskull/hyperconnect/internal/models"
)

// OwnsSeller reports whether user is the Seller-persona account of seller's
// company.
func OwnsSeller(user *models.User, seller *models.Seller) bool {
	return user != nil && seller != nil &&
		user.Persona == models.PersonaSeller &&
		user.Company != "" &&
		user.Company == seller.CompanyName
}

func CanManageSeller(user *models.User, seller *models.Seller) bool {
	return user.IsAdmin() || OwnsSeller(user, seller)
}

// CanEditPost allows the post's author, the owner of the post's seller, or
// an admin. seller may be nil when the post's seller no longer exists.
func CanEditPost(user *models.User, post *models.Post, seller *models.Seller) bool {
	if user == nil || post == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	if post.Author != nil && post.Author.ID == user.ID {
		return true
	}
	return seller != nil && seller.ID == post.SellerID && OwnsSeller(user, seller)
}

func IsEnterpriseAdmin(user *models.User, ent *models.Enterprise) bool {
	if user == nil || ent == nil {
		return false
	}
	if user.IsAdmin() || ent.AdminID == user.ID {
		return true
	}
	return user.Role == models.RoleAdmin && user.EnterpriseID == ent.ID && ent.HasMember(user.ID)
}
