package authz

import (
	"github.com/cypherskull/hyperconnect/internal/models"
)

var defaultFeatures = map[models.Persona][]models.Feature{
	models.PersonaBuyer: {
		models.FeatureCanMessage,
	},
	models.PersonaSeller: {
		models.FeatureCanPost,
		models.FeatureCanManageContent,
		models.FeatureCanMessage,
		models.FeatureCanViewAnalytics,
	},
	models.PersonaInvestor: {
		models.FeatureCanMessage,
		models.FeatureCanInvest,
		models.FeatureCanViewAnalytics,
	},
	models.PersonaCollaborator: {
		models.FeatureCanPost,
		models.FeatureCanMessage,
	},
	models.PersonaBrowser: {},
}

var allFeatures = []models.Feature{
	models.FeatureCanPost,
	models.FeatureCanManageContent,
	models.FeatureCanMessage,
	models.FeatureCanInvest,
	models.FeatureCanViewAnalytics,
	models.FeatureCanManageUsers,
}

// DefaultAccessConfig builds the persona entitlement table. Admins get every
// feature; every other persona has an explicit false for what it lacks.
func DefaultAccessConfig() []*models.AccessConfig {
	out := make([]*models.AccessConfig, 0, len(models.Personas))
	for _, p := range models.Personas {
		features := make(map[models.Feature]bool, len(allFeatures))
		for _, f := range allFeatures {
			features[f] = p == models.PersonaAdmin
		}
		for _, f := range defaultFeatures[p] {
			features[f] = true
		}
		out = append(out, &models.AccessConfig{Persona: p, Features: features})
	}
	return out
}

// Entitled looks up feature for persona in cfg. Unknown personas get nothing.
func Entitled(cfg []*models.AccessConfig, persona models.Persona, feature models.Feature) bool {
	for _, row := range cfg {
		if row.Persona == persona {
			return row.Allows(feature)
		}
	}
	return false
}
