package models

import "maps"

type Feature string

const (
	FeatureCanPost          Feature = "canPost"
	FeatureCanManageContent Feature = "canManageContent"
	FeatureCanMessage       Feature = "canMessage"
	FeatureCanInvest        Feature = "canInvest"
	FeatureCanViewAnalytics Feature = "canViewAnalytics"
	FeatureCanManageUsers   Feature = "canManageUsers"
)

// AccessConfig is the feature-flag row for one persona.
type AccessConfig struct {
	Persona  Persona          `json:"persona"`
	Features map[Feature]bool `json:"features"`
}

func (a *AccessConfig) GetID() string {
	return string(a.Persona)
}

func (a *AccessConfig) Clone() *AccessConfig {
	if a == nil {
		return nil
	}
	c := *a
	c.Features = maps.Clone(a.Features)
	return &c
}

func (a *AccessConfig) Allows(f Feature) bool {
	return a != nil && a.Features[f]
}
