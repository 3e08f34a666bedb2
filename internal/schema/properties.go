// Package schema declares node parameter definitions as data. A host UI
// renders these; no resolver logic lives here.
package schema

import (
	"github.com/flowline-labs/nodekit/internal/core/domain"
	"github.com/flowline-labs/nodekit/internal/credentials"
)

// PropertyType identifies how a parameter is rendered and parsed.
type PropertyType string

const (
	// TypeBoolean renders as a toggle.
	TypeBoolean PropertyType = "boolean"
	// TypeString renders as a text input.
	TypeString PropertyType = "string"
	// TypeOptions renders as a fixed-choice select.
	TypeOptions PropertyType = "options"
)

// Option is one choice of an options property.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DisplayOptions controls when a property is visible. Show maps a parameter
// name to the values under which this property appears; all entries must
// match.
type DisplayOptions struct {
	Show map[string][]string `json:"show,omitempty"`
}

// Property is one declarative node parameter definition.
type Property struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Type        PropertyType    `json:"type"`
	Default     any             `json:"default,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Sensitive   bool            `json:"sensitive,omitempty"`
	Options     []Option        `json:"options,omitempty"`
	Display     *DisplayOptions `json:"display,omitempty"`
}

// whenEnabled shows a property only when the enabling flag is on.
func whenEnabled(flagParam string) *DisplayOptions {
	return &DisplayOptions{Show: map[string][]string{flagParam: {"true"}}}
}

// whenType shows a property when the flag is on and the discriminator
// selects the given credential kind.
func whenType(flagParam string, kind domain.CredentialKind) *DisplayOptions {
	return &DisplayOptions{Show: map[string][]string{
		flagParam: {"true"},
		credentials.ParamCredentialType: {string(kind)},
	}}
}

// DynamicCredentialProperties returns the parameter definitions a node family
// contributes to offer dynamic credentials. Visibility is keyed on the
// enabling flag and the credential type discriminator, so variant fields only
// appear once their variant is selected.
func DynamicCredentialProperties(flagParam string) []Property {
	if flagParam == "" {
		flagParam = credentials.ParamDynamicEnabled
	}

	return []Property{
		{
			Key:         flagParam,
			Label:       "Use Dynamic Credentials",
			Description: "Read credentials from upstream workflow data instead of the credential store",
			Type:        TypeBoolean,
			Default:     false,
		},
		{
			Key:     credentials.ParamCredentialType,
			Label:   "Credential Type",
			Type:    TypeOptions,
			Default: string(domain.CredentialOAuth2),
			Options: []Option{
				{Label: "OAuth2 Access Token", Value: string(domain.CredentialOAuth2)},
				{Label: "API Key", Value: string(domain.CredentialAPIKey)},
				{Label: "Basic Auth", Value: string(domain.CredentialBasicAuth)},
			},
			Display: whenEnabled(flagParam),
		},
		{
			Key:       credentials.ParamAccessToken,
			Label:     "Access Token",
			Type:      TypeString,
			Required:  true,
			Sensitive: true,
			Display:   whenType(flagParam, domain.CredentialOAuth2),
		},
		{
			Key:       credentials.ParamAPIKey,
			Label:     "API Key",
			Type:      TypeString,
			Required:  true,
			Sensitive: true,
			Display:   whenType(flagParam, domain.CredentialAPIKey),
		},
		{
			Key:     credentials.ParamAPIKeyLocation,
			Label:   "API Key Location",
			Type:    TypeOptions,
			Default: string(domain.LocationHeader),
			Options: []Option{
				{Label: "Header", Value: string(domain.LocationHeader)},
				{Label: "Query Parameter", Value: string(domain.LocationQuery)},
			},
			Display: whenType(flagParam, domain.CredentialAPIKey),
		},
		{
			Key:     credentials.ParamAPIKeyName,
			Label:   "API Key Name",
			Type:    TypeString,
			Default: domain.DefaultAPIKeyName,
			Display: whenType(flagParam, domain.CredentialAPIKey),
		},
		{
			Key:      credentials.ParamUsername,
			Label:    "Username",
			Type:     TypeString,
			Required: true,
			Display:  whenType(flagParam, domain.CredentialBasicAuth),
		},
		{
			Key:       credentials.ParamPassword,
			Label:     "Password",
			Type:      TypeString,
			Required:  true,
			Sensitive: true,
			Display:   whenType(flagParam, domain.CredentialBasicAuth),
		},
	}
}

// IsVisible reports whether a property should be shown given the current
// parameter values.
func (p *Property) IsVisible(values map[string]string) bool {
	if p.Display == nil {
		return true
	}
	for param, allowed := range p.Display.Show {
		current, ok := values[param]
		if !ok {
			return false
		}
		match := false
		for _, v := range allowed {
			if v == current {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}
