package credentials

import (
	"encoding/base64"

	"github.com/flowline-labs/nodekit/internal/core/domain"
)

// Apply returns a copy of the descriptor carrying the spec's authentication
// material. The input descriptor is never mutated; header and query maps are
// copied before the credential is written. A nil spec returns an unchanged
// copy.
func Apply(desc domain.RequestDescriptor, spec *domain.CredentialSpec) domain.RequestDescriptor {
	out := desc.Clone()
	if spec == nil {
		return out
	}

	switch spec.Kind {
	case domain.CredentialOAuth2:
		setHeader(&out, "Authorization", spec.TokenPrefix+spec.AccessToken)

	case domain.CredentialAPIKey:
		name := spec.Name
		if name == "" {
			name = domain.DefaultAPIKeyName
		}
		if spec.Location == domain.LocationQuery {
			setQuery(&out, name, spec.Key)
		} else {
			setHeader(&out, name, spec.Key)
		}

	case domain.CredentialBasicAuth:
		encoded := base64.StdEncoding.EncodeToString([]byte(spec.Username + ":" + spec.Password))
		setHeader(&out, "Authorization", "Basic "+encoded)
	}

	return out
}

func setHeader(desc *domain.RequestDescriptor, name, value string) {
	if desc.Headers == nil {
		desc.Headers = make(map[string]string, 1)
	}
	desc.Headers[name] = value
}

func setQuery(desc *domain.RequestDescriptor, name, value string) {
	if desc.Query == nil {
		desc.Query = make(map[string]string, 1)
	}
	desc.Query[name] = value
}
