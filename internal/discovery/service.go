package discovery

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/opensourcebim/bcf-server/pkg/config"
	"github.com/opensourcebim/bcf-server/pkg/types"
)

// Service serves the read-only discovery tables. All state is fixed at
// construction time, so concurrent reads need no locking.
type Service struct {
	versions []types.Version
	auth     types.AuthCapabilities
}

// NewService validates the configured discovery tables and returns a service
// over them. A malformed table is a configuration defect: the error is meant
// to stop startup rather than let a broken payload reach clients.
func NewService(cfg *config.DiscoveryConfig) (*Service, error) {
	validate := validator.New()

	if len(cfg.Versions) == 0 {
		return nil, fmt.Errorf("no API versions configured")
	}
	for i, v := range cfg.Versions {
		if err := validate.Struct(v); err != nil {
			return nil, fmt.Errorf("invalid version entry %d (%q): %w", i, v.VersionID, err)
		}
	}

	if err := validate.Struct(cfg.Auth); err != nil {
		return nil, fmt.Errorf("invalid auth capabilities: %w", err)
	}
	if (cfg.Auth.OAuth2AuthURL == nil) != (cfg.Auth.OAuth2TokenURL == nil) {
		// The BCF spec pairs these fields contractually but the server does
		// not reject the table over it.
		log.Warn().Msg("oauth2_auth_url and oauth2_token_url should be configured together")
	}

	if newest := newestVersion(cfg.Versions); newest != "" {
		log.Info().
			Int("count", len(cfg.Versions)).
			Str("newest", newest).
			Msg("discovery tables loaded")
	}

	return &Service{
		versions: append([]types.Version(nil), cfg.Versions...),
		auth:     cfg.Auth,
	}, nil
}

// Versions returns the supported API versions in configured order.
func (s *Service) Versions() types.VersionsResponse {
	return types.VersionsResponse{
		Versions: append([]types.Version(nil), s.versions...),
	}
}

// AuthCapabilities returns the advertised authentication capabilities. The
// same record is served for every API version; per-version capabilities are
// not modeled.
func (s *Service) AuthCapabilities() types.AuthCapabilities {
	return s.auth
}

// newestVersion picks the highest version id by semver comparison, for
// logging only. Ids that do not parse as semver are skipped with a warning;
// the served order always stays as configured.
func newestVersion(versions []types.Version) string {
	var newest *semver.Version
	var newestID string
	for _, v := range versions {
		parsed, err := semver.NewVersion(v.VersionID)
		if err != nil {
			log.Warn().Str("version_id", v.VersionID).Msg("version id is not semver-comparable")
			continue
		}
		if newest == nil || parsed.GreaterThan(newest) {
			newest = parsed
			newestID = v.VersionID
		}
	}
	return newestID
}
