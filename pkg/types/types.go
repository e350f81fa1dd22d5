package types

// Version identifies one supported revision of the BCF API contract.
type Version struct {
	VersionID       string `json:"version_id" yaml:"version_id" validate:"required" example:"2.1"`
	DetailedVersion string `json:"detailed_version,omitempty" yaml:"detailed_version,omitempty" validate:"omitempty,url" example:"https://github.com/BuildingSMART/BCF-API"`
}

// VersionsResponse is the payload returned by the versions endpoint.
// Order follows the configured table; nothing deduplicates entries.
type VersionsResponse struct {
	Versions []Version `json:"versions" yaml:"versions"`
}

// OAuth2 flows a BCF server may advertise. The client credentials grant and
// extension grants carry no user identity and are never advertised.
const (
	FlowAuthorizationCodeGrant                = "authorization_code_grant"
	FlowImplicitGrant                         = "implicit_grant"
	FlowResourceOwnerPasswordCredentialsGrant = "resource_owner_password_credentials_grant"
)

// AuthCapabilities describes which authentication mechanisms the server
// advertises. Every field is optional: an absent field tells the client the
// capability is unsupported, so unset fields must be omitted from the JSON
// output rather than serialized as null or empty values. If oauth2_auth_url
// is present then oauth2_token_url should also be present and vice versa;
// that pairing is a contract for the data author, not something the server
// rejects at runtime.
type AuthCapabilities struct {
	OAuth2AuthURL             *string  `json:"oauth2_auth_url,omitempty" yaml:"oauth2_auth_url,omitempty" validate:"omitempty,url" example:"https://example.com/bcf/oauth2/auth"`
	OAuth2TokenURL            *string  `json:"oauth2_token_url,omitempty" yaml:"oauth2_token_url,omitempty" validate:"omitempty,url" example:"https://example.com/bcf/oauth2/token"`
	OAuth2DynamicClientRegURL *string  `json:"oauth2_dynamic_client_reg_url,omitempty" yaml:"oauth2_dynamic_client_reg_url,omitempty" validate:"omitempty,url" example:"https://example.com/bcf/oauth2/reg"`
	HTTPBasicSupported        *bool    `json:"http_basic_supported,omitempty" yaml:"http_basic_supported,omitempty" example:"true"`
	SupportedOAuth2Flows      []string `json:"supported_oauth2_flows,omitempty" yaml:"supported_oauth2_flows,omitempty"`
}

// APIResponse is the standard envelope for non-payload responses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
