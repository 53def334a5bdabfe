package sheets

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"strings"
)

const identityEnv = "GOOGLE_SERVICE_ACCOUNT_KEY_BASE64"

// ServiceIdentity is the service-account identity used for the JWT-bearer
// grant. Loaded fresh per use; never persisted beyond process memory.
type ServiceIdentity struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// LoadIdentity reads the base64-encoded service-account JSON from the
// environment.
func LoadIdentity() (*ServiceIdentity, error) {
	raw := strings.TrimSpace(os.Getenv(identityEnv))
	if raw == "" {
		return nil, ErrMissingConfig
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, &KeyFormatError{Reason: "invalid base64", Err: err}
	}

	jsonStr := strings.TrimSpace(string(decoded))
	// Some key exports carry a UTF-8 BOM.
	jsonStr = strings.TrimPrefix(jsonStr, "\uFEFF")

	var id ServiceIdentity
	if err := json.Unmarshal([]byte(jsonStr), &id); err != nil {
		return nil, &KeyFormatError{Reason: "invalid service account JSON", Err: err}
	}
	if id.ClientEmail == "" || id.PrivateKey == "" || id.TokenURI == "" {
		return nil, &KeyFormatError{Reason: "service account JSON missing client_email, private_key or token_uri"}
	}

	return &id, nil
}
