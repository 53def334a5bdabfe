package sheets

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// assertionLifetime is the validity window of a signed assertion. The bearer
// token minted from it inherits the same window.
const assertionLifetime = time.Hour

// SignAssertion builds and RSA-SHA256-signs the JWT-bearer assertion for the
// given identity and scope. The audience is the identity's token endpoint.
// Pure function of its inputs; each assertion is single-use.
func SignAssertion(id *ServiceIdentity, scope string, now time.Time) (string, error) {
	// Keys pasted through environment config often arrive with escaped
	// newlines still in place.
	pemKey := strings.ReplaceAll(id.PrivateKey, `\n`, "\n")
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return "", &KeyFormatError{Reason: "invalid private key", Err: err}
	}

	claims := jwt.MapClaims{
		"iss":   id.ClientEmail,
		"scope": scope,
		"aud":   id.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}
