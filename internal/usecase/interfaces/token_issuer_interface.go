package interfaces

// ITokenIssuer abstracts access-token issuance and verification (e.g. JWT).
//
// Issue returns a signed bearer token for the user id; Verify returns the
// user id embedded in a valid token.
type ITokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
