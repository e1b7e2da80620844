// Package schemas defines the wire shapes of the HTTP surface. Success
// and failure share one envelope per endpoint family, built through the
// constructors below so no handler assembles JSON by hand.
package schemas

// TokenEnvelope is the body of the refresh-token endpoint.
type TokenEnvelope struct {
	Success bool      `json:"success" doc:"Whether the renewal succeeded"`
	Data    TokenData `json:"data"`
}

type TokenData struct {
	Token        string `json:"token,omitempty" doc:"New short-lived access token"`
	RefreshToken string `json:"refresh_token,omitempty" doc:"Refresh token to present on the next renewal"`
	Message      string `json:"message,omitempty" doc:"Failure detail"`
}

func TokenSuccess(accessToken, refreshToken string) TokenEnvelope {
	return TokenEnvelope{
		Success: true,
		Data:    TokenData{Token: accessToken, RefreshToken: refreshToken},
	}
}

func TokenFailure(message string) TokenEnvelope {
	return TokenEnvelope{
		Success: false,
		Data:    TokenData{Message: message},
	}
}

// HealthBody is the health-probe response.
type HealthBody struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

// UserRow is one result of the user lookup endpoint.
type UserRow struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	UserName *string `json:"user_name,omitempty"`
}

// LookupEnvelope is the body of the user lookup endpoint. Results is a
// pointer so a successful empty lookup still serializes as [].
type LookupEnvelope struct {
	Status  string     `json:"status" example:"success"`
	Results *[]UserRow `json:"results,omitempty"`
	Message string     `json:"message,omitempty" doc:"Failure detail"`
}

func LookupSuccess(rows []UserRow) LookupEnvelope {
	if rows == nil {
		rows = []UserRow{}
	}
	return LookupEnvelope{Status: "success", Results: &rows}
}

func LookupFailure(message string) LookupEnvelope {
	return LookupEnvelope{Status: "fail", Message: message}
}
