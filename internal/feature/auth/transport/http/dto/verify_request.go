package dto

// VerifyReq represents the request body for the /auth/verify endpoint.
// The code is the 6-digit value mailed during registration.
type VerifyReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}
