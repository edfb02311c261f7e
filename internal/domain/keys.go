package domain

type CtxKey string

const (
	KeyAuthContext CtxKey = "AuthContext"
)
