package usercontext

// Context keys used in fiber locals
const (
	KeyUserContext   = "USER_CONTEXT"
	KeyFromProtected = "FROM_PROTECTED"
	KeyIsAdmin       = "IS_ADMIN"
	KeyUserID        = "USER_ID"
)

// Session keys
const (
	SessionKeyUserID = "user_id"
)
