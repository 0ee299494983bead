package consts

// gin.Context 中的鉴权信息 Key
const (
	CtxUserID      = "user_id"
	CtxRole        = "role"
	CtxAdminAccess = "admin_access"
)

const (
	HookSecretHeader = "X-Hook-Secret"
	TraceIDHeader    = "X-Trace-ID"
)
