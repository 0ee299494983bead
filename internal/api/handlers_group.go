package api

import "Hustings/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	CandidateHandler *handler.CandidateHandler
	AdminHandler     *handler.AdminHandler
	HookHandler      *handler.HookHandler
}
