package websocket

type ConnectParams struct {
	Year   int    `form:"year" binding:"required"`
	Token  string `form:"token"`                     // jwt gate token for personalization
	Viewer string `form:"viewer" binding:"max=100"`  // fallback viewer name when no token
}
