package handlers

import (
	"net/http"

	"github.com/DevarshLade/lade-studio/app/configs"
	"github.com/unrolled/render"
)

type DebugHandler struct {
	render *render.Render
	env    configs.ENV
}

func NewDebugHandler(render *render.Render, env configs.ENV) *DebugHandler {
	return &DebugHandler{render: render, env: env}
}

// EnvStatus reports which features are configured. Presence only, never
// values.
func (h *DebugHandler) EnvStatus(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"app_env": h.env.APP_ENV,
		"features": map[string]bool{
			"database":         h.env.DBHost != "" && h.env.DBName != "",
			"identity_webhook": h.env.IDENTITY_WEBHOOK_SECRET != "",
			"image_uploads":    h.env.CLOUDINARY_URL != "",
			"csrf":             h.env.CSRF_KEY != "",
			"sessions":         h.env.SESSION_KEY != "",
		},
	})
}
