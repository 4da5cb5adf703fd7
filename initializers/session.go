package initializers

import (
	"encoding/gob"

	"github.com/gorilla/sessions"

	"github.com/sweetdelights/pastry-shop/models"
)

const SessionName = "sweetdelights-session"

var SessionStore *sessions.CookieStore

func init() {
	gob.Register(models.Cart{})
}

func InitSessionStore() {
	SessionStore = sessions.NewCookieStore([]byte(AppConfig.SecretKey))
	SessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   AppConfig.SessionLifetime,
		HttpOnly: AppConfig.SessionCookieHTTPOnly,
	}
}
