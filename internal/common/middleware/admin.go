package middleware

import (
	"crypto/subtle"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"scratchcard-backend/internal/common/errors"
	"scratchcard-backend/internal/common/logger"
)

// InitDataHeader carries raw Telegram Mini App init data.
const InitDataHeader = "init_data"

// AdminAuth configures RequireAdmin. With neither Token nor BotToken set
// the admin routes are open.
type AdminAuth struct {
	Token       string
	BotToken    string
	AdminIDs    []int64
	InitDataTTL time.Duration
}

func (a AdminAuth) enabled() bool {
	return a.Token != "" || a.BotToken != ""
}

// RequireAdmin accepts either "Authorization: Bearer <token>" or Telegram
// init data signed by the bot and belonging to one of AdminIDs.
func RequireAdmin(auth AdminAuth) gin.HandlerFunc {
	if !auth.enabled() {
		logger.Warn().Msg("Admin routes are not protected: set ADMIN_TOKEN or BOT_TOKEN")
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if auth.Token != "" {
			if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
				if subtle.ConstantTimeCompare([]byte(bearer), []byte(auth.Token)) == 1 {
					c.Next()
					return
				}
				RespondError(c, errors.NewUnauthorizedError("invalid admin token"))
				return
			}
		}

		raw := c.GetHeader(InitDataHeader)
		if auth.BotToken == "" || raw == "" {
			RespondError(c, errors.NewUnauthorizedError("admin credentials required"))
			return
		}

		if err := initdata.Validate(raw, auth.BotToken, auth.InitDataTTL); err != nil {
			RespondError(c, errors.Wrap(err, errors.ErrCodeUnauthorized, "Invalid init data"))
			return
		}
		data, err := initdata.Parse(raw)
		if err != nil {
			RespondError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "Failed to parse init data"))
			return
		}
		if !slices.Contains(auth.AdminIDs, data.User.ID) {
			RespondError(c, errors.NewForbiddenError("admin access required"))
			return
		}

		c.Set("user", data.User)
		c.Next()
	}
}
