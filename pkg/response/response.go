package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"roi-srv/pkg/discord"
	pkgErrors "roi-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values map to their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Internal server error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap resolves err through the given mapping before responding.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	for target, httpErr := range mapping {
		if errors.Is(err, target) {
			Error(c, httpErr, notifier)
			return
		}
	}
	Error(c, err, notifier)
}

// PanicError writes a 500 response for a recovered panic and reports it to
// Discord when configured.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
