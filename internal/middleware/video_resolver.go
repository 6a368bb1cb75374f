package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/videotube/utils"
)

type VideoLookup interface {
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}

// ResolveVideo turns the :videoId route param into a known video's ObjectID
// stored in Locals("video_id").
func ResolveVideo(videos VideoLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("videoId"))
		if raw == "" {
			return utils.BadRequest(utils.MsgFieldsRequired, "videoId is required")
		}
		oid, err := utils.Oid(raw)
		if err != nil {
			return utils.BadRequest("Invalid video id")
		}

		ok, err := videos.Exists(c.UserContext(), oid)
		if err != nil {
			return err
		}
		if !ok {
			return utils.BadRequest("Video not found")
		}

		c.Locals("video_id", oid)
		return c.Next()
	}
}
