package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID reads the user_id set by JWTUidOnly as an ObjectID.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	uid, ok := c.Locals("user_id").(string)
	if !ok || uid == "" {
		return bson.NilObjectID, fiber.ErrUnauthorized
	}

	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, fiber.ErrUnauthorized
	}
	return oid, nil
}

// VideoIDFrom reads the id stored by ResolveVideo. The zero id means unresolved.
func VideoIDFrom(c *fiber.Ctx) bson.ObjectID {
	oid, _ := c.Locals("video_id").(bson.ObjectID)
	return oid
}
