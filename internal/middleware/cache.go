package middleware

import (
	"context"

	"cinema-catalog/internal/cache"
	"cinema-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ResponseCache is what the caching middleware needs from a cache backend.
type ResponseCache interface {
	cache.Store
	Key(method, path, query string) string
}

// CacheResponses serves successful GET responses from the cache and stores
// misses under the given resource tag. Requests carrying an Authorization
// header bypass the cache since their payload may vary per caller.
func CacheResponses(store ResponseCache, tag string) fiber.Handler {
	if store == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || c.Get(fiber.HeaderAuthorization) != "" {
			return c.Next()
		}

		ctx := c.Context()
		key := store.Key(c.Method(), c.Path(), string(c.Request().URI().QueryString()))

		if entry, ok := store.Get(ctx, key); ok {
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, entry.ContentType)
			if entry.TotalCount != "" {
				c.Set(utils.HeaderTotalCount, entry.TotalCount)
			}
			return c.Status(entry.Status).Send(entry.Body)
		}

		c.Set("X-Cache", "MISS")
		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			entry := cache.Entry{
				Status:      fiber.StatusOK,
				ContentType: string(c.Response().Header.ContentType()),
				TotalCount:  c.GetRespHeader(utils.HeaderTotalCount),
				Body:        append([]byte(nil), c.Response().Body()...),
			}
			_ = store.Set(context.WithoutCancel(ctx), key, tag, entry)
		}
		return nil
	}
}
