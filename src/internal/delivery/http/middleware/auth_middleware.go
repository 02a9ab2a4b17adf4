package middleware

import (
	"errors"

	httpError "marketplace-service/src/pkg/http-error"
	"marketplace-service/src/pkg/token"
	"marketplace-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const (
	authLocalsKey = "auth"
	RoleAdmin     = "admin"
)

type Auth struct {
	UserID string
	Role   string
	Email  string
}

func (a *Auth) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// VerifyBearer checks an HS256 token signed with auth.jwt_secret and stores the caller in ctx.Locals.
func VerifyBearer(cfg *viper.Viper) fiber.Handler {
	secret := cfg.GetString("auth.jwt_secret")
	return func(ctx *fiber.Ctx) error {
		tokenString, err := token.FromHeader(ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			return unauthorized(ctx, "Access denied. No valid token provided.", err)
		}

		claim, err := token.Parse(secret, tokenString)
		switch {
		case errors.Is(err, token.ErrExpiredToken):
			return unauthorized(ctx, "Access denied. Token has expired.", err)
		case err != nil:
			return unauthorized(ctx, "Access denied. Invalid token.", err)
		}

		ctx.Locals(authLocalsKey, &Auth{
			UserID: claim.Subject,
			Role:   claim.UserRole(),
			Email:  claim.Email,
		})
		return ctx.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil {
			return unauthorized(ctx, "Authentication required", nil)
		}
		if !auth.IsAdmin() {
			errObj := httpError.NewForbidden()
			errObj.Message = "Access denied. Admin privileges required."
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *Auth {
	auth, _ := ctx.Locals(authLocalsKey).(*Auth)
	return auth
}

func unauthorized(ctx *fiber.Ctx, message string, cause error) error {
	errObj := httpError.NewUnauthorized()
	errObj.Message = message
	return utils.ResponseError(errObj.Wrap(cause), ctx)
}
