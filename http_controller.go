package auth

import (
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
)

// TokenActionAuth is the action tag carried by gateway login tokens
const TokenActionAuth = "auth"

// DefaultCookieName is the cookie the reverse proxy forwards on subrequests
const DefaultCookieName = "token"

// DefaultTokenTTL is the issuance window for the auth action
const DefaultTokenTTL = 3600 * time.Second

// RegisterAuthRoutes mounts the gateway auth endpoints:
//
//	GET  /auth/check  - subrequest authentication for the reverse proxy
//	GET  /auth/login  - login form, redirects home when already signed in
//	POST /auth/login  - credential check, sets the token cookie
//	GET  /auth/logout - clears the token cookie
func RegisterAuthRoutes[T any](app router.Router[T], opts ...AuthControllerOption) {
	controller := NewAuthController(opts...)

	app.Get(controller.Routes.Check, controller.CheckShow).
		SetName("auth-check.get")

	app.Get(controller.Routes.Login, controller.LoginShow).
		SetName("sign-in.get")

	app.Post(controller.Routes.Login, controller.LoginPost).
		SetName("sign-in.post")

	app.Get(controller.Routes.Logout, controller.LogOut).
		SetName("sign-out.get")
}

type AuthControllerRoutes struct {
	Check  string
	Login  string
	Logout string
	Home   string
}

type AuthControllerViews struct {
	Login string
}

type AuthController struct {
	Debug        bool
	Logger       Logger
	Login        LoginService
	Tokens       TokenService
	Routes       *AuthControllerRoutes
	Views        *AuthControllerViews
	CookieName   string
	TokenTTL     time.Duration
	ErrorHandler router.ErrorHandler
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:       defLogger{},
		ErrorHandler: defaultErrHandler,
		CookieName:   DefaultCookieName,
		TokenTTL:     DefaultTokenTTL,
		Routes: &AuthControllerRoutes{
			Check:  "/auth/check",
			Login:  "/auth/login",
			Logout: "/auth/logout",
			Home:   "/",
		},
		Views: &AuthControllerViews{
			Login: "login",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Login == nil {
		panic("Missing LoginService in auth controller...")
	}

	if c.Tokens == nil {
		panic("Missing TokenService in auth controller...")
	}

	return c
}

// WithAuthConfig maps Config onto the controller's cookie name and token TTL
func WithAuthConfig(cfg Config) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if cfg.GetCookieName() != "" {
			c.CookieName = cfg.GetCookieName()
		}
		if cfg.GetTokenExpiration() > 0 {
			c.TokenTTL = time.Duration(cfg.GetTokenExpiration()) * time.Second
		}
		return c
	}
}

// CheckShow backs the reverse proxy's subrequest authentication: 200 when
// the token cookie verifies, 401 otherwise. No side effects either way.
func (a *AuthController) CheckShow(ctx router.Context) error {
	token, err := a.sessionToken(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	if token == nil {
		return ctx.Status(http.StatusUnauthorized).SendString("unauthorized")
	}

	return ctx.Status(http.StatusOK).SendString("true")
}

func (a *AuthController) LoginShow(ctx router.Context) error {
	token, err := a.sessionToken(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	if token != nil {
		return ctx.Redirect(a.Routes.Home, http.StatusSeeOther)
	}

	return ctx.Render(a.Views.Login, router.ViewContext{
		"error":  nil,
		"record": nil,
	})
}

// LoginRequest payload
type LoginRequest struct {
	Login    string `form:"login" json:"login"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Login,
			validation.Required,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

func (a *AuthController) LoginPost(ctx router.Context) error {
	token, err := a.sessionToken(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	if token != nil {
		return ctx.Redirect(a.Routes.Home, http.StatusSeeOther)
	}

	payload := new(LoginRequest)
	if err := ctx.Bind(payload); err != nil {
		return a.ErrorHandler(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return ctx.Render(a.Views.Login, router.ViewContext{
			"record":     payload,
			"validation": err.Error(),
		})
	}

	if a.Debug {
		fmt.Println("======= AUTH LOGIN ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("=========================")
	}

	ok, err := a.Login.Verify(ctx.Context(), payload.Login, payload.Password)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	user, err := a.Login.Get(ctx.Context(), ByLogin(payload.Login))
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	// A single generic failure page; do not reveal whether the login exists
	if !ok || user == nil {
		return ctx.Render(a.Views.Login, router.ViewContext{
			"record": payload,
			"error":  "invalid login or password",
		})
	}

	expires := time.Now().Add(a.TokenTTL)
	raw, err := a.Tokens.CreateToken(ctx.Context(), user.ID, expires, TokenActionAuth)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	a.setTokenCookie(ctx, raw, expires)
	return ctx.Redirect(a.Routes.Home, http.StatusSeeOther)
}

func (a *AuthController) LogOut(ctx router.Context) error {
	a.clearTokenCookie(ctx)
	return ctx.Redirect(a.Routes.Login, http.StatusFound)
}

// sessionToken verifies the cookie token, nil when absent or invalid
func (a *AuthController) sessionToken(ctx router.Context) (*Token, error) {
	raw := ctx.Cookies(a.CookieName)
	if raw == "" {
		return nil, nil
	}

	return a.Tokens.VerifyToken(ctx.Context(), raw)
}

func (a *AuthController) setTokenCookie(ctx router.Context, val string, expires time.Time) {
	ctx.Cookie(&router.Cookie{
		Name:     a.CookieName,
		Value:    val,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *AuthController) clearTokenCookie(ctx router.Context) {
	ctx.Cookie(&router.Cookie{
		Name:     a.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func defaultErrHandler(c router.Context, err error) error {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		richErr = goerrors.Wrap(err, goerrors.CategoryInternal, "An unexpected server error occurred").
			WithCode(goerrors.CodeInternal)
	}

	switch richErr.Category {
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return c.Status(http.StatusUnauthorized).SendString("unauthorized")
	default:
		// Storage trouble and friends must stay visible, never report as
		// an invalid credential
		return c.Status(http.StatusInternalServerError).SendString("internal server error")
	}
}
