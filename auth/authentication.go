package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	ErrUnauthenticated          = fmt.Errorf("access token is invalid")
	AuthContextKey              = AuthKey("auth")
	DefaultCacheSize            = 10000           // Cache up to 10000 tokens
	DefaultCacheEntryExpiration = 5 * time.Minute // Cache tokens for 5 minutes
)

const bearerPrefix = "Bearer "

type AuthKey string

// Auth is the authenticated caller identity attached to the request context.
// SubjectId is the therapist's user id.
type Auth struct {
	SubjectId string `json:"subjectId"`
}

type Authenticator interface {
	ValidateAndSetAuthData(token string, ec echo.Context) (bool, error)
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthMiddleware(authenticator Authenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. readiness probe)
			if opts.Skipper != nil && opts.Skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token is missing")
			}

			valid, err := authenticator.ValidateAndSetAuthData(strings.TrimPrefix(header, bearerPrefix), c)
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "access token is invalid",
					Internal: err,
				}
			} else if valid {
				return next(c)
			}
			return echo.ErrUnauthorized
		}
	}
}

// NewAuthenticator returns a JWT authenticator that caches successfully
// verified tokens
func NewAuthenticator(cfg *Config) (Authenticator, error) {
	delegate := NewJWTAuthenticator(cfg)
	return NewCachingAuthenticator(DefaultCacheSize, DefaultCacheEntryExpiration, delegate)
}

type JWTAuthenticator struct {
	secret []byte
}

var _ Authenticator = &JWTAuthenticator{}

func NewJWTAuthenticator(cfg *Config) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(cfg.TokenSecret)}
}

func (j *JWTAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, j.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return false, err
	}
	if !parsed.Valid {
		return false, ErrUnauthenticated
	}

	subjectId, _ := claims["_id"].(string)
	if subjectId == "" {
		subjectId, _ = claims["sub"].(string)
	}
	if subjectId == "" {
		return false, ErrUnauthenticated
	}

	SetAuthData(ec, &Auth{SubjectId: subjectId})
	return true, nil
}

func (j *JWTAuthenticator) keyFunc(token *jwt.Token) (interface{}, error) {
	return j.secret, nil
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}

type CacheEntry struct {
	token  string
	auth   *Auth
	expiry time.Time
}

func (c CacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

type CachingAuthenticator struct {
	delegate   Authenticator
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
}

var _ Authenticator = &CachingAuthenticator{}

func NewCachingAuthenticator(size int, expiration time.Duration, delegate Authenticator) (Authenticator, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingAuthenticator{
		delegate:   delegate,
		expiration: expiration,
		lru:        lru,
		mu:         &sync.Mutex{},
	}, nil
}

func (c *CachingAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	if entry := c.getCachedEntry(token); entry != nil {
		SetAuthData(ec, entry.auth)
		return true, nil
	}

	res, err := c.delegate.ValidateAndSetAuthData(token, ec)
	if res && err == nil {
		if auth := GetAuthData(ec.Request().Context()); auth != nil {
			c.setCacheEntry(CacheEntry{
				token:  token,
				auth:   auth,
				expiry: time.Now().Add(c.expiration),
			})
		}
	}

	return res, err
}

func (c *CachingAuthenticator) getCachedEntry(token string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(token); ok {
		entry := e.(CacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(token)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingAuthenticator) setCacheEntry(entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.token, entry)
}
