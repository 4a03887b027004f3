package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"partscatalog/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// 時刻（テストで差し替える）
type Clock interface {
	Now() time.Time
}

type TokenIssuer interface {
	Issue(subject string, role model.Role, now time.Time) (string, time.Time, error)
}

// HS256 の JWT を発行する。
type JWTIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTIssuer(secret string, accessTTL time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), accessTTL: accessTTL}
}

func (i *JWTIssuer) Issue(subject string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// 管理者ログイン。管理者は設定（ADMIN_EMAIL / ADMIN_PASSWORD_HASH）の1人だけ。
type AdminAuthUsecase struct {
	email        string
	passwordHash []byte
	issuer       TokenIssuer
	clock        Clock
}

func NewAdminAuthUsecase(email, passwordHash string, issuer TokenIssuer, clock Clock) *AdminAuthUsecase {
	return &AdminAuthUsecase{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		issuer:       issuer,
		clock:        clock,
	}
}

func (u *AdminAuthUsecase) Login(ctx context.Context, email, password string) (model.AdminToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.AdminToken{}, badRequest("email and password required")
	}

	//メール不一致でも bcrypt は回す（タイミング差を小さくする）
	hashErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password))
	if email != u.email || hashErr != nil {
		return model.AdminToken{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	token, exp, err := u.issuer.Issue(u.email, model.RoleAdmin, now)
	if err != nil {
		return model.AdminToken{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}
	return model.AdminToken{
		AccessToken: token,
		ExpiresIn:   int64(exp.Sub(now).Seconds()),
	}, nil
}
