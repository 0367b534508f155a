package auth

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/jwt"
)

func newTestService(t *testing.T) (*authService, *repository.Repositories) {
	t.Helper()

	jwt.Init("test-secret", 15, 168)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repos := repository.NewRepositories(db)
	return NewAuthService(repos, &chat.NopProvider{}), repos
}

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", code)
	}
	if got := errorx.GetCode(err); got != code {
		t.Fatalf("expected code %d, got %d (%v)", code, got, err)
	}
}

func TestSignup(t *testing.T) {
	svc, repos := newTestService(t)

	rsp, err := svc.Signup(request.RegisterRequest{
		FullName: "Layla Hassan",
		Email:    "layla@siraj.dev",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if rsp.AccessToken == "" || rsp.RefreshToken == "" {
		t.Error("token pair not issued")
	}
	if rsp.User.Uuid == "" || rsp.User.Uuid[0] != 'U' {
		t.Errorf("business key malformed: %q", rsp.User.Uuid)
	}
	if rsp.User.IsOnboarded {
		t.Error("fresh accounts start un-onboarded")
	}
	// The starter avatar index stays inside the CDN's 1..100 set.
	var avatarIdx int
	if _, err := fmt.Sscanf(rsp.User.ProfilePic, "https://avatar.iran.liara.run/public/%d.png", &avatarIdx); err != nil {
		t.Errorf("default avatar malformed: %q", rsp.User.ProfilePic)
	} else if avatarIdx < 1 || avatarIdx > 100 {
		t.Errorf("avatar index %d outside 1..100", avatarIdx)
	}

	// The password is stored hashed, never in the clear.
	stored, err := repos.User.FindByEmail("layla@siraj.dev")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Password == "secret123" || stored.Password == "" {
		t.Error("password not hashed")
	}
	if !stored.CheckPassword("secret123") {
		t.Error("hash does not verify")
	}

	// The access token identifies the new account.
	claims, err := jwt.ParseToken(rsp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != rsp.User.Uuid {
		t.Errorf("token user = %s, want %s", claims.UserID, rsp.User.Uuid)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := request.RegisterRequest{FullName: "Layla", Email: "layla@siraj.dev", Password: "secret123"}
	if _, err := svc.Signup(req); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(req)
	wantCode(t, err, errorx.CodeUserExist)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Signup(request.RegisterRequest{
		FullName: "Layla", Email: "layla@siraj.dev", Password: "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	rsp, err := svc.Login(request.LoginRequest{Email: "layla@siraj.dev", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if rsp.AccessToken == "" {
		t.Error("no access token on login")
	}

	// Wrong password and unknown email fail identically.
	_, err = svc.Login(request.LoginRequest{Email: "layla@siraj.dev", Password: "wrong"})
	wantCode(t, err, errorx.CodeInvalidAuth)
	_, err = svc.Login(request.LoginRequest{Email: "nobody@siraj.dev", Password: "secret123"})
	wantCode(t, err, errorx.CodeInvalidAuth)
}

func TestOnboard(t *testing.T) {
	svc, _ := newTestService(t)

	signedUp, err := svc.Signup(request.RegisterRequest{
		FullName: "Layla", Email: "layla@siraj.dev", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	rsp, err := svc.Onboard(signedUp.User.Uuid, request.OnboardRequest{
		FullName:         "Layla Hassan",
		Bio:              "Learning English",
		NativeLanguage:   "arabic",
		LearningLanguage: "english",
		Location:         "Cairo",
	})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if !rsp.IsOnboarded {
		t.Error("IsOnboarded not set")
	}
	if rsp.NativeLanguage != "arabic" || rsp.LearningLanguage != "english" {
		t.Errorf("profile fields not applied: %+v", rsp)
	}

	me, err := svc.Me(signedUp.User.Uuid)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.FullName != "Layla Hassan" {
		t.Errorf("profile not persisted: %+v", me)
	}

	_, err = svc.Me("U_nobody")
	wantCode(t, err, errorx.CodeUserNotExist)
}
