package user

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/friend_request/friend_request_status_enum"
)

func newTestService(t *testing.T) (*userService, *repository.Repositories) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repos := repository.NewRepositories(db)
	return NewUserService(repos), repos
}

func seedUser(t *testing.T, repos *repository.Repositories, uuid, name string, onboarded bool) {
	t.Helper()
	user := model.UserInfo{
		Uuid:        uuid,
		FullName:    name,
		Email:       uuid + "@siraj.dev",
		RawPassword: "secret123",
		IsOnboarded: onboarded,
	}
	if err := repos.User.Create(&user); err != nil {
		t.Fatalf("seed user %s: %v", uuid, err)
	}
}

func TestSearch(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_alice", "Alice Wonder", true)
	seedUser(t, repos, "U_bilal", "Bilal Omar", true)

	// Empty queries return an empty slice, not everything.
	rsp, err := svc.Search("U_alice", "")
	if err != nil {
		t.Fatalf("empty search: %v", err)
	}
	if len(rsp) != 0 {
		t.Errorf("empty query returned %d users", len(rsp))
	}

	// Matches exclude the caller.
	rsp, err = svc.Search("U_alice", "al")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, u := range rsp {
		if u.Uuid == "U_alice" {
			t.Error("caller included in search results")
		}
	}

	rsp, err = svc.Search("U_alice", "Bilal")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rsp) != 1 || rsp[0].Uuid != "U_bilal" {
		t.Errorf("name match wrong: %+v", rsp)
	}
}

func TestGetRecommendedExclusions(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_me", "Me", true)
	seedUser(t, repos, "U_friend", "Friend", true)
	seedUser(t, repos, "U_pending", "Pending", true)
	seedUser(t, repos, "U_incoming", "Incoming", true)
	seedUser(t, repos, "U_fresh", "Fresh", true)
	seedUser(t, repos, "U_not_onboarded", "Lurker", false)

	// Existing friendship plus pending requests in both directions.
	if err := repos.Friendship.Create(&model.Friendship{UserUuid: "U_me", FriendUuid: "U_friend"}); err != nil {
		t.Fatalf("seed friendship: %v", err)
	}
	if err := repos.FriendRequest.Create(&model.FriendRequest{
		Uuid: "F_1", SenderId: "U_me", RecipientId: "U_pending",
		Status: friend_request_status_enum.PENDING,
	}); err != nil {
		t.Fatalf("seed outgoing request: %v", err)
	}
	if err := repos.FriendRequest.Create(&model.FriendRequest{
		Uuid: "F_2", SenderId: "U_incoming", RecipientId: "U_me",
		Status: friend_request_status_enum.PENDING,
	}); err != nil {
		t.Fatalf("seed incoming request: %v", err)
	}

	rsp, err := svc.GetRecommended("U_me", request.RecommendedQuery{})
	if err != nil {
		t.Fatalf("recommended: %v", err)
	}
	if len(rsp) != 1 || rsp[0].Uuid != "U_fresh" {
		t.Errorf("expected only U_fresh, got %+v", rsp)
	}
}

func TestGetRecommendedFilters(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_me", "Me", true)

	arabic := model.UserInfo{
		Uuid: "U_arabic", FullName: "Arabic Speaker", Email: "U_arabic@siraj.dev",
		RawPassword: "secret123", IsOnboarded: true,
		NativeLanguage: "arabic", LearningLanguage: "english",
	}
	turkish := model.UserInfo{
		Uuid: "U_turkish", FullName: "Turkish Speaker", Email: "U_turkish@siraj.dev",
		RawPassword: "secret123", IsOnboarded: true,
		NativeLanguage: "turkish", LearningLanguage: "english",
	}
	for _, u := range []*model.UserInfo{&arabic, &turkish} {
		if err := repos.User.Create(u); err != nil {
			t.Fatalf("seed user %s: %v", u.Uuid, err)
		}
	}

	rsp, err := svc.GetRecommended("U_me", request.RecommendedQuery{NativeLanguage: "arabic"})
	if err != nil {
		t.Fatalf("recommended: %v", err)
	}
	if len(rsp) != 1 || rsp[0].Uuid != "U_arabic" {
		t.Errorf("native language filter wrong: %+v", rsp)
	}

	rsp, err = svc.GetRecommended("U_me", request.RecommendedQuery{Query: "Turkish"})
	if err != nil {
		t.Fatalf("recommended: %v", err)
	}
	if len(rsp) != 1 || rsp[0].Uuid != "U_turkish" {
		t.Errorf("name filter wrong: %+v", rsp)
	}

	// A one-row page keeps the result bounded.
	rsp, err = svc.GetRecommended("U_me", request.RecommendedQuery{Limit: 1})
	if err != nil {
		t.Fatalf("recommended: %v", err)
	}
	if len(rsp) != 1 {
		t.Errorf("limit ignored: got %d users", len(rsp))
	}
}

func TestGetFriends(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_me", "Me", true)
	seedUser(t, repos, "U_friend", "Friend", true)

	rsp, err := svc.GetFriends("U_me")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(rsp) != 0 {
		t.Errorf("expected no friends yet, got %+v", rsp)
	}

	if err := repos.Friendship.Create(&model.Friendship{UserUuid: "U_me", FriendUuid: "U_friend"}); err != nil {
		t.Fatalf("seed friendship: %v", err)
	}

	rsp, err = svc.GetFriends("U_me")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(rsp) != 1 || rsp[0].Uuid != "U_friend" {
		t.Errorf("friend listing wrong: %+v", rsp)
	}
}
