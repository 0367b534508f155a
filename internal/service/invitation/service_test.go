package invitation

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/group_privacy_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/group_role_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/invitation/invitation_status_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/notification/notification_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
)

func newTestService(t *testing.T) (*invitationService, *repository.Repositories) {
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
	return NewInvitationService(repos, &chat.NopProvider{}), repos
}

func seedUser(t *testing.T, repos *repository.Repositories, uuid, name string) {
	t.Helper()
	user := model.UserInfo{
		Uuid:        uuid,
		FullName:    name,
		Email:       uuid + "@siraj.dev",
		RawPassword: "secret123",
		IsOnboarded: true,
	}
	if err := repos.User.Create(&user); err != nil {
		t.Fatalf("seed user %s: %v", uuid, err)
	}
}

// seedGroup creates a group with its creator membership but,
// deliberately, no permission records.
func seedGroup(t *testing.T, repos *repository.Repositories, uuid, creatorId string) {
	t.Helper()
	group := model.GroupInfo{
		Uuid:      uuid,
		Name:      "Invite Group",
		CreatorId: creatorId,
		Privacy:   group_privacy_enum.PRIVATE,
		ChannelID: "group-" + uuid,
		MemberCnt: 1,
	}
	if err := repos.Group.Create(&group); err != nil {
		t.Fatalf("seed group: %v", err)
	}
	member := model.GroupMember{GroupUuid: uuid, UserUuid: creatorId, Role: group_role_enum.CREATOR}
	if err := repos.GroupMember.Create(&member); err != nil {
		t.Fatalf("seed creator membership: %v", err)
	}
}

func grantAddMembers(t *testing.T, repos *repository.Repositories, groupUuid, userUuid string) {
	t.Helper()
	perm := model.GroupPermission{
		GroupUuid:     groupUuid,
		UserUuid:      userUuid,
		CanAddMembers: true,
	}
	if err := repos.GroupPermission.Upsert(&perm); err != nil {
		t.Fatalf("grant permission: %v", err)
	}
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

func TestCreateInvitationRequiresPermissionRecord(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedUser(t, repos, "U_invitee", "Omar")
	seedGroup(t, repos, "G_test", "U_creator")

	// Even the creator needs an explicit canAddMembers record here.
	_, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	wantCode(t, err, errorx.CodeForbidden)

	// A record without the capability is just as useless.
	perm := model.GroupPermission{GroupUuid: "G_test", UserUuid: "U_creator"}
	if err := repos.GroupPermission.Upsert(&perm); err != nil {
		t.Fatalf("seed permission: %v", err)
	}
	_, err = svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	wantCode(t, err, errorx.CodeForbidden)

	grantAddMembers(t, repos, "G_test", "U_creator")
	rsp, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	if err != nil {
		t.Fatalf("create invitation: %v", err)
	}
	if rsp.Status != invitation_status_enum.PENDING {
		t.Errorf("status = %s, want pending", rsp.Status)
	}
	if rsp.InviteLink == "" {
		t.Error("invite link missing")
	}
	if !rsp.ExpiresAt.After(time.Now()) {
		t.Errorf("expiry not in the future: %v", rsp.ExpiresAt)
	}

	// The invitee was notified.
	notifications, err := repos.Notification.FindByUserUuid("U_invitee", 10)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Type != notification_type_enum.GROUP_INVITE {
		t.Errorf("invite notification missing: %+v", notifications)
	}
}

func TestCreateInvitationDuplicatePending(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedUser(t, repos, "U_invitee", "Omar")
	seedGroup(t, repos, "G_test", "U_creator")
	grantAddMembers(t, repos, "G_test", "U_creator")

	if _, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee"); err != nil {
		t.Fatalf("first invitation: %v", err)
	}
	_, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	wantCode(t, err, errorx.CodeConflict)
}

func TestCreateInvitationUnknownParties(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedGroup(t, repos, "G_test", "U_creator")
	grantAddMembers(t, repos, "G_test", "U_creator")

	_, err := svc.CreateInvitation("U_creator", "G_missing", "U_creator")
	wantCode(t, err, errorx.CodeNotFound)

	_, err = svc.CreateInvitation("U_creator", "G_test", "U_ghost")
	wantCode(t, err, errorx.CodeNotFound)
}

func TestRespondInvitationAccept(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedUser(t, repos, "U_invitee", "Omar")
	seedGroup(t, repos, "G_test", "U_creator")
	grantAddMembers(t, repos, "G_test", "U_creator")

	rsp, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	if err != nil {
		t.Fatalf("create invitation: %v", err)
	}

	// Only the invitee may resolve it.
	wantCode(t, svc.RespondInvitation("U_creator", rsp.Uuid, "accept"), errorx.CodeForbidden)

	if err := svc.RespondInvitation("U_invitee", rsp.Uuid, "accept"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// Resolved exactly once.
	wantCode(t, svc.RespondInvitation("U_invitee", rsp.Uuid, "accept"), errorx.CodeConflict)

	// The invitee is now a plain member, with no permission record.
	member, err := repos.GroupMember.Find("G_test", "U_invitee")
	if err != nil {
		t.Fatalf("membership: %v", err)
	}
	if member.Role != group_role_enum.MEMBER {
		t.Errorf("role = %d, want %d", member.Role, group_role_enum.MEMBER)
	}
	if _, err := repos.GroupPermission.Find("G_test", "U_invitee"); !errorx.IsNotFound(err) {
		t.Errorf("unexpected permission record: %v", err)
	}

	group, err := repos.Group.FindByUuid("G_test")
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if group.MemberCnt != 2 {
		t.Errorf("member count = %d, want 2", group.MemberCnt)
	}
}

func TestRespondInvitationReject(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedUser(t, repos, "U_invitee", "Omar")
	seedGroup(t, repos, "G_test", "U_creator")
	grantAddMembers(t, repos, "G_test", "U_creator")

	rsp, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	if err != nil {
		t.Fatalf("create invitation: %v", err)
	}

	if err := svc.RespondInvitation("U_invitee", rsp.Uuid, "reject"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// No membership was created.
	if _, err := repos.GroupMember.Find("G_test", "U_invitee"); !errorx.IsNotFound(err) {
		t.Errorf("rejection must not add a member: %v", err)
	}

	inv, err := repos.Invitation.FindByUuid(rsp.Uuid)
	if err != nil {
		t.Fatalf("invitation: %v", err)
	}
	if inv.Status != invitation_status_enum.REJECTED {
		t.Errorf("status = %s, want rejected", inv.Status)
	}
}

func TestRespondInvitationExpired(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedUser(t, repos, "U_invitee", "Omar")
	seedGroup(t, repos, "G_test", "U_creator")

	inv := model.Invitation{
		Uuid:       "I_expired",
		GroupUuid:  "G_test",
		InviterId:  "U_creator",
		InviteeId:  "U_invitee",
		Status:     invitation_status_enum.PENDING,
		InviteLink: "link-expired",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	if err := repos.Invitation.Create(&inv); err != nil {
		t.Fatalf("seed invitation: %v", err)
	}

	wantCode(t, svc.RespondInvitation("U_invitee", "I_expired", "accept"), errorx.CodeConflict)
}

func TestGetMyInvitations(t *testing.T) {
	svc, repos := newTestService(t)
	seedUser(t, repos, "U_creator", "Layla")
	seedUser(t, repos, "U_invitee", "Omar")
	seedGroup(t, repos, "G_test", "U_creator")
	grantAddMembers(t, repos, "G_test", "U_creator")

	rsp, err := svc.CreateInvitation("U_creator", "G_test", "U_invitee")
	if err != nil {
		t.Fatalf("create invitation: %v", err)
	}

	// Expired pendings stay in the table but not in the listing.
	stale := model.Invitation{
		Uuid:       "I_stale",
		GroupUuid:  "G_test",
		InviterId:  "U_creator",
		InviteeId:  "U_invitee",
		Status:     invitation_status_enum.PENDING,
		InviteLink: "link-stale",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	if err := repos.Invitation.Create(&stale); err != nil {
		t.Fatalf("seed stale invitation: %v", err)
	}

	invitations, err := svc.GetMyInvitations("U_invitee")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invitations) != 1 {
		t.Fatalf("got %d invitations, want 1", len(invitations))
	}
	if invitations[0].Uuid != rsp.Uuid {
		t.Errorf("wrong invitation: %+v", invitations[0])
	}
	if invitations[0].GroupName != "Invite Group" {
		t.Errorf("group name not joined: %+v", invitations[0])
	}

	// Resolved invitations drop out of the listing.
	if err := svc.RespondInvitation("U_invitee", rsp.Uuid, "reject"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	invitations, err = svc.GetMyInvitations("U_invitee")
	if err != nil {
		t.Fatalf("relist: %v", err)
	}
	if len(invitations) != 0 {
		t.Errorf("resolved invitation still listed: %+v", invitations)
	}
}
