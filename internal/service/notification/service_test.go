package notification

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/notification/notification_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
)

func newTestService(t *testing.T) (*notificationService, *repository.Repositories) {
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
	return NewNotificationService(repos), repos
}

func seedNotification(t *testing.T, repos *repository.Repositories, uuid, userUuid string) {
	t.Helper()
	n := model.Notification{
		Uuid:     uuid,
		UserUuid: userUuid,
		Type:     notification_type_enum.ADMIN_ACTION,
		Message:  "test notification",
	}
	if err := repos.Notification.Create(&n); err != nil {
		t.Fatalf("seed notification: %v", err)
	}
}

func TestGetNotifications(t *testing.T) {
	svc, repos := newTestService(t)
	seedNotification(t, repos, "N_1", "U_alice")
	seedNotification(t, repos, "N_2", "U_alice")
	seedNotification(t, repos, "N_3", "U_bilal")

	rsp, err := svc.GetNotifications("U_alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rsp) != 2 {
		t.Fatalf("got %d notifications, want 2", len(rsp))
	}
	for _, n := range rsp {
		if n.Read {
			t.Errorf("fresh notification already read: %+v", n)
		}
	}
}

func TestMarkRead(t *testing.T) {
	svc, repos := newTestService(t)
	seedNotification(t, repos, "N_1", "U_alice")

	// A user can only mark their own notifications.
	err := svc.MarkRead("U_bilal", "N_1")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected not found for foreign notification, got %v", err)
	}

	if err := svc.MarkRead("U_alice", "N_1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	rsp, err := svc.GetNotifications("U_alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rsp) != 1 || !rsp[0].Read {
		t.Errorf("notification not marked read: %+v", rsp)
	}
}

func TestMarkAllRead(t *testing.T) {
	svc, repos := newTestService(t)
	seedNotification(t, repos, "N_1", "U_alice")
	seedNotification(t, repos, "N_2", "U_alice")
	seedNotification(t, repos, "N_3", "U_bilal")

	if err := svc.MarkAllRead("U_alice"); err != nil {
		t.Fatalf("mark all read: %v", err)
	}

	rsp, _ := svc.GetNotifications("U_alice")
	for _, n := range rsp {
		if !n.Read {
			t.Errorf("notification left unread: %+v", n)
		}
	}

	// Other users' inboxes are untouched.
	other, _ := svc.GetNotifications("U_bilal")
	if len(other) != 1 || other[0].Read {
		t.Errorf("foreign inbox mutated: %+v", other)
	}
}
