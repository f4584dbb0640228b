package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/enums"
	"github.com/gorravana/boutique-backend/pkg/errors"
)

func newTestRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Notification{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return NewRepository(conn), conn
}

func seed(t *testing.T, repo *Repository, title string, read bool, createdAt time.Time) *models.Notification {
	t.Helper()
	n := &models.Notification{
		Type:      enums.NotificationTypeSystem,
		Title:     title,
		Message:   "mensaje",
		CreatedAt: createdAt,
	}
	if read {
		at := createdAt.Add(time.Minute)
		n.ReadAt = &at
	}
	if err := repo.Create(context.Background(), n); err != nil {
		t.Fatalf("seeding %s: %v", title, err)
	}
	return n
}

func TestListUnreadOnly(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	ctx := context.Background()
	now := time.Now().UTC()

	seed(t, repo, "leída", true, now.Add(-time.Hour))
	seed(t, repo, "pendiente", false, now)

	unread, err := svc.List(ctx, true, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(unread) != 1 || unread[0].Title != "pendiente" {
		t.Fatalf("unexpected unread list %+v", unread)
	}

	count, err := svc.CountUnread(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unread, got %d", count)
	}
}

func TestMarkReadIsIdempotentPerRow(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc, _ := NewService(repo)
	ctx := context.Background()

	n := seed(t, repo, "alerta", false, time.Now().UTC())

	if err := svc.MarkRead(ctx, n.ID); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	err := svc.MarkRead(ctx, n.ID)
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeNotFound {
		t.Fatalf("second mark must report not found, got %v", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc, _ := NewService(repo)
	ctx := context.Background()

	seed(t, repo, "a", false, time.Now().UTC())
	seed(t, repo, "b", false, time.Now().UTC())
	seed(t, repo, "c", true, time.Now().UTC())

	count, err := svc.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("mark all: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows marked, got %d", count)
	}
}

func TestRecordOrderReceivedMessage(t *testing.T) {
	_, conn := newTestRepo(t)
	ctx := context.Background()

	order := &models.Order{
		ID:           uuid.New(),
		Folio:        "GV-20260314-0042",
		CustomerName: "Dana Cliente",
		Total:        decimal.RequireFromString("379.00"),
		LineItems:    []models.OrderLineItem{{}, {}},
	}
	if err := RecordOrderReceived(ctx, conn, order); err != nil {
		t.Fatalf("recording: %v", err)
	}

	var n models.Notification
	if err := conn.First(&n).Error; err != nil {
		t.Fatalf("loading notification: %v", err)
	}
	if n.Title != "Nuevo pedido GV-20260314-0042" {
		t.Fatalf("title = %q", n.Title)
	}
	if n.Message != "Dana Cliente, total $379.00, 2 artículos" {
		t.Fatalf("message = %q", n.Message)
	}
	if n.Link == nil || *n.Link != "/admin/pedidos/"+order.ID.String() {
		t.Fatalf("link = %v", n.Link)
	}
}

func TestCleanupPrunesOnlyOldReadRows(t *testing.T) {
	repo, _ := newTestRepo(t)
	svc, _ := NewService(repo)
	ctx := context.Background()
	now := time.Now().UTC()

	seed(t, repo, "vieja leída", true, now.Add(-120*24*time.Hour))
	seed(t, repo, "vieja sin leer", false, now.Add(-120*24*time.Hour))
	seed(t, repo, "reciente leída", true, now)

	pruned, err := svc.Cleanup(ctx)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if pruned != 1 {
		t.Fatalf("expected 1 pruned row, got %d", pruned)
	}

	remaining, err := svc.List(ctx, false, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(remaining))
	}
}
