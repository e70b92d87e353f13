package repository_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/AV-automacoes/restaurante-bom-prato/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepo(t *testing.T) *repository.HistoryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "history.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.OrderRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewHistoryRepository(db)
}

func orderAt(session string, n int, placed time.Time) *entity.Order {
	return &entity.Order{
		ID:        fmt.Sprintf("%s-order-%03d", session, n),
		SessionID: session,
		DisplayID: fmt.Sprintf("#%06d", 100000+n),
		CreatedAt: placed,
		Total:     2100,
		Status:    entity.StatusPlaced,
		StatusHistory: []entity.StatusUpdate{
			{Status: entity.StatusPlaced, Timestamp: placed},
		},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := newRepo(t)
	base := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	o := orderAt("sess-a", 1, base)
	o.Items = []entity.CartItem{{CartItemID: "a", Name: "Marmitex", Quantity: 2, UnitPrice: 2100}}
	if err := repo.Save(o); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DisplayID != o.DisplayID || got.Total != o.Total || len(got.Items) != 1 {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.SessionID != "sess-a" {
		t.Fatalf("session id not restored, got %q", got.SessionID)
	}
	if got.Items[0].Total() != 4200 {
		t.Fatalf("item total = %d, want 4200", got.Items[0].Total())
	}
}

func TestSaveUpsertsByOrderID(t *testing.T) {
	repo := newRepo(t)
	base := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	o := orderAt("sess-a", 1, base)
	if err := repo.Save(o); err != nil {
		t.Fatalf("save: %v", err)
	}
	o.Status = entity.StatusAccepted
	o.StatusHistory = append(o.StatusHistory, entity.StatusUpdate{Status: entity.StatusAccepted, Timestamp: base.Add(time.Minute)})
	if err := repo.Save(o); err != nil {
		t.Fatalf("second save: %v", err)
	}

	all, err := repo.LoadBySession("sess-a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("upsert must not duplicate rows, got %d", len(all))
	}
	if all[0].Status != entity.StatusAccepted || len(all[0].StatusHistory) != 2 {
		t.Fatalf("updated snapshot not stored: %+v", all[0])
	}
}

func TestHistoryKeepsTenNewestPerSession(t *testing.T) {
	repo := newRepo(t)
	base := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	for n := 1; n <= 12; n++ {
		if err := repo.Save(orderAt("sess-a", n, base.Add(time.Duration(n)*time.Minute))); err != nil {
			t.Fatalf("save %d: %v", n, err)
		}
	}
	// outra sessão não conta para a poda
	if err := repo.Save(orderAt("sess-b", 1, base)); err != nil {
		t.Fatalf("save sess-b: %v", err)
	}

	all, err := repo.LoadBySession("sess-a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != repository.HistoryLimit {
		t.Fatalf("history = %d orders, want %d", len(all), repository.HistoryLimit)
	}
	// mais recente primeiro, os dois mais antigos podados
	if all[0].ID != "sess-a-order-012" || all[len(all)-1].ID != "sess-a-order-003" {
		t.Fatalf("wrong window: first=%s last=%s", all[0].ID, all[len(all)-1].ID)
	}
	if _, err := repo.Get("sess-a-order-001"); err == nil {
		t.Fatal("pruned order must not be retrievable")
	}

	other, err := repo.LoadBySession("sess-b")
	if err != nil {
		t.Fatalf("load sess-b: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("sess-b history = %d orders, want 1", len(other))
	}
}

func TestLoadBySessionIsolatesSessions(t *testing.T) {
	repo := newRepo(t)
	base := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	if err := repo.Save(orderAt("sess-a", 1, base)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(orderAt("sess-b", 2, base.Add(time.Minute))); err != nil {
		t.Fatalf("save: %v", err)
	}

	a, err := repo.LoadBySession("sess-a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(a) != 1 || a[0].ID != "sess-a-order-001" {
		t.Fatalf("sess-a sees %+v", a)
	}
	if got, _ := repo.LoadBySession("sess-c"); len(got) != 0 {
		t.Fatalf("unknown session must see nothing, got %d", len(got))
	}
}

func TestFindByDisplayID(t *testing.T) {
	repo := newRepo(t)
	base := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	if err := repo.Save(orderAt("sess-a", 7, base)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.FindByDisplayID("#100007")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != "sess-a-order-007" {
		t.Fatalf("wrong order %s", got.ID)
	}

	if _, err := repo.FindByDisplayID("#999999"); err == nil {
		t.Fatal("unknown display id must fail")
	}
}
