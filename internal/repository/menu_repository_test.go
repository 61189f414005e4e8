package repository

import (
	"context"
	"testing"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
)

func seedItems() []models.AdminMenuItem {
	return []models.AdminMenuItem{
		{ID: 1, Name: "Veg Pakoda", BasePrice: 50, Type: models.TypeVeg, Category: models.CategorySnacks},
		{ID: 2, Name: "Chicken 65", BasePrice: 175, Type: models.TypeNonVeg, Category: models.CategoryStarters},
	}
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(kv.NewMemoryStore())

	if err := repo.SeedIfEmpty(ctx, seedItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := repo.GetAll(ctx)
	if len(items) != 2 {
		t.Fatalf("got %d items after seeding empty store, want 2", len(items))
	}

	// Seeding a populated store is a no-op.
	if err := repo.SeedIfEmpty(ctx, []models.AdminMenuItem{{ID: 99, Name: "Other"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ = repo.GetAll(ctx)
	if len(items) != 2 || items[0].Name != "Veg Pakoda" {
		t.Errorf("second seed changed the store: %+v", items)
	}
}

func TestAddAssignsUniqueIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(kv.NewMemoryStore())

	first, err := repo.Add(ctx, models.AdminMenuItem{Name: "Dal Makhani", BasePrice: 120, Type: models.TypeVeg, Category: models.CategoryGravy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Add(ctx, models.AdminMenuItem{Name: "Rice Kheer", BasePrice: 140, Type: models.TypeVeg, Category: models.CategorySweets})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID <= 0 {
		t.Errorf("first id = %d, want > 0", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("ids not increasing: %d then %d", first.ID, second.ID)
	}

	got, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Name != "Rice Kheer" {
		t.Errorf("GetByID = %+v, want Rice Kheer", got)
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(kv.NewMemoryStore())
	repo.SeedIfEmpty(ctx, seedItems())

	if err := repo.Update(ctx, models.AdminMenuItem{ID: 2, Name: "Chicken 65", BasePrice: 190, Type: models.TypeNonVeg, Category: models.CategoryStarters}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.GetByID(ctx, 2)
	if got == nil || got.BasePrice != 190 {
		t.Errorf("item 2 = %+v, want base price 190", got)
	}

	// Unknown id leaves the collection untouched.
	if err := repo.Update(ctx, models.AdminMenuItem{ID: 404, Name: "Ghost"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := repo.GetAll(ctx)
	if len(items) != 2 {
		t.Errorf("got %d items after no-op update, want 2", len(items))
	}
}

func TestDeleteAndClearAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(kv.NewMemoryStore())
	repo.SeedIfEmpty(ctx, seedItems())

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := repo.GetAll(ctx)
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("items after delete = %+v, want only id 2", items)
	}

	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ = repo.GetAll(ctx)
	if len(items) != 0 {
		t.Errorf("got %d items after clear, want 0", len(items))
	}
}

func TestMalformedDataReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	store.Set(ctx, "admin_menu_items", "{not json", 0)

	repo := NewMenuRepository(store)
	items, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("malformed data should read as empty, got error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}

	// The store is usable again after the next write.
	added, err := repo.Add(ctx, models.AdminMenuItem{Name: "Fruit Salad", BasePrice: 150, Type: models.TypeVeg, Category: models.CategoryHealthy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.GetByID(ctx, added.ID)
	if got == nil {
		t.Error("item not readable after recovering from malformed data")
	}
}
