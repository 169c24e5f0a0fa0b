package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/storage"
)

func TestVehicleStore_InsertAndGet(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	vehicle := &domain.Vehicle{Name: "Fiesta", Brand: "Ford", Year: 2022}
	if err := store.Insert(ctx, vehicle); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if vehicle.ID != 1 {
		t.Errorf("assigned ID = %d, want 1", vehicle.ID)
	}

	got, err := store.Get(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Fiesta" || got.Brand != "Ford" || got.Year != 2022 {
		t.Errorf("Get() = %+v", got)
	}
}

func TestVehicleStore_SequentialIDs(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		vehicle := &domain.Vehicle{Name: "Onix", Brand: "Chevrolet", Year: 2021}
		if err := store.Insert(ctx, vehicle); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if vehicle.ID != want {
			t.Errorf("assigned ID = %d, want %d", vehicle.ID, want)
		}
	}

	// IDs are never reused after a delete.
	if err := store.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	vehicle := &domain.Vehicle{Name: "Gol", Brand: "Volkswagen", Year: 2019}
	if err := store.Insert(ctx, vehicle); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if vehicle.ID != 4 {
		t.Errorf("assigned ID after delete = %d, want 4", vehicle.ID)
	}
}

func TestVehicleStore_Update(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	vehicle := &domain.Vehicle{Name: "Fiesta", Brand: "Ford", Year: 2022}
	if err := store.Insert(ctx, vehicle); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	updated := &domain.Vehicle{ID: vehicle.ID, Name: "Ka", Brand: "Ford", Year: 2020}
	if err := store.Update(ctx, updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.Get(ctx, vehicle.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Ka" || got.Year != 2020 {
		t.Errorf("Get() after update = %+v", got)
	}

	missing := &domain.Vehicle{ID: 99, Name: "Uno", Brand: "Fiat", Year: 2010}
	if err := store.Update(ctx, missing); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrVehicleNotFound", err)
	}
}

func TestVehicleStore_Delete(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	vehicle := &domain.Vehicle{Name: "Fiesta", Brand: "Ford", Year: 2022}
	if err := store.Insert(ctx, vehicle); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := store.Delete(ctx, vehicle.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, vehicle.ID); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrVehicleNotFound", err)
	}
	if err := store.Delete(ctx, vehicle.ID); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Errorf("Delete(deleted) error = %v, want ErrVehicleNotFound", err)
	}
}

func TestVehicleStore_ListPagination(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		vehicle := &domain.Vehicle{
			Name:  fmt.Sprintf("Model %02d", i),
			Brand: "Ford",
			Year:  2000 + i,
		}
		if err := store.Insert(ctx, vehicle); err != nil {
			t.Fatalf("Insert(%d) error = %v", i, err)
		}
	}

	page1, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List(1) error = %v", err)
	}
	if len(page1) != storage.PageSize {
		t.Errorf("page 1 size = %d, want %d", len(page1), storage.PageSize)
	}
	for i := 1; i < len(page1); i++ {
		if page1[i].ID <= page1[i-1].ID {
			t.Fatal("page 1 is not ordered by ID")
		}
	}

	page2, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(page2) != 2 {
		t.Errorf("page 2 size = %d, want 2", len(page2))
	}

	empty, err := store.List(ctx, 5)
	if err != nil {
		t.Fatalf("List(5) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("page 5 size = %d, want 0", len(empty))
	}
}

func TestVehicleStore_Count(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	if n, _ := store.Count(ctx); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}

	vehicle := &domain.Vehicle{Name: "Fiesta", Brand: "Ford", Year: 2022}
	if err := store.Insert(ctx, vehicle); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestVehicleStore_GetReturnsCopy(t *testing.T) {
	store := NewVehicleStore()
	ctx := context.Background()

	vehicle := &domain.Vehicle{Name: "Fiesta", Brand: "Ford", Year: 2022}
	if err := store.Insert(ctx, vehicle); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, _ := store.Get(ctx, vehicle.ID)
	got.Name = "changed"

	again, _ := store.Get(ctx, vehicle.ID)
	if again.Name != "Fiesta" {
		t.Error("mutating a returned record modified the store")
	}
}
