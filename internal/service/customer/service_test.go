package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type stubRepo struct {
	addresses []domain.Address
	putCalls  int
}

func (s *stubRepo) ListAddresses(context.Context, string) ([]domain.Address, error) {
	return s.addresses, nil
}

func (s *stubRepo) PutAddresses(_ context.Context, _ string, addresses []domain.Address) error {
	s.addresses = addresses
	s.putCalls++
	return nil
}

func TestAddAddressAssignsID(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	got, err := svc.AddAddress(context.Background(), "u1", AddAddressInput{
		HouseNo: "12B", Street: "MG Road", City: "Pune", State: "MH", Pincode: "411001",
	})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if got.ID == "" {
		t.Fatal("address id not assigned")
	}
	if len(repo.addresses) != 1 || repo.addresses[0].Street != "MG Road" {
		t.Fatalf("address not persisted: %+v", repo.addresses)
	}
}

func TestAddAddressValidation(t *testing.T) {
	svc := New(&stubRepo{})

	if _, err := svc.AddAddress(context.Background(), "", AddAddressInput{Street: "x", City: "y"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("missing user: %v", err)
	}
	if _, err := svc.AddAddress(context.Background(), "u1", AddAddressInput{City: "y"}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("missing street: %v", err)
	}
}

func TestRemoveAddress(t *testing.T) {
	repo := &stubRepo{addresses: []domain.Address{{ID: "a1"}, {ID: "a2"}}}
	svc := New(repo)

	if err := svc.RemoveAddress(context.Background(), "u1", "a1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(repo.addresses) != 1 || repo.addresses[0].ID != "a2" {
		t.Fatalf("unexpected addresses: %+v", repo.addresses)
	}
}

func TestRemoveUnknownAddressIsNoOp(t *testing.T) {
	repo := &stubRepo{addresses: []domain.Address{{ID: "a1"}}}
	svc := New(repo)

	if err := svc.RemoveAddress(context.Background(), "u1", "missing"); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}
	if repo.putCalls != 0 {
		t.Fatalf("no-op remove should not write, got %d puts", repo.putCalls)
	}
	if len(repo.addresses) != 1 {
		t.Fatalf("addresses changed: %+v", repo.addresses)
	}
}
