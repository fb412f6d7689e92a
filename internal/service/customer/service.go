package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/JustAsh123/shopalot/internal/domain"
	customerrepo "github.com/JustAsh123/shopalot/internal/repository/customer"
)

type Service struct {
	repo customerrepo.Repository
}

func New(repo customerrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	return s.repo.ListAddresses(ctx, userID)
}

type AddAddressInput struct {
	HouseNo  string `json:"houseNo"`
	Street   string `json:"street"`
	Locality string `json:"locality"`
	Pincode  string `json:"pincode"`
	City     string `json:"city"`
	State    string `json:"state"`
}

func (s *Service) AddAddress(ctx context.Context, userID string, in AddAddressInput) (*domain.Address, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Street) == "" || strings.TrimSpace(in.City) == "" {
		return nil, fmt.Errorf("%w: street and city required", domain.ErrInvalidArgument)
	}

	addresses, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}
	address := domain.Address{
		ID:       uuid.NewString(),
		HouseNo:  strings.TrimSpace(in.HouseNo),
		Street:   strings.TrimSpace(in.Street),
		Locality: strings.TrimSpace(in.Locality),
		Pincode:  strings.TrimSpace(in.Pincode),
		City:     strings.TrimSpace(in.City),
		State:    strings.TrimSpace(in.State),
	}
	if err := s.repo.PutAddresses(ctx, userID, append(addresses, address)); err != nil {
		return nil, err
	}
	return &address, nil
}

// RemoveAddress drops the address with the given id. An unknown id is a
// no-op, mirroring the cart's remove semantics.
func (s *Service) RemoveAddress(ctx context.Context, userID, addressID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(addressID) == "" {
		return fmt.Errorf("%w: user id and address id required", domain.ErrInvalidArgument)
	}

	addresses, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return err
	}
	kept := addresses[:0]
	for _, a := range addresses {
		if a.ID != addressID {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(addresses) {
		return nil
	}
	return s.repo.PutAddresses(ctx, userID, kept)
}
