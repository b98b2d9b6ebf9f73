package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

type ResidentService interface {
	// List returns all residents, or just those from the given source.
	List(ctx context.Context, source string) ([]model.Resident, error)
	Get(ctx context.Context, id int64) (*model.Resident, error)
}

type residentService struct {
	residents repository.ResidentRepository
}

func NewResidentService(residents repository.ResidentRepository) ResidentService {
	return &residentService{residents: residents}
}

func (s *residentService) List(ctx context.Context, source string) ([]model.Resident, error) {
	items, err := s.residents.List(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	return items, nil
}

func (s *residentService) Get(ctx context.Context, id int64) (*model.Resident, error) {
	resident, err := s.residents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find resident: %w", err)
	}
	return resident, nil
}

// SeedResidents loads the initial registry entries when the store is empty.
// Subsequent startups are a no-op so restarts do not duplicate the data.
func SeedResidents(ctx context.Context, residents repository.ResidentRepository) error {
	existing, err := residents.List(ctx, "")
	if err != nil {
		return fmt.Errorf("list residents: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, r := range seedResidents() {
		if _, err := residents.Create(ctx, &r); err != nil {
			return fmt.Errorf("seed resident %s: %w", r.ResidentID, err)
		}
	}
	return nil
}

func seedResidents() []model.Resident {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []model.Resident{
		{
			Name:             "Ion Popescu",
			ResidentID:       "MD2304981",
			Address:          "Str. Ștefan cel Mare 42, Chișinău",
			RegistrationDate: date(2022, time.June, 15),
			Source:           model.SourceInternal,
			Data:             map[string]any{"phone": "+373 69 123 456", "email": "ipopescu@mail.md"},
		},
		{
			Name:             "Maria Ionescu",
			ResidentID:       "MD2309875",
			Address:          "Str. București 23, Chișinău",
			RegistrationDate: date(2022, time.September, 20),
			Source:           model.SourceInternal,
			Data:             map[string]any{"phone": "+373 69 987 654", "email": "mionescu@mail.md"},
		},
		{
			Name:             "Vasile Rusu",
			ResidentID:       "MD2303451",
			Address:          "Str. Alba Iulia 102, Chișinău",
			RegistrationDate: date(2022, time.March, 10),
			Source:           model.SourceInternal,
			Data:             map[string]any{"phone": "+373 69 567 890", "email": "vrusu@mail.md"},
		},
		{
			Name:             "Ana Codreanu",
			ResidentID:       "MD2308532",
			Address:          "Str. Mihai Eminescu 18, Bălți",
			RegistrationDate: date(2022, time.February, 5),
			Source:           model.SourceExternal,
			Data:             map[string]any{"phone": "+373 69 111 222", "email": "acodreanu@mail.md"},
		},
		{
			Name:             "Dumitru Moraru",
			ResidentID:       "MD2307764",
			Address:          "Str. Decebal 45, Cahul",
			RegistrationDate: date(2022, time.April, 25),
			Source:           model.SourceExternal,
			Data:             map[string]any{"phone": "+373 69 333 444", "email": "dmoraru@mail.md"},
		},
		{
			Name:             "Elena Lungu",
			ResidentID:       "MD2301298",
			Address:          "Str. Independenței 78, Ungheni",
			RegistrationDate: date(2022, time.August, 8),
			Source:           model.SourceExternal,
			Data:             map[string]any{"phone": "+373 69 555 666", "email": "elungu@mail.md"},
		},
	}
}
