package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"comercial_xpto/internal/domain/entities"
	mock_interfaces "comercial_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegistryUseCase_Clients(t *testing.T) {
	t.Run("create requires a name", func(t *testing.T) {
		uc := NewRegistryUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateClient(context.Background(), "user-1", entities.Client{Name: "   "})
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewRegistryUseCase(clients, nil, nil, nil, nil, nil)

		clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.UserID != "user-1" || c.Name != "Oficina do Zé" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		res, err := uc.CreateClient(context.Background(), "user-1", entities.Client{Name: " Oficina do Zé "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewRegistryUseCase(clients, nil, nil, nil, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "user-1", "c-1").Return(entities.Client{}, nil)

		_, err := uc.GetClient(context.Background(), "user-1", "c-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("update keeps created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewRegistryUseCase(clients, nil, nil, nil, nil, nil)

		created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		clients.EXPECT().GetByID(gomock.Any(), "user-1", "c-1").Return(
			entities.Client{ID: "c-1", UserID: "user-1", Name: "Antigo", CreatedAt: created}, nil,
		)
		clients.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.CreatedAt != created || c.Name != "Novo" {
					t.Fatalf("unexpected client: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.UpdateClient(context.Background(), "user-1", entities.Client{ID: "c-1", Name: "Novo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete checks existence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewRegistryUseCase(clients, nil, nil, nil, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "user-1", "c-1").Return(entities.Client{}, nil)

		err := uc.DeleteClient(context.Background(), "user-1", "c-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestRegistryUseCase_Categories(t *testing.T) {
	t.Run("create requires a name", func(t *testing.T) {
		uc := NewRegistryUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateCategory(context.Background(), "user-1", entities.Category{})
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		categories := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewRegistryUseCase(nil, categories, nil, nil, nil, nil)

		categories.EXPECT().GetByID(gomock.Any(), "user-1", "cat-1").Return(entities.Category{}, nil)

		_, err := uc.UpdateCategory(context.Background(), "user-1", entities.Category{ID: "cat-1", Name: "Vestuário"})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		categories := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewRegistryUseCase(nil, categories, nil, nil, nil, nil)

		categories.EXPECT().GetByID(gomock.Any(), "user-1", "cat-1").Return(entities.Category{ID: "cat-1"}, nil)
		categories.EXPECT().Delete(gomock.Any(), "user-1", "cat-1").Return(nil)

		if err := uc.DeleteCategory(context.Background(), "user-1", "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRegistryUseCase_Company(t *testing.T) {
	t.Run("save requires name and cnpj", func(t *testing.T) {
		uc := NewRegistryUseCase(nil, nil, nil, nil, nil, nil)
		if _, err := uc.SaveCompany(context.Background(), "user-1", entities.Company{CNPJ: "00.000.000/0001-00"}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
		if _, err := uc.SaveCompany(context.Background(), "user-1", entities.Company{Name: "Comercial XPTO"}); !errors.Is(err, ErrInvalidCompanyCNPJ) {
			t.Fatalf("expected ErrInvalidCompanyCNPJ, got %v", err)
		}
	})

	t.Run("save upserts under the tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		companies := mock_interfaces.NewMockICompanyRepository(ctrl)
		uc := NewRegistryUseCase(nil, nil, companies, nil, nil, nil)

		companies.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Company) (entities.Company, error) {
				if c.UserID != "user-1" || c.UpdatedAt.IsZero() {
					t.Fatalf("unexpected company: %+v", c)
				}
				return c, nil
			},
		)

		_, err := uc.SaveCompany(context.Background(), "user-1", entities.Company{Name: "Comercial XPTO", CNPJ: "00.000.000/0001-00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRegistryUseCase_DashboardCounts(t *testing.T) {
	t.Run("counts every collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		categories := mock_interfaces.NewMockICategoryRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		skus := mock_interfaces.NewMockISKURepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewRegistryUseCase(clients, categories, nil, products, skus, quotes)

		products.EXPECT().ListByTenant(gomock.Any(), "user-1").Return([]entities.Product{{ID: "p1"}}, nil)
		skus.EXPECT().ListByTenant(gomock.Any(), "user-1").Return([]entities.SKU{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}, nil)
		quotes.EXPECT().ListByTenant(gomock.Any(), "user-1").Return([]entities.Quote{{ID: "q1"}, {ID: "q2"}}, nil)
		clients.EXPECT().ListByTenant(gomock.Any(), "user-1").Return([]entities.Client{{ID: "c1"}}, nil)
		categories.EXPECT().ListByTenant(gomock.Any(), "user-1").Return([]entities.Category{}, nil)

		counts, err := uc.DashboardCounts(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.DashboardCounts{Products: 1, SKUs: 3, Quotes: 2, Clients: 1, Categories: 0}
		if counts != want {
			t.Fatalf("expected %+v, got %+v", want, counts)
		}
	})

	t.Run("store error stops the count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewRegistryUseCase(nil, nil, nil, products, nil, nil)

		products.EXPECT().ListByTenant(gomock.Any(), "user-1").Return(nil, errors.New("db"))

		_, err := uc.DashboardCounts(context.Background(), "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
