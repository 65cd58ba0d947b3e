//go:build integration

package repo

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/trm"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RepoSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *sqlx.DB
	tx        trm.Manager

	accounts  *accountRepo
	catalog   *catalogRepo
	orders    *orderRepo
	locations *locationRepo
	delivery  *deliveryRepo
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoSuite))
}

func (s *RepoSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("delivery"),
		postgres.WithUsername("delivery"),
		postgres.WithPassword("delivery"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	m, err := migrate.New(migrationsPath(), connStr)
	s.Require().NoError(err)
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		s.Require().NoError(err)
	}
	_, _ = m.Close()

	s.db, err = sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)

	s.tx = trm.NewManager(s.db)
	s.accounts = NewAccountRepo(s.db)
	s.catalog = NewCatalogRepo(s.db)
	s.orders = NewOrderRepo(s.db)
	s.locations = NewLocationRepo(s.db)
	s.delivery = NewDeliveryRepo(s.db)
}

func (s *RepoSuite) TearDownSuite() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *RepoSuite) SetupTest() {
	_, err := s.db.Exec("TRUNCATE TABLE delivery_assignments, order_lines, orders, products, categories, addresses, users CASCADE")
	s.Require().NoError(err)
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(filename), "..", "..")
	return "file://" + filepath.Join(root, "migrations")
}

func (s *RepoSuite) createUser(role entities.Role) entities.User {
	id := uuid.New()
	u := entities.User{
		ID:                id,
		Username:          "user-" + id.String()[:8],
		Email:             id.String()[:8] + "@example.com",
		PhoneNumber:       id.String()[:10],
		Role:              role,
		PreferredLanguage: "en",
		CreatedAt:         time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.accounts.CreateUser(context.Background(), u))
	return u
}

func (s *RepoSuite) createProduct(price string) entities.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := entities.Product{
		ID:           uuid.New(),
		Name:         "Mango",
		Price:        decimal.RequireFromString(price),
		Availability: entities.InStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Require().NoError(s.catalog.CreateProduct(context.Background(), p))
	return p
}

func (s *RepoSuite) saveOrder(user entities.User, lines map[entities.Product]int) entities.Order {
	ctx := context.Background()
	orderID := uuid.New()
	var orderLines []entities.OrderLine
	for p, qty := range lines {
		l, err := entities.NewOrderLine(orderID, p, qty)
		s.Require().NoError(err)
		orderLines = append(orderLines, l)
	}
	o := entities.NewOrder(orderID, user.ID, entities.PaymentCash, orderLines, time.Now().UTC().Truncate(time.Microsecond))

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SaveOrder(ctx, o); err != nil {
			return err
		}
		return s.orders.SaveOrderLines(ctx, o.ID, o.Lines)
	})
	s.Require().NoError(err)
	return o
}

func (s *RepoSuite) countOrders() int {
	var n int
	s.Require().NoError(s.db.Get(&n, "SELECT COUNT(*) FROM orders"))
	return n
}

func (s *RepoSuite) TestUser_DuplicateUsername() {
	ctx := context.Background()
	u := s.createUser(entities.RoleCustomer)

	dup := u
	dup.ID = uuid.New()
	dup.PhoneNumber = "0000000000"
	err := s.accounts.CreateUser(ctx, dup)
	s.ErrorIs(err, entities.ErrConflict)
	s.Equal("username", entities.FieldOf(err))

	got, err := s.accounts.GetUser(ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(u.Username, got.Username)

	_, err = s.accounts.GetUser(ctx, uuid.New())
	s.ErrorIs(err, entities.ErrNotFound)
}

func (s *RepoSuite) TestOrder_TotalAndLines() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	a := s.createProduct("9.99")
	b := s.createProduct("5.00")

	o := s.saveOrder(user, map[entities.Product]int{a: 2, b: 1})

	got, err := s.orders.GetOrder(ctx, o.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("24.98").Equal(got.TotalAmount))
	s.Len(got.Lines, 2)
	s.Equal(entities.OrderPending, got.Status)
}

func (s *RepoSuite) TestOrder_CapturedPriceSurvivesCatalogChange() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	p := s.createProduct("10.00")
	o := s.saveOrder(user, map[entities.Product]int{p: 1})

	p.Price = decimal.RequireFromString("20.00")
	p.UpdatedAt = time.Now().UTC()
	s.Require().NoError(s.catalog.UpdateProduct(ctx, p))

	got, err := s.orders.GetOrder(ctx, o.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Lines, 1)
	s.True(decimal.RequireFromString("10.00").Equal(got.Lines[0].Price))
	s.True(decimal.RequireFromString("10.00").Equal(got.TotalAmount))
}

func (s *RepoSuite) TestOrder_FailedLinesLeaveNoOrder() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	before := s.countOrders()

	orderID := uuid.New()
	ghost := entities.Product{ID: uuid.New(), Price: decimal.RequireFromString("1.00")}
	line, err := entities.NewOrderLine(orderID, ghost, 1)
	s.Require().NoError(err)
	o := entities.NewOrder(orderID, user.ID, entities.PaymentCard, []entities.OrderLine{line}, time.Now().UTC())

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SaveOrder(ctx, o); err != nil {
			return err
		}
		return s.orders.SaveOrderLines(ctx, o.ID, o.Lines)
	})
	s.ErrorIs(err, entities.ErrNotFound)
	s.Equal("product_id", entities.FieldOf(err))
	s.Equal(before, s.countOrders())
}

func (s *RepoSuite) TestOrder_ListNewestFirst() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	other := s.createUser(entities.RoleCustomer)
	p := s.createProduct("3.50")

	first := s.saveOrder(user, map[entities.Product]int{p: 1})
	time.Sleep(5 * time.Millisecond)
	second := s.saveOrder(user, map[entities.Product]int{p: 2})
	s.saveOrder(other, map[entities.Product]int{p: 3})

	got, err := s.orders.ListOrders(ctx, entities.OrderFilter{UserID: &user.ID})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(second.ID, got[0].ID)
	s.Equal(first.ID, got[1].ID)
	s.Len(got[0].Lines, 1)
}

func (s *RepoSuite) TestOrder_UpdateStatus() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	p := s.createProduct("1.00")
	o := s.saveOrder(user, map[entities.Product]int{p: 1})

	s.Require().NoError(s.orders.UpdateOrderStatus(ctx, o.ID, entities.OrderProcessing, time.Now().UTC()))

	got, err := s.orders.GetOrder(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(entities.OrderProcessing, got.Status)

	err = s.orders.UpdateOrderStatus(ctx, uuid.New(), entities.OrderProcessing, time.Now().UTC())
	s.ErrorIs(err, entities.ErrNotFound)
}

func (s *RepoSuite) TestAssignment_SecondAssignmentConflicts() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	agent := s.createUser(entities.RoleDelivery)
	p := s.createProduct("2.00")
	o := s.saveOrder(user, map[entities.Product]int{p: 1})

	now := time.Now().UTC().Truncate(time.Microsecond)
	first := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: o.ID, AgentID: &agent.ID}, now)
	s.Require().NoError(s.delivery.SaveAssignment(ctx, first))

	second := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: o.ID}, now)
	err := s.delivery.SaveAssignment(ctx, second)
	s.ErrorIs(err, entities.ErrConflict)
	s.Equal("order_id", entities.FieldOf(err))

	got, err := s.delivery.GetAssignmentByOrder(ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(first.ID, got.ID)
	s.Require().NotNil(got.AgentID)
	s.Equal(agent.ID, *got.AgentID)
}

func (s *RepoSuite) TestAssignment_UnknownAgent() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	p := s.createProduct("2.00")
	o := s.saveOrder(user, map[entities.Product]int{p: 1})

	ghost := uuid.New()
	a := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: o.ID, AgentID: &ghost}, time.Now().UTC())
	err := s.delivery.SaveAssignment(ctx, a)
	s.ErrorIs(err, entities.ErrNotFound)
	s.Equal("agent_id", entities.FieldOf(err))
}

func (s *RepoSuite) TestAssignment_UpdateAndOverdue() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	p := s.createProduct("2.00")
	late := s.saveOrder(user, map[entities.Product]int{p: 1})
	onTime := s.saveOrder(user, map[entities.Product]int{p: 1})

	now := time.Now().UTC().Truncate(time.Microsecond)
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	a := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: late.ID, EstimatedDeliveryTime: &past}, now)
	s.Require().NoError(s.delivery.SaveAssignment(ctx, a))
	b := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: onTime.ID, EstimatedDeliveryTime: &future}, now)
	s.Require().NoError(s.delivery.SaveAssignment(ctx, b))

	n, err := s.delivery.CountOverdue(ctx, now)
	s.Require().NoError(err)
	s.Equal(1, n)

	s.Require().NoError(a.Apply(entities.DeliveryUpdate{Status: entities.DeliveryPickedUp}, now))
	s.Require().NoError(s.delivery.UpdateAssignment(ctx, a))
	s.Require().NoError(a.Fail("customer unreachable", now))
	s.Require().NoError(s.delivery.UpdateAssignment(ctx, a))

	got, err := s.delivery.GetAssignment(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(entities.DeliveryFailed, got.Status)
	s.Equal("customer unreachable", got.Notes)

	n, err = s.delivery.CountOverdue(ctx, now)
	s.Require().NoError(err)
	s.Equal(0, n)

	status := entities.DeliveryFailed
	list, err := s.delivery.ListAssignments(ctx, entities.AssignmentFilter{Status: &status})
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *RepoSuite) TestLocations_Hierarchy() {
	ctx := context.Background()

	states, err := s.locations.ListStates(ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(states)

	cities, err := s.locations.ListCities(ctx, states[0].ID)
	s.Require().NoError(err)
	for _, c := range cities {
		s.Equal(states[0].ID, c.StateID)
	}

	_, err = s.locations.GetState(ctx, -1)
	s.ErrorIs(err, entities.ErrNotFound)
	s.Equal("state", entities.FieldOf(err))
}

func (s *RepoSuite) TestAddresses_PrimaryFirst() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := entities.Address{ID: uuid.New(), UserID: user.ID, Type: entities.AddressHome, StreetAddress: "1 MG Road", IsPrimary: true, CreatedAt: now}
	s.Require().NoError(s.accounts.CreateAddress(ctx, older))

	newer := entities.Address{ID: uuid.New(), UserID: user.ID, Type: entities.AddressWork, StreetAddress: "2 Brigade Road", IsPrimary: true, CreatedAt: now.Add(time.Second)}
	err := s.accounts.CreateAddress(ctx, newer)
	s.ErrorIs(err, entities.ErrConflict)

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.accounts.ClearPrimaryAddress(ctx, user.ID); err != nil {
			return err
		}
		return s.accounts.CreateAddress(ctx, newer)
	})
	s.Require().NoError(err)

	list, err := s.accounts.ListAddresses(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(newer.ID, list[0].ID)
	s.True(list[0].IsPrimary)
	s.False(list[1].IsPrimary)
}

func (s *RepoSuite) TestAddresses_UpdateAndDelete() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)
	now := time.Now().UTC().Truncate(time.Microsecond)

	a := entities.Address{ID: uuid.New(), UserID: user.ID, Type: entities.AddressHome, StreetAddress: "1 MG Road", CreatedAt: now}
	s.Require().NoError(s.accounts.CreateAddress(ctx, a))

	a.StreetAddress = "12 MG Road"
	a.Landmark = "Near metro"
	a.UpdatedAt = now.Add(time.Minute)
	s.Require().NoError(s.accounts.UpdateAddress(ctx, a))

	got, err := s.accounts.GetAddress(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("12 MG Road", got.StreetAddress)
	s.Equal("Near metro", got.Landmark)
	s.True(a.UpdatedAt.Equal(got.UpdatedAt))

	s.Require().NoError(s.accounts.DeleteAddress(ctx, a.ID))
	_, err = s.accounts.GetAddress(ctx, a.ID)
	s.ErrorIs(err, entities.ErrNotFound)
	s.ErrorIs(s.accounts.DeleteAddress(ctx, a.ID), entities.ErrNotFound)
}

func (s *RepoSuite) TestUser_UpdateProfile() {
	ctx := context.Background()
	user := s.createUser(entities.RoleCustomer)

	stored, err := s.accounts.GetUser(ctx, user.ID)
	s.Require().NoError(err)
	s.False(stored.WhatsappNotifications)

	stored.Email = "new@example.com"
	stored.PreferredLanguage = entities.LanguageHindi
	stored.WhatsappNotifications = true
	stored.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.GetUserForUpdate(ctx, user.ID); err != nil {
			return err
		}
		return s.accounts.UpdateProfile(ctx, stored)
	})
	s.Require().NoError(err)

	got, err := s.accounts.GetUser(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("new@example.com", got.Email)
	s.Equal(entities.LanguageHindi, got.PreferredLanguage)
	s.True(got.WhatsappNotifications)
	s.Equal(user.Username, got.Username)
}
