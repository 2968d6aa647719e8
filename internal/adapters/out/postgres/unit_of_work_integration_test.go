package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/historyrepo"
	"ordering/internal/adapters/out/postgres/profilerepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/profile"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work, both
// repositories, and the read-side query handlers against a real PostgreSQL
// database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection and
// runs migrations for all persistence DTOs.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&historyrepo.RecordDTO{},
		&profilerepo.ProfileDTO{},
		&profilerepo.AddressDTO{},
		&profilerepo.FavoriteDTO{},
		&profilerepo.RatingDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE order_records, profiles, profile_addresses, profile_favorites, profile_ratings",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newRecord(customerID, status string, placedAt time.Time) order.Record {
	total, err := kernel.MoneyFromFloat(27)
	suite.Require().NoError(err)

	record, err := order.RestoreRecord(
		kernel.NewUUID(), customerID, "1 Main Street", total,
		"txn-"+customerID, status, order.EstimatedDelivery, placedAt,
	)
	suite.Require().NoError(err)
	return record
}

func (suite *UnitOfWorkIntegrationTestSuite) addRecord(record order.Record) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderHistoryRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRecordRoundTrip() {
	ctx := context.Background()
	record := suite.newRecord("alice", order.StatusConfirmed, time.Now().UTC())

	suite.addRecord(record)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderHistoryRepository().Get(ctx, record.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.True(record.ID.IsEqual(loaded.ID))
	suite.Equal("alice", loaded.CustomerID)
	suite.Equal("1 Main Street", loaded.DeliveryAddress)
	suite.Equal("27.00", loaded.Total.String())
	suite.Equal(order.StatusConfirmed, loaded.Status)
	suite.Equal(order.EstimatedDelivery, loaded.EstimatedDelivery)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsRecord() {
	ctx := context.Background()
	record := suite.newRecord("alice", order.StatusConfirmed, time.Now().UTC())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderHistoryRepository().Add(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err := uow.OrderHistoryRepository().Get(ctx, record.ID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetAllUndeliveredExcludesDelivered() {
	ctx := context.Background()
	now := time.Now().UTC()

	older := suite.newRecord("alice", order.StatusConfirmed, now.Add(-2*time.Hour))
	newer := suite.newRecord("bob", order.StatusPreparing, now.Add(-time.Hour))
	done := suite.newRecord("carol", order.StatusDelivered, now)

	suite.addRecord(newer)
	suite.addRecord(older)
	suite.addRecord(done)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	undelivered, err := uow.OrderHistoryRepository().GetAllUndelivered(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().Len(undelivered, 2)
	// oldest first
	suite.True(older.ID.IsEqual(undelivered[0].ID))
	suite.True(newer.ID.IsEqual(undelivered[1].ID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateAdvancesStatus() {
	ctx := context.Background()
	record := suite.newRecord("alice", order.StatusConfirmed, time.Now().UTC())
	suite.addRecord(record)

	suite.True(record.AdvanceStatus())
	suite.Equal(order.StatusPreparing, record.Status)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderHistoryRepository().Update(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderHistoryRepository().Get(ctx, record.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(order.StatusPreparing, loaded.Status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateUnknownRecordFails() {
	ctx := context.Background()
	record := suite.newRecord("alice", order.StatusConfirmed, time.Now().UTC())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.OrderHistoryRepository().Update(ctx, record)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProfileRoundTrip() {
	ctx := context.Background()

	p, err := profile.NewProfile("alice")
	suite.Require().NoError(err)
	suite.Require().NoError(p.AddAddress("work", "9 Office Park"))
	suite.Require().NoError(p.AddAddress("home", "1 Main Street"))
	suite.Require().NoError(p.SwitchAddress("work"))
	p.AddFavorite("Sushi Spot")
	p.AddFavorite("Pizza Palace")
	suite.Require().NoError(p.RateDish("Margherita", 5))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Save(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.ProfileRepository().Get(ctx, "alice")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal("alice", loaded.CustomerID())
	suite.Equal("work", loaded.CurrentLabel())
	suite.Equal("9 Office Park", loaded.DeliveryAddress())

	// children come back in insertion order, not alphabetical order
	suite.Equal([]profile.LabeledAddress{
		{Label: "work", Address: "9 Office Park"},
		{Label: "home", Address: "1 Main Street"},
	}, loaded.Addresses())
	suite.Equal([]string{"Sushi Spot", "Pizza Palace"}, loaded.Favorites())

	rating, ok := loaded.Rating("Margherita")
	suite.True(ok)
	suite.Equal(5, rating)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProfileSaveReplacesChildren() {
	ctx := context.Background()

	p, err := profile.NewProfile("alice")
	suite.Require().NoError(err)
	suite.Require().NoError(p.AddAddress("home", "1 Main Street"))
	p.AddFavorite("Pizza Palace")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Save(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	p.RemoveAddress("home")
	p.RemoveFavorite("Pizza Palace")
	p.AddFavorite("Sushi Spot")

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Save(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.ProfileRepository().Get(ctx, "alice")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(loaded.Addresses())
	suite.Empty(loaded.CurrentLabel())
	suite.Equal([]string{"Sushi Spot"}, loaded.Favorites())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProfileGetNotFound() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err := uow.ProfileRepository().Get(ctx, "nobody")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderHistoryQueryHandler() {
	ctx := context.Background()
	now := time.Now().UTC()

	first := suite.newRecord("alice", order.StatusDelivered, now.Add(-2*time.Hour))
	second := suite.newRecord("alice", order.StatusConfirmed, now.Add(-time.Hour))
	other := suite.newRecord("bob", order.StatusConfirmed, now)

	suite.addRecord(first)
	suite.addRecord(second)
	suite.addRecord(other)

	handler := queries.NewGetOrderHistoryQueryHandler(suite.db)
	query, err := queries.NewGetOrderHistoryQuery("alice")
	suite.Require().NoError(err)

	history, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	// newest first
	suite.True(second.ID.IsEqual(history[0].ID))
	suite.True(first.ID.IsEqual(history[1].ID))
	suite.Equal("27.00", history[0].Total.String())
	suite.Equal(order.StatusConfirmed, history[0].Status)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetActiveOrdersQueryHandler() {
	ctx := context.Background()
	now := time.Now().UTC()

	active := suite.newRecord("alice", order.StatusOutForDelivery, now.Add(-time.Hour))
	done := suite.newRecord("bob", order.StatusDelivered, now)

	suite.addRecord(active)
	suite.addRecord(done)

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(active.ID.IsEqual(result[0].ID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetProfileQueryHandler() {
	ctx := context.Background()

	p, err := profile.NewProfile("alice")
	suite.Require().NoError(err)
	suite.Require().NoError(p.AddAddress("home", "1 Main Street"))
	p.AddFavorite("Pizza Palace")
	suite.Require().NoError(p.RateDish("Margherita", 4))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProfileRepository().Save(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewGetProfileQueryHandler(suite.db)
	query, err := queries.NewGetProfileQuery("alice")
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("alice", response.CustomerID)
	suite.Require().Len(response.Addresses, 1)
	suite.Equal("home", response.Addresses[0].Label)
	suite.True(response.Addresses[0].Current)
	suite.Equal([]string{"Pizza Palace"}, response.Favorites)
	suite.Equal(map[string]int{"Margherita": 4}, response.Ratings)

	_, err = handler.Handle(ctx, mustProfileQuery(suite.T(), "nobody"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func mustProfileQuery(t *testing.T, customerID string) queries.GetProfileQuery {
	t.Helper()
	query, err := queries.NewGetProfileQuery(customerID)
	if err != nil {
		t.Fatal(err)
	}
	return query
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
