package cmd

import (
	"fmt"
	"log/slog"

	"ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/memory"
	"ordering/internal/adapters/out/notify"
	"ordering/internal/adapters/out/payment"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	sessionStore *memory.SessionStore
	menu         *menu.RestaurantMenu
	payments     services.PaymentProcessing
	notifier     *notify.StatusLogger
	logger       *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	restaurantMenu, err := menu.NewRestaurantMenu(configs.RestaurantName, configs.MenuItems)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build restaurant menu: %w", err)
	}

	gateway, err := payment.NewSimulator(configs.PaymentDeclineCard)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build payment gateway: %w", err)
	}

	payments, err := services.NewPaymentProcessing(gateway)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build payment processing: %w", err)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore: memory.NewSessionStore(),
		menu:         restaurantMenu,
		payments:     payments,
		notifier:     notify.NewStatusLogger(logger),
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.sessionStore, c.menu, c.notifier, c.profileUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateChangeItemQuantityCommandHandler() commands.ChangeItemQuantityCommandHandler {
	return commands.NewChangeItemQuantityCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateCheckoutOrderCommandHandler() commands.CheckoutOrderCommandHandler {
	return commands.NewCheckoutOrderCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.sessionStore, c.payments, c.historyUoWFactory())
}

func (c *CompositionRoot) CreateAbandonOrderCommandHandler() commands.AbandonOrderCommandHandler {
	return commands.NewAbandonOrderCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateAdvanceDeliveryStatusesCommandHandler() commands.AdvanceDeliveryStatusesCommandHandler {
	return commands.NewAdvanceDeliveryStatusesCommandHandler(c.historyUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAddProfileAddressCommandHandler() commands.AddProfileAddressCommandHandler {
	return commands.NewAddProfileAddressCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateSwitchProfileAddressCommandHandler() commands.SwitchProfileAddressCommandHandler {
	return commands.NewSwitchProfileAddressCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateRemoveProfileAddressCommandHandler() commands.RemoveProfileAddressCommandHandler {
	return commands.NewRemoveProfileAddressCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateSetFavoriteCommandHandler() commands.SetFavoriteCommandHandler {
	return commands.NewSetFavoriteCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateRateDishCommandHandler() commands.RateDishCommandHandler {
	return commands.NewRateDishCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

// CreateServer wires every handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateStartOrderCommandHandler(),
		c.CreateAddCartItemCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateChangeItemQuantityCommandHandler(),
		c.CreateCheckoutOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateAbandonOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateAddProfileAddressCommandHandler(),
		c.CreateSwitchProfileAddressCommandHandler(),
		c.CreateRemoveProfileAddressCommandHandler(),
		c.CreateSetFavoriteCommandHandler(),
		c.CreateRateDishCommandHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetProfileQueryHandler(),
		c.menu,
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAdvanceDeliveryStatusesCommandHandler(), c.logger)
}

func (c *CompositionRoot) historyUoWFactory() commands.HistoryUoWFactory {
	return FuncHistoryUoWFactory(func() commands.HistoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

type FuncHistoryUoWFactory func() commands.HistoryUoW

func (f FuncHistoryUoWFactory) Create() commands.HistoryUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
