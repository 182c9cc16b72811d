package service

import (
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/store"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/internal/validators"
)

type Services struct {
	UserService  UserService
	BookService  BookService
	OrderService OrderService
}

func NewServices(storages *store.Repositories, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewCatalogValidator()

	return &Services{
		UserService:  NewUserService(storages.UserRepository, ids, logger),
		BookService:  NewBookService(storages.BookRepository, validator, ids, logger),
		OrderService: NewOrderService(storages.OrderRepository, validator, ids, logger),
	}
}
