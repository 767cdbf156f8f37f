package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/config"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/bagbankapi"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/memstore"
	redisstore "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/redis"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/service"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Attributes *service.AttributeService
	Suppliers  *service.SupplierService
	Products   *service.ProductService

	// Sessions and Ephemeral are swept by the reaper.
	Sessions  *session.Manager
	Ephemeral *memstore.Area
	// MemoryDurable is set when the durable area lives in process memory.
	MemoryDurable *memstore.Area
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
	// Transport overrides the round tripper used for BagBank API calls.
	Transport http.RoundTripper
}

// NewServices wires the storage areas, the API client and the services on top of them.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps with config are required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var c ServiceContainer
	durable, err := newDurableArea(cfg, deps.RedisClient, &c)
	if err != nil {
		return ServiceContainer{}, err
	}
	c.Ephemeral = memstore.New()

	client, err := bagbankapi.NewClient(bagbankapi.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout(),
		ErrorMessagePaths: cfg.API.ErrorMessagePath,
		Transport:         deps.Transport,
		Logger:            logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create bagbank api client: %w", err)
	}
	catalog := bagbankapi.NewCatalog(client)

	c.Sessions, err = session.NewManager(session.ManagerOptions{
		Auth:         client,
		Durable:      durable,
		Ephemeral:    c.Ephemeral,
		TokenKey:     cfg.API.TokenKey,
		UserKey:      cfg.API.UserKey,
		DurableTTL:   cfg.Session.DurableTTL,
		EphemeralTTL: cfg.Session.EphemeralTTL,
		IdleTTL:      cfg.Session.IdleTTL,
		Logger:       logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create session manager: %w", err)
	}

	c.Auth = service.NewAuthService(service.AuthServiceOptions{Sessions: c.Sessions, Logger: logger})
	c.Attributes = service.NewAttributeService(service.AttributeServiceOptions{API: catalog, Logger: logger})
	c.Suppliers = service.NewSupplierService(service.SupplierServiceOptions{API: catalog.Suppliers(), Logger: logger})
	c.Products = service.NewProductService(service.ProductServiceOptions{
		API:     catalog.Products(),
		Lookups: service.ProductLookups{Attributes: catalog, Suppliers: catalog.Suppliers()},
		Logger:  logger,
	})
	return c, nil
}

//nolint:ireturn // the durable area is chosen by configuration.
func newDurableArea(cfg *config.AppConfig, client redis.UniversalClient, c *ServiceContainer) (ports.StorageArea, error) {
	switch cfg.Session.DurableBackend {
	case config.DurableBackendMemory:
		c.MemoryDurable = memstore.New()
		return c.MemoryDurable, nil
	case config.DurableBackendRedis, "":
		if client == nil {
			return nil, errors.New("redis client is required for the redis durable backend")
		}
		return redisstore.NewStorageAreaWithPrefix(client, cfg.Redis.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown durable backend %q", cfg.Session.DurableBackend)
	}
}
