package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/aura-nw/marketplace-api/base/ctx"
	"github.com/aura-nw/marketplace-api/base/database/mongoclient"
	"github.com/aura-nw/marketplace-api/base/database/redisclient"
	"github.com/aura-nw/marketplace-api/base/log"
	"github.com/aura-nw/marketplace-api/base/metrics"
	bValidator "github.com/aura-nw/marketplace-api/base/validator"
	"github.com/aura-nw/marketplace-api/domain"
	settings_domain "github.com/aura-nw/marketplace-api/domain/settings"
	mmiddleware "github.com/aura-nw/marketplace-api/middleware"
	"github.com/aura-nw/marketplace-api/service/bank"
	"github.com/aura-nw/marketplace-api/service/custody"
	"github.com/aura-nw/marketplace-api/service/query"
	"github.com/aura-nw/marketplace-api/service/redis"
	"github.com/aura-nw/marketplace-api/service/royalty"
	"github.com/aura-nw/marketplace-api/service/settlement"
	auction_delivery "github.com/aura-nw/marketplace-api/stores/auction/delivery/http"
	auction_repository "github.com/aura-nw/marketplace-api/stores/auction/repository"
	auction_usecase "github.com/aura-nw/marketplace-api/stores/auction/usecase"
	auth_delivery "github.com/aura-nw/marketplace-api/stores/auth/delivery/http"
	auth_middleware "github.com/aura-nw/marketplace-api/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/aura-nw/marketplace-api/stores/auth/usecase"
	hc_delivery "github.com/aura-nw/marketplace-api/stores/healthcheck/delivery/http"
	hc_repo "github.com/aura-nw/marketplace-api/stores/healthcheck/repository"
	hc_usecase "github.com/aura-nw/marketplace-api/stores/healthcheck/usecase"
	listing_delivery "github.com/aura-nw/marketplace-api/stores/listing/delivery/http"
	listing_repository "github.com/aura-nw/marketplace-api/stores/listing/repository"
	listing_usecase "github.com/aura-nw/marketplace-api/stores/listing/usecase"
	order_delivery "github.com/aura-nw/marketplace-api/stores/order/delivery/http"
	order_repository "github.com/aura-nw/marketplace-api/stores/order/repository"
	order_usecase "github.com/aura-nw/marketplace-api/stores/order/usecase"
	settings_delivery "github.com/aura-nw/marketplace-api/stores/settings/delivery/http"
	settings_repository "github.com/aura-nw/marketplace-api/stores/settings/repository"
	settings_usecase "github.com/aura-nw/marketplace-api/stores/settings/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// collaborator services
	httpTimeout := viper.GetDuration("http.timeout")
	custodyClient := custody.NewClient(&custody.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("custody.baseUrl"),
		Timeout:    httpTimeout,
	})
	royaltyClient := royalty.NewClient(&royalty.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("royalty.baseUrl"),
		Timeout:    httpTimeout,
	})
	bankClient := bank.NewClient(&bank.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("bank.baseUrl"),
		Timeout:    httpTimeout,
	})
	settlementService := settlement.New(&settlement.SettlementCfg{
		Custody: custodyClient,
		Royalty: royaltyClient,
		Bank:    bankClient,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListingRepo(q)
	orderRepo := order_repository.NewOrderRepo(q)
	auctionRepo := auction_repository.NewContractRepo(q)
	settingsRepo := settings_repository.NewSettingsRepo(q)

	hc := hc_usecase.New(hcRepo)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:  listingRepo,
		SettingsRepo: settingsRepo,
		Custody:      custodyClient,
		Settlement:   settlementService,
	})
	order := order_usecase.New(&order_usecase.OrderUseCaseCfg{
		OrderRepo:    orderRepo,
		SettingsRepo: settingsRepo,
		Custody:      custodyClient,
		Bank:         bankClient,
		Settlement:   settlementService,
	})
	auction := auction_usecase.New(&auction_usecase.ContractUseCaseCfg{
		ContractRepo: auctionRepo,
	})
	settings := settings_usecase.New(&settings_usecase.SettingsUseCaseCfg{
		SettingsRepo: settingsRepo,
	})

	// seed the settings document so a fresh deployment can trade and the
	// configured owner can administrate
	if err := settings.EnsureDefault(context, settings_domain.Settings{
		Owner:        domain.Address(viper.GetString("marketplace.owner")),
		Exchange:     domain.Address(viper.GetString("marketplace.exchange")),
		PaymentToken: domain.Address(viper.GetString("marketplace.paymentToken")),
	}); err != nil {
		panic(err)
	}
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:    viper.GetString("auth.jwtSecret"),
		SignatureMsg: viper.GetString("auth.signatureMsg"),
		Redis:        redisCache,
	})

	authMiddleware := auth_middleware.New(auth, settingsRepo)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	listing_delivery.New(e, listing, authMiddleware)
	order_delivery.New(e, order, authMiddleware)
	auction_delivery.New(e, auction, authMiddleware)
	settings_delivery.New(e, settings, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
