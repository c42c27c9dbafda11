package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ifteca/reserva-salas/internal/config"
	"github.com/ifteca/reserva-salas/internal/handlers"
	"github.com/ifteca/reserva-salas/internal/infra/cache"
	"github.com/ifteca/reserva-salas/internal/infra/remote"
	"github.com/ifteca/reserva-salas/internal/middleware"
	"github.com/ifteca/reserva-salas/internal/notify"
	ucReserva "github.com/ifteca/reserva-salas/internal/usecase/reserva"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *ucReserva.SyncManager {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	remoteStore := remote.NewRedisStore(rdb)
	cacheRepo := cache.NewReservaGormRepository(db)

	mailNotifier := notify.NewMailNotifier(cfg)
	notifyDispatcher := notify.NewDispatcher(mailNotifier)

	// ======================================================
	// USE CASES — RESERVAS
	// ======================================================
	listarSalasUC := ucReserva.NewListarSalas(remoteStore, cacheRepo)

	listarHorariosUC := ucReserva.NewListarHorarios(remoteStore, cacheRepo)

	criarReservaUC := ucReserva.NewCriarReserva(
		remoteStore,
		cacheRepo,
		notifyDispatcher,
	)

	cancelarReservaUC := ucReserva.NewCancelarReserva(
		remoteStore,
		cacheRepo,
		notifyDispatcher,
	)

	sincronizarUC := ucReserva.NewSincronizarReservas(remoteStore, cacheRepo)
	syncManager := ucReserva.NewSyncManager(sincronizarUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, syncManager)
	salasHandler := handlers.NewSalasHandler(listarSalasUC, listarHorariosUC)
	reservasHandler := handlers.NewReservasHandler(
		criarReservaUC,
		cancelarReservaUC,
		cacheRepo,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/salas", salasHandler.List)
			secured.GET("/salas/:id/horarios", salasHandler.Horarios)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/me/reservas", reservasHandler.Create)
			secured.GET("/me/reservas", reservasHandler.ListMine)
			secured.DELETE("/me/reservas/:id", reservasHandler.Cancel)
		}
	}

	return syncManager
}
