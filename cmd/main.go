package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addTurfHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/add_turf"
	bookTurfHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/book_turf"
	cancelBookingHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/cancel_booking"
	deleteTurfHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/delete_turf"
	findBookingHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/find_booking"
	getProfileHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/get_profile"
	getTurfHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/get_turf"
	listBookingsHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/list_bookings"
	listTurfsHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/list_turfs"
	listUserBookingsHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/list_user_bookings"
	loginHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/login"
	logoutHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/logout"
	registerHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/register"
	searchTurfsHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/search_turfs"
	updateTurfHandler "github.com/nusrx24/Turf-2025/internal/api/handlers/update_turf"
	"github.com/nusrx24/Turf-2025/internal/api/middleware"
	"github.com/nusrx24/Turf-2025/internal/config"
	"github.com/nusrx24/Turf-2025/internal/infra/localstore"
	turfAPIClient "github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/session"
	bookingsService "github.com/nusrx24/Turf-2025/internal/service/bookings"
	turfsService "github.com/nusrx24/Turf-2025/internal/service/turfs"
	bookTurfUC "github.com/nusrx24/Turf-2025/internal/usecase/book_turf"
	searchTurfsUC "github.com/nusrx24/Turf-2025/internal/usecase/search_turfs"
	"github.com/nusrx24/Turf-2025/pkg/flash"
	"github.com/nusrx24/Turf-2025/pkg/httpmetrics"
	"github.com/nusrx24/Turf-2025/pkg/logger"
	"github.com/nusrx24/Turf-2025/pkg/metrics"
)

func main() {
	// .env опционален: перекрывает backend.url для локальной разработки
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Turf-2025 frontend service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Локальное хранилище сессии: единственные персистентные значения
	// клиента - токен и флаг роли
	store := localstore.New(cfg.Session.File)
	sess := session.New(store, log)
	if sess.IsAuthenticated() {
		log.Info("Existing session restored from %s", cfg.Session.File)
	}

	// Исходящий транспорт к backend (с метриками, если включены)
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Metrics.Enabled {
		transport = httpmetrics.Wrap(transport, metricsCollector)
		log.Info("Backend request metrics enabled")
	}

	gateway := turfAPIClient.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		sess,
		transport,
		log,
	)
	log.Info("Backend gateway initialized (url=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем сервисы
	turfSvc := turfsService.NewService(gateway, cfg.UI.PageSize, log)
	bookingSvc := bookingsService.NewService(gateway, cfg.UI.PageSize, log)

	// Инициализируем use cases
	board := flash.NewBoard()
	bookingFlow := bookTurfUC.NewFlow(gateway, board, bookTurfUC.Config{
		MessageTTL:     time.Duration(cfg.UI.MessageTTLSeconds) * time.Second,
		ConfirmDisplay: time.Duration(cfg.UI.ConfirmDisplaySeconds) * time.Second,
	}, log)
	searchUseCase := searchTurfsUC.NewUseCase(gateway, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(gateway, sess, log)
	register := registerHandler.NewHandler(gateway, log)
	logout := logoutHandler.NewHandler(sess, log)
	getProfile := getProfileHandler.NewHandler(gateway, log)
	listTurfs := listTurfsHandler.NewHandler(turfSvc, log)
	getTurf := getTurfHandler.NewHandler(turfSvc, log)
	searchTurfs := searchTurfsHandler.NewHandler(searchUseCase, turfSvc, log)
	bookTurf := bookTurfHandler.NewHandler(bookingFlow, turfSvc, gateway, board, log)
	listUserBookings := listUserBookingsHandler.NewHandler(bookingSvc, gateway, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, gateway, sess, log)
	findBooking := findBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	addTurf := addTurfHandler.NewHandler(turfSvc, log)
	updateTurf := updateTurfHandler.NewHandler(turfSvc, log)
	deleteTurf := deleteTurfHandler.NewHandler(turfSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Каталог площадок
	api.HandleFunc("/turfs", listTurfs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turfs/types", searchTurfs.HandleTypes).Methods(http.MethodGet)
	api.HandleFunc("/turfs/search", searchTurfs.Handle).Methods(http.MethodPost)
	api.HandleFunc("/turfs/{turfId:[0-9]+}", getTurf.Handle).Methods(http.MethodGet)

	// Поиск бронирования по коду подтверждения
	api.HandleFunc("/bookings/find/{code}", findBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют токен в сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sess))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile/bookings", listUserBookings.Handle).Methods(http.MethodGet)

	// --- Процесс бронирования ---
	protected.HandleFunc("/booking", bookTurf.HandleState).Methods(http.MethodGet)
	protected.HandleFunc("/booking", bookTurf.HandleClose).Methods(http.MethodDelete)
	protected.HandleFunc("/booking/open", bookTurf.HandleOpen).Methods(http.MethodPost)
	protected.HandleFunc("/booking/quote", bookTurf.HandleQuote).Methods(http.MethodPost)
	protected.HandleFunc("/booking/submit", bookTurf.HandleSubmit).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (UI-гейт по флагу роли; настоящие права проверяет backend)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Admin(sess))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/turfs", addTurf.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/turfs/{turfId:[0-9]+}", updateTurf.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/turfs/{turfId:[0-9]+}", deleteTurf.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
