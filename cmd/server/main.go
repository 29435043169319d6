package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"parksmart/internal/api"
	"parksmart/internal/auth"
	"parksmart/internal/config"
	"parksmart/internal/repository"
	"parksmart/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	parkingRepo := repository.NewParkingRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	complaintRepo := repository.NewComplaintRepository(database)
	jobRepo := repository.NewJobRepository(database)

	notifier := service.NewBookingNotifier()
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	parkingSvc := service.NewParkingService(parkingRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, parkingRepo, userRepo, notifier)
	complaintSvc := service.NewComplaintService(complaintRepo)
	jobSvc := service.NewJobService(jobRepo)

	authHandler := api.NewAuthHandler(authSvc)
	parkingHandler := api.NewParkingHandler(parkingSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	complaintHandler := api.NewComplaintHandler(complaintSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/signup", authHandler.SignUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", authHandler.SignIn).Methods("POST")

	// Authenticated endpoints
	app := r.PathPrefix("/api").Subrouter()
	app.Use(auth.Middleware(cfg.JWTSecret))
	app.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	app.HandleFunc("/auth/signout", authHandler.SignOut).Methods("POST")
	app.HandleFunc("/dashboard", parkingHandler.Dashboard).Methods("GET")
	app.HandleFunc("/lots", parkingHandler.ListLots).Methods("GET")
	app.HandleFunc("/slots", parkingHandler.ListSlots).Methods("GET")
	app.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	app.HandleFunc("/bookings", bookingHandler.CreateBooking).Methods("POST")
	app.HandleFunc("/bookings/quote", bookingHandler.Quote).Methods("POST")
	app.HandleFunc("/bookings/{id}", bookingHandler.CancelBooking).Methods("DELETE")
	app.HandleFunc("/complaints", complaintHandler.SubmitComplaint).Methods("POST")

	// Release slots whose bookings have ended
	c := cron.New()
	if _, err := c.AddFunc("@every 5m", func() {
		if err := jobSvc.CompleteExpiredBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule booking expiry job: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.CORSAllowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
